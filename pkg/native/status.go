package native

// Status is the tagged result of a foreign call, built immediately upon
// return from cgo so nothing downstream inspects a raw status code again.
// Code 0 is success for every library wrapped here; Message carries the
// library's last-error text for failures.
type Status struct {
	Code    int
	Message string
}

// CodeNotBuilt is the out-of-band code used by stub bindings when the native
// libraries were not linked into the binary. No wrapped library uses negative
// codes in this range.
const CodeNotBuilt = -255

// OK is the success status.
var OK = Status{}

// NotBuilt is the status every stub binding returns.
var NotBuilt = Status{Code: CodeNotBuilt, Message: "native bindings not built"}

// Ok reports whether the call succeeded.
func (s Status) Ok() bool { return s.Code == 0 }

// IsNotBuilt reports whether the status came from a stub binding.
func (s Status) IsNotBuilt() bool { return s.Code == CodeNotBuilt }

// FromCode converts a raw native status code and optional last-error text
// into a Status. The message is dropped for success codes; several of the
// wrapped libraries leave stale text in their error slot after a successful
// call.
func FromCode(code int, message string) Status {
	if code == 0 {
		return OK
	}
	return Status{Code: code, Message: message}
}
