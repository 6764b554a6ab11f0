package ndarray

import (
	"fmt"
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// DType identifies the element kind of a view. Each maps to exactly one
// native element width; conversion between kinds is never implicit.
type DType int

const (
	Uint8 DType = iota
	Int32
	Float32
	Float64
)

// Size returns the element width in bytes.
func (d DType) Size() int {
	switch d {
	case Uint8:
		return 1
	case Int32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

func (d DType) String() string {
	switch d {
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// Policy selects how a native buffer is exposed.
type Policy int

const (
	// Copy duplicates the native data into binding-owned memory.
	Copy Policy = iota
	// Borrow aliases the native pointer; requires a live Owner.
	Borrow
)

// Owner is the token that keeps a borrowed buffer's backing memory valid.
// In practice it is the resource wrapper (or derived resource) that will
// issue the native free; holding the view holds the owner, so the Go
// collector cannot finalize the wrapper while a view exists.
type Owner interface {
	Alive() bool
}

// Array is a typed, row-major view over native or binding-owned memory.
type Array struct {
	dtype DType
	shape []int
	data  []byte
	owner Owner // nil for copies
}

// FromNative exposes a native buffer as an Array under the given policy.
// Shape must come from the native library's own metadata fields. Borrow
// fails with ErrBufferLifetime unless owner is non-nil and alive.
func FromNative(ptr unsafe.Pointer, shape []int, dtype DType, policy Policy, owner Owner) (*Array, error) {
	n, err := checkShape(shape, dtype)
	if err != nil {
		return nil, err
	}
	if ptr == nil {
		return nil, native.NewError("ndarray.FromNative", native.ErrInvalidArgument, "nil native buffer")
	}
	raw := unsafe.Slice((*byte)(ptr), n*dtype.Size())

	switch policy {
	case Copy:
		data := make([]byte, len(raw))
		copy(data, raw)
		return &Array{dtype: dtype, shape: cloneShape(shape), data: data}, nil
	case Borrow:
		if owner == nil || !owner.Alive() {
			return nil, native.NewError("ndarray.FromNative", native.ErrBufferLifetime,
				"borrow requires a live owner")
		}
		return &Array{dtype: dtype, shape: cloneShape(shape), data: raw, owner: owner}, nil
	default:
		return nil, native.NewError("ndarray.FromNative", native.ErrInvalidArgument,
			fmt.Sprintf("unknown policy %d", policy))
	}
}

// FromBytes builds a binding-owned Array from a Go buffer, copying it. Used
// where the cgo layer has already materialized the data on the Go side.
func FromBytes(buf []byte, shape []int, dtype DType) (*Array, error) {
	n, err := checkShape(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(buf) != n*dtype.Size() {
		return nil, native.NewError("ndarray.FromBytes", native.ErrInvalidArgument,
			fmt.Sprintf("buffer is %d bytes, shape wants %d", len(buf), n*dtype.Size()))
	}
	data := make([]byte, len(buf))
	copy(data, buf)
	return &Array{dtype: dtype, shape: cloneShape(shape), data: data}, nil
}

// Zeros allocates a binding-owned Array filled with zero values.
func Zeros(shape []int, dtype DType) (*Array, error) {
	n, err := checkShape(shape, dtype)
	if err != nil {
		return nil, err
	}
	return &Array{dtype: dtype, shape: cloneShape(shape), data: make([]byte, n*dtype.Size())}, nil
}

// DType returns the element kind.
func (a *Array) DType() DType { return a.dtype }

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int { return cloneShape(a.shape) }

// Len returns the total element count.
func (a *Array) Len() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// Strides returns the row-major strides in bytes.
func (a *Array) Strides() []int {
	strides := make([]int, len(a.shape))
	step := a.dtype.Size()
	for i := len(a.shape) - 1; i >= 0; i-- {
		strides[i] = step
		step *= a.shape[i]
	}
	return strides
}

// Borrowed reports whether the view aliases native memory.
func (a *Array) Borrowed() bool { return a.owner != nil }

// Owner returns the owner token for borrowed views, nil for copies.
func (a *Array) Owner() Owner { return a.owner }

// Valid reports whether the backing memory is still safe to read. Copies are
// always valid; borrowed views follow their owner.
func (a *Array) Valid() bool {
	if a.owner == nil {
		return true
	}
	return a.owner.Alive()
}

// Bytes returns the raw backing bytes. For borrowed views this aliases
// native memory; check Valid first.
func (a *Array) Bytes() []byte { return a.data }

// Uint8s reinterprets the view as uint8 elements.
func (a *Array) Uint8s() ([]uint8, error) {
	if a.dtype != Uint8 {
		return nil, typeMismatch(a.dtype, Uint8)
	}
	return a.data, nil
}

// Int32s reinterprets the view as int32 elements. Exact-width only; no
// numeric narrowing ever happens here.
func (a *Array) Int32s() ([]int32, error) {
	if a.dtype != Int32 {
		return nil, typeMismatch(a.dtype, Int32)
	}
	if len(a.data) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&a.data[0])), a.Len()), nil
}

// Float32s reinterprets the view as float32 elements.
func (a *Array) Float32s() ([]float32, error) {
	if a.dtype != Float32 {
		return nil, typeMismatch(a.dtype, Float32)
	}
	if len(a.data) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&a.data[0])), a.Len()), nil
}

// Float64s reinterprets the view as float64 elements.
func (a *Array) Float64s() ([]float64, error) {
	if a.dtype != Float64 {
		return nil, typeMismatch(a.dtype, Float64)
	}
	if len(a.data) == 0 {
		return nil, nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&a.data[0])), a.Len()), nil
}

func typeMismatch(have, want DType) error {
	return native.NewError("ndarray", native.ErrInvalidArgument,
		fmt.Sprintf("view holds %s, not %s", have, want))
}

func checkShape(shape []int, dtype DType) (int, error) {
	if dtype.Size() == 0 {
		return 0, native.NewError("ndarray", native.ErrInvalidArgument, "invalid dtype")
	}
	if len(shape) == 0 {
		return 0, native.NewError("ndarray", native.ErrInvalidArgument, "empty shape")
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, native.NewError("ndarray", native.ErrInvalidArgument,
				fmt.Sprintf("non-positive dimension %d", d))
		}
		n *= d
	}
	return n, nil
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	return out
}
