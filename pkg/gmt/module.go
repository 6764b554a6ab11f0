package gmt

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// knownModules is the set of GMT modules this binding dispatches. Unknown
// names are rejected before any native call; GMT offers no safe way to probe
// a module's existence without running it.
var knownModules = map[string]struct{}{
	"basemap":      {},
	"binstats":     {},
	"blockmean":    {},
	"blockmedian":  {},
	"blockmode":    {},
	"coast":        {},
	"colorbar":     {},
	"contour":      {},
	"dimfilter":    {},
	"filter1d":     {},
	"grd2cpt":      {},
	"grd2xyz":      {},
	"grdclip":      {},
	"grdcontour":   {},
	"grdcut":       {},
	"grdfill":      {},
	"grdfilter":    {},
	"grdgradient":  {},
	"grdhisteq":    {},
	"grdimage":     {},
	"grdinfo":      {},
	"grdlandmask":  {},
	"grdproject":   {},
	"grdsample":    {},
	"grdtrack":     {},
	"grdvolume":    {},
	"info":         {},
	"makecpt":      {},
	"nearneighbor": {},
	"plot":         {},
	"project":      {},
	"psconvert":    {},
	"sph2grd":      {},
	"surface":      {},
	"text":         {},
	"triangulate":  {},
	"which":        {},
	"xyz2grd":      {},
}

// KnownModule reports whether the binding will dispatch the named module.
func KnownModule(name string) bool {
	_, ok := knownModules[name]
	return ok
}

// CallModule executes a GMT module with the given arguments.
//
// Each argument is rendered independently and the list is joined with GMT's
// single-space separator. An argument containing an unescaped space would
// silently split into two module options, so it is rejected as a
// precondition violation; callers quoting for GMT themselves pass a
// double-quoted argument.
func (s *Session) CallModule(module string, args ...string) error {
	ptr, err := s.h.Ptr("gmt.CallModule")
	if err != nil {
		return err
	}
	op := "gmt." + module
	if !KnownModule(module) {
		return native.NewError(op, native.ErrUnsupportedOperation,
			fmt.Sprintf("unknown module %q", module))
	}
	rendered, err := renderArgs(op, args)
	if err != nil {
		return err
	}

	s.log.Debug(context.Background(), "gmt call module", "module", module, "args", rendered)
	st := s.rt.CallModule(ptr, module, rendered)
	runtime.KeepAlive(s)
	if !st.Ok() {
		// Output must not be read after a failed call; translate and return
		// before anything else happens.
		return native.CallError(op, st)
	}
	return nil
}

// renderArgs joins arguments with the space separator after checking the
// escaping precondition on each.
func renderArgs(op string, args []string) (string, error) {
	for _, a := range args {
		if strings.ContainsRune(a, ' ') && !quoted(a) {
			return "", native.NewError(op, native.ErrInvalidArgument,
				fmt.Sprintf("argument %q contains an unescaped separator", a))
		}
	}
	return strings.Join(args, " "), nil
}

func quoted(a string) bool {
	return len(a) >= 2 && strings.HasPrefix(a, `"`) && strings.HasSuffix(a, `"`)
}
