package gmt

import (
	"runtime"

	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/ndarray"
)

// Grid is a derived resource: a native grid loaded into the session. It
// keeps a back-reference to its parent session, never ownership of it, and
// every use re-checks that the parent is still alive. A Grid must be freed
// (or dropped) before its session closes; the session does not track its
// grids across that boundary.
type Grid struct {
	sess *Session
	h    native.Handle
	meta GridMeta
}

// ReadGrid loads a grid file into native memory owned by this session.
func (s *Session) ReadGrid(path string) (*Grid, error) {
	const op = "gmt.ReadGrid"
	ptr, err := s.h.Ptr(op)
	if err != nil {
		return nil, err
	}

	gptr, meta, st := s.rt.ReadGrid(ptr, path)
	runtime.KeepAlive(s)
	if !st.Ok() {
		return nil, native.CallError(op, st)
	}
	g := &Grid{sess: s, h: native.Activate(gptr), meta: meta}
	runtime.SetFinalizer(g, func(g *Grid) { _ = g.Free() })
	return g, nil
}

// Meta returns the grid header metadata.
func (g *Grid) Meta() GridMeta { return g.meta }

// Alive reports whether both the grid and its parent session are active.
// Satisfies ndarray.Owner for borrowed value views.
func (g *Grid) Alive() bool {
	return g.h.Active() && g.sess.Alive()
}

// Values exposes the grid's float sample array as a (rows, cols) float32
// view. The native samples are single-precision; the exposure is an
// exact-width reinterpretation, never a numeric conversion.
//
// Copy is the safe default. Borrow hands out a zero-copy view whose owner
// token is the Grid itself: valid until the grid (or its session) closes.
// Borrow is permitted here because the grid's native buffer lives until the
// explicit FreeGrid this wrapper issues.
func (g *Grid) Values(policy ndarray.Policy) (*ndarray.Array, error) {
	const op = "gmt.Grid.Values"
	gptr, err := g.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	if !g.sess.Alive() {
		return nil, native.NewError(op, native.ErrInactiveHandle, "parent session closed")
	}

	data := g.sess.rt.GridData(gptr)
	arr, err := ndarray.FromNative(data, []int{g.meta.Rows, g.meta.Cols}, ndarray.Float32, policy, g)
	runtime.KeepAlive(g)
	return arr, err
}

// Write stores the grid to path through the parent session.
func (g *Grid) Write(path string) error {
	const op = "gmt.Grid.Write"
	gptr, err := g.h.Ptr(op)
	if err != nil {
		return err
	}
	sptr, err := g.sess.h.Ptr(op)
	if err != nil {
		return err
	}

	st := g.sess.rt.WriteGrid(sptr, gptr, path)
	runtime.KeepAlive(g)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Free releases the native grid. Idempotent. Freeing after the session has
// closed is a no-op: GMT reclaims all session-owned containers in
// GMT_Destroy_Session, so a second native free would be a double-free.
func (g *Grid) Free() error {
	if g == nil {
		return nil
	}
	gptr, ok := g.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(g, nil)
	sptr, err := g.sess.h.Ptr("gmt.Grid.Free")
	if err != nil {
		return nil
	}
	if st := g.sess.rt.FreeGrid(sptr, gptr); !st.Ok() && !st.IsNotBuilt() {
		return native.CallError("gmt.Grid.Free", st)
	}
	return nil
}
