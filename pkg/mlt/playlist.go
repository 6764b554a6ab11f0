package mlt

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Playlist is a handle over one native playlist, an ordered list of
// producer clips that itself acts as a producer.
type Playlist struct {
	prof *Profile
	h    native.Handle
}

// NewPlaylist builds an empty playlist bound to the profile.
func (p *Profile) NewPlaylist() (*Playlist, error) {
	const op = "mlt.NewPlaylist"
	ptr, err := p.ptr(op)
	if err != nil {
		return nil, err
	}

	plptr, st := p.fac.rt.NewPlaylist(ptr)
	runtime.KeepAlive(p)
	if !st.Ok() {
		if st.IsNotBuilt() {
			return nil, native.NewError(op, native.ErrNotBuilt, "")
		}
		return nil, native.NewError(op, native.ErrHandleCreation, st.Message)
	}
	pl := &Playlist{prof: p, h: native.Activate(plptr)}
	runtime.SetFinalizer(pl, func(pl *Playlist) { _ = pl.Close() })
	return pl, nil
}

func (pl *Playlist) ptr(op string) (unsafe.Pointer, error) {
	ptr, err := pl.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	if !pl.prof.Alive() {
		return nil, native.NewError(op, native.ErrInactiveHandle, "parent profile closed")
	}
	return ptr, nil
}

// sourcePtr exposes the playlist as a producer for Consumer.Connect. The
// native producer view aliases the playlist and is never closed separately.
func (pl *Playlist) sourcePtr(op string) (unsafe.Pointer, error) {
	ptr, err := pl.ptr(op)
	if err != nil {
		return nil, err
	}
	return pl.prof.fac.rt.PlaylistProducer(ptr), nil
}

// Count returns the number of clips.
func (pl *Playlist) Count() (int, error) {
	ptr, err := pl.ptr("mlt.Playlist.Count")
	if err != nil {
		return 0, err
	}
	n := pl.prof.fac.rt.PlaylistCount(ptr)
	runtime.KeepAlive(pl)
	return n, nil
}

// Append adds a producer clip with the given in/out range; pass -1 for both
// to take the producer's full range.
func (pl *Playlist) Append(pr *Producer, in, out int) error {
	const op = "mlt.Playlist.Append"
	ptr, err := pl.ptr(op)
	if err != nil {
		return err
	}
	pptr, err := pr.ptr(op)
	if err != nil {
		return err
	}
	st := pl.prof.fac.rt.PlaylistAppend(ptr, pptr, in, out)
	runtime.KeepAlive(pl)
	runtime.KeepAlive(pr)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Insert places a producer clip at the given position.
func (pl *Playlist) Insert(pr *Producer, where, in, out int) error {
	const op = "mlt.Playlist.Insert"
	ptr, err := pl.ptr(op)
	if err != nil {
		return err
	}
	pptr, err := pr.ptr(op)
	if err != nil {
		return err
	}
	if where < 0 {
		return native.NewError(op, native.ErrInvalidArgument,
			fmt.Sprintf("negative clip index %d", where))
	}
	st := pl.prof.fac.rt.PlaylistInsert(ptr, pptr, where, in, out)
	runtime.KeepAlive(pl)
	runtime.KeepAlive(pr)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Remove drops the clip at the given position.
func (pl *Playlist) Remove(where int) error {
	const op = "mlt.Playlist.Remove"
	ptr, err := pl.ptr(op)
	if err != nil {
		return err
	}
	st := pl.prof.fac.rt.PlaylistRemove(ptr, where)
	runtime.KeepAlive(pl)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Clear drops all clips.
func (pl *Playlist) Clear() error {
	const op = "mlt.Playlist.Clear"
	ptr, err := pl.ptr(op)
	if err != nil {
		return err
	}
	st := pl.prof.fac.rt.PlaylistClear(ptr)
	runtime.KeepAlive(pl)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Alive reports whether the playlist and its parent chain are active.
func (pl *Playlist) Alive() bool { return pl.h.Active() && pl.prof.Alive() }

// State returns the playlist's lifecycle state.
func (pl *Playlist) State() native.State { return pl.h.State() }

// Close frees the playlist. Idempotent. Clips stay owned by their own
// producers; closing the playlist does not close them.
func (pl *Playlist) Close() error {
	if pl == nil {
		return nil
	}
	ptr, ok := pl.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(pl, nil)
	if !pl.prof.Alive() {
		return nil
	}
	pl.prof.fac.rt.ClosePlaylist(ptr)
	return nil
}
