package native_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/nativekit/nativekit-go/pkg/native"
)

func ptrOf(b *byte) unsafe.Pointer { return unsafe.Pointer(b) }

func TestHandleLifecycle(t *testing.T) {
	var zero native.Handle
	require.Equal(t, native.StateUninitialized, zero.State())
	require.False(t, zero.Active())

	token := new(byte)
	h := native.Activate(ptrOf(token))
	require.Equal(t, native.StateActive, h.State())
	require.True(t, h.Active())

	got, err := h.Ptr("test.Op")
	require.NoError(t, err)
	require.Equal(t, ptrOf(token), got)

	released, ok := h.Release()
	require.True(t, ok)
	require.Equal(t, ptrOf(token), released)
	require.Equal(t, native.StateClosed, h.State())

	// Release yields the pointer exactly once.
	released, ok = h.Release()
	require.False(t, ok)
	require.Nil(t, released)

	_, err = h.Ptr("test.Op")
	require.ErrorIs(t, err, native.ErrInactiveHandle)
}

func TestFailedHandleIsTerminal(t *testing.T) {
	h := native.Failed()
	require.Equal(t, native.StateCreationFailed, h.State())
	require.False(t, h.Active())

	_, err := h.Ptr("test.Op")
	require.ErrorIs(t, err, native.ErrInactiveHandle)

	_, ok := h.Release()
	require.False(t, ok)
	require.Equal(t, native.StateCreationFailed, h.State())
}

func TestPtrNamesTheOperation(t *testing.T) {
	var h native.Handle
	_, err := h.Ptr("gmt.CallModule")

	var nerr *native.Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, "gmt.CallModule", nerr.Op)
	require.Equal(t, "uninitialized", nerr.Native)
}

func TestErrorTaxonomy(t *testing.T) {
	err := native.NewError("tess.Recognize", native.ErrNativeCall, "boom")
	require.ErrorIs(t, err, native.ErrNativeCall)
	require.False(t, errors.Is(err, native.ErrInactiveHandle))
	require.Equal(t, "tess.Recognize: native call failed: boom", err.Error())

	bare := native.NewError("tess.Recognize", native.ErrNativeCall, "")
	require.Equal(t, "tess.Recognize: native call failed", bare.Error())
}

func TestCallErrorCarriesNativeText(t *testing.T) {
	st := native.Status{Code: 71, Message: "grdcut: region exceeds grid"}
	err := native.CallError("gmt.CallModule", st)

	require.ErrorIs(t, err, native.ErrNativeCall)
	var nerr *native.Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, st.Message, nerr.Native)
}

func TestStatusFromCode(t *testing.T) {
	require.True(t, native.FromCode(0, "stale text").Ok())
	require.Empty(t, native.FromCode(0, "stale text").Message)

	st := native.FromCode(3, "bad input")
	require.False(t, st.Ok())
	require.Equal(t, "bad input", st.Message)

	require.True(t, native.NotBuilt.IsNotBuilt())
	require.False(t, native.NotBuilt.Ok())
}
