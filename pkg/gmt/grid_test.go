package gmt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/ndarray"
)

func TestReadGridEndToEnd(t *testing.T) {
	f := newGridFake()
	s := newSession(t, f)
	defer func() { _ = s.Close() }()

	g, err := s.ReadGrid("relief.nc")
	require.NoError(t, err)
	defer func() { _ = g.Free() }()

	meta := g.Meta()
	require.Equal(t, 4, meta.Rows)
	require.Equal(t, 4, meta.Cols)

	arr, err := g.Values(ndarray.Copy)
	require.NoError(t, err)
	require.Equal(t, []int{4, 4}, arr.Shape())
	require.Equal(t, ndarray.Float32, arr.DType())

	vals, err := arr.Float32s()
	require.NoError(t, err)
	require.Equal(t, f.gridData, vals)
}

func TestGridValuesCopySurvivesNativeOverwrite(t *testing.T) {
	f := newGridFake()
	s := newSession(t, f)
	defer func() { _ = s.Close() }()

	g, err := s.ReadGrid("relief.nc")
	require.NoError(t, err)

	arr, err := g.Values(ndarray.Copy)
	require.NoError(t, err)

	// Simulate the native library reclaiming and rewriting its buffer.
	for i := range f.gridData {
		f.gridData[i] = -1
	}
	require.NoError(t, g.Free())

	vals, err := arr.Float32s()
	require.NoError(t, err)
	require.Equal(t, float32(0.5), vals[1])
	require.True(t, arr.Valid(), "copies stay valid after the native free")
}

func TestGridValuesBorrowTracksOwner(t *testing.T) {
	f := newGridFake()
	s := newSession(t, f)
	defer func() { _ = s.Close() }()

	g, err := s.ReadGrid("relief.nc")
	require.NoError(t, err)

	arr, err := g.Values(ndarray.Borrow)
	require.NoError(t, err)
	require.True(t, arr.Borrowed())
	require.True(t, arr.Valid())

	// Zero-copy: the view aliases the native buffer, so a native-side write
	// is visible through it while the owner lives.
	f.gridData[0] = 42
	vals, err := arr.Float32s()
	require.NoError(t, err)
	require.Equal(t, float32(42), vals[0])

	// The owner token is the grid; its close is the exact end of validity.
	require.NoError(t, g.Free())
	require.False(t, arr.Valid())
}

func TestGridUseAfterFree(t *testing.T) {
	f := newGridFake()
	s := newSession(t, f)
	defer func() { _ = s.Close() }()

	g, err := s.ReadGrid("relief.nc")
	require.NoError(t, err)
	require.NoError(t, g.Free())
	require.NoError(t, g.Free(), "Free is idempotent")
	require.Equal(t, 1, f.calls.freeGrid)

	_, err = g.Values(ndarray.Copy)
	require.ErrorIs(t, err, native.ErrInactiveHandle)
}

func TestGridUseAfterSessionClose(t *testing.T) {
	f := newGridFake()
	s := newSession(t, f)

	g, err := s.ReadGrid("relief.nc")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// The derived resource holds a back-reference, not ownership: with the
	// parent gone its operations fail the liveness check instead of
	// dereferencing through a dead session.
	_, err = g.Values(ndarray.Borrow)
	require.Error(t, err)
	if !errors.Is(err, native.ErrInactiveHandle) {
		t.Fatalf("want ErrInactiveHandle, got %v", err)
	}

	// Freeing after the session closed must not reach the native layer;
	// GMT reclaimed the grid with the session.
	require.NoError(t, g.Free())
	require.Zero(t, f.calls.freeGrid)
}

func TestReadGridFailure(t *testing.T) {
	f := newGridFake()
	f.failReadGrid = true
	f.readGridMsg = "grdread [ERROR]: relief.nc: No such file"
	s := newSession(t, f)
	defer func() { _ = s.Close() }()

	_, err := s.ReadGrid("relief.nc")
	require.ErrorIs(t, err, native.ErrNativeCall)

	var nerr *native.Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, f.readGridMsg, nerr.Native)
}
