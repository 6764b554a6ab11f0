package gmt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nativekit/nativekit-go/pkg/gmt"
	"github.com/nativekit/nativekit-go/pkg/native"
)

func newSession(t *testing.T, f *fakeRuntime) *gmt.Session {
	t.Helper()
	s, err := gmt.NewSessionWithRuntime(f, gmt.Config{Tag: "test"})
	if err != nil {
		t.Fatalf("NewSessionWithRuntime: %v", err)
	}
	return s
}

func TestNewSessionCreateFailure(t *testing.T) {
	f := &fakeRuntime{failCreate: true, createMsg: "GMT_Create_Session returned NULL"}

	s, err := gmt.NewSessionWithRuntime(f, gmt.Config{})
	if s != nil {
		t.Fatalf("expected nil session, got %v", s)
	}
	if !errors.Is(err, native.ErrHandleCreation) {
		t.Fatalf("want ErrHandleCreation, got %v", err)
	}
	if !strings.Contains(err.Error(), f.createMsg) {
		t.Fatalf("native diagnostic missing from %q", err.Error())
	}
	// No handle was created, so no destructor may run.
	if f.calls.destroy != 0 {
		t.Fatalf("destroy called %d times after failed create", f.calls.destroy)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	f := &fakeRuntime{}
	s := newSession(t, f)

	if err := s.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if f.calls.destroy != 1 {
		t.Fatalf("native destructor ran %d times, want 1", f.calls.destroy)
	}
	if got := s.State(); got != native.StateClosed {
		t.Fatalf("state after close = %v, want closed", got)
	}
}

func TestOperationsAfterCloseFailWithoutNativeCalls(t *testing.T) {
	f := newGridFake()
	s := newSession(t, f)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Each operation must fail with ErrInactiveHandle before reaching the
	// fake, which would panic on a destroyed handle.
	if _, err := s.Info(); !errors.Is(err, native.ErrInactiveHandle) {
		t.Fatalf("Info after close: %v", err)
	}
	if err := s.CallModule("grdinfo", "in.nc"); !errors.Is(err, native.ErrInactiveHandle) {
		t.Fatalf("CallModule after close: %v", err)
	}
	if _, err := s.ReadGrid("in.nc"); !errors.Is(err, native.ErrInactiveHandle) {
		t.Fatalf("ReadGrid after close: %v", err)
	}
	if f.calls.version+f.calls.callModule+f.calls.readGrid != 0 {
		t.Fatalf("native layer reached after close: %+v", f.calls)
	}
}

func TestSessionInfo(t *testing.T) {
	f := &fakeRuntime{}
	s := newSession(t, f)
	defer func() { _ = s.Close() }()

	info, err := s.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info["gmt_version"] != "6.5.0" {
		t.Fatalf("gmt_version = %q", info["gmt_version"])
	}
	if info["gmt_version_major"] != "6" {
		t.Fatalf("gmt_version_major = %q", info["gmt_version_major"])
	}
}

func TestFailedOperationDoesNotChangeLiveness(t *testing.T) {
	f := &fakeRuntime{failModule: "grdcut", moduleErrText: "grdcut: no input"}
	s := newSession(t, f)
	defer func() { _ = s.Close() }()

	if err := s.CallModule("grdcut", "in.nc"); err == nil {
		t.Fatal("expected module failure")
	}
	if !s.Alive() {
		t.Fatal("failed operation changed liveness state")
	}
	// The session still works after the failure.
	if err := s.CallModule("grdinfo", "in.nc"); err != nil {
		t.Fatalf("CallModule after failure: %v", err)
	}
}
