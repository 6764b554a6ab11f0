package mlt

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Properties is a view over a service's native property table. The table is
// owned by its service; every access re-checks that the owner is still
// alive, so a stale view fails instead of touching freed memory.
type Properties struct {
	rt    Runtime
	owner interface{ Alive() bool }
	props unsafe.Pointer
}

func (p *Properties) check(op string) error {
	if !p.owner.Alive() {
		return native.NewError(op, native.ErrInactiveHandle, "property owner closed")
	}
	return nil
}

// Set writes a string property.
func (p *Properties) Set(name, value string) error {
	const op = "mlt.Properties.Set"
	if err := p.check(op); err != nil {
		return err
	}
	if st := p.rt.PropsSet(p.props, name, value); !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Get reads a string property; missing names read as empty.
func (p *Properties) Get(name string) (string, error) {
	if err := p.check("mlt.Properties.Get"); err != nil {
		return "", err
	}
	return p.rt.PropsGet(p.props, name), nil
}

// GetInt reads an int property.
func (p *Properties) GetInt(name string) (int, error) {
	if err := p.check("mlt.Properties.GetInt"); err != nil {
		return 0, err
	}
	return p.rt.PropsGetInt(p.props, name), nil
}

// GetDouble reads a double property.
func (p *Properties) GetDouble(name string) (float64, error) {
	if err := p.check("mlt.Properties.GetDouble"); err != nil {
		return 0, err
	}
	return p.rt.PropsGetDouble(p.props, name), nil
}
