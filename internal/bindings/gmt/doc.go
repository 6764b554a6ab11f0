// Package gmt holds the cgo surface for the GMT (Generic Mapping Tools)
// C API. This package should ONLY be imported by pkg/gmt. All cgo complexity
// for GMT is isolated here; every native status code is converted to a
// native.Status before it leaves this package.
//
// A stub variant compiles when cgo is disabled (or on Windows) so that the
// public package and its tests build everywhere; stubbed calls report
// native.NotBuilt.
package gmt
