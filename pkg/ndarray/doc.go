// Package ndarray bridges native flat memory and typed Go array views.
//
// Views come in two lifetime policies. Copy duplicates the native buffer into
// binding-owned memory and is always safe; it is the default everywhere a
// native library reclaims or rewrites its buffer on the next call. Borrow
// wraps the native pointer directly and carries an owner token — the wrapper
// that will eventually issue the native free. A borrowed view is valid
// exactly as long as its owner reports itself alive; using it afterwards is
// documented caller error, not a checked crash.
//
// Shape and element kind always come from native metadata (row/column counts,
// sample depth), never from a caller-supplied size, and element conversion is
// exact-width reinterpretation only.
package ndarray
