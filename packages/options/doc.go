// Package options implements a namespaced registry of plugin configuration
// options with deterministic resolution.
//
// Plugins declare options once at startup, register them onto the host test
// framework's parser (CLI flags and ini-file keys), and later resolve values
// with a fixed precedence: runtime/CLI value > ini-file value > declared
// default. Raw string input from either source is cast to a typed value
// through a small closed set of type hints; a failed cast is reported as a
// non-fatal warning and the raw value is returned unchanged.
//
// The registry is process-wide mutable state with no internal locking.
// Declaration must complete before concurrent resolution begins; that
// happens-before contract is the caller's responsibility.
package options
