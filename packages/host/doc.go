// Package host provides concrete adapters for the host-framework contract
// consumed by packages/options.
//
// A test framework embedding plugopts supplies three things: a parser that
// accepts flag and ini-key registrations, a resolved-configuration object
// exposing parsed CLI values and ini lookups, and a per-test item handle.
// This package implements all three on top of spf13/pflag and a JSON or YAML
// settings file, so plugins and the plugopts CLI have a working host without
// pulling in a full framework.
package host
