package options

import (
	"strings"

	"github.com/abdul-hamid-achik/plugopts/packages/warn"
)

// Resolve returns the value for an option using the declared type hint, if
// any. See ResolveAs for the precedence rules.
func (r *Registry) Resolve(namespace string, cfg Config, key string) any {
	return r.ResolveAs(namespace, cfg, key, KindNone)
}

// ResolveAs returns the value for an option, preferring the explicit hint
// over the declared one for casting.
//
// Sources are consulted in order and the first present value wins:
//
//  1. Runtime/CLI value from the host's parsed option store.
//  2. Ini-file value; a missing or malformed key counts as absent.
//  3. The declared default (first matching definition in the namespace).
//  4. Otherwise nil.
//
// When the explicit hint disagrees with the declared one, a single warning is
// emitted and the explicit hint wins. A failed cast warns and returns the raw
// value rather than failing the caller.
func (r *Registry) ResolveAs(namespace string, cfg Config, key string, hint Kind) any {
	normalized := strings.ReplaceAll(key, "-", "_")
	def, declared := r.lookup(namespace, normalized)

	if hint != KindNone && declared && def.Hint != KindNone && hint != def.Hint {
		warn.Warnf("type mismatch for option %q: requested %s, declared %s", key, hint, def.Hint)
	}

	val, ok := cfg.Option(normalized)
	if !ok || val == nil {
		val = nil
		if v, err := cfg.Ini(normalized); err == nil {
			val = v
		}
	}
	if val == nil && declared {
		val = def.Default
	}

	effective := hint
	if effective == KindNone && declared {
		effective = def.Hint
	}

	if val == nil || effective == KindNone {
		return val
	}

	cast, err := Cast(val, effective)
	if err != nil {
		warn.Warnf("failed to cast option %q: %v", key, err)
		return val
	}
	return cast
}

// Resolve resolves an option from the Default registry with its declared hint.
func Resolve(namespace string, cfg Config, key string) any {
	return Default.Resolve(namespace, cfg, key)
}

// ResolveAs resolves an option from the Default registry with an explicit hint.
func ResolveAs(namespace string, cfg Config, key string, hint Kind) any {
	return Default.ResolveAs(namespace, cfg, key, hint)
}
