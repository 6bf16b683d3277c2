package options

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps a namespace (typically a plugin's unique identifier) to the
// ordered list of options declared under it. Populate once during startup,
// read for the rest of the process's life.
//
// Duplicate names within a namespace are allowed; resolution picks the first
// match in declaration order.
type Registry struct {
	defs map[string][]OptionDef
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string][]OptionDef)}
}

// Default is the process-wide registry used by the package-level helpers.
// Plugins in one process share it so the host sees a single option surface.
var Default = NewRegistry()

// DeclareOption customizes an option definition at declaration time.
type DeclareOption func(*OptionDef)

// WithDefault sets the fallback value used when neither the CLI nor the ini
// file supplies one.
func WithDefault(v any) DeclareOption {
	return func(d *OptionDef) {
		d.Default = v
	}
}

// WithHelp sets the user-facing help text.
func WithHelp(text string) DeclareOption {
	return func(d *OptionDef) {
		d.Help = text
	}
}

// WithExposure sets where the host exposes the option.
func WithExposure(e Exposure) DeclareOption {
	return func(d *OptionDef) {
		d.Exposure = e
	}
}

// WithHint sets the type hint used for ini-kind inference and casting.
func WithHint(k Kind) DeclareOption {
	return func(d *OptionDef) {
		d.Hint = k
	}
}

// inferIniKind maps a type hint to the host's ini value type. Hints with no
// structural ini representation (int, float, single path, none) stay
// undeclared; their raw string values are cast at resolution time instead.
func inferIniKind(k Kind) IniKind {
	switch k {
	case KindBool:
		return IniBool
	case KindString:
		return IniString
	case KindStringList:
		return IniLineList
	case KindPathList:
		return IniPaths
	default:
		return IniNone
	}
}

// Declare appends an option definition to the namespace. It never fails:
// duplicate names coexist and only the first is ever resolved.
func (r *Registry) Declare(namespace, name string, opts ...DeclareOption) {
	def := OptionDef{
		Name:     name,
		Exposure: ExposureInternal,
	}
	for _, opt := range opts {
		opt(&def)
	}
	def.IniKind = inferIniKind(def.Hint)
	r.defs[namespace] = append(r.defs[namespace], def)
}

// Options returns a copy of the definitions declared under a namespace, in
// declaration order.
func (r *Registry) Options(namespace string) []OptionDef {
	defs := r.defs[namespace]
	out := make([]OptionDef, len(defs))
	copy(out, defs)
	return out
}

// Namespaces returns all namespaces with at least one declared option, sorted.
func (r *Registry) Namespaces() []string {
	out := make([]string, 0, len(r.defs))
	for ns := range r.defs {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Reset drops every declared option. Intended for test isolation only.
func (r *Registry) Reset() {
	r.defs = make(map[string][]OptionDef)
}

// lookup returns the first definition matching name within the namespace.
func (r *Registry) lookup(namespace, name string) (OptionDef, bool) {
	for _, def := range r.defs[namespace] {
		if def.Name == name {
			return def, true
		}
	}
	return OptionDef{}, false
}

// RegisterWithHost registers a namespace's options onto the host parser. It
// must run once, before the host collects command-line and ini input.
//
// Flag names are the option name with underscores replaced by hyphens. Both
// the flag and the ini key are registered with a nil default so the
// resolution chain decides the fallback; the registered default would
// otherwise shadow ini values.
func (r *Registry) RegisterWithHost(namespace string, reg Registrar) {
	for _, def := range r.defs[namespace] {
		help := def.Help
		if def.Default != nil && def.Default != "" {
			help = fmt.Sprintf("%s (default: %v)", def.Help, def.Default)
		}

		if def.Exposure == ExposureAll || def.Exposure == ExposureCLI {
			flag := "--" + strings.ReplaceAll(def.Name, "_", "-")
			reg.AddOption(flag, nil, help)
		}

		if def.Exposure == ExposureAll || def.Exposure == ExposureIni {
			reg.AddIni(def.Name, def.Help, nil, def.IniKind)
		}
	}
}

// Declare adds an option to the Default registry.
func Declare(namespace, name string, opts ...DeclareOption) {
	Default.Declare(namespace, name, opts...)
}

// RegisterWithHost registers a namespace from the Default registry.
func RegisterWithHost(namespace string, reg Registrar) {
	Default.RegisterWithHost(namespace, reg)
}

// Reset clears the Default registry. Intended for test isolation only.
func Reset() {
	Default.Reset()
}
