package host

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

// normalize folds a flag-style name into the registry's underscore form.
func normalize(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// Flags adapts a pflag.FlagSet to the CLI half of the host contract. All
// option flags are registered as strings; typed casting happens later in the
// resolution chain, which matches how raw CLI input flows through a host
// framework's parser.
type Flags struct {
	fs    *pflag.FlagSet
	names map[string]string // normalized option name -> flag name
}

// NewFlags wraps an existing flag set.
func NewFlags(fs *pflag.FlagSet) *Flags {
	return &Flags{
		fs:    fs,
		names: make(map[string]string),
	}
}

// AddOption registers a long-form flag. The stored default stays empty: a
// flag the user never set reports as absent, not as "".
func (f *Flags) AddOption(flag string, def any, help string) {
	name := strings.TrimPrefix(flag, "--")
	if f.fs.Lookup(name) == nil {
		f.fs.String(name, "", help)
	}
	f.names[normalize(name)] = name
}

// Option reports the raw string value of a flag the user explicitly set.
// Unset flags are absent, which keeps "not set" distinct from "set to empty".
func (f *Flags) Option(name string) (any, bool) {
	flagName, ok := f.names[normalize(name)]
	if !ok {
		flagName = strings.ReplaceAll(normalize(name), "_", "-")
	}
	fl := f.fs.Lookup(flagName)
	if fl == nil || !fl.Changed {
		return nil, false
	}
	return fl.Value.String(), true
}

// Parser fans option registrations out to the flag set and the settings
// store, mirroring a host parser that owns both surfaces.
type Parser struct {
	Flags    *Flags
	Settings *Settings
}

var _ options.Registrar = (*Parser)(nil)

func (p *Parser) AddOption(flag string, def any, help string) {
	p.Flags.AddOption(flag, def, help)
}

func (p *Parser) AddIni(key, help string, def any, kind options.IniKind) {
	p.Settings.AddIni(key, help, def, kind)
}
