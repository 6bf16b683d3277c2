package host

import (
	"fmt"

	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

// Config combines runtime overrides, parsed flags, and settings-file values
// into the resolved-configuration object the resolution chain reads from.
type Config struct {
	overrides map[string]any
	flags     *Flags
	settings  *Settings
}

var _ options.Config = (*Config)(nil)

// NewConfig builds a Config over a flag set adapter and a settings store.
// Either may be nil when the host only has one surface.
func NewConfig(flags *Flags, settings *Settings) *Config {
	return &Config{
		overrides: make(map[string]any),
		flags:     flags,
		settings:  settings,
	}
}

// Set installs a runtime override, the equivalent of a plugin assigning onto
// the host's option store during its configure hook. Overrides win over
// parsed flags.
func (c *Config) Set(name string, value any) {
	c.overrides[normalize(name)] = value
}

// Option reports a runtime override or an explicitly set flag value.
func (c *Config) Option(name string) (any, bool) {
	key := normalize(name)
	if v, ok := c.overrides[key]; ok {
		return v, true
	}
	if c.flags != nil {
		return c.flags.Option(key)
	}
	return nil, false
}

// Ini looks up a registered ini key in the settings store.
func (c *Config) Ini(name string) (any, error) {
	if c.settings == nil {
		return nil, fmt.Errorf("ini key %q: no settings store", name)
	}
	return c.settings.Ini(normalize(name))
}
