package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

// Settings is a file-backed key/value store standing in for the host's
// ini-file surface. Keys must be registered (via AddIni) before lookup;
// values are coerced to their registered ini kind on read.
type Settings struct {
	dir    string
	raw    []byte         // JSON document, queried with gjson
	values map[string]any // decoded YAML document
	kinds  map[string]options.IniKind
}

// NewSettings returns an empty store with no file loaded. Every lookup on it
// reports the key as absent.
func NewSettings() *Settings {
	return &Settings{kinds: make(map[string]options.IniKind)}
}

// AddIni records an ini key and its value kind. The registered default is
// ignored on purpose; the resolution chain owns fallbacks.
func (s *Settings) AddIni(key, help string, def any, kind options.IniKind) {
	s.kinds[key] = kind
}

// Load reads a settings file. JSON files are kept raw and queried lazily;
// YAML files are decoded into a flat map. Relative path values resolve
// against the file's directory.
func (s *Settings) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if !gjson.ValidBytes(data) {
			return fmt.Errorf("settings file %s: invalid JSON", path)
		}
		s.raw = data
		s.values = nil
	case ".yaml", ".yml":
		values := make(map[string]any)
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("settings file %s: %w", path, err)
		}
		s.values = values
		s.raw = nil
	default:
		return fmt.Errorf("settings file %s: unsupported extension", path)
	}

	s.dir = filepath.Dir(path)
	return nil
}

// Ini returns the coerced value for a registered key. Unregistered keys,
// missing keys, and values that fail kind coercion all return an error, which
// the resolution chain treats as "no value".
func (s *Settings) Ini(key string) (any, error) {
	kind, registered := s.kinds[key]
	if !registered {
		return nil, fmt.Errorf("ini key %q is not registered", key)
	}

	var value any
	switch {
	case s.raw != nil:
		res := gjson.GetBytes(s.raw, key)
		if !res.Exists() {
			return nil, fmt.Errorf("ini key %q not found", key)
		}
		value = res.Value()
	case s.values != nil:
		v, ok := s.values[key]
		if !ok {
			return nil, fmt.Errorf("ini key %q not found", key)
		}
		value = v
	default:
		return nil, fmt.Errorf("ini key %q: no settings file loaded", key)
	}

	return s.coerce(key, value, kind)
}

func (s *Settings) coerce(key string, value any, kind options.IniKind) (any, error) {
	switch kind {
	case options.IniNone:
		return value, nil

	case options.IniString:
		switch v := value.(type) {
		case string:
			return v, nil
		default:
			return fmt.Sprintf("%v", v), nil
		}

	case options.IniBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("ini key %q: %w", key, err)
			}
			return b, nil
		default:
			return nil, fmt.Errorf("ini key %q: cannot parse %T as bool", key, value)
		}

	case options.IniLineList:
		return s.stringList(key, value)

	case options.IniPaths:
		list, err := s.stringList(key, value)
		if err != nil {
			return nil, err
		}
		paths := make([]string, len(list))
		for i, p := range list {
			if !filepath.IsAbs(p) && s.dir != "" {
				p = filepath.Join(s.dir, p)
			}
			paths[i] = p
		}
		return paths, nil

	default:
		return value, nil
	}
}

func (s *Settings) stringList(key string, value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return options.SplitLines(v), nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("ini key %q: list contains non-string %T", key, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("ini key %q: cannot parse %T as list", key, value)
	}
}
