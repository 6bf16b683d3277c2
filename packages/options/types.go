package options

// Kind is a type hint for an option value. It drives both ini-kind inference
// at declaration time and casting at resolution time.
type Kind int

const (
	// KindNone declares no type hint; values pass through resolution uncast.
	KindNone Kind = iota
	KindBool
	KindString
	KindInt
	KindFloat
	// KindPath is a single filesystem path. Cast like a string; its ini kind
	// stays undeclared so the host hands back the raw value.
	KindPath
	// KindStringList is a list of strings; string input splits on newlines.
	KindStringList
	// KindPathList is a list of filesystem paths.
	KindPathList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindPath:
		return "path"
	case KindStringList:
		return "stringlist"
	case KindPathList:
		return "pathlist"
	default:
		return "none"
	}
}

// IniKind is the structural value type registered with the host for an
// ini-file key. Empty means no ini type is declared and the host returns the
// raw value for later casting.
type IniKind string

const (
	IniNone     IniKind = ""
	IniString   IniKind = "string"
	IniBool     IniKind = "bool"
	IniLineList IniKind = "linelist"
	IniPaths    IniKind = "paths"
)

// Exposure controls which host-level entries are created for an option.
type Exposure string

const (
	// ExposureInternal registers nothing with the host; the option is set and
	// read purely through code.
	ExposureInternal Exposure = "internal"
	// ExposureCLI registers a command-line flag only.
	ExposureCLI Exposure = "cli"
	// ExposureIni registers an ini-file key only.
	ExposureIni Exposure = "ini"
	// ExposureAll registers both a flag and an ini key.
	ExposureAll Exposure = "all"
)

// OptionDef describes one configuration option a plugin exposes to the host.
// Definitions are immutable once declared; IniKind is computed from Hint at
// declaration time and never re-derived.
type OptionDef struct {
	Name     string
	Default  any
	Help     string
	Exposure Exposure
	Hint     Kind
	IniKind  IniKind
}

// Registrar is the registration half of the host contract. The host's parser
// accepts long-form flags and ini keys; registered defaults are deliberately
// nil so the resolution chain, not the host, decides the fallback.
type Registrar interface {
	AddOption(flag string, def any, help string)
	AddIni(key, help string, def any, kind IniKind)
}

// Config is the read half of the host contract.
//
// Option reports a parsed CLI or runtime value; ok is false when the option
// was never set, which keeps "not set" distinct from "set to empty". Ini
// returns an error for a missing or malformed key; resolution treats that as
// "no value" and continues down the chain.
type Config interface {
	Option(name string) (value any, ok bool)
	Ini(name string) (any, error)
}
