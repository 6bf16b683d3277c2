package options

import (
	"fmt"
	"strconv"
	"strings"
)

// truthy is the set of strings a bool hint accepts as true. Anything else,
// including unrecognized strings, casts to false without error.
var truthy = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
	"on":   true,
}

// CastError reports a value that cannot be cast to its target hint. It is a
// plain tagged result: callers choose between failing fast and degrading to
// the raw value.
type CastError struct {
	Value any
	Hint  Kind
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot cast value of type %T to %s", e.Value, e.Hint)
}

// Cast converts a raw option value (usually a string from the CLI or an ini
// file) to the type its hint names. Values that already match the hint are
// returned unchanged, so casting is idempotent. A nil value or a KindNone
// hint passes through.
//
// On failure Cast returns the original value alongside a *CastError so the
// caller can warn and keep going.
func Cast(value any, hint Kind) (any, error) {
	if hint == KindNone || value == nil {
		return value, nil
	}

	switch hint {
	case KindBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			return truthy[strings.ToLower(v)], nil
		}

	case KindString, KindPath:
		if s, ok := value.(string); ok {
			return s, nil
		}

	case KindInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case float64:
			return int(v), nil
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return value, &CastError{Value: value, Hint: hint}
			}
			return n, nil
		}

	case KindFloat:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return value, &CastError{Value: value, Hint: hint}
			}
			return f, nil
		}

	case KindStringList, KindPathList:
		switch v := value.(type) {
		case []string:
			return v, nil
		case string:
			// Splitting a string into characters is never the intent, so
			// string input becomes one entry per non-empty trimmed line.
			return SplitLines(v), nil
		}
	}

	return value, &CastError{Value: value, Hint: hint}
}

// SplitLines splits a string on newlines, trims each line, and drops empty
// lines. This is the list form both the cast layer and ini linelist values
// share.
func SplitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
