package warn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnf_RoutesThroughHandler(t *testing.T) {
	var got []string
	prev := SetHandler(func(msg string) { got = append(got, msg) })
	defer SetHandler(prev)

	Warnf("bad value %q for %s", "x", "opt")

	assert.Equal(t, []string{`bad value "x" for opt`}, got)
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)

	// Default handler writes to stderr; just make sure it does not panic.
	Warnf("harmless")
}

func TestSetHandler_ReturnsPrevious(t *testing.T) {
	first := func(msg string) {}
	prev := SetHandler(first)
	defer SetHandler(prev)

	var called bool
	SetHandler(func(msg string) { called = true })
	Warnf("ping")
	assert.True(t, called)
}
