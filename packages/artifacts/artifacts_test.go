package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

// fakeConfig is an empty host configuration: every lookup falls through to
// the registered default.
type fakeConfig struct {
	opts map[string]any
}

func (c *fakeConfig) Option(name string) (any, bool) {
	v, ok := c.opts[name]
	return v, ok
}

func (c *fakeConfig) Ini(name string) (any, error) {
	return nil, fmt.Errorf("no ini value for %q", name)
}

func reset(t *testing.T) {
	t.Helper()
	options.Reset()
	Reset()
	t.Cleanup(func() {
		options.Reset()
		Reset()
	})
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"test_file.py::TestClass::test_method[param-value]", "test-file-py-TestClass-test-method-param-value"},
		{"mod.py::test_x[1]", "mod-py-test-x-1"},
		{"a::b", "a-b"},
		{"a/b", "a-b"},
		{"plain", "plain"},
		{"  spaced out  ", "spaced-out"},
		{"", "unknown-test"},
		{":::[[[]]]", "unknown-test"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitize_OutputAlwaysSafe(t *testing.T) {
	safe := regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	inputs := []string{
		"test.go::TestThing/sub_case",
		"päth/with/ünicode",
		"a--b---c",
		"[]{}()!@#$%^&*",
		strings.Repeat("::", 50),
		"trailing-",
		"-leading",
	}

	for _, in := range inputs {
		out := Sanitize(in)
		assert.Regexp(t, safe, out)
		assert.False(t, strings.HasPrefix(out, "-"), "no leading hyphen in %q", out)
		assert.False(t, strings.HasSuffix(out, "-"), "no trailing hyphen in %q", out)
		assert.NotContains(t, out, "--", "no consecutive hyphens in %q", out)
	}
}

func TestRootOption_SetAndGet(t *testing.T) {
	reset(t)

	SetRootOption("pluginA", "custom_option_name")
	assert.Equal(t, "custom_option_name", RootOption("pluginA"))
}

func TestRootOption_LastWriteWins(t *testing.T) {
	reset(t)

	SetRootOption("pluginA", "first")
	SetRootOption("pluginA", "second")
	assert.Equal(t, "second", RootOption("pluginA"))
}

func TestRootOption_PanicsWhenUnset(t *testing.T) {
	reset(t)

	assert.PanicsWithValue(t,
		`artifacts: call SetRootOption("pluginA", ...) before resolving artifact directories`,
		func() { RootOption("pluginA") },
	)
}

func TestTestDir_EndToEnd(t *testing.T) {
	reset(t)

	root := filepath.Join(t.TempDir(), "out")
	options.Declare("pluginA", "output_dir",
		options.WithDefault(root),
		options.WithHint(options.KindPath),
	)
	SetRootOption("pluginA", "output_dir")

	cfg := &fakeConfig{opts: map[string]any{}}
	dir, err := TestDir("pluginA", cfg, "mod.py::test_x[1]")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "mod-py-test-x-1"), dir)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestTestDir_RuntimeOverrideWinsOverDefault(t *testing.T) {
	reset(t)

	override := filepath.Join(t.TempDir(), "override")
	options.Declare("pluginA", "output_dir",
		options.WithDefault("/never/used"),
		options.WithHint(options.KindPath),
	)
	SetRootOption("pluginA", "output_dir")

	cfg := &fakeConfig{opts: map[string]any{"output_dir": override}}
	dir, err := TestDir("pluginA", cfg, "test")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(override, "test"), dir)
}

func TestTestDir_PanicsWithoutRootOption(t *testing.T) {
	reset(t)

	cfg := &fakeConfig{opts: map[string]any{}}
	assert.Panics(t, func() {
		_, _ = TestDir("pluginA", cfg, "test")
	})
}

func TestTestDir_PanicsOnEmptyRoot(t *testing.T) {
	reset(t)

	options.Declare("pluginA", "output_dir", options.WithHint(options.KindPath))
	SetRootOption("pluginA", "output_dir")

	cfg := &fakeConfig{opts: map[string]any{}}
	assert.Panics(t, func() {
		_, _ = TestDir("pluginA", cfg, "test")
	})
}

func TestTestDir_Idempotent(t *testing.T) {
	reset(t)

	options.Declare("pluginA", "output_dir",
		options.WithDefault(t.TempDir()),
		options.WithHint(options.KindPath),
	)
	SetRootOption("pluginA", "output_dir")

	cfg := &fakeConfig{opts: map[string]any{}}
	first, err := TestDir("pluginA", cfg, "same::test")
	require.NoError(t, err)
	second, err := TestDir("pluginA", cfg, "same::test")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTestDir_ConcurrentCallersShareDirectory(t *testing.T) {
	reset(t)

	options.Declare("pluginA", "output_dir",
		options.WithDefault(t.TempDir()),
		options.WithHint(options.KindPath),
	)
	SetRootOption("pluginA", "output_dir")

	cfg := &fakeConfig{opts: map[string]any{}}

	// Distinct identifiers can collide after sanitization; creation must
	// treat "already exists" as success.
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "a::b"
			if i%2 == 0 {
				id = "a/b"
			}
			_, errs[i] = TestDir("pluginA", cfg, id)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestTestDir_RunScoped(t *testing.T) {
	reset(t)

	root := t.TempDir()
	options.Declare("pluginA", "output_dir",
		options.WithDefault(root),
		options.WithHint(options.KindPath),
	)
	SetRootOption("pluginA", "output_dir")
	SetRunID("pluginA", "run-123")

	cfg := &fakeConfig{opts: map[string]any{}}
	dir, err := TestDir("pluginA", cfg, "mod::test")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "run-123", "mod-test"), dir)
}

func TestRunID_Lifecycle(t *testing.T) {
	reset(t)

	_, ok := RunID("pluginA")
	assert.False(t, ok)

	id := NewRunID()
	assert.NotEmpty(t, id)

	SetRunID("pluginA", id)
	got, ok := RunID("pluginA")
	require.True(t, ok)
	assert.Equal(t, id, got)

	SetRunID("pluginA", "")
	_, ok = RunID("pluginA")
	assert.False(t, ok, "empty id disables run scoping")
}
