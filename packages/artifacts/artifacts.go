package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/plugopts/packages/options"
)

// rootOptions records, per namespace, which registered option supplies the
// artifact root directory. Like the option registry it is process-wide state
// written during startup and read afterwards, with no locking.
var rootOptions = map[string]string{}

// SetRootOption nominates a declared option as the artifact root for a
// namespace. Must run before any directory lookup for that namespace; the
// last write wins.
func SetRootOption(namespace, optionName string) {
	rootOptions[namespace] = optionName
}

// RootOption returns the artifact root option for a namespace. Calling it
// before SetRootOption is a programming error and panics.
func RootOption(namespace string) string {
	name, ok := rootOptions[namespace]
	if !ok || name == "" {
		panic(fmt.Sprintf("artifacts: call SetRootOption(%q, ...) before resolving artifact directories", namespace))
	}
	return name
}

// Reset drops all root-option and run-id mappings. Intended for test
// isolation only.
func Reset() {
	rootOptions = map[string]string{}
	runIDs = map[string]string{}
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Sanitize turns an arbitrary test identifier into a directory name
// containing only [A-Za-z0-9-]. Every run of other characters collapses to a
// single hyphen and leading/trailing hyphens are trimmed. Empty or
// all-special input yields "unknown-test".
func Sanitize(text string) string {
	s := nonAlnum.ReplaceAllString(text, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "unknown-test"
	}
	return s
}

// TestDir returns the artifact directory for one test case, creating it and
// any missing parents. When a run ID is set for the namespace the directory
// nests under it. Creation is idempotent: concurrent callers sharing a
// sanitized name both succeed.
//
// Panics when the namespace has no root option or the root resolves to
// nothing; both are configuration mistakes that must surface immediately.
func TestDir(namespace string, cfg options.Config, testID string) (string, error) {
	name := RootOption(namespace)

	val := options.ResolveAs(namespace, cfg, name, options.KindPath)
	root, _ := val.(string)
	if root == "" {
		panic(fmt.Sprintf("artifacts: option %q resolved to no artifact root for namespace %q", name, namespace))
	}

	dir := root
	if id := runIDs[namespace]; id != "" {
		dir = filepath.Join(dir, id)
	}
	dir = filepath.Join(dir, Sanitize(testID))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact directory: %w", err)
	}
	return dir, nil
}

// Item is the per-test handle ItemDir reads; host.Item satisfies it.
type Item interface {
	NodeID() string
	Config() options.Config
}

// ItemDir is TestDir keyed by a test item instead of a bare identifier.
func ItemDir(namespace string, item Item) (string, error) {
	return TestDir(namespace, item.Config(), item.NodeID())
}
