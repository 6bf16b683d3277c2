package artifacts

import "github.com/google/uuid"

// runIDs optionally scopes each namespace's artifact tree to a single run so
// repeated runs do not clobber each other's output.
var runIDs = map[string]string{}

// NewRunID returns a fresh UUID v4 suitable for SetRunID.
func NewRunID() string {
	return uuid.New().String()
}

// SetRunID nests all artifact directories for a namespace under the given
// run identifier. An empty id disables run scoping.
func SetRunID(namespace, id string) {
	runIDs[namespace] = id
}

// RunID returns the run identifier for a namespace, if one is set.
func RunID(namespace string) (string, bool) {
	id, ok := runIDs[namespace]
	return id, ok && id != ""
}
