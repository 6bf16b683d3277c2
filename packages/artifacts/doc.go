// Package artifacts maps test cases to sanitized, namespaced artifact
// directories.
//
// Each plugin namespace nominates one registered option as its artifact root
// directory. Given a test identifier, the package derives a filesystem-safe
// subdirectory name, creates it, and returns the path. Sanitized names are
// collision-tolerant but not collision-free: "a::b" and "a/b" both become
// "a-b".
//
// Calling into this package before SetRootOption, or with a root option that
// resolves to nothing, is a plugin author's mistake and panics rather than
// returning a sentinel.
package artifacts
