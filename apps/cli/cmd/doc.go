// Package cmd implements the plugopts CLI commands using Cobra.
//
// Available commands:
//   - list: Display every option declared in the registry
//   - resolve: Resolve one option through the precedence chain
//   - sanitize: Print the artifact-safe form of a test identifier
//   - dir: Create and print the artifact directory for a test identifier
//   - version: Show plugopts version information
//
// The CLI dogfoods the library: its own options are declared through the
// registry, registered onto the cobra flag set via the host adapters, and
// resolved with the same runtime > settings-file > default chain plugins use.
package cmd
