// Package commands defines the gtfsvalidator CLI.
//
// Commands
//
//   - validate   Validate a feed from a zip archive, a directory or a URL
//   - schema     Print the files and columns the validator checks
//   - runs       List validation runs stored in a report database
//
// The root command resolves configuration (environment, optional YAML file,
// then flags) and builds the logger before any subcommand runs.
package commands
