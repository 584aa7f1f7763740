// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates flags, RDSL_ environment variables and an optional YAML config
// file into the application's internal configuration.
package cli
