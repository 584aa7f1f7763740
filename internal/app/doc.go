// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the two-phase lifecycle: scripts configure
// the project, then a task reads the result. It is decoupled from any
// specific entrypoint like a CLI.
package app
