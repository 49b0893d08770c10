// Package cli constructs the runshell command-line interface, wiring the
// Cobra command hierarchy, configuration loader, structured logging and the
// execution library. It exposes helpers to build application instances and
// to translate execution errors into process exit codes.
package cli
