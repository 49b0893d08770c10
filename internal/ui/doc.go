// Package ui renders child process lifecycle events as concise console messages.
//
// Detailed telemetry keeps flowing through the structured logger attached to
// each command builder; this package only covers the human-facing summary.
package ui
