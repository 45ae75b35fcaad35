// Package ui translates shell command lifecycle events into human-readable
// diagnostics emitted through the application logger.
package ui
