// Package cli wires configuration loading, logging, and the scan command into
// the repostatus root command.
package cli
