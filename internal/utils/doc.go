// Package utils hosts shared infrastructure for the repostatus CLI: the Viper
// backed configuration loader, the zap logger factory, and helpers for values
// carried through command contexts.
package utils
