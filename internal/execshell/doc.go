// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec behind ShellExecutor, exposes OSCommandRunner for default
// process execution, and defines the abstractions used by repostatus to run
// git in a testable manner.
package execshell
