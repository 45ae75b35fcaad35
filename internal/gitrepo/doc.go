// Package gitrepo exposes repository-level git operations used by the scanner:
// work-tree detection, current branch resolution, working tree cleanliness,
// upstream lookup, and remote URL parsing.
package gitrepo
