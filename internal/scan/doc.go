// Package scan implements the concurrent repository status pipeline: candidate
// directory listing, bounded-parallel git inspection, index-keyed result
// aggregation, and order-stable colorized rendering.
package scan
