package scan

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

const (
	hiddenEntryPrefixConstant        = "."
	scanErrorMessageTemplateConstant = "cannot scan %s: %v"
)

// CandidatePath identifies an immediate subdirectory awaiting inspection.
//
// Index records the zero-based position in the captured listing order and is
// immutable once assigned.
type CandidatePath struct {
	Name  string
	Path  string
	Index int
}

// ScanError reports a root directory that could not be enumerated. It is fatal
// for the whole run.
type ScanError struct {
	Root  string
	Cause error
}

// Error describes the failed root enumeration.
func (scanError ScanError) Error() string {
	return fmt.Sprintf(scanErrorMessageTemplateConstant, scanError.Root, scanError.Cause)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As inspection.
func (scanError ScanError) Unwrap() error {
	return scanError.Cause
}

// ListOptions controls candidate enumeration.
type ListOptions struct {
	IncludeHidden bool
	IgnoredNames  []string
}

// DirectoryListing abstracts the filesystem call used to enumerate a root.
type DirectoryListing func(rootPath string) ([]DirectoryEntry, error)

// DirectoryEntry is the minimal view of a filesystem entry the lister needs.
type DirectoryEntry struct {
	Name        string
	IsDirectory bool
}

// DirectoryLister enumerates immediate subdirectories of scan roots.
//
// The enumeration order is captured exactly once per run: entries are sorted
// case-insensitively by name within each root, and roots keep the order in
// which they were supplied.
type DirectoryLister struct {
	listDirectory DirectoryListing
}

// NewDirectoryLister constructs a DirectoryLister backed by the operating system.
func NewDirectoryLister() *DirectoryLister {
	return NewDirectoryListerWithListing(osDirectoryListing)
}

// NewDirectoryListerWithListing constructs a DirectoryLister with a custom enumeration function.
func NewDirectoryListerWithListing(listing DirectoryListing) *DirectoryLister {
	if listing == nil {
		listing = osDirectoryListing
	}
	return &DirectoryLister{listDirectory: listing}
}

// ListCandidates enumerates candidate directories across the provided roots.
//
// A root that cannot be enumerated aborts the listing with a ScanError.
func (lister *DirectoryLister) ListCandidates(rootPaths []string, options ListOptions) ([]CandidatePath, error) {
	ignoredNameSet := make(map[string]struct{}, len(options.IgnoredNames))
	for _, ignoredName := range options.IgnoredNames {
		trimmedName := strings.TrimSpace(ignoredName)
		if len(trimmedName) > 0 {
			ignoredNameSet[trimmedName] = struct{}{}
		}
	}

	var candidates []CandidatePath
	for _, rootPath := range rootPaths {
		directoryEntries, listingError := lister.listDirectory(rootPath)
		if listingError != nil {
			return nil, ScanError{Root: rootPath, Cause: listingError}
		}

		rootCandidateNames := make([]string, 0, len(directoryEntries))
		for _, directoryEntry := range directoryEntries {
			if !directoryEntry.IsDirectory {
				continue
			}
			if !options.IncludeHidden && strings.HasPrefix(directoryEntry.Name, hiddenEntryPrefixConstant) {
				continue
			}
			if _, isIgnored := ignoredNameSet[directoryEntry.Name]; isIgnored {
				continue
			}
			rootCandidateNames = append(rootCandidateNames, directoryEntry.Name)
		}

		sort.SliceStable(rootCandidateNames, func(first int, second int) bool {
			return strings.ToLower(rootCandidateNames[first]) < strings.ToLower(rootCandidateNames[second])
		})

		for _, candidateName := range rootCandidateNames {
			candidates = append(candidates, CandidatePath{
				Name:  candidateName,
				Path:  filepath.Join(rootPath, candidateName),
				Index: len(candidates),
			})
		}
	}

	return candidates, nil
}
