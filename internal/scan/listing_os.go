package scan

import "os"

// osDirectoryListing enumerates a directory using the operating system.
//
// Symbolic links are reported as non-directories so linked trees are never
// scanned through.
func osDirectoryListing(rootPath string) ([]DirectoryEntry, error) {
	directoryEntries, readError := os.ReadDir(rootPath)
	if readError != nil {
		return nil, readError
	}

	entries := make([]DirectoryEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entries = append(entries, DirectoryEntry{
			Name:        directoryEntry.Name(),
			IsDirectory: directoryEntry.IsDir(),
		})
	}
	return entries, nil
}
