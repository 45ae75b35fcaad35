package pathutils

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanRootSanitizerConfiguration controls scan root sanitization behavior.
type ScanRootSanitizerConfiguration struct {
	// PruneNestedRoots removes roots that are nested within other provided roots.
	PruneNestedRoots bool
}

// ScanRootSanitizer normalizes scan root inputs consistently across commands.
//
// Inputs are trimmed, tilde expanded, made absolute, and deduplicated while
// preserving the order in which they were first supplied.
type ScanRootSanitizer struct {
	homeExpander  *HomeExpander
	configuration ScanRootSanitizerConfiguration
}

// NewScanRootSanitizer constructs a ScanRootSanitizer with default behavior.
func NewScanRootSanitizer() *ScanRootSanitizer {
	return NewScanRootSanitizerWithConfiguration(nil, ScanRootSanitizerConfiguration{})
}

// NewScanRootSanitizerWithConfiguration constructs a ScanRootSanitizer using the provided expander and configuration.
func NewScanRootSanitizerWithConfiguration(homeExpander *HomeExpander, configuration ScanRootSanitizerConfiguration) *ScanRootSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}

	return &ScanRootSanitizer{
		homeExpander:  resolvedExpander,
		configuration: configuration,
	}
}

// Sanitize normalizes the candidate roots and removes duplicates.
func (sanitizer *ScanRootSanitizer) Sanitize(candidateRoots []string) []string {
	expander := NewHomeExpander()
	configuration := ScanRootSanitizerConfiguration{}
	if sanitizer != nil {
		expander = sanitizer.homeExpander
		configuration = sanitizer.configuration
	}

	type sanitizedRoot struct {
		value      string
		comparison string
	}

	sanitizedRoots := make([]sanitizedRoot, 0, len(candidateRoots))
	seenRoots := make(map[string]struct{}, len(candidateRoots))
	for candidateIndex := range candidateRoots {
		trimmedCandidate := strings.TrimSpace(candidateRoots[candidateIndex])
		if len(trimmedCandidate) == 0 {
			continue
		}

		absoluteCandidate := canonicalizeRoot(expander.Expand(trimmedCandidate))
		comparisonCandidate := comparisonRoot(absoluteCandidate)
		if _, alreadySeen := seenRoots[comparisonCandidate]; alreadySeen {
			continue
		}
		seenRoots[comparisonCandidate] = struct{}{}
		sanitizedRoots = append(sanitizedRoots, sanitizedRoot{value: absoluteCandidate, comparison: comparisonCandidate})
	}

	if len(sanitizedRoots) == 0 {
		return nil
	}

	if configuration.PruneNestedRoots {
		prunedRoots := make([]sanitizedRoot, 0, len(sanitizedRoots))
		for _, candidate := range sanitizedRoots {
			nested := false
			for _, other := range sanitizedRoots {
				if other.comparison == candidate.comparison {
					continue
				}
				if isNestedRoot(other.comparison, candidate.comparison) {
					nested = true
					break
				}
			}
			if !nested {
				prunedRoots = append(prunedRoots, candidate)
			}
		}
		sanitizedRoots = prunedRoots
	}

	normalizedRoots := make([]string, 0, len(sanitizedRoots))
	for _, candidate := range sanitizedRoots {
		normalizedRoots = append(normalizedRoots, candidate.value)
	}
	return normalizedRoots
}

func canonicalizeRoot(candidateRoot string) string {
	cleanedRoot := filepath.Clean(candidateRoot)
	absoluteRoot, absoluteError := filepath.Abs(cleanedRoot)
	if absoluteError != nil {
		return cleanedRoot
	}
	return filepath.Clean(absoluteRoot)
}

func comparisonRoot(candidateRoot string) string {
	return filepath.Clean(candidateRoot)
}

func isNestedRoot(parentRoot string, candidateRoot string) bool {
	if len(candidateRoot) <= len(parentRoot) {
		return false
	}
	if !strings.HasPrefix(candidateRoot, parentRoot) {
		return false
	}
	if parentRoot[len(parentRoot)-1] == os.PathSeparator {
		return true
	}
	return candidateRoot[len(parentRoot)] == os.PathSeparator
}
