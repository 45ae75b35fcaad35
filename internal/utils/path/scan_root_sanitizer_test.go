package pathutils_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/repostatus/internal/utils/path"
)

const (
	sanitizerSubtestTemplateConstant   = "%d_%s"
	firstScanDirectoryNameConstant     = "alpha"
	secondScanDirectoryNameConstant    = "beta"
	nestedScanDirectoryNameConstant    = "nested"
	homeRelativeDirectoryNameConstant  = "projects"
	whitespacePaddedArgumentTemplate   = "  %s  "
	duplicateRelativeArgumentConstant  = "alpha"
	sanitizerCaseDedupConstant         = "deduplicates_normalized_roots"
	sanitizerCaseBlankConstant         = "drops_blank_entries"
	sanitizerCaseNestedPruneConstant   = "prunes_nested_roots_when_configured"
	sanitizerCaseNestedRetainConstant  = "keeps_nested_roots_by_default"
	sanitizerCaseTildeExpandedConstant = "expands_home_shortcuts"
)

func TestScanRootSanitizerSanitize(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	firstDirectory := filepath.Join(temporaryDirectory, firstScanDirectoryNameConstant)
	secondDirectory := filepath.Join(temporaryDirectory, secondScanDirectoryNameConstant)
	nestedDirectory := filepath.Join(firstDirectory, nestedScanDirectoryNameConstant)
	require.NoError(testInstance, os.MkdirAll(nestedDirectory, 0o755))
	require.NoError(testInstance, os.MkdirAll(secondDirectory, 0o755))

	testInstance.Chdir(temporaryDirectory)

	testCases := []struct {
		name             string
		candidateRoots   []string
		pruneNestedRoots bool
		expectedRoots    []string
	}{
		{
			name:           sanitizerCaseDedupConstant,
			candidateRoots: []string{duplicateRelativeArgumentConstant, firstDirectory, secondDirectory, duplicateRelativeArgumentConstant},
			expectedRoots:  []string{firstDirectory, secondDirectory},
		},
		{
			name:           sanitizerCaseBlankConstant,
			candidateRoots: []string{"", "   ", fmt.Sprintf(whitespacePaddedArgumentTemplate, firstDirectory)},
			expectedRoots:  []string{firstDirectory},
		},
		{
			name:             sanitizerCaseNestedPruneConstant,
			candidateRoots:   []string{firstDirectory, nestedDirectory, secondDirectory},
			pruneNestedRoots: true,
			expectedRoots:    []string{firstDirectory, secondDirectory},
		},
		{
			name:           sanitizerCaseNestedRetainConstant,
			candidateRoots: []string{firstDirectory, nestedDirectory},
			expectedRoots:  []string{firstDirectory, nestedDirectory},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(sanitizerSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			sanitizer := pathutils.NewScanRootSanitizerWithConfiguration(nil, pathutils.ScanRootSanitizerConfiguration{
				PruneNestedRoots: testCase.pruneNestedRoots,
			})

			sanitizedRoots := sanitizer.Sanitize(testCase.candidateRoots)
			require.Equal(testInstance, testCase.expectedRoots, sanitizedRoots)
		})
	}
}

func TestScanRootSanitizerExpandsHomeShortcuts(testInstance *testing.T) {
	simulatedHomeDirectory := testInstance.TempDir()
	homeExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return simulatedHomeDirectory, nil
	})

	sanitizer := pathutils.NewScanRootSanitizerWithConfiguration(homeExpander, pathutils.ScanRootSanitizerConfiguration{})
	sanitizedRoots := sanitizer.Sanitize([]string{"~/" + homeRelativeDirectoryNameConstant})

	require.Equal(testInstance, []string{filepath.Join(simulatedHomeDirectory, homeRelativeDirectoryNameConstant)}, sanitizedRoots)
}
