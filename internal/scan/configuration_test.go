package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultCommandConfiguration(testInstance *testing.T) {
	defaults := DefaultCommandConfiguration()

	require.Equal(testInstance, []string{"."}, defaults.Roots)
	require.Zero(testInstance, defaults.Timeout)
	require.True(testInstance, defaults.Untracked)
	require.False(testInstance, defaults.IncludeHidden)
	require.Zero(testInstance, defaults.MaxWorkers)
}

func TestDefaultConfigurationValuesUsePrefix(testInstance *testing.T) {
	values := DefaultConfigurationValues("tools.scan")

	require.Equal(testInstance, []string{"."}, values["tools.scan.roots"])
	require.Equal(testInstance, true, values["tools.scan.untracked"])
	require.Equal(testInstance, time.Duration(0), values["tools.scan.timeout"])
	require.Contains(testInstance, values, "tools.scan.include_hidden")
	require.Contains(testInstance, values, "tools.scan.max_workers")
	require.Contains(testInstance, values, "tools.scan.ignore")
	require.Contains(testInstance, values, "tools.scan.remotes")
	require.Contains(testInstance, values, "tools.scan.no_color")
}

func TestCommandConfigurationSanitize(testInstance *testing.T) {
	testCases := []struct {
		name          string
		configuration CommandConfiguration
		expected      CommandConfiguration
	}{
		{
			name:          "empty roots fall back to current directory",
			configuration: CommandConfiguration{Roots: []string{"  ", ""}},
			expected:      CommandConfiguration{Roots: []string{"."}, IgnoredNames: []string{}},
		},
		{
			name: "values are trimmed",
			configuration: CommandConfiguration{
				Roots:        []string{" ~/projects ", "/srv/repos"},
				IgnoredNames: []string{" node_modules ", ""},
			},
			expected: CommandConfiguration{
				Roots:        []string{"~/projects", "/srv/repos"},
				IgnoredNames: []string{"node_modules"},
			},
		},
		{
			name:          "negative limits reset to zero",
			configuration: CommandConfiguration{Roots: []string{"."}, MaxWorkers: -4, Timeout: -time.Second},
			expected:      CommandConfiguration{Roots: []string{"."}, IgnoredNames: []string{}},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, testCase.configuration.sanitize())
		})
	}
}
