package flags_test

import (
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/temirov/repostatus/internal/utils/flags"
)

const (
	toggleTestFlagNameConstant        = "include-hidden"
	toggleTestFlagUsageConstant       = "Include hidden subdirectories."
	toggleTestSubtestTemplateConstant = "%d_%s"
)

func TestAddToggleFlagParsesLiterals(testInstance *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		expectedValue bool
		expectError   bool
	}{
		{name: "defaults_to_false", arguments: nil, expectedValue: false},
		{name: "bare_flag_enables", arguments: []string{"--include-hidden"}, expectedValue: true},
		{name: "yes_literal", arguments: []string{"--include-hidden=yes"}, expectedValue: true},
		{name: "on_literal", arguments: []string{"--include-hidden=on"}, expectedValue: true},
		{name: "numeric_true", arguments: []string{"--include-hidden=1"}, expectedValue: true},
		{name: "no_literal", arguments: []string{"--include-hidden=no"}, expectedValue: false},
		{name: "off_literal", arguments: []string{"--include-hidden=off"}, expectedValue: false},
		{name: "mixed_case", arguments: []string{"--include-hidden=YES"}, expectedValue: true},
		{name: "invalid_literal", arguments: []string{"--include-hidden=sometimes"}, expectError: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(toggleTestSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			flagSet := pflag.NewFlagSet(toggleTestFlagNameConstant, pflag.ContinueOnError)

			var toggleTarget bool
			flags.AddToggleFlag(flagSet, &toggleTarget, toggleTestFlagNameConstant, "", false, toggleTestFlagUsageConstant)

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(testInstance, parseError)
				return
			}

			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedValue, toggleTarget)
		})
	}
}

func TestToggleValueReadsCurrentState(testInstance *testing.T) {
	flagSet := pflag.NewFlagSet(toggleTestFlagNameConstant, pflag.ContinueOnError)

	var toggleTarget bool
	flags.AddToggleFlag(flagSet, &toggleTarget, toggleTestFlagNameConstant, "", false, toggleTestFlagUsageConstant)

	require.False(testInstance, flags.ToggleValue(flagSet, toggleTestFlagNameConstant, true))
	require.NoError(testInstance, flagSet.Parse([]string{"--include-hidden=yes"}))
	require.True(testInstance, flags.ToggleValue(flagSet, toggleTestFlagNameConstant, false))
	require.True(testInstance, flags.ToggleValue(flagSet, "missing-flag", true))
}

func TestAddToggleFlagHonorsDefaultTrue(testInstance *testing.T) {
	flagSet := pflag.NewFlagSet(toggleTestFlagNameConstant, pflag.ContinueOnError)

	var toggleTarget bool
	flags.AddToggleFlag(flagSet, &toggleTarget, toggleTestFlagNameConstant, "", true, toggleTestFlagUsageConstant)

	require.NoError(testInstance, flagSet.Parse(nil))
	require.True(testInstance, toggleTarget)

	require.NoError(testInstance, flagSet.Parse([]string{"--include-hidden=no"}))
	require.False(testInstance, toggleTarget)
}
