package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repostatus/internal/utils"
)

func TestCommandContextAccessorRoundTripsConfigurationFilePath(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	enrichedContext := accessor.WithConfigurationFilePath(context.Background(), "/etc/repostatus/config.yaml")
	configurationFilePath, configurationFilePathAvailable := accessor.ConfigurationFilePath(enrichedContext)

	require.True(testInstance, configurationFilePathAvailable)
	require.Equal(testInstance, "/etc/repostatus/config.yaml", configurationFilePath)
}

func TestCommandContextAccessorReportsMissingConfigurationFilePath(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	testCases := []struct {
		name             string
		executionContext context.Context
	}{
		{name: "nil_context", executionContext: nil},
		{name: "context_without_value", executionContext: context.Background()},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			configurationFilePath, configurationFilePathAvailable := accessor.ConfigurationFilePath(testCase.executionContext)
			require.False(subtestInstance, configurationFilePathAvailable)
			require.Empty(subtestInstance, configurationFilePath)
		})
	}
}
