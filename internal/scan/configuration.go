package scan

import (
	"strings"
	"time"
)

const (
	rootsConfigurationKeyConstant         = "roots"
	includeHiddenConfigurationKeyConstant = "include_hidden"
	ignoreConfigurationKeyConstant        = "ignore"
	maxWorkersConfigurationKeyConstant    = "max_workers"
	timeoutConfigurationKeyConstant       = "timeout"
	untrackedConfigurationKeyConstant     = "untracked"
	remotesConfigurationKeyConstant       = "remotes"
	noColorConfigurationKeyConstant       = "no_color"
	defaultRootConstant                   = "."
)

// CommandConfiguration captures configurable scan defaults.
type CommandConfiguration struct {
	Roots         []string      `mapstructure:"roots"`
	IncludeHidden bool          `mapstructure:"include_hidden"`
	IgnoredNames  []string      `mapstructure:"ignore"`
	MaxWorkers    int           `mapstructure:"max_workers"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Untracked     bool          `mapstructure:"untracked"`
	Remotes       bool          `mapstructure:"remotes"`
	NoColor       bool          `mapstructure:"no_color"`
}

// DefaultCommandConfiguration returns the built-in scan defaults.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots:     []string{defaultRootConstant},
		Untracked: true,
	}
}

// DefaultConfigurationValues maps scan defaults onto configuration keys under
// the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationPrefix + "." + rootsConfigurationKeyConstant:         defaults.Roots,
		configurationPrefix + "." + includeHiddenConfigurationKeyConstant: defaults.IncludeHidden,
		configurationPrefix + "." + ignoreConfigurationKeyConstant:        defaults.IgnoredNames,
		configurationPrefix + "." + maxWorkersConfigurationKeyConstant:    defaults.MaxWorkers,
		configurationPrefix + "." + timeoutConfigurationKeyConstant:       defaults.Timeout,
		configurationPrefix + "." + untrackedConfigurationKeyConstant:     defaults.Untracked,
		configurationPrefix + "." + remotesConfigurationKeyConstant:       defaults.Remotes,
		configurationPrefix + "." + noColorConfigurationKeyConstant:       defaults.NoColor,
	}
}

func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Roots = sanitizeStringList(configuration.Roots)
	if len(sanitized.Roots) == 0 {
		sanitized.Roots = []string{defaultRootConstant}
	}
	sanitized.IgnoredNames = sanitizeStringList(configuration.IgnoredNames)
	if sanitized.MaxWorkers < 0 {
		sanitized.MaxWorkers = 0
	}
	if sanitized.Timeout < 0 {
		sanitized.Timeout = 0
	}
	return sanitized
}

func sanitizeStringList(values []string) []string {
	sanitized := make([]string, 0, len(values))
	for _, value := range values {
		trimmedValue := strings.TrimSpace(value)
		if trimmedValue == "" {
			continue
		}
		sanitized = append(sanitized, trimmedValue)
	}
	return sanitized
}
