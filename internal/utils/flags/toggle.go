// Package flags provides pflag helpers shared by repostatus commands.
package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue               = "true"
	toggleFalseCanonicalValue              = "false"
	toggleParseErrorTemplateConstant       = "invalid toggle value %q"
	toggleValueTypeNameConstant            = "toggle"
	toggleArgumentTruePlaceholderConstant  = "<YES|no>"
	toggleArgumentFalsePlaceholderConstant = "<yes|NO>"
	toggleUsageTemplateConstant            = "`%s` %s"
	toggleUsageBareTemplateConstant        = "`%s`"
)

var trueToggleLiterals = map[string]struct{}{
	toggleTrueCanonicalValue: {},
	"yes":                    {},
	"on":                     {},
	"1":                      {},
	"t":                      {},
	"y":                      {},
}

var falseToggleLiterals = map[string]struct{}{
	toggleFalseCanonicalValue: {},
	"no":                      {},
	"off":                     {},
	"0":                       {},
	"f":                       {},
	"n":                       {},
}

// toggleFlagValue adapts a boolean target to pflag.Value with yes/no literals.
type toggleFlagValue struct {
	target *bool
}

func newToggleFlagValue(defaultValue bool, target *bool) *toggleFlagValue {
	if target == nil {
		target = new(bool)
	}
	*target = defaultValue
	return &toggleFlagValue{target: target}
}

// String reports the canonical true/false representation of the current value.
func (value *toggleFlagValue) String() string {
	if value == nil || value.target == nil || !*value.target {
		return toggleFalseCanonicalValue
	}
	return toggleTrueCanonicalValue
}

// Set parses yes/no style literals into the boolean target.
func (value *toggleFlagValue) Set(rawValue string) error {
	loweredValue := strings.ToLower(strings.TrimSpace(rawValue))
	if _, isTrue := trueToggleLiterals[loweredValue]; isTrue {
		*value.target = true
		return nil
	}
	if _, isFalse := falseToggleLiterals[loweredValue]; isFalse {
		*value.target = false
		return nil
	}
	return fmt.Errorf(toggleParseErrorTemplateConstant, rawValue)
}

// Type identifies the flag value type in usage output.
func (value *toggleFlagValue) Type() string {
	return toggleValueTypeNameConstant
}

// AddToggleFlag registers a boolean toggle flag that accepts yes/no style values.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	toggleValue := newToggleFlagValue(defaultValue, target)
	if len(shorthand) > 0 {
		flagSet.VarP(toggleValue, name, shorthand, usage)
	} else {
		flagSet.Var(toggleValue, name, usage)
	}

	registeredFlag := flagSet.Lookup(name)
	if registeredFlag == nil {
		return
	}
	registeredFlag.NoOptDefVal = toggleTrueCanonicalValue
	registeredFlag.Usage = formatToggleUsage(usage, defaultValue)
}

// ToggleValue reads the current boolean state of a registered toggle flag,
// returning fallback when the flag is absent or unparsable.
func ToggleValue(flagSet *pflag.FlagSet, name string, fallback bool) bool {
	if flagSet == nil {
		return fallback
	}
	registeredFlag := flagSet.Lookup(name)
	if registeredFlag == nil || registeredFlag.Value == nil {
		return fallback
	}
	parsedValue, parseError := strconv.ParseBool(registeredFlag.Value.String())
	if parseError != nil {
		return fallback
	}
	return parsedValue
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleArgumentFalsePlaceholderConstant
	if defaultValue {
		placeholder = toggleArgumentTruePlaceholderConstant
	}
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(toggleUsageBareTemplateConstant, placeholder)
	}
	return fmt.Sprintf(toggleUsageTemplateConstant, placeholder, trimmedDescription)
}
