package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	switchTypeName     = "bool"
	switchBareValue    = "true"
	switchInvalidLabel = "invalid boolean value"
)

// switchLiterals lists the accepted spellings in the order they are shown in error messages.
var switchLiterals = []struct {
	text  string
	value bool
}{
	{"true", true},
	{"false", false},
	{"yes", true},
	{"no", false},
	{"on", true},
	{"off", false},
	{"1", true},
	{"0", false},
}

func parseSwitchLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, literal := range switchLiterals {
		if literal.text == normalized {
			return literal.value, true
		}
	}
	return false, false
}

func acceptedSwitchLiterals() string {
	texts := make([]string, 0, len(switchLiterals))
	for _, literal := range switchLiterals {
		texts = append(texts, literal.text)
	}
	return strings.Join(texts, ", ")
}

// switchValue backs a flag that is given bare (-a, --all) or with an attached literal (--all=off).
// A bare occurrence never consumes the next argument, which stays a directory.
type switchValue struct {
	destination *bool
	flagName    string
}

func (value *switchValue) Set(input string) error {
	parsed, known := parseSwitchLiteral(input)
	if !known {
		return fmt.Errorf("%s %q for --%s; accepted values: %s", switchInvalidLabel, input, value.flagName, acceptedSwitchLiterals())
	}
	*value.destination = parsed
	return nil
}

func (value *switchValue) String() string {
	if value == nil || value.destination == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.destination)
}

func (value *switchValue) Type() string {
	return switchTypeName
}

func registerBooleanFlag(flagSet *pflag.FlagSet, destination *bool, name string, shorthand string, defaultValue bool, usage string) {
	*destination = defaultValue
	flag := flagSet.VarPF(&switchValue{destination: destination, flagName: name}, name, shorthand, usage)
	flag.DefValue = strconv.FormatBool(defaultValue)
	flag.NoOptDefVal = switchBareValue
}
