package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddFlagValidation wraps a flag's value so the validator runs when the
// flag is set on the command line. Invalid values fail during parsing
// instead of surfacing later from the command body.
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(flagName)
	}
	if flag == nil {
		return
	}

	originalSet := flag.Value.Set

	flag.Value = &validatingValue{
		Value:       flag.Value,
		validator:   validator,
		originalSet: originalSet,
	}
}

type validatingValue struct {
	pflag.Value
	validator   func(string) error
	originalSet func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.originalSet(val)
}

// ValidateOutputFormat returns a validator accepting one of the given formats.
func ValidateOutputFormat(formats ...string) func(string) error {
	return func(val string) error {
		for _, format := range formats {
			if val == format {
				return nil
			}
		}
		return fmt.Errorf("invalid output format %s, must be one of: %s",
			val, strings.Join(formats, ", "))
	}
}
