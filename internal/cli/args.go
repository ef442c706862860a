package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// exactArgs validates that one argument per name is provided.
// The error carries the usage line and wraps ErrUsage.
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			missing := make([]string, 0, len(names)-len(args))
			for _, n := range names[len(args):] {
				missing = append(missing, "<"+n+">")
			}
			return fmt.Errorf(`%w: missing required argument: %s

Usage: %s`, ErrUsage, strings.Join(missing, " "), cmd.UseLine())
		}
		if len(args) > len(names) {
			return fmt.Errorf("%w: accepts %d arg(s), received %d", ErrUsage, len(names), len(args))
		}
		return nil
	}
}

// rangeArgs validates that between min and max arguments are provided.
func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			return fmt.Errorf("%w: accepts between %d and %d arg(s), received %d\n\nUsage: %s",
				ErrUsage, min, max, len(args), cmd.UseLine())
		}
		return nil
	}
}

// minArgs validates that at least min arguments are provided.
func minArgs(min int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min {
			return fmt.Errorf("%w: requires at least %d arg(s), received %d\n\nUsage: %s",
				ErrUsage, min, len(args), cmd.UseLine())
		}
		return nil
	}
}
