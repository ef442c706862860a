package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print a text file line by line",
	Long: `Print a text file, decoding it with the configured encoding.
A UTF-8 or UTF-16 byte order mark in the file takes precedence.`,
	Args:              exactArgs("path"),
	ValidArgsFunction: completeEntries(1, false),
	RunE:              runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	a := current
	opts, err := a.textOptions()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for line, err := range a.files().ReadLines(args[0], opts...) {
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
