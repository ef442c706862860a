package cli

import (
	"bufio"
	"fmt"
	"iter"
	"strings"

	"github.com/spf13/cobra"
)

// maxLineSize bounds one stdin line. Longer lines fail the command.
var maxLineSize = 16 * 1024 * 1024

var writeFlags struct {
	append bool
	lines  bool
}

var writeCmd = &cobra.Command{
	Use:   "write <path> [text...]",
	Short: "Write text to a file",
	Long: `Write text to a file, replacing its content unless --append is set.

The text arguments are joined with spaces. With --lines each argument is
written as its own line. Without text arguments, lines are read from stdin.`,
	Args:              minArgs(1),
	ValidArgsFunction: completeEntries(1, false),
	RunE:              runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().BoolVarP(&writeFlags.append, "append", "a", false, "Append instead of replacing")
	writeCmd.Flags().BoolVarP(&writeFlags.lines, "lines", "l", false, "Write each argument as a line")
}

func runWrite(cmd *cobra.Command, args []string) error {
	a := current
	opts, err := a.textOptions()
	if err != nil {
		return err
	}
	ops := a.files()
	path, text := args[0], args[1:]

	switch {
	case len(text) == 0:
		s := bufio.NewScanner(cmd.InOrStdin())
		s.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)
		lines := scanLines(s)
		if writeFlags.append {
			err = ops.AppendLines(path, lines, opts...)
		} else {
			err = ops.WriteLines(path, lines, opts...)
		}
		if err == nil {
			if err = s.Err(); err != nil {
				err = fmt.Errorf("reading stdin: %w", err)
			}
		}
	case writeFlags.lines && writeFlags.append:
		err = ops.AppendAllLines(path, text, opts...)
	case writeFlags.lines:
		err = ops.WriteAllLines(path, text, opts...)
	case writeFlags.append:
		err = ops.AppendAllText(path, strings.Join(text, " "), opts...)
	default:
		err = ops.WriteAllText(path, strings.Join(text, " "), opts...)
	}
	if err != nil {
		return err
	}
	a.logger.Verbose("wrote %s", path)
	return nil
}

// scanLines yields the scanner's lines. A read error ends the sequence
// early; callers check s.Err afterwards.
func scanLines(s *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.Scan() {
			if !yield(s.Text()) {
				return
			}
		}
	}
}
