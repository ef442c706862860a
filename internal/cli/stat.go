package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show attributes, size and timestamps of a file or directory",
	Args:              exactArgs("path"),
	ValidArgsFunction: completeEntries(1, false),
	RunE:              runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
}

// timestamped is the part of the fileinfo and dirinfo interfaces stat prints.
type timestamped interface {
	FullName() string
	Attributes() (fsio.FileAttributes, error)
	CreationTime() (time.Time, error)
	LastAccessTime() (time.Time, error)
	LastWriteTime() (time.Time, error)
}

func runStat(cmd *cobra.Command, args []string) error {
	a := current
	out := cmd.OutOrStdout()
	path := args[0]

	if f := a.file(path); f.Exists() {
		size, err := f.Length()
		if err != nil {
			return err
		}
		a.row(out, "Type", "file")
		a.row(out, "Size", fmt.Sprintf("%d", size))
		a.row(out, "ReadOnly", fmt.Sprintf("%t", f.IsReadOnly()))
		return a.printTimestamped(out, f)
	}

	d := a.dir(path)
	if !d.Exists() {
		// Surface the platform's own error for the path.
		_, err := d.Attributes()
		return err
	}
	a.row(out, "Type", "directory")
	if parent := d.Parent(); parent != nil {
		a.row(out, "Parent", parent.FullName())
	}
	return a.printTimestamped(out, d)
}

func (a *app) printTimestamped(out io.Writer, e timestamped) error {
	attrs, err := e.Attributes()
	if err != nil {
		return err
	}
	a.row(out, "Path", e.FullName())
	a.row(out, "Attributes", attrs.String())

	for _, ts := range []struct {
		label string
		get   func() (time.Time, error)
	}{
		{"Created", e.CreationTime},
		{"Accessed", e.LastAccessTime},
		{"Modified", e.LastWriteTime},
	} {
		t, err := ts.get()
		if err != nil {
			return err
		}
		a.row(out, ts.label, t.Format(time.RFC3339))
	}
	return nil
}

func (a *app) row(out io.Writer, label, value string) {
	fmt.Fprintf(out, "%s %s\n", a.styles.label.Render(fmt.Sprintf("%-10s", label+":")), value)
}
