package cli

import (
	"fmt"
	"iter"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fswrap/pkg/dirinfo"
	"github.com/vvka-141/fswrap/pkg/fsio"
)

type lsFlagValues struct {
	pattern   string
	recursive bool
	files     bool
	dirs      bool
	eager     bool
}

var lsFlags lsFlagValues

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List a directory",
	Long: `List the entries of a directory, breadth-first when recursive.

Entries are streamed as they are read unless --eager is set, in which case
the whole listing is collected first.`,
	Args:              rangeArgs(0, 1),
	ValidArgsFunction: completeEntries(1, true),
	RunE:              runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVarP(&lsFlags.pattern, "pattern", "p", "*", "Only list names matching the glob pattern")
	lsCmd.Flags().BoolVarP(&lsFlags.recursive, "recursive", "r", false, "Descend into subdirectories")
	lsCmd.Flags().BoolVar(&lsFlags.files, "files", false, "List files only")
	lsCmd.Flags().BoolVar(&lsFlags.dirs, "dirs", false, "List directories only")
	lsCmd.Flags().BoolVar(&lsFlags.eager, "eager", false, "Collect the listing before printing")
	lsCmd.MarkFlagsMutuallyExclusive("files", "dirs")
}

func runLs(cmd *cobra.Command, args []string) error {
	a := current
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	d := a.dir(path)
	opts := []fsio.ListOption{fsio.WithPattern(lsFlags.pattern)}
	if lsFlags.recursive {
		opts = append(opts, fsio.WithSearchOption(fsio.AllDirectories))
	}
	a.logger.Verbose("listing %s (pattern %q, recursive %t, eager %t)", d.FullName(), lsFlags.pattern, lsFlags.recursive, lsFlags.eager)

	root := d.FullName()
	out := cmd.OutOrStdout()
	n := 0
	for item, err := range listing(d, lsFlags, opts) {
		if err != nil {
			return err
		}
		fmt.Fprintln(out, a.entryLabel(root, item))
		n++
	}
	a.logger.Verbose("%d entries", n)
	return nil
}

// listing picks the listing call for the flags.
func listing(d dirinfo.DirectoryInfoOperations, f lsFlagValues, opts []fsio.ListOption) iter.Seq2[fsio.FileSystemInfo, error] {
	switch {
	case f.files && f.eager:
		files, err := d.GetFiles(opts...)
		return fromSlice(files, err)
	case f.files:
		return widen(d.EnumerateFiles(opts...))
	case f.dirs && f.eager:
		dirs, err := d.GetDirectories(opts...)
		return fromSlice(dirs, err)
	case f.dirs:
		return widen(d.EnumerateDirectories(opts...))
	case f.eager:
		all, err := d.GetFileSystemInfos(opts...)
		return fromSlice(all, err)
	default:
		return d.EnumerateFileSystemInfos(opts...)
	}
}

func widen[T fsio.FileSystemInfo](seq iter.Seq2[T, error]) iter.Seq2[fsio.FileSystemInfo, error] {
	return func(yield func(fsio.FileSystemInfo, error) bool) {
		for item, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func fromSlice[T fsio.FileSystemInfo](items []T, err error) iter.Seq2[fsio.FileSystemInfo, error] {
	return func(yield func(fsio.FileSystemInfo, error) bool) {
		if err != nil {
			yield(nil, err)
			return
		}
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// entryLabel renders an entry relative to the listed directory. Directories
// get a trailing separator.
func (a *app) entryLabel(root string, item fsio.FileSystemInfo) string {
	name, err := filepath.Rel(root, item.FullName())
	if err != nil {
		name = item.FullName()
	}

	style := lipgloss.NewStyle()
	attrs, err := item.Attributes()
	switch {
	case err != nil:
	case attrs.Has(fsio.Directory):
		return a.styles.dir.Render(name + string(filepath.Separator))
	case attrs.Has(fsio.Hidden):
		style = a.styles.hidden
	case attrs.Has(fsio.ReadOnly):
		style = a.styles.readOnly
	}
	return style.Render(name)
}
