package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fswrap/internal/config"
	"github.com/vvka-141/fswrap/pkg/dirinfo"
	"github.com/vvka-141/fswrap/pkg/fsio"
)

// colorModes contains valid values for the --color flag.
var colorModes = []string{config.ColorAuto, config.ColorAlways, config.ColorNever}

// encodingNames are the encodings offered for --encoding. Any IANA name is accepted.
var encodingNames = []string{"utf-8", "utf-8-bom", "utf-16le", "utf-16be", "iso-8859-1", "windows-1252"}

func withPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}

// completeColorModes provides shell completion for --color.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return withPrefix(colorModes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeEncodings provides shell completion for --encoding.
func completeEncodings(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return withPrefix(encodingNames, strings.ToLower(toComplete)), cobra.ShellCompDirectiveNoFileComp
}

// completeEntries completes up to maxArgs path arguments by listing the
// directory being typed through dirinfo, so completion sees the same
// filesystem as the commands.
func completeEntries(maxArgs int, dirsOnly bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= maxArgs {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		parent, prefix := filepath.Split(toComplete)
		d := dirinfo.NewWithFS(appFS)
		if parent == "" {
			d.Bind(".")
		} else {
			d.Bind(parent)
		}

		var matches []string
		for item, err := range d.EnumerateFileSystemInfos() {
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			name := item.Name()
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			if _, isDir := item.(*fsio.DirectoryInfo); isDir {
				name += string(filepath.Separator)
			} else if dirsOnly {
				continue
			}
			matches = append(matches, parent+name)
		}
		return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}
