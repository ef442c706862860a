package cli

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var cpFlags struct {
	force bool
}

var cpCmd = &cobra.Command{
	Use:   "cp <src> <dst>",
	Short: "Copy a file",
	Long: `Copy a file. When dst is an existing directory the copy is placed
inside it under the source name. An existing destination file is only
replaced with --force.`,
	Args:              exactArgs("src", "dst"),
	ValidArgsFunction: completeEntries(2, false),
	RunE:              runCp,
}

var mvCmd = &cobra.Command{
	Use:   "mv <src> <dst>",
	Short: "Move or rename a file or directory",
	Args:              exactArgs("src", "dst"),
	ValidArgsFunction: completeEntries(2, false),
	RunE:              runMv,
}

var rmFlags struct {
	recursive bool
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file or directory",
	Long: `Delete a file or directory. Directories must be empty unless
--recursive is set.`,
	Args:              exactArgs("path"),
	ValidArgsFunction: completeEntries(1, false),
	RunE:              runRm,
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a directory and any missing parents",
	Args:              exactArgs("path"),
	ValidArgsFunction: completeEntries(1, true),
	RunE:              runMkdir,
}

var touchCmd = &cobra.Command{
	Use:   "touch <path>",
	Short: "Create a file or update its timestamps",
	Args:              exactArgs("path"),
	ValidArgsFunction: completeEntries(1, false),
	RunE:              runTouch,
}

func init() {
	rootCmd.AddCommand(cpCmd, mvCmd, rmCmd, mkdirCmd, touchCmd)
	cpCmd.Flags().BoolVarP(&cpFlags.force, "force", "f", false, "Overwrite an existing destination")
	rmCmd.Flags().BoolVarP(&rmFlags.recursive, "recursive", "r", false, "Delete directories and their contents")
}

func runCp(cmd *cobra.Command, args []string) error {
	a := current
	src, dst := args[0], args[1]
	if a.dir(dst).Exists() {
		dst = filepath.Join(dst, filepath.Base(src))
	}
	if err := a.files().Copy(src, dst, cpFlags.force); err != nil {
		return err
	}
	a.logger.Verbose("copied %s to %s", src, dst)
	return nil
}

func runMv(cmd *cobra.Command, args []string) error {
	a := current
	src, dst := args[0], args[1]

	var err error
	if d := a.dir(src); d.Exists() {
		err = d.MoveTo(dst)
	} else {
		err = a.files().Move(src, dst)
	}
	if err != nil {
		return err
	}
	a.logger.Verbose("moved %s to %s", src, dst)
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	a := current
	path := args[0]

	var err error
	d := a.dir(path)
	switch {
	case !d.Exists():
		err = a.files().Delete(path)
	case rmFlags.recursive:
		err = d.DeleteRecursive()
	default:
		err = d.Delete()
	}
	if err != nil {
		return err
	}
	a.logger.Verbose("deleted %s", path)
	return nil
}

func runMkdir(cmd *cobra.Command, args []string) error {
	a := current
	d := a.dir(args[0])
	if err := d.Create(); err != nil {
		return err
	}
	a.logger.Verbose("created %s", d.FullName())
	return nil
}

func runTouch(cmd *cobra.Command, args []string) error {
	a := current
	f := a.file(args[0])
	if !f.Exists() {
		created, err := f.Create()
		if err != nil {
			return err
		}
		a.logger.Verbose("created %s", f.FullName())
		return created.Close()
	}

	now := time.Now()
	if err := f.SetLastWriteTime(now); err != nil {
		return err
	}
	return f.SetLastAccessTime(now)
}
