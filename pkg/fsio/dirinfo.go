package fsio

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// DirectoryInfo is a handle on one directory path.
type DirectoryInfo struct {
	entry
}

// NewDirectoryInfo returns a handle on path. It does not touch the filesystem.
func NewDirectoryInfo(fsys afero.Fs, path string) *DirectoryInfo {
	return &DirectoryInfo{entry: newEntry(fsys, path)}
}

func newDirectoryInfoFromStat(fsys afero.Fs, path string, info fs.FileInfo) *DirectoryInfo {
	d := NewDirectoryInfo(fsys, path)
	d.prime(info)
	return d
}

// Exists reports whether the path named a directory at the last refresh.
func (d *DirectoryInfo) Exists() bool {
	info, err := d.stat()
	return err == nil && info.IsDir()
}

// Parent returns a handle on the parent directory, or nil at a root.
func (d *DirectoryInfo) Parent() *DirectoryInfo {
	parent := filepath.Dir(d.fullPath)
	if parent == d.fullPath {
		return nil
	}
	return NewDirectoryInfo(d.fsys, parent)
}

// Root returns a handle on the root of the path's volume.
func (d *DirectoryInfo) Root() *DirectoryInfo {
	return NewDirectoryInfo(d.fsys, filepath.VolumeName(d.fullPath)+string(filepath.Separator))
}

// Create creates the directory and any missing parents. An existing
// directory is not an error.
func (d *DirectoryInfo) Create() error {
	defer d.invalidate()
	return d.fsys.MkdirAll(d.fullPath, defaultDirPerm)
}

// CreateSubdirectory creates path relative to the directory, with any
// missing parents, and returns a handle on it.
func (d *DirectoryInfo) CreateSubdirectory(path string) (*DirectoryInfo, error) {
	sub := filepath.Join(d.fullPath, path)
	if err := d.fsys.MkdirAll(sub, defaultDirPerm); err != nil {
		return nil, err
	}
	return NewDirectoryInfo(d.fsys, sub), nil
}

// Delete removes the directory. It fails if the directory is not empty.
func (d *DirectoryInfo) Delete() error {
	defer d.invalidate()
	if err := d.requireDir("remove"); err != nil {
		return err
	}
	return d.fsys.Remove(d.fullPath)
}

// DeleteRecursive removes the directory and everything below it. A missing
// directory is an error.
func (d *DirectoryInfo) DeleteRecursive() error {
	defer d.invalidate()
	if err := d.requireDir("removeall"); err != nil {
		return err
	}
	return d.fsys.RemoveAll(d.fullPath)
}

// MoveTo renames the directory to dst. An existing dst fails with an
// already-exists error. On success the handle names dst.
func (d *DirectoryInfo) MoveTo(dst string) error {
	if err := d.requireDir("rename"); err != nil {
		return err
	}
	if err := rename(d.fsys, d.fullPath, dst); err != nil {
		return err
	}
	d.rebind(dst)
	return nil
}

// requireDir stats the path fresh. A file there is a wrong-type error.
func (d *DirectoryInfo) requireDir(op string) error {
	info, err := d.fsys.Stat(d.fullPath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: op, Path: d.fullPath, Err: errNotDirectory}
	}
	return nil
}
