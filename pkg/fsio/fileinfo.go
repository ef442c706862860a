package fsio

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileInfo is a handle on one file path.
type FileInfo struct {
	entry
}

// NewFileInfo returns a handle on path. It does not touch the filesystem.
func NewFileInfo(fsys afero.Fs, path string) *FileInfo {
	return &FileInfo{entry: newEntry(fsys, path)}
}

func newFileInfoFromStat(fsys afero.Fs, path string, info fs.FileInfo) *FileInfo {
	f := NewFileInfo(fsys, path)
	f.prime(info)
	return f
}

// Exists reports whether the path named a file at the last refresh.
func (f *FileInfo) Exists() bool {
	info, err := f.stat()
	return err == nil && !info.IsDir()
}

// Length returns the size in bytes. A directory at the path is reported as
// a missing file.
func (f *FileInfo) Length() (int64, error) {
	info, err := f.stat()
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, &fs.PathError{Op: "stat", Path: f.fullPath, Err: fs.ErrNotExist}
	}
	return info.Size(), nil
}

// DirectoryName returns the full path of the containing directory.
func (f *FileInfo) DirectoryName() string { return filepath.Dir(f.fullPath) }

// Directory returns a handle on the containing directory.
func (f *FileInfo) Directory() *DirectoryInfo {
	return NewDirectoryInfo(f.fsys, f.DirectoryName())
}

// IsReadOnly reports whether the file is read-only. Missing or unreadable
// files report true.
func (f *FileInfo) IsReadOnly() bool {
	attrs, err := f.Attributes()
	if err != nil {
		return true
	}
	return attrs.Has(ReadOnly)
}

// SetReadOnly sets or clears the read-only attribute.
func (f *FileInfo) SetReadOnly(readOnly bool) error {
	attrs, err := f.Attributes()
	if err != nil {
		return err
	}
	if readOnly {
		attrs |= ReadOnly
	} else {
		attrs &^= ReadOnly
	}
	return f.SetAttributes(attrs)
}

// AppendText opens a UTF-8 text writer that appends to the file.
func (f *FileInfo) AppendText() (*TextWriter, error) {
	defer f.invalidate()
	return AppendText(f.fsys, f.fullPath)
}

// CopyTo copies the file to dst and returns a handle on the copy.
func (f *FileInfo) CopyTo(dst string, overwrite bool) (*FileInfo, error) {
	if err := Copy(f.fsys, f.fullPath, dst, overwrite); err != nil {
		return nil, err
	}
	return NewFileInfo(f.fsys, dst), nil
}

// Create creates or truncates the file.
func (f *FileInfo) Create() (File, error) {
	defer f.invalidate()
	return Create(f.fsys, f.fullPath)
}

// CreateText creates or truncates the file and opens a UTF-8 text writer on it.
func (f *FileInfo) CreateText() (*TextWriter, error) {
	defer f.invalidate()
	return CreateText(f.fsys, f.fullPath)
}

// Delete removes the file.
func (f *FileInfo) Delete() error {
	defer f.invalidate()
	return Delete(f.fsys, f.fullPath)
}

// MoveTo renames the file to dst. On success the handle names dst.
func (f *FileInfo) MoveTo(dst string) error {
	if err := Move(f.fsys, f.fullPath, dst); err != nil {
		return err
	}
	f.rebind(dst)
	return nil
}

// Open opens the file with the given mode and options.
func (f *FileInfo) Open(mode FileMode, opts ...OpenOption) (File, error) {
	defer f.invalidate()
	return Open(f.fsys, f.fullPath, mode, opts...)
}

// OpenRead opens the file for reading.
func (f *FileInfo) OpenRead() (File, error) {
	return OpenRead(f.fsys, f.fullPath)
}

// OpenText opens a UTF-8 text reader on the file.
func (f *FileInfo) OpenText() (*TextReader, error) {
	return OpenText(f.fsys, f.fullPath)
}

// OpenWrite opens the file for writing, creating it if missing.
func (f *FileInfo) OpenWrite() (File, error) {
	defer f.invalidate()
	return OpenWrite(f.fsys, f.fullPath)
}
