package fsio

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// FileSystemInfo is the surface shared by FileInfo and DirectoryInfo.
// Combined listings return it; a type switch recovers the concrete handle.
type FileSystemInfo interface {
	FullName() string
	Name() string
	Extension() string
	Exists() bool

	Attributes() (FileAttributes, error)
	SetAttributes(attrs FileAttributes) error

	CreationTime() (time.Time, error)
	CreationTimeUTC() (time.Time, error)
	LastAccessTime() (time.Time, error)
	LastAccessTimeUTC() (time.Time, error)
	LastWriteTime() (time.Time, error)
	LastWriteTimeUTC() (time.Time, error)

	SetCreationTime(t time.Time) error
	SetCreationTimeUTC(t time.Time) error
	SetLastAccessTime(t time.Time) error
	SetLastAccessTimeUTC(t time.Time) error
	SetLastWriteTime(t time.Time) error
	SetLastWriteTimeUTC(t time.Time) error

	Delete() error
	Refresh() error
	String() string
}

// entry is one path plus the stat snapshot taken at the last refresh.
// The snapshot is loaded on first use and dropped by the handle's own
// mutating calls; external changes need an explicit Refresh.
type entry struct {
	fsys     afero.Fs
	original string
	fullPath string

	loaded  bool
	info    fs.FileInfo
	statErr error
}

func newEntry(fsys afero.Fs, path string) entry {
	return entry{fsys: fsys, original: path, fullPath: fullPath(path)}
}

// prime seeds the snapshot from listing data.
func (e *entry) prime(info fs.FileInfo) {
	e.loaded, e.info, e.statErr = true, info, nil
}

func fullPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func (e *entry) stat() (fs.FileInfo, error) {
	if !e.loaded {
		e.info, e.statErr = e.fsys.Stat(e.fullPath)
		e.loaded = true
	}
	return e.info, e.statErr
}

func (e *entry) invalidate() {
	e.loaded, e.info, e.statErr = false, nil, nil
}

func (e *entry) rebind(path string) {
	e.original = path
	e.fullPath = fullPath(path)
	e.invalidate()
}

func (e *entry) times() (timestamps, error) {
	info, err := e.stat()
	if err != nil {
		return timestamps{}, err
	}
	return timestampsOf(info), nil
}

// Refresh re-reads the metadata. A missing entry is not an error; Exists
// reports it.
func (e *entry) Refresh() error {
	e.invalidate()
	if _, err := e.stat(); err != nil && !IsNotExist(err) {
		return err
	}
	return nil
}

// FullName returns the absolute path.
func (e *entry) FullName() string { return e.fullPath }

// Name returns the last element of the path.
func (e *entry) Name() string { return filepath.Base(e.fullPath) }

// Extension returns the name's extension including the dot, or "".
func (e *entry) Extension() string { return filepath.Ext(e.Name()) }

// String returns the path the handle was created with.
func (e *entry) String() string { return e.original }

func (e *entry) Attributes() (FileAttributes, error) {
	info, err := e.stat()
	if err != nil {
		return 0, err
	}
	return attributesOf(info), nil
}

func (e *entry) SetAttributes(attrs FileAttributes) error {
	defer e.invalidate()
	return setAttributes(e.fsys, e.fullPath, attrs)
}

func (e *entry) CreationTime() (time.Time, error) {
	ts, err := e.times()
	return ts.creation.Local(), err
}

func (e *entry) CreationTimeUTC() (time.Time, error) {
	ts, err := e.times()
	return ts.creation.UTC(), err
}

func (e *entry) LastAccessTime() (time.Time, error) {
	ts, err := e.times()
	return ts.access.Local(), err
}

func (e *entry) LastAccessTimeUTC() (time.Time, error) {
	ts, err := e.times()
	return ts.access.UTC(), err
}

func (e *entry) LastWriteTime() (time.Time, error) {
	ts, err := e.times()
	return ts.write.Local(), err
}

func (e *entry) LastWriteTimeUTC() (time.Time, error) {
	ts, err := e.times()
	return ts.write.UTC(), err
}

func (e *entry) SetCreationTime(t time.Time) error {
	defer e.invalidate()
	return setCreationTime(e.fsys, e.fullPath, t)
}

func (e *entry) SetCreationTimeUTC(t time.Time) error {
	return e.SetCreationTime(t.UTC())
}

func (e *entry) SetLastAccessTime(t time.Time) error {
	defer e.invalidate()
	return setAccessTime(e.fsys, e.fullPath, t)
}

func (e *entry) SetLastAccessTimeUTC(t time.Time) error {
	return e.SetLastAccessTime(t.UTC())
}

func (e *entry) SetLastWriteTime(t time.Time) error {
	defer e.invalidate()
	return setWriteTime(e.fsys, e.fullPath, t)
}

func (e *entry) SetLastWriteTimeUTC(t time.Time) error {
	return e.SetLastWriteTime(t.UTC())
}
