package fileinfo

import (
	"time"

	"github.com/spf13/afero"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

// Adapter implements FileInfoOperations. Until Bind is called, methods that
// return an error return fsio.ErrUnbound and the rest return zero values.
type Adapter struct {
	fs   afero.Fs
	info *fsio.FileInfo
}

var _ FileInfoOperations = (*Adapter)(nil)

// New returns an unbound adapter over the OS filesystem.
func New() *Adapter {
	return NewWithFS(afero.NewOsFs())
}

// NewForPath returns an adapter over the OS filesystem bound to path.
func NewForPath(path string) *Adapter {
	a := New()
	a.Bind(path)
	return a
}

// NewWithFS returns an unbound adapter over fsys.
func NewWithFS(fsys afero.Fs) *Adapter {
	return &Adapter{fs: fsys}
}

func (a *Adapter) Bind(path string) { a.info = fsio.NewFileInfo(a.fs, path) }

func (a *Adapter) FileInfo() *fsio.FileInfo { return a.info }

func (a *Adapter) Attributes() (fsio.FileAttributes, error) {
	return call(a, (*fsio.FileInfo).Attributes)
}

func (a *Adapter) SetAttributes(attrs fsio.FileAttributes) error {
	return run(a, func(f *fsio.FileInfo) error { return f.SetAttributes(attrs) })
}

func (a *Adapter) CreationTime() (time.Time, error) {
	return call(a, (*fsio.FileInfo).CreationTime)
}

func (a *Adapter) CreationTimeUTC() (time.Time, error) {
	return call(a, (*fsio.FileInfo).CreationTimeUTC)
}

func (a *Adapter) LastAccessTime() (time.Time, error) {
	return call(a, (*fsio.FileInfo).LastAccessTime)
}

func (a *Adapter) LastAccessTimeUTC() (time.Time, error) {
	return call(a, (*fsio.FileInfo).LastAccessTimeUTC)
}

func (a *Adapter) LastWriteTime() (time.Time, error) {
	return call(a, (*fsio.FileInfo).LastWriteTime)
}

func (a *Adapter) LastWriteTimeUTC() (time.Time, error) {
	return call(a, (*fsio.FileInfo).LastWriteTimeUTC)
}

func (a *Adapter) SetCreationTime(t time.Time) error {
	return run(a, func(f *fsio.FileInfo) error { return f.SetCreationTime(t) })
}

func (a *Adapter) SetCreationTimeUTC(t time.Time) error {
	return run(a, func(f *fsio.FileInfo) error { return f.SetCreationTimeUTC(t) })
}

func (a *Adapter) SetLastAccessTime(t time.Time) error {
	return run(a, func(f *fsio.FileInfo) error { return f.SetLastAccessTime(t) })
}

func (a *Adapter) SetLastAccessTimeUTC(t time.Time) error {
	return run(a, func(f *fsio.FileInfo) error { return f.SetLastAccessTimeUTC(t) })
}

func (a *Adapter) SetLastWriteTime(t time.Time) error {
	return run(a, func(f *fsio.FileInfo) error { return f.SetLastWriteTime(t) })
}

func (a *Adapter) SetLastWriteTimeUTC(t time.Time) error {
	return run(a, func(f *fsio.FileInfo) error { return f.SetLastWriteTimeUTC(t) })
}

func (a *Adapter) Directory() *fsio.DirectoryInfo { return get(a, (*fsio.FileInfo).Directory) }

func (a *Adapter) DirectoryName() string { return get(a, (*fsio.FileInfo).DirectoryName) }

func (a *Adapter) Exists() bool { return get(a, (*fsio.FileInfo).Exists) }

func (a *Adapter) Extension() string { return get(a, (*fsio.FileInfo).Extension) }

func (a *Adapter) FullName() string { return get(a, (*fsio.FileInfo).FullName) }

func (a *Adapter) Name() string { return get(a, (*fsio.FileInfo).Name) }

func (a *Adapter) Length() (int64, error) { return call(a, (*fsio.FileInfo).Length) }

func (a *Adapter) IsReadOnly() bool { return get(a, (*fsio.FileInfo).IsReadOnly) }

func (a *Adapter) SetReadOnly(readOnly bool) error {
	return run(a, func(f *fsio.FileInfo) error { return f.SetReadOnly(readOnly) })
}

func (a *Adapter) AppendText() (*fsio.TextWriter, error) {
	return call(a, (*fsio.FileInfo).AppendText)
}

func (a *Adapter) CopyTo(dst string, overwrite bool) (*fsio.FileInfo, error) {
	return call(a, func(f *fsio.FileInfo) (*fsio.FileInfo, error) { return f.CopyTo(dst, overwrite) })
}

func (a *Adapter) Create() (fsio.File, error) { return call(a, (*fsio.FileInfo).Create) }

func (a *Adapter) CreateText() (*fsio.TextWriter, error) {
	return call(a, (*fsio.FileInfo).CreateText)
}

func (a *Adapter) Delete() error { return run(a, (*fsio.FileInfo).Delete) }

func (a *Adapter) MoveTo(dst string) error {
	return run(a, func(f *fsio.FileInfo) error { return f.MoveTo(dst) })
}

func (a *Adapter) Open(mode fsio.FileMode, opts ...fsio.OpenOption) (fsio.File, error) {
	return call(a, func(f *fsio.FileInfo) (fsio.File, error) { return f.Open(mode, opts...) })
}

func (a *Adapter) OpenRead() (fsio.File, error) { return call(a, (*fsio.FileInfo).OpenRead) }

func (a *Adapter) OpenText() (*fsio.TextReader, error) {
	return call(a, (*fsio.FileInfo).OpenText)
}

func (a *Adapter) OpenWrite() (fsio.File, error) { return call(a, (*fsio.FileInfo).OpenWrite) }

func (a *Adapter) Refresh() error { return run(a, (*fsio.FileInfo).Refresh) }

func (a *Adapter) String() string { return get(a, (*fsio.FileInfo).String) }

func call[T any](a *Adapter, fn func(*fsio.FileInfo) (T, error)) (T, error) {
	if a.info == nil {
		var zero T
		return zero, fsio.ErrUnbound
	}
	return fn(a.info)
}

func run(a *Adapter, fn func(*fsio.FileInfo) error) error {
	if a.info == nil {
		return fsio.ErrUnbound
	}
	return fn(a.info)
}

func get[T any](a *Adapter, fn func(*fsio.FileInfo) T) T {
	if a.info == nil {
		var zero T
		return zero
	}
	return fn(a.info)
}
