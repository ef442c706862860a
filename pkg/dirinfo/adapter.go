package dirinfo

import (
	"iter"
	"time"

	"github.com/spf13/afero"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

// Adapter implements DirectoryInfoOperations. Until Bind is called, methods
// that return an error return fsio.ErrUnbound, the Enumerate methods yield
// it once, and the rest return zero values.
type Adapter struct {
	fs  afero.Fs
	dir *fsio.DirectoryInfo
}

var _ DirectoryInfoOperations = (*Adapter)(nil)

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

func (a *Adapter) Bind(path string) { a.dir = fsio.NewDirectoryInfo(a.fs, path) }

func (a *Adapter) DirectoryInfo() *fsio.DirectoryInfo { return a.dir }

func (a *Adapter) Attributes() (fsio.FileAttributes, error) {
	return call(a, (*fsio.DirectoryInfo).Attributes)
}

func (a *Adapter) SetAttributes(attrs fsio.FileAttributes) error {
	return run(a, func(d *fsio.DirectoryInfo) error { return d.SetAttributes(attrs) })
}

func (a *Adapter) CreationTime() (time.Time, error) {
	return call(a, (*fsio.DirectoryInfo).CreationTime)
}

func (a *Adapter) CreationTimeUTC() (time.Time, error) {
	return call(a, (*fsio.DirectoryInfo).CreationTimeUTC)
}

func (a *Adapter) LastAccessTime() (time.Time, error) {
	return call(a, (*fsio.DirectoryInfo).LastAccessTime)
}

func (a *Adapter) LastAccessTimeUTC() (time.Time, error) {
	return call(a, (*fsio.DirectoryInfo).LastAccessTimeUTC)
}

func (a *Adapter) LastWriteTime() (time.Time, error) {
	return call(a, (*fsio.DirectoryInfo).LastWriteTime)
}

func (a *Adapter) LastWriteTimeUTC() (time.Time, error) {
	return call(a, (*fsio.DirectoryInfo).LastWriteTimeUTC)
}

func (a *Adapter) SetCreationTime(t time.Time) error {
	return run(a, func(d *fsio.DirectoryInfo) error { return d.SetCreationTime(t) })
}

func (a *Adapter) SetCreationTimeUTC(t time.Time) error {
	return run(a, func(d *fsio.DirectoryInfo) error { return d.SetCreationTimeUTC(t) })
}

func (a *Adapter) SetLastAccessTime(t time.Time) error {
	return run(a, func(d *fsio.DirectoryInfo) error { return d.SetLastAccessTime(t) })
}

func (a *Adapter) SetLastAccessTimeUTC(t time.Time) error {
	return run(a, func(d *fsio.DirectoryInfo) error { return d.SetLastAccessTimeUTC(t) })
}

func (a *Adapter) SetLastWriteTime(t time.Time) error {
	return run(a, func(d *fsio.DirectoryInfo) error { return d.SetLastWriteTime(t) })
}

func (a *Adapter) SetLastWriteTimeUTC(t time.Time) error {
	return run(a, func(d *fsio.DirectoryInfo) error { return d.SetLastWriteTimeUTC(t) })
}

func (a *Adapter) Exists() bool { return get(a, (*fsio.DirectoryInfo).Exists) }

func (a *Adapter) Extension() string { return get(a, (*fsio.DirectoryInfo).Extension) }

func (a *Adapter) FullName() string { return get(a, (*fsio.DirectoryInfo).FullName) }

func (a *Adapter) Name() string { return get(a, (*fsio.DirectoryInfo).Name) }

func (a *Adapter) Parent() *fsio.DirectoryInfo { return get(a, (*fsio.DirectoryInfo).Parent) }

func (a *Adapter) Root() *fsio.DirectoryInfo { return get(a, (*fsio.DirectoryInfo).Root) }

func (a *Adapter) Create() error { return run(a, (*fsio.DirectoryInfo).Create) }

func (a *Adapter) CreateSubdirectory(path string) (*fsio.DirectoryInfo, error) {
	return call(a, func(d *fsio.DirectoryInfo) (*fsio.DirectoryInfo, error) { return d.CreateSubdirectory(path) })
}

func (a *Adapter) Delete() error { return run(a, (*fsio.DirectoryInfo).Delete) }

func (a *Adapter) DeleteRecursive() error { return run(a, (*fsio.DirectoryInfo).DeleteRecursive) }

func (a *Adapter) MoveTo(dst string) error {
	return run(a, func(d *fsio.DirectoryInfo) error { return d.MoveTo(dst) })
}

func (a *Adapter) Refresh() error { return run(a, (*fsio.DirectoryInfo).Refresh) }

func (a *Adapter) String() string { return get(a, (*fsio.DirectoryInfo).String) }

func (a *Adapter) GetDirectories(opts ...fsio.ListOption) ([]*fsio.DirectoryInfo, error) {
	return call(a, func(d *fsio.DirectoryInfo) ([]*fsio.DirectoryInfo, error) { return d.GetDirectories(opts...) })
}

func (a *Adapter) GetFiles(opts ...fsio.ListOption) ([]*fsio.FileInfo, error) {
	return call(a, func(d *fsio.DirectoryInfo) ([]*fsio.FileInfo, error) { return d.GetFiles(opts...) })
}

func (a *Adapter) GetFileSystemInfos(opts ...fsio.ListOption) ([]fsio.FileSystemInfo, error) {
	return call(a, func(d *fsio.DirectoryInfo) ([]fsio.FileSystemInfo, error) { return d.GetFileSystemInfos(opts...) })
}

func (a *Adapter) EnumerateDirectories(opts ...fsio.ListOption) iter.Seq2[*fsio.DirectoryInfo, error] {
	if a.dir == nil {
		return unbound[*fsio.DirectoryInfo]
	}
	return a.dir.EnumerateDirectories(opts...)
}

func (a *Adapter) EnumerateFiles(opts ...fsio.ListOption) iter.Seq2[*fsio.FileInfo, error] {
	if a.dir == nil {
		return unbound[*fsio.FileInfo]
	}
	return a.dir.EnumerateFiles(opts...)
}

func (a *Adapter) EnumerateFileSystemInfos(opts ...fsio.ListOption) iter.Seq2[fsio.FileSystemInfo, error] {
	if a.dir == nil {
		return unbound[fsio.FileSystemInfo]
	}
	return a.dir.EnumerateFileSystemInfos(opts...)
}

func unbound[T any](yield func(T, error) bool) {
	var zero T
	yield(zero, fsio.ErrUnbound)
}

func call[T any](a *Adapter, fn func(*fsio.DirectoryInfo) (T, error)) (T, error) {
	if a.dir == nil {
		var zero T
		return zero, fsio.ErrUnbound
	}
	return fn(a.dir)
}

func run(a *Adapter, fn func(*fsio.DirectoryInfo) error) error {
	if a.dir == nil {
		return fsio.ErrUnbound
	}
	return fn(a.dir)
}

func get[T any](a *Adapter, fn func(*fsio.DirectoryInfo) T) T {
	if a.dir == nil {
		var zero T
		return zero
	}
	return fn(a.dir)
}
