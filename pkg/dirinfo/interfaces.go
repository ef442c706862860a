package dirinfo

import (
	"iter"
	"time"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_dirinfo.go

// DirectoryInfoOperations is a handle on one directory. Bind points it at a
// path; every other method forwards to the bound *fsio.DirectoryInfo.
type DirectoryInfoOperations interface {
	// Bind replaces the handle with one for path. It does not touch the
	// filesystem.
	Bind(path string)
	DirectoryInfo() *fsio.DirectoryInfo

	Attributes() (fsio.FileAttributes, error)
	SetAttributes(attrs fsio.FileAttributes) error

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

	Exists() bool
	Extension() string
	FullName() string
	Name() string
	Parent() *fsio.DirectoryInfo
	Root() *fsio.DirectoryInfo

	Create() error
	CreateSubdirectory(path string) (*fsio.DirectoryInfo, error)
	Delete() error
	DeleteRecursive() error
	MoveTo(dst string) error
	Refresh() error
	String() string

	GetDirectories(opts ...fsio.ListOption) ([]*fsio.DirectoryInfo, error)
	GetFiles(opts ...fsio.ListOption) ([]*fsio.FileInfo, error)
	GetFileSystemInfos(opts ...fsio.ListOption) ([]fsio.FileSystemInfo, error)
	EnumerateDirectories(opts ...fsio.ListOption) iter.Seq2[*fsio.DirectoryInfo, error]
	EnumerateFiles(opts ...fsio.ListOption) iter.Seq2[*fsio.FileInfo, error]
	EnumerateFileSystemInfos(opts ...fsio.ListOption) iter.Seq2[fsio.FileSystemInfo, error]
}
