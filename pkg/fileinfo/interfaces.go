package fileinfo

import (
	"time"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_fileinfo.go

// FileInfoOperations is a handle on one file. Bind points it at a path;
// every other method forwards to the bound *fsio.FileInfo.
type FileInfoOperations interface {
	// Bind replaces the handle with one for path. It does not touch the
	// filesystem.
	Bind(path string)
	FileInfo() *fsio.FileInfo

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

	Directory() *fsio.DirectoryInfo
	DirectoryName() string
	Exists() bool
	Extension() string
	FullName() string
	Name() string
	Length() (int64, error)
	IsReadOnly() bool
	SetReadOnly(readOnly bool) error

	AppendText() (*fsio.TextWriter, error)
	CopyTo(dst string, overwrite bool) (*fsio.FileInfo, error)
	Create() (fsio.File, error)
	CreateText() (*fsio.TextWriter, error)
	Delete() error
	MoveTo(dst string) error
	Open(mode fsio.FileMode, opts ...fsio.OpenOption) (fsio.File, error)
	OpenRead() (fsio.File, error)
	OpenText() (*fsio.TextReader, error)
	OpenWrite() (fsio.File, error)
	Refresh() error
	String() string
}
