package fileops

import (
	"iter"
	"time"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_fileops.go

// FileOperations is the path-addressed file API. Every method forwards to
// the fsio function of the same name.
type FileOperations interface {
	Exists(path string) bool
	Create(path string) (fsio.File, error)
	CreateText(path string) (*fsio.TextWriter, error)
	AppendText(path string) (*fsio.TextWriter, error)
	Delete(path string) error
	Copy(src, dst string, overwrite bool) error
	Move(src, dst string) error

	Open(path string, mode fsio.FileMode, opts ...fsio.OpenOption) (fsio.File, error)
	OpenRead(path string) (fsio.File, error)
	OpenText(path string) (*fsio.TextReader, error)
	OpenWrite(path string) (fsio.File, error)

	ReadAllBytes(path string) ([]byte, error)
	WriteAllBytes(path string, b []byte) error

	ReadAllText(path string, opts ...fsio.TextOption) (string, error)
	WriteAllText(path, contents string, opts ...fsio.TextOption) error
	AppendAllText(path, contents string, opts ...fsio.TextOption) error

	ReadAllLines(path string, opts ...fsio.TextOption) ([]string, error)
	ReadLines(path string, opts ...fsio.TextOption) iter.Seq2[string, error]
	WriteAllLines(path string, lines []string, opts ...fsio.TextOption) error
	WriteLines(path string, lines iter.Seq[string], opts ...fsio.TextOption) error
	AppendAllLines(path string, lines []string, opts ...fsio.TextOption) error
	AppendLines(path string, lines iter.Seq[string], opts ...fsio.TextOption) error

	GetAttributes(path string) (fsio.FileAttributes, error)
	SetAttributes(path string, attrs fsio.FileAttributes) error

	GetCreationTime(path string) (time.Time, error)
	GetCreationTimeUTC(path string) (time.Time, error)
	GetLastAccessTime(path string) (time.Time, error)
	GetLastAccessTimeUTC(path string) (time.Time, error)
	GetLastWriteTime(path string) (time.Time, error)
	GetLastWriteTimeUTC(path string) (time.Time, error)

	SetCreationTime(path string, t time.Time) error
	SetCreationTimeUTC(path string, t time.Time) error
	SetLastAccessTime(path string, t time.Time) error
	SetLastAccessTimeUTC(path string, t time.Time) error
	SetLastWriteTime(path string, t time.Time) error
	SetLastWriteTimeUTC(path string, t time.Time) error
}
