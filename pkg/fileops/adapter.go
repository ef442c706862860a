package fileops

import (
	"iter"
	"time"

	"github.com/spf13/afero"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

// Adapter implements FileOperations over an afero filesystem.
type Adapter struct {
	fs afero.Fs
}

var _ FileOperations = (*Adapter)(nil)

// New returns an adapter over the OS filesystem.
func New() *Adapter {
	return NewWithFS(afero.NewOsFs())
}

// NewWithFS returns an adapter over fsys.
func NewWithFS(fsys afero.Fs) *Adapter {
	return &Adapter{fs: fsys}
}

func (a *Adapter) Exists(path string) bool { return fsio.Exists(a.fs, path) }

func (a *Adapter) Create(path string) (fsio.File, error) { return fsio.Create(a.fs, path) }

func (a *Adapter) CreateText(path string) (*fsio.TextWriter, error) {
	return fsio.CreateText(a.fs, path)
}

func (a *Adapter) AppendText(path string) (*fsio.TextWriter, error) {
	return fsio.AppendText(a.fs, path)
}

func (a *Adapter) Delete(path string) error { return fsio.Delete(a.fs, path) }

func (a *Adapter) Copy(src, dst string, overwrite bool) error {
	return fsio.Copy(a.fs, src, dst, overwrite)
}

func (a *Adapter) Move(src, dst string) error { return fsio.Move(a.fs, src, dst) }

func (a *Adapter) Open(path string, mode fsio.FileMode, opts ...fsio.OpenOption) (fsio.File, error) {
	return fsio.Open(a.fs, path, mode, opts...)
}

func (a *Adapter) OpenRead(path string) (fsio.File, error) { return fsio.OpenRead(a.fs, path) }

func (a *Adapter) OpenText(path string) (*fsio.TextReader, error) {
	return fsio.OpenText(a.fs, path)
}

func (a *Adapter) OpenWrite(path string) (fsio.File, error) { return fsio.OpenWrite(a.fs, path) }

func (a *Adapter) ReadAllBytes(path string) ([]byte, error) { return fsio.ReadAllBytes(a.fs, path) }

func (a *Adapter) WriteAllBytes(path string, b []byte) error {
	return fsio.WriteAllBytes(a.fs, path, b)
}

func (a *Adapter) ReadAllText(path string, opts ...fsio.TextOption) (string, error) {
	return fsio.ReadAllText(a.fs, path, opts...)
}

func (a *Adapter) WriteAllText(path, contents string, opts ...fsio.TextOption) error {
	return fsio.WriteAllText(a.fs, path, contents, opts...)
}

func (a *Adapter) AppendAllText(path, contents string, opts ...fsio.TextOption) error {
	return fsio.AppendAllText(a.fs, path, contents, opts...)
}

func (a *Adapter) ReadAllLines(path string, opts ...fsio.TextOption) ([]string, error) {
	return fsio.ReadAllLines(a.fs, path, opts...)
}

func (a *Adapter) ReadLines(path string, opts ...fsio.TextOption) iter.Seq2[string, error] {
	return fsio.ReadLines(a.fs, path, opts...)
}

func (a *Adapter) WriteAllLines(path string, lines []string, opts ...fsio.TextOption) error {
	return fsio.WriteAllLines(a.fs, path, lines, opts...)
}

func (a *Adapter) WriteLines(path string, lines iter.Seq[string], opts ...fsio.TextOption) error {
	return fsio.WriteLines(a.fs, path, lines, opts...)
}

func (a *Adapter) AppendAllLines(path string, lines []string, opts ...fsio.TextOption) error {
	return fsio.AppendAllLines(a.fs, path, lines, opts...)
}

func (a *Adapter) AppendLines(path string, lines iter.Seq[string], opts ...fsio.TextOption) error {
	return fsio.AppendLines(a.fs, path, lines, opts...)
}

func (a *Adapter) GetAttributes(path string) (fsio.FileAttributes, error) {
	return fsio.GetAttributes(a.fs, path)
}

func (a *Adapter) SetAttributes(path string, attrs fsio.FileAttributes) error {
	return fsio.SetAttributes(a.fs, path, attrs)
}

func (a *Adapter) GetCreationTime(path string) (time.Time, error) {
	return fsio.GetCreationTime(a.fs, path)
}

func (a *Adapter) GetCreationTimeUTC(path string) (time.Time, error) {
	return fsio.GetCreationTimeUTC(a.fs, path)
}

func (a *Adapter) GetLastAccessTime(path string) (time.Time, error) {
	return fsio.GetLastAccessTime(a.fs, path)
}

func (a *Adapter) GetLastAccessTimeUTC(path string) (time.Time, error) {
	return fsio.GetLastAccessTimeUTC(a.fs, path)
}

func (a *Adapter) GetLastWriteTime(path string) (time.Time, error) {
	return fsio.GetLastWriteTime(a.fs, path)
}

func (a *Adapter) GetLastWriteTimeUTC(path string) (time.Time, error) {
	return fsio.GetLastWriteTimeUTC(a.fs, path)
}

func (a *Adapter) SetCreationTime(path string, t time.Time) error {
	return fsio.SetCreationTime(a.fs, path, t)
}

func (a *Adapter) SetCreationTimeUTC(path string, t time.Time) error {
	return fsio.SetCreationTimeUTC(a.fs, path, t)
}

func (a *Adapter) SetLastAccessTime(path string, t time.Time) error {
	return fsio.SetLastAccessTime(a.fs, path, t)
}

func (a *Adapter) SetLastAccessTimeUTC(path string, t time.Time) error {
	return fsio.SetLastAccessTimeUTC(a.fs, path, t)
}

func (a *Adapter) SetLastWriteTime(path string, t time.Time) error {
	return fsio.SetLastWriteTime(a.fs, path, t)
}

func (a *Adapter) SetLastWriteTimeUTC(path string, t time.Time) error {
	return fsio.SetLastWriteTimeUTC(a.fs, path, t)
}
