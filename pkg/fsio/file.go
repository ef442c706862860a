package fsio

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"slices"
	"time"

	"github.com/spf13/afero"
)

// ErrSameFile is returned by Copy when the source and destination name the same file.
var ErrSameFile = errors.New("source and destination are the same file")

// Exists reports whether path names an existing file. Directories and
// unreadable paths report false.
func Exists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// Create creates or truncates path and opens it for reading and writing.
func Create(fsys afero.Fs, path string) (File, error) {
	return fsys.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, defaultFilePerm)
}

// CreateText creates or truncates path and opens a UTF-8 text writer on it.
func CreateText(fsys afero.Fs, path string) (*TextWriter, error) {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFilePerm)
	if err != nil {
		return nil, err
	}
	return newTextWriter(f, DefaultEncoding), nil
}

// AppendText opens a UTF-8 text writer that appends to path, creating it if missing.
func AppendText(fsys afero.Fs, path string) (*TextWriter, error) {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, defaultFilePerm)
	if err != nil {
		return nil, err
	}
	return newTextWriter(f, DefaultEncoding), nil
}

// Delete removes the file at path. A directory at path fails with a
// wrong-type error and is left in place.
func Delete(fsys afero.Fs, path string) error {
	if info, err := lstat(fsys, path); err == nil && info.IsDir() {
		return &fs.PathError{Op: "remove", Path: path, Err: errIsDirectory}
	}
	return fsys.Remove(path)
}

// Copy copies the content and permission bits of src to dst. Unless
// overwrite is set, an existing dst fails with an already-exists error.
func Copy(fsys afero.Fs, src, dst string, overwrite bool) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: errIsDirectory}
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if overwrite {
		if dstInfo, err := fsys.Stat(dst); err == nil && sameFile(src, dst, info, dstInfo) {
			return &fs.PathError{Op: "copy", Path: dst, Err: ErrSameFile}
		}
	} else {
		flag |= os.O_EXCL
	}

	out, err := fsys.OpenFile(dst, flag, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return fsys.Chmod(dst, info.Mode().Perm())
}

func sameFile(src, dst string, a, b fs.FileInfo) bool {
	if a.Sys() != nil && b.Sys() != nil {
		return os.SameFile(a, b)
	}
	return fullPath(src) == fullPath(dst)
}

// Move renames the file src to dst. An existing dst fails with an
// already-exists error and is left unchanged; a directory at src fails with
// a wrong-type error.
func Move(fsys afero.Fs, src, dst string) error {
	info, err := lstat(fsys, src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "rename", Path: src, Err: errIsDirectory}
	}
	return rename(fsys, src, dst)
}

// rename refuses to replace dst, which os.Rename does silently on POSIX.
func rename(fsys afero.Fs, src, dst string) error {
	if _, err := lstat(fsys, dst); err == nil {
		return &fs.PathError{Op: "rename", Path: dst, Err: fs.ErrExist}
	}
	return fsys.Rename(src, dst)
}

// lstat does not follow a final symlink when the backend can tell links apart.
func lstat(fsys afero.Fs, path string) (fs.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

// Open opens path with the given mode. Options default to read/write access
// (write-only for ModeAppend) and no sharing.
func Open(fsys afero.Fs, path string, mode FileMode, opts ...OpenOption) (File, error) {
	flag, err := ResolveOpenOptions(mode, opts...).Flag()
	if err != nil {
		return nil, err
	}
	return fsys.OpenFile(path, flag, defaultFilePerm)
}

// OpenRead opens an existing file for reading.
func OpenRead(fsys afero.Fs, path string) (File, error) {
	return fsys.Open(path)
}

// OpenText opens a UTF-8 text reader on an existing file.
func OpenText(fsys afero.Fs, path string) (*TextReader, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	return newTextReader(f, DefaultEncoding), nil
}

// OpenWrite opens path for writing, creating it if missing. Existing content
// is kept and overwritten from the start.
func OpenWrite(fsys afero.Fs, path string) (File, error) {
	return fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE, defaultFilePerm)
}

// ReadAllBytes returns the content of path.
func ReadAllBytes(fsys afero.Fs, path string) ([]byte, error) {
	return afero.ReadFile(fsys, path)
}

// WriteAllBytes creates or truncates path and writes b to it.
func WriteAllBytes(fsys afero.Fs, path string, b []byte) error {
	return afero.WriteFile(fsys, path, b, defaultFilePerm)
}

// ReadAllText returns the decoded content of path.
func ReadAllText(fsys afero.Fs, path string, opts ...TextOption) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	r := newTextReader(f, ResolveTextOptions(opts...).Encoding)
	defer r.Close()
	return r.ReadToEnd()
}

// WriteAllText creates or truncates path and writes the encoded text to it.
func WriteAllText(fsys afero.Fs, path, contents string, opts ...TextOption) error {
	return writeText(fsys, path, os.O_TRUNC, ResolveTextOptions(opts...), func(w *TextWriter) error {
		_, err := w.WriteString(contents)
		return err
	})
}

// AppendAllText appends the encoded text to path, creating it if missing.
func AppendAllText(fsys afero.Fs, path, contents string, opts ...TextOption) error {
	return writeText(fsys, path, os.O_APPEND, ResolveTextOptions(opts...), func(w *TextWriter) error {
		_, err := w.WriteString(contents)
		return err
	})
}

// ReadAllLines returns every line of path.
func ReadAllLines(fsys afero.Fs, path string, opts ...TextOption) ([]string, error) {
	lines := []string{}
	for line, err := range ReadLines(fsys, path, opts...) {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ReadLines returns a lazy sequence over the lines of path. The file is
// opened when iteration starts and closed when it ends or the loop breaks.
// An open or read failure is yielded once as the error of the final pair.
func ReadLines(fsys afero.Fs, path string, opts ...TextOption) iter.Seq2[string, error] {
	enc := ResolveTextOptions(opts...).Encoding
	return func(yield func(string, error) bool) {
		f, err := fsys.Open(path)
		if err != nil {
			yield("", err)
			return
		}
		r := newTextReader(f, enc)
		defer r.Close()

		for {
			line, err := r.ReadLine()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// WriteAllLines creates or truncates path and writes each line followed by NewLine.
func WriteAllLines(fsys afero.Fs, path string, lines []string, opts ...TextOption) error {
	return WriteLines(fsys, path, slices.Values(lines), opts...)
}

// WriteLines is WriteAllLines over a sequence. The sequence is consumed once.
func WriteLines(fsys afero.Fs, path string, lines iter.Seq[string], opts ...TextOption) error {
	return writeText(fsys, path, os.O_TRUNC, ResolveTextOptions(opts...), writeLines(lines))
}

// AppendAllLines appends each line followed by NewLine to path, creating it if missing.
func AppendAllLines(fsys afero.Fs, path string, lines []string, opts ...TextOption) error {
	return AppendLines(fsys, path, slices.Values(lines), opts...)
}

// AppendLines is AppendAllLines over a sequence. The sequence is consumed once.
func AppendLines(fsys afero.Fs, path string, lines iter.Seq[string], opts ...TextOption) error {
	return writeText(fsys, path, os.O_APPEND, ResolveTextOptions(opts...), writeLines(lines))
}

func writeLines(lines iter.Seq[string]) func(*TextWriter) error {
	return func(w *TextWriter) error {
		for line := range lines {
			if err := w.WriteLine(line); err != nil {
				return err
			}
		}
		return nil
	}
}

// writeText opens path write-only with O_CREATE plus extra, runs write and
// closes the writer.
func writeText(fsys afero.Fs, path string, extra int, o TextOptions, write func(*TextWriter) error) error {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|extra, defaultFilePerm)
	if err != nil {
		return err
	}

	enc := o.Encoding
	if extra&os.O_APPEND != 0 {
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return err
		}
		enc = appendEncoding(enc, info.Size())
	}

	w := newTextWriter(f, enc)
	if err := write(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// GetAttributes returns the attributes of the file or directory at path.
func GetAttributes(fsys afero.Fs, path string) (FileAttributes, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return 0, err
	}
	return attributesOf(info), nil
}

// SetAttributes applies attrs to path. Only ReadOnly has an effect.
func SetAttributes(fsys afero.Fs, path string, attrs FileAttributes) error {
	return setAttributes(fsys, path, attrs)
}

// GetCreationTime returns the creation time of path in local time.
func GetCreationTime(fsys afero.Fs, path string) (time.Time, error) {
	ts, err := statTimes(fsys, path)
	return ts.creation.Local(), err
}

// GetCreationTimeUTC returns the creation time of path in UTC.
func GetCreationTimeUTC(fsys afero.Fs, path string) (time.Time, error) {
	ts, err := statTimes(fsys, path)
	return ts.creation.UTC(), err
}

// GetLastAccessTime returns the last access time of path in local time.
func GetLastAccessTime(fsys afero.Fs, path string) (time.Time, error) {
	ts, err := statTimes(fsys, path)
	return ts.access.Local(), err
}

// GetLastAccessTimeUTC returns the last access time of path in UTC.
func GetLastAccessTimeUTC(fsys afero.Fs, path string) (time.Time, error) {
	ts, err := statTimes(fsys, path)
	return ts.access.UTC(), err
}

// GetLastWriteTime returns the last write time of path in local time.
func GetLastWriteTime(fsys afero.Fs, path string) (time.Time, error) {
	ts, err := statTimes(fsys, path)
	return ts.write.Local(), err
}

// GetLastWriteTimeUTC returns the last write time of path in UTC.
func GetLastWriteTimeUTC(fsys afero.Fs, path string) (time.Time, error) {
	ts, err := statTimes(fsys, path)
	return ts.write.UTC(), err
}

// SetCreationTime sets the creation time of path. No backend can set a birth
// time, so an existing path fails with errors.ErrUnsupported.
func SetCreationTime(fsys afero.Fs, path string, t time.Time) error {
	return setCreationTime(fsys, path, t)
}

// SetCreationTimeUTC sets the creation time of path from a UTC time.
func SetCreationTimeUTC(fsys afero.Fs, path string, t time.Time) error {
	return setCreationTime(fsys, path, t.UTC())
}

// SetLastAccessTime sets the last access time of path, keeping its last write time.
func SetLastAccessTime(fsys afero.Fs, path string, t time.Time) error {
	return setAccessTime(fsys, path, t)
}

// SetLastAccessTimeUTC sets the last access time of path from a UTC time.
func SetLastAccessTimeUTC(fsys afero.Fs, path string, t time.Time) error {
	return setAccessTime(fsys, path, t.UTC())
}

// SetLastWriteTime sets the last write time of path, keeping its last access time.
func SetLastWriteTime(fsys afero.Fs, path string, t time.Time) error {
	return setWriteTime(fsys, path, t)
}

// SetLastWriteTimeUTC sets the last write time of path from a UTC time.
func SetLastWriteTimeUTC(fsys afero.Fs, path string, t time.Time) error {
	return setWriteTime(fsys, path, t.UTC())
}
