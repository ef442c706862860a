package fsio

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/spf13/afero"
)

type listKind int

const (
	listFiles listKind = iota
	listDirectories
	listAll
)

// walk lists the directory breadth-first, reading one directory per step.
// Within a directory, entries come in name order. Symlinks are listed but
// never followed.
func (d *DirectoryInfo) walk(kind listKind, opts ...ListOption) iter.Seq2[FileSystemInfo, error] {
	o := ResolveListOptions(opts...)
	fsys := d.fsys
	root := d.fullPath

	return func(yield func(FileSystemInfo, error) bool) {
		if _, err := filepath.Match(o.Pattern, ""); err != nil {
			yield(nil, err)
			return
		}

		queue := []string{root}
		for len(queue) > 0 {
			dir := queue[0]
			queue = queue[1:]

			infos, err := afero.ReadDir(fsys, dir)
			if err != nil {
				yield(nil, err)
				return
			}

			for _, info := range infos {
				path := filepath.Join(dir, info.Name())
				isDir := info.IsDir()
				if isDir && o.Search == AllDirectories {
					queue = append(queue, path)
				}
				if matched, _ := filepath.Match(o.Pattern, info.Name()); !matched {
					continue
				}

				item := listItem(fsys, path, info, kind)
				if item == nil {
					continue
				}
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

func listItem(fsys afero.Fs, path string, info fs.FileInfo, kind listKind) FileSystemInfo {
	isDir := info.IsDir()
	symlink := info.Mode()&fs.ModeSymlink != 0

	switch {
	case isDir && kind != listFiles:
		return newDirectoryInfoFromStat(fsys, path, info)
	case !isDir && kind != listDirectories:
		if symlink {
			// Listing data describes the link; the handle stats the target.
			return NewFileInfo(fsys, path)
		}
		return newFileInfoFromStat(fsys, path, info)
	default:
		return nil
	}
}

// EnumerateDirectories returns a lazy sequence of subdirectories.
func (d *DirectoryInfo) EnumerateDirectories(opts ...ListOption) iter.Seq2[*DirectoryInfo, error] {
	return narrow[*DirectoryInfo](d.walk(listDirectories, opts...))
}

// EnumerateFiles returns a lazy sequence of files.
func (d *DirectoryInfo) EnumerateFiles(opts ...ListOption) iter.Seq2[*FileInfo, error] {
	return narrow[*FileInfo](d.walk(listFiles, opts...))
}

// EnumerateFileSystemInfos returns a lazy sequence of files and subdirectories.
func (d *DirectoryInfo) EnumerateFileSystemInfos(opts ...ListOption) iter.Seq2[FileSystemInfo, error] {
	return d.walk(listAll, opts...)
}

// GetDirectories returns the subdirectories.
func (d *DirectoryInfo) GetDirectories(opts ...ListOption) ([]*DirectoryInfo, error) {
	return collect(d.EnumerateDirectories(opts...))
}

// GetFiles returns the files.
func (d *DirectoryInfo) GetFiles(opts ...ListOption) ([]*FileInfo, error) {
	return collect(d.EnumerateFiles(opts...))
}

// GetFileSystemInfos returns the files and subdirectories.
func (d *DirectoryInfo) GetFileSystemInfos(opts ...ListOption) ([]FileSystemInfo, error) {
	return collect(d.EnumerateFileSystemInfos(opts...))
}

func narrow[T FileSystemInfo](seq iter.Seq2[FileSystemInfo, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for item, err := range seq {
			var zero T
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(item.(T), nil) {
				return
			}
		}
	}
}

func collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	items := []T{}
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
