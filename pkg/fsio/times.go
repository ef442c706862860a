package fsio

import (
	"errors"
	"io/fs"
	"time"

	"github.com/djherbis/times"
	"github.com/spf13/afero"
)

// timestamps holds the three times of one stat snapshot.
type timestamps struct {
	creation time.Time
	access   time.Time
	write    time.Time
}

// timestampsOf reads access and birth times from the platform stat data when
// the backend provides it. Backends without it (afero.MemMapFs) report the
// modification time for all three.
//
// Without a birth time the creation time is the older of the change and
// modification times.
func timestampsOf(info fs.FileInfo) timestamps {
	write := info.ModTime()
	if info.Sys() == nil {
		return timestamps{creation: write, access: write, write: write}
	}

	ts := times.Get(info)
	creation := write
	switch {
	case ts.HasBirthTime():
		creation = ts.BirthTime()
	case ts.HasChangeTime() && ts.ChangeTime().Before(write):
		creation = ts.ChangeTime()
	}
	return timestamps{creation: creation, access: ts.AccessTime(), write: write}
}

func statTimes(fsys afero.Fs, path string) (timestamps, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return timestamps{}, err
	}
	return timestampsOf(info), nil
}

// setCreationTime fails with errors.ErrUnsupported: none of the backends can
// set a birth time.
func setCreationTime(fsys afero.Fs, path string, _ time.Time) error {
	if _, err := fsys.Stat(path); err != nil {
		return err
	}
	return &fs.PathError{Op: "chtimes", Path: path, Err: errors.ErrUnsupported}
}

func setAccessTime(fsys afero.Fs, path string, t time.Time) error {
	ts, err := statTimes(fsys, path)
	if err != nil {
		return err
	}
	return fsys.Chtimes(path, t, ts.write)
}

func setWriteTime(fsys afero.Fs, path string, t time.Time) error {
	ts, err := statTimes(fsys, path)
	if err != nil {
		return err
	}
	return fsys.Chtimes(path, ts.access, t)
}
