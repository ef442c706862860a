//go:build unix

package fsio

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isNotEmptyErrno(err error) bool {
	return errors.Is(err, unix.ENOTEMPTY)
}

func isNameTooLongErrno(err error) bool {
	return errors.Is(err, unix.ENAMETOOLONG)
}

func isWrongTypeErrno(err error) bool {
	return errors.Is(err, unix.EISDIR) || errors.Is(err, unix.ENOTDIR)
}

var (
	errIsDirectory  error = unix.EISDIR
	errNotDirectory error = unix.ENOTDIR
)
