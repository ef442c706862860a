//go:build windows

package fsio

import (
	"errors"

	"golang.org/x/sys/windows"
)

func isNotEmptyErrno(err error) bool {
	return errors.Is(err, windows.ERROR_DIR_NOT_EMPTY)
}

func isNameTooLongErrno(err error) bool {
	return errors.Is(err, windows.ERROR_FILENAME_EXCED_RANGE)
}

func isWrongTypeErrno(err error) bool {
	return errors.Is(err, windows.ERROR_DIRECTORY)
}

var (
	errIsDirectory  error = windows.ERROR_DIRECTORY
	errNotDirectory error = windows.ERROR_DIRECTORY
)
