//go:build !unix && !windows

package fsio

import "errors"

var (
	errIsDirectory  = errors.New("is a directory")
	errNotDirectory = errors.New("not a directory")
)

func isNotEmptyErrno(error) bool { return false }

func isNameTooLongErrno(error) bool { return false }

func isWrongTypeErrno(err error) bool {
	return errors.Is(err, errIsDirectory) || errors.Is(err, errNotDirectory)
}
