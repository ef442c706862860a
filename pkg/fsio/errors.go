package fsio

import (
	"errors"
	"io/fs"
)

var (
	// ErrUnbound is returned by a wrapper whose handle has not been bound to a path.
	ErrUnbound = errors.New("handle is not bound to a path")

	// ErrInvalidOpenOptions indicates a mode, access and share combination that cannot be opened.
	ErrInvalidOpenOptions = errors.New("invalid open options")
)

// ErrorKind is the platform error category of a filesystem error.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNotFound
	KindAccessDenied
	KindPathTooLong
	KindAlreadyExists
	KindDirectoryNotEmpty
	KindWrongType
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not-found"
	case KindAccessDenied:
		return "access-denied"
	case KindPathTooLong:
		return "path-too-long"
	case KindAlreadyExists:
		return "already-exists"
	case KindDirectoryNotEmpty:
		return "directory-not-empty"
	case KindWrongType:
		return "wrong-type"
	default:
		return "io"
	}
}

// Classify reports the category of err. It only inspects the error chain;
// callers still get the original error from the operation that failed.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case IsNotExist(err):
		return KindNotFound
	case IsPermission(err):
		return KindAccessDenied
	case IsNameTooLong(err):
		return KindPathTooLong
	case IsNotEmpty(err):
		return KindDirectoryNotEmpty
	case IsExist(err):
		return KindAlreadyExists
	case IsWrongType(err):
		return KindWrongType
	default:
		return KindIO
	}
}

// IsNotExist reports whether err says a file or directory does not exist.
func IsNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }

// IsPermission reports whether err is an access-denied error.
func IsPermission(err error) bool { return errors.Is(err, fs.ErrPermission) }

// IsExist reports whether err says the target already exists.
func IsExist(err error) bool { return errors.Is(err, fs.ErrExist) && !IsNotEmpty(err) }

// IsNotEmpty reports whether err is a directory-not-empty error.
func IsNotEmpty(err error) bool { return isNotEmptyErrno(err) }

// IsNameTooLong reports whether err says the path or a component is too long.
func IsNameTooLong(err error) bool { return isNameTooLongErrno(err) }

// IsWrongType reports whether err comes from using a file as a directory or
// a directory as a file.
func IsWrongType(err error) bool { return isWrongTypeErrno(err) }
