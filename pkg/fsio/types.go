package fsio

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// File is an open file stream. *os.File satisfies it.
type File = afero.File

// FileMode specifies how the operating system opens a file.
type FileMode int

const (
	// ModeCreateNew creates a new file and fails if it already exists.
	ModeCreateNew FileMode = iota + 1
	// ModeCreate creates a new file or truncates an existing one.
	ModeCreate
	// ModeOpen opens an existing file.
	ModeOpen
	// ModeOpenOrCreate opens a file, creating it if missing.
	ModeOpenOrCreate
	// ModeTruncate opens an existing file and truncates it to zero bytes.
	ModeTruncate
	// ModeAppend opens or creates a file and positions writes at its end.
	ModeAppend
)

func (m FileMode) String() string {
	switch m {
	case ModeCreateNew:
		return "CreateNew"
	case ModeCreate:
		return "Create"
	case ModeOpen:
		return "Open"
	case ModeOpenOrCreate:
		return "OpenOrCreate"
	case ModeTruncate:
		return "Truncate"
	case ModeAppend:
		return "Append"
	default:
		return fmt.Sprintf("FileMode(%d)", int(m))
	}
}

// FileAccess specifies read and write access to an opened file.
type FileAccess int

const (
	AccessRead FileAccess = iota + 1
	AccessWrite
	AccessReadWrite
)

func (a FileAccess) String() string {
	switch a {
	case AccessRead:
		return "Read"
	case AccessWrite:
		return "Write"
	case AccessReadWrite:
		return "ReadWrite"
	default:
		return fmt.Sprintf("FileAccess(%d)", int(a))
	}
}

// FileShare is the access other openers of the same file are granted.
// POSIX systems have no mandatory share modes; the value is carried on the
// options and does not change the open call.
type FileShare int

const (
	ShareNone FileShare = iota
	ShareRead
	ShareWrite
	ShareReadWrite
	ShareDelete
)

func (s FileShare) String() string {
	switch s {
	case ShareNone:
		return "None"
	case ShareRead:
		return "Read"
	case ShareWrite:
		return "Write"
	case ShareReadWrite:
		return "ReadWrite"
	case ShareDelete:
		return "Delete"
	default:
		return fmt.Sprintf("FileShare(%d)", int(s))
	}
}

// OpenOptions is the resolved configuration of an Open call.
type OpenOptions struct {
	Mode   FileMode
	Access FileAccess
	Share  FileShare
}

// OpenOption configures an Open call.
type OpenOption func(*OpenOptions)

// WithAccess sets the access requested from the file.
func WithAccess(access FileAccess) OpenOption {
	return func(o *OpenOptions) { o.Access = access }
}

// WithShare sets the share mode granted to other openers.
func WithShare(share FileShare) OpenOption {
	return func(o *OpenOptions) { o.Share = share }
}

// ResolveOpenOptions applies opts over the defaults for mode: read/write
// access (write-only for ModeAppend) and no sharing.
func ResolveOpenOptions(mode FileMode, opts ...OpenOption) OpenOptions {
	o := OpenOptions{Mode: mode, Access: AccessReadWrite, Share: ShareNone}
	if mode == ModeAppend {
		o.Access = AccessWrite
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Flag returns the os.OpenFile flag for the options.
// Append and truncate need write access; anything else that cannot be
// expressed as a flag yields ErrInvalidOpenOptions.
func (o OpenOptions) Flag() (int, error) {
	var flag int
	switch o.Access {
	case AccessRead:
		flag = os.O_RDONLY
	case AccessWrite:
		flag = os.O_WRONLY
	case AccessReadWrite:
		flag = os.O_RDWR
	default:
		return 0, fmt.Errorf("%w: access %s", ErrInvalidOpenOptions, o.Access)
	}

	switch o.Mode {
	case ModeCreateNew:
		flag |= os.O_CREATE | os.O_EXCL
	case ModeCreate:
		flag |= os.O_CREATE | os.O_TRUNC
	case ModeOpen:
	case ModeOpenOrCreate:
		flag |= os.O_CREATE
	case ModeTruncate:
		flag |= os.O_TRUNC
	case ModeAppend:
		flag |= os.O_CREATE | os.O_APPEND
	default:
		return 0, fmt.Errorf("%w: mode %s", ErrInvalidOpenOptions, o.Mode)
	}

	if o.Access == AccessRead {
		switch o.Mode {
		case ModeCreateNew, ModeCreate, ModeTruncate, ModeAppend:
			return 0, fmt.Errorf("%w: mode %s requires write access", ErrInvalidOpenOptions, o.Mode)
		}
	}
	if o.Share < ShareNone || o.Share > ShareDelete {
		return 0, fmt.Errorf("%w: share %s", ErrInvalidOpenOptions, o.Share)
	}
	return flag, nil
}

// SearchOption selects whether a listing descends into subdirectories.
type SearchOption int

const (
	// TopDirectoryOnly lists only the directory itself.
	TopDirectoryOnly SearchOption = iota
	// AllDirectories lists the directory and all its descendants.
	AllDirectories
)

func (s SearchOption) String() string {
	switch s {
	case TopDirectoryOnly:
		return "TopDirectoryOnly"
	case AllDirectories:
		return "AllDirectories"
	default:
		return fmt.Sprintf("SearchOption(%d)", int(s))
	}
}

// ListOptions is the resolved configuration of a directory listing.
type ListOptions struct {
	Pattern string
	Search  SearchOption
}

// ListOption configures a directory listing.
type ListOption func(*ListOptions)

// WithPattern filters entries by name using filepath.Match syntax.
func WithPattern(pattern string) ListOption {
	return func(o *ListOptions) { o.Pattern = pattern }
}

// WithSearchOption selects top-level or recursive listing.
func WithSearchOption(search SearchOption) ListOption {
	return func(o *ListOptions) { o.Search = search }
}

// ResolveListOptions applies opts over the defaults: pattern "*", top directory only.
func ResolveListOptions(opts ...ListOption) ListOptions {
	o := ListOptions{Pattern: "*", Search: TopDirectoryOnly}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

const (
	defaultFilePerm = 0o666
	defaultDirPerm  = 0o777
)
