package fsio

import (
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// FileAttributes is the attribute set of a file or directory.
type FileAttributes uint32

const (
	ReadOnly          FileAttributes = 0x0001
	Hidden            FileAttributes = 0x0002
	System            FileAttributes = 0x0004
	Directory         FileAttributes = 0x0010
	Archive           FileAttributes = 0x0020
	Device            FileAttributes = 0x0040
	Normal            FileAttributes = 0x0080
	Temporary         FileAttributes = 0x0100
	SparseFile        FileAttributes = 0x0200
	ReparsePoint      FileAttributes = 0x0400
	Compressed        FileAttributes = 0x0800
	Offline           FileAttributes = 0x1000
	NotContentIndexed FileAttributes = 0x2000
	Encrypted         FileAttributes = 0x4000
)

var attributeNames = []struct {
	attr FileAttributes
	name string
}{
	{ReadOnly, "ReadOnly"},
	{Hidden, "Hidden"},
	{System, "System"},
	{Directory, "Directory"},
	{Archive, "Archive"},
	{Device, "Device"},
	{Normal, "Normal"},
	{Temporary, "Temporary"},
	{SparseFile, "SparseFile"},
	{ReparsePoint, "ReparsePoint"},
	{Compressed, "Compressed"},
	{Offline, "Offline"},
	{NotContentIndexed, "NotContentIndexed"},
	{Encrypted, "Encrypted"},
}

// Has reports whether every bit of attr is set.
func (a FileAttributes) Has(attr FileAttributes) bool { return a&attr == attr }

// String lists the set attributes, comma separated.
func (a FileAttributes) String() string {
	if a == 0 {
		return "0"
	}
	var names []string
	for _, n := range attributeNames {
		if a.Has(n.attr) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ", ")
}

// attributesOf derives attributes from stat data.
func attributesOf(info fs.FileInfo) FileAttributes {
	var attrs FileAttributes
	mode := info.Mode()

	if mode.IsDir() {
		attrs |= Directory
	}
	if mode&fs.ModeSymlink != 0 {
		attrs |= ReparsePoint
	}
	if mode&fs.ModeDevice != 0 {
		attrs |= Device
	}
	if isHiddenName(info.Name()) {
		attrs |= Hidden
	}
	if mode.Perm()&0o200 == 0 {
		attrs |= ReadOnly
	}
	if attrs == 0 {
		attrs = Normal
	}
	return attrs
}

func isHiddenName(name string) bool {
	return len(name) > 1 && name[0] == '.' && name != ".."
}

// setAttributes applies the ReadOnly bit of attrs to path. Other attributes
// have no POSIX counterpart and are ignored.
func setAttributes(fsys afero.Fs, path string, attrs FileAttributes) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	perm := info.Mode().Perm()
	if attrs.Has(ReadOnly) {
		perm &^= 0o222
	} else {
		perm |= 0o200
	}
	return fsys.Chmod(path, perm)
}
