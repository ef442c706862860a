//go:build unix

package fsio

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClassify_Errno(t *testing.T) {
	tests := []struct {
		errno unix.Errno
		want  ErrorKind
	}{
		{unix.ENOENT, KindNotFound},
		{unix.EACCES, KindAccessDenied},
		{unix.EPERM, KindAccessDenied},
		{unix.ENAMETOOLONG, KindPathTooLong},
		{unix.EEXIST, KindAlreadyExists},
		{unix.ENOTEMPTY, KindDirectoryNotEmpty},
		{unix.EISDIR, KindWrongType},
		{unix.ENOTDIR, KindWrongType},
		{unix.EIO, KindIO},
	}
	for _, tt := range tests {
		t.Run(tt.errno.Error(), func(t *testing.T) {
			err := &fs.PathError{Op: "op", Path: "/p", Err: tt.errno}
			assert.Equal(t, tt.want, Classify(err))
		})
	}
}

func TestClassify_RealErrors(t *testing.T) {
	b := osBackend(t)

	_, err := b.fs.Stat(b.path(strings.Repeat("n", 300)))
	require.Error(t, err)
	assert.True(t, IsNameTooLong(err), "got %v", err)

	p := writeFile(t, b, "file.txt", "x")
	_, err = b.fs.Stat(p + "/child")
	require.Error(t, err)
	assert.True(t, IsWrongType(err), "got %v", err)
	assert.Equal(t, KindWrongType, Classify(err))
}
