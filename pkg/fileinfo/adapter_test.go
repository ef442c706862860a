package fileinfo

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

func memFS(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/data", 0o755))
	return fsys
}

func TestAdapter_Unbound(t *testing.T) {
	a := NewWithFS(memFS(t))

	assert.Nil(t, a.FileInfo())
	assert.False(t, a.Exists())
	assert.False(t, a.IsReadOnly())
	assert.Empty(t, a.FullName())
	assert.Empty(t, a.Name())
	assert.Empty(t, a.String())
	assert.Nil(t, a.Directory())

	_, err := a.Length()
	assert.ErrorIs(t, err, fsio.ErrUnbound)
	_, err = a.Create()
	assert.ErrorIs(t, err, fsio.ErrUnbound)
	_, err = a.LastAccessTimeUTC()
	assert.ErrorIs(t, err, fsio.ErrUnbound)
	assert.ErrorIs(t, a.Delete(), fsio.ErrUnbound)
	assert.ErrorIs(t, a.Refresh(), fsio.ErrUnbound)
	assert.ErrorIs(t, a.SetLastWriteTime(time.Now()), fsio.ErrUnbound)
	assert.ErrorIs(t, a.MoveTo("/data/x"), fsio.ErrUnbound)
}

func TestAdapter_BindTwiceKeepsOnlySecondPath(t *testing.T) {
	fsys := memFS(t)
	require.NoError(t, afero.WriteFile(fsys, "/data/first.txt", []byte("12345"), 0o644))

	a := NewWithFS(fsys)
	a.Bind("/data/first.txt")
	require.True(t, a.Exists())
	n, err := a.Length()
	require.NoError(t, err)
	require.Equal(t, int64(5), n)

	a.Bind("/data/second.log")
	assert.Equal(t, "/data/second.log", a.FullName())
	assert.Equal(t, "second.log", a.Name())
	assert.Equal(t, ".log", a.Extension())
	assert.False(t, a.Exists())
	_, err = a.Length()
	assert.True(t, fsio.IsNotExist(err))
}

func TestAdapter_CreateMeansCreateOnDisk(t *testing.T) {
	fsys := memFS(t)
	a := NewWithFS(fsys)
	a.Bind("/data/made.txt")

	exists, err := afero.Exists(fsys, "/data/made.txt")
	require.NoError(t, err)
	require.False(t, exists)

	f, err := a.Create()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.True(t, a.Exists())
}

func TestAdapter_CacheAndRefresh(t *testing.T) {
	fsys := memFS(t)
	require.NoError(t, afero.WriteFile(fsys, "/data/c.txt", []byte("x"), 0o644))
	a := NewWithFS(fsys)
	a.Bind("/data/c.txt")
	require.True(t, a.Exists())

	require.NoError(t, fsys.Remove("/data/c.txt"))
	assert.True(t, a.Exists())
	require.NoError(t, a.Refresh())
	assert.False(t, a.Exists())
}

func TestAdapter_Forwarding(t *testing.T) {
	fsys := memFS(t)
	a := NewWithFS(fsys)
	a.Bind("/data/doc.txt")

	w, err := a.CreateText()
	require.NoError(t, err)
	require.NoError(t, w.WriteLine("hello"))
	require.NoError(t, w.Close())

	aw, err := a.AppendText()
	require.NoError(t, err)
	require.NoError(t, aw.WriteLine("again"))
	require.NoError(t, aw.Close())

	r, err := a.OpenText()
	require.NoError(t, err)
	text, err := r.ReadToEnd()
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "hello"+fsio.NewLine+"again"+fsio.NewLine, text)

	assert.Equal(t, "/data", a.DirectoryName())
	assert.Equal(t, "/data", a.Directory().FullName())
	assert.Same(t, a.FileInfo(), a.FileInfo())

	c, err := a.CopyTo("/data/copy.txt", false)
	require.NoError(t, err)
	assert.True(t, c.Exists())

	f, err := a.Open(fsio.ModeOpen, fsio.WithAccess(fsio.AccessRead))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	f, err = a.OpenRead()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	f, err = a.OpenWrite()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, a.SetReadOnly(true))
	assert.True(t, a.IsReadOnly())
	attrs, err := a.Attributes()
	require.NoError(t, err)
	assert.True(t, attrs.Has(fsio.ReadOnly))
	require.NoError(t, a.SetAttributes(fsio.Normal))
	assert.False(t, a.IsReadOnly())

	require.NoError(t, a.MoveTo("/data/moved.txt"))
	assert.Equal(t, "/data/moved.txt", a.FullName())
	assert.Equal(t, "/data/moved.txt", a.String())

	require.NoError(t, a.Delete())
	assert.False(t, a.Exists())
}

func TestAdapter_Timestamps(t *testing.T) {
	fsys := memFS(t)
	require.NoError(t, afero.WriteFile(fsys, "/data/t.txt", []byte("x"), 0o644))
	a := NewWithFS(fsys)
	a.Bind("/data/t.txt")
	stamp := time.Date(2018, 8, 8, 8, 8, 8, 0, time.UTC)

	require.NoError(t, a.SetLastWriteTimeUTC(stamp))
	got, err := a.LastWriteTimeUTC()
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got))

	require.NoError(t, a.SetLastWriteTime(stamp.Local()))
	got, err = a.LastWriteTime()
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got))

	require.NoError(t, a.SetLastAccessTime(stamp))
	require.NoError(t, a.SetLastAccessTimeUTC(stamp))
	_, err = a.LastAccessTime()
	require.NoError(t, err)
	_, err = a.CreationTime()
	require.NoError(t, err)
	_, err = a.CreationTimeUTC()
	require.NoError(t, err)

	assert.ErrorIs(t, a.SetCreationTime(stamp), errors.ErrUnsupported)
	assert.ErrorIs(t, a.SetCreationTimeUTC(stamp), errors.ErrUnsupported)
}

func TestNewForPath_LastAccessTimeUTC(t *testing.T) {
	p := filepath.Join(t.TempDir(), "atime.txt")
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), p, []byte("x"), 0o644))
	access := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	a := NewForPath(p)
	require.NoError(t, a.SetLastAccessTimeUTC(access))

	got, err := a.LastAccessTimeUTC()
	require.NoError(t, err)
	assert.True(t, access.Equal(got), "got %v", got)
	assert.Equal(t, time.UTC, got.Location())
}
