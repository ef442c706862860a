package dirinfo

import (
	"iter"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

func seedTree(t *testing.T, fsys afero.Fs, root string) {
	t.Helper()
	for _, rel := range []string{"a.txt", "b.log", "sub/c.txt", "sub/deeper/d.txt"} {
		p := filepath.Join(root, rel)
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(fsys, p, []byte(rel), 0o644))
	}
	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "empty"), 0o755))
}

func fullNames[T fsio.FileSystemInfo](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.FullName())
	}
	return out
}

func drain[T fsio.FileSystemInfo](t *testing.T, seq iter.Seq2[T, error]) []string {
	t.Helper()
	var out []string
	for item, err := range seq {
		require.NoError(t, err)
		out = append(out, item.FullName())
	}
	return out
}

func TestAdapter_Unbound(t *testing.T) {
	a := NewWithFS(afero.NewMemMapFs())

	assert.Nil(t, a.DirectoryInfo())
	assert.False(t, a.Exists())
	assert.Nil(t, a.Parent())
	assert.Nil(t, a.Root())
	assert.Empty(t, a.FullName())

	assert.ErrorIs(t, a.Create(), fsio.ErrUnbound)
	assert.ErrorIs(t, a.Delete(), fsio.ErrUnbound)
	assert.ErrorIs(t, a.DeleteRecursive(), fsio.ErrUnbound)
	_, err := a.GetFiles()
	assert.ErrorIs(t, err, fsio.ErrUnbound)
	_, err = a.CreateSubdirectory("x")
	assert.ErrorIs(t, err, fsio.ErrUnbound)

	calls := 0
	for item, err := range a.EnumerateFileSystemInfos() {
		calls++
		assert.Nil(t, item)
		assert.ErrorIs(t, err, fsio.ErrUnbound)
	}
	assert.Equal(t, 1, calls)
}

func TestAdapter_BindTwiceKeepsOnlySecondPath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seedTree(t, fsys, "/one")

	a := NewWithFS(fsys)
	a.Bind("/one")
	require.True(t, a.Exists())
	files, err := a.GetFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)

	a.Bind("/two")
	assert.Equal(t, "/two", a.FullName())
	assert.Equal(t, "two", a.Name())
	assert.False(t, a.Exists())
	_, err = a.GetFiles()
	assert.True(t, fsio.IsNotExist(err))
}

func TestAdapter_EnumerateAndGetAgree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seedTree(t, fsys, "/tree")
	a := NewWithFS(fsys)
	a.Bind("/tree")

	for _, opts := range [][]fsio.ListOption{
		nil,
		{fsio.WithPattern("*.txt")},
		{fsio.WithSearchOption(fsio.AllDirectories)},
		{fsio.WithPattern("*.txt"), fsio.WithSearchOption(fsio.AllDirectories)},
	} {
		dirs, err := a.GetDirectories(opts...)
		require.NoError(t, err)
		assert.ElementsMatch(t, fullNames(dirs), drain(t, a.EnumerateDirectories(opts...)))

		files, err := a.GetFiles(opts...)
		require.NoError(t, err)
		assert.ElementsMatch(t, fullNames(files), drain(t, a.EnumerateFiles(opts...)))

		all, err := a.GetFileSystemInfos(opts...)
		require.NoError(t, err)
		assert.ElementsMatch(t, fullNames(all), drain(t, a.EnumerateFileSystemInfos(opts...)))
	}

	files, err := a.GetFiles(fsio.WithPattern("*.txt"), fsio.WithSearchOption(fsio.AllDirectories))
	require.NoError(t, err)
	assert.Equal(t, []string{"/tree/a.txt", "/tree/sub/c.txt", "/tree/sub/deeper/d.txt"}, fullNames(files))
}

func TestAdapter_DeleteNonEmptyThenRecursive(t *testing.T) {
	root := t.TempDir()
	seedTree(t, afero.NewOsFs(), root)
	a := NewForPath(filepath.Join(root, "sub"))

	err := a.Delete()
	require.Error(t, err)
	assert.True(t, fsio.IsNotEmpty(err), "got %v", err)
	require.NoError(t, a.Refresh())
	assert.True(t, a.Exists())

	require.NoError(t, a.DeleteRecursive())
	assert.False(t, a.Exists())
	_, statErr := afero.NewOsFs().Stat(filepath.Join(root, "sub", "deeper", "d.txt"))
	assert.True(t, fsio.IsNotExist(statErr))
}

func TestAdapter_CreateAndMove(t *testing.T) {
	fsys := afero.NewMemMapFs()
	a := NewWithFS(fsys)
	a.Bind("/made/here")

	require.NoError(t, a.Create())
	assert.True(t, a.Exists())
	assert.Equal(t, "/made", a.Parent().FullName())
	assert.Equal(t, string(filepath.Separator), a.Root().FullName())
	assert.Empty(t, a.Extension())
	assert.Equal(t, "/made/here", a.String())
	assert.Same(t, a.DirectoryInfo(), a.DirectoryInfo())

	sub, err := a.CreateSubdirectory("inner")
	require.NoError(t, err)
	assert.True(t, sub.Exists())

	require.NoError(t, a.DeleteRecursive())
	require.NoError(t, a.Create())
	require.NoError(t, a.Delete())
	assert.False(t, a.Exists())
}

func TestAdapter_BoundToFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/data", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/data/file.txt", []byte("x"), 0o644))
	a := NewWithFS(fsys)
	a.Bind("/data/file.txt")

	assert.False(t, a.Exists())
	assert.True(t, fsio.IsWrongType(a.Delete()))
	assert.True(t, fsio.IsWrongType(a.DeleteRecursive()))

	ok, err := afero.Exists(fsys, "/data/file.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAdapter_MoveTo(t *testing.T) {
	root := t.TempDir()
	seedTree(t, afero.NewOsFs(), root)
	a := NewForPath(filepath.Join(root, "sub"))

	dst := filepath.Join(root, "renamed")
	require.NoError(t, a.MoveTo(dst))
	assert.Equal(t, dst, a.FullName())
	assert.True(t, a.Exists())
}

func TestAdapter_AttributesAndTimes(t *testing.T) {
	root := t.TempDir()
	a := NewForPath(root)
	stamp := time.Date(2022, 5, 6, 7, 8, 9, 0, time.UTC)

	attrs, err := a.Attributes()
	require.NoError(t, err)
	assert.True(t, attrs.Has(fsio.Directory))
	require.NoError(t, a.SetAttributes(attrs))

	require.NoError(t, a.SetLastWriteTimeUTC(stamp))
	got, err := a.LastWriteTimeUTC()
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got))

	require.NoError(t, a.SetLastAccessTimeUTC(stamp))
	got, err = a.LastAccessTimeUTC()
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got), "got %v", got)

	require.NoError(t, a.SetLastWriteTime(stamp))
	require.NoError(t, a.SetLastAccessTime(stamp))
	_, err = a.LastWriteTime()
	require.NoError(t, err)
	_, err = a.LastAccessTime()
	require.NoError(t, err)
	_, err = a.CreationTime()
	require.NoError(t, err)
	_, err = a.CreationTimeUTC()
	require.NoError(t, err)

	assert.Error(t, a.SetCreationTime(stamp))
	assert.Error(t, a.SetCreationTimeUTC(stamp))
}
