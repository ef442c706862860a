package fileops

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/vvka-141/fswrap/pkg/fsio"
)

func newMemAdapter(t *testing.T) (*Adapter, string) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/data", 0o755))
	return NewWithFS(fsys), "/data"
}

func TestNew_UsesOSFilesystem(t *testing.T) {
	ops := New()
	p := filepath.Join(t.TempDir(), "os.txt")

	require.NoError(t, ops.WriteAllText(p, "on disk"))
	assert.True(t, ops.Exists(p))

	got, err := ops.ReadAllText(p)
	require.NoError(t, err)
	assert.Equal(t, "on disk", got)
}

func TestAdapter_ExistsBeforeAndAfterCreate(t *testing.T) {
	ops, dir := newMemAdapter(t)
	p := filepath.Join(dir, "new.bin")

	assert.False(t, ops.Exists(p))
	f, err := ops.Create(p)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.True(t, ops.Exists(p))
}

func TestAdapter_BytesRoundTrip(t *testing.T) {
	ops, dir := newMemAdapter(t)
	p := filepath.Join(dir, "blob")
	want := []byte{0, 1, 2, 0xfe, 0xff}

	require.NoError(t, ops.WriteAllBytes(p, want))
	got, err := ops.ReadAllBytes(p)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAdapter_TextRoundTripWithEncoding(t *testing.T) {
	ops, dir := newMemAdapter(t)
	p := filepath.Join(dir, "utf16.txt")
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

	require.NoError(t, ops.WriteAllText(p, "grüße", fsio.WithEncoding(enc)))
	require.NoError(t, ops.AppendAllText(p, "!", fsio.WithEncoding(enc)))

	got, err := ops.ReadAllText(p, fsio.WithEncoding(enc))
	require.NoError(t, err)
	assert.Equal(t, "grüße!", got)
}

func TestAdapter_AppendLinesConcatenates(t *testing.T) {
	ops, dir := newMemAdapter(t)
	p := filepath.Join(dir, "lines.txt")

	require.NoError(t, ops.AppendAllLines(p, []string{"a", "b"}))
	require.NoError(t, ops.AppendLines(p, slices.Values([]string{"c"})))

	got, err := ops.ReadAllLines(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	require.NoError(t, ops.WriteLines(p, slices.Values([]string{"z"})))
	var lazy []string
	for line, err := range ops.ReadLines(p) {
		require.NoError(t, err)
		lazy = append(lazy, line)
	}
	assert.Equal(t, []string{"z"}, lazy)

	require.NoError(t, ops.WriteAllLines(p, []string{"x", "y"}))
	got, err = ops.ReadAllLines(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestAdapter_CopyMoveDelete(t *testing.T) {
	ops, dir := newMemAdapter(t)
	src := filepath.Join(dir, "src.txt")
	cp := filepath.Join(dir, "copy.txt")
	mv := filepath.Join(dir, "moved.txt")
	require.NoError(t, ops.WriteAllText(src, "payload"))

	require.NoError(t, ops.Copy(src, cp, false))
	assert.True(t, fsio.IsExist(ops.Copy(src, cp, false)))
	require.NoError(t, ops.Copy(src, cp, true))

	require.NoError(t, ops.Move(cp, mv))
	assert.False(t, ops.Exists(cp))
	got, err := ops.ReadAllText(mv)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	require.NoError(t, ops.Delete(mv))
	assert.False(t, ops.Exists(mv))
	assert.True(t, fsio.IsNotExist(ops.Delete(mv)))
}

func TestAdapter_MoveAndDeleteRefuseWrongTargets(t *testing.T) {
	ops, dir := newMemAdapter(t)
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, ops.WriteAllText(a, "src"))
	require.NoError(t, ops.WriteAllText(b, "precious"))

	assert.True(t, fsio.IsExist(ops.Move(a, b)))
	got, err := ops.ReadAllText(b)
	require.NoError(t, err)
	assert.Equal(t, "precious", got)

	assert.True(t, fsio.IsWrongType(ops.Delete(dir)))
	assert.True(t, ops.Exists(a))
}

func TestAdapter_OpenVariants(t *testing.T) {
	ops, dir := newMemAdapter(t)
	p := filepath.Join(dir, "open.txt")

	_, err := ops.Open(p, fsio.ModeOpen)
	assert.True(t, fsio.IsNotExist(err))

	f, err := ops.Open(p, fsio.ModeCreateNew, fsio.WithAccess(fsio.AccessWrite))
	require.NoError(t, err)
	_, err = f.WriteString("one")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	w, err := ops.OpenWrite(p)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := ops.OpenRead(p)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	tw, err := ops.AppendText(p)
	require.NoError(t, err)
	require.NoError(t, tw.WriteLine(" two"))
	require.NoError(t, tw.Close())

	tr, err := ops.OpenText(p)
	require.NoError(t, err)
	line, err := tr.ReadLine()
	require.NoError(t, err)
	require.NoError(t, tr.Close())
	assert.Equal(t, "one two", line)

	cw, err := ops.CreateText(p)
	require.NoError(t, err)
	require.NoError(t, cw.Close())
	b, err := ops.ReadAllBytes(p)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestAdapter_AttributesAndTimes(t *testing.T) {
	ops, dir := newMemAdapter(t)
	p := filepath.Join(dir, "meta.txt")
	require.NoError(t, ops.WriteAllText(p, "x"))

	require.NoError(t, ops.SetAttributes(p, fsio.ReadOnly))
	attrs, err := ops.GetAttributes(p)
	require.NoError(t, err)
	assert.True(t, attrs.Has(fsio.ReadOnly))

	stamp := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, ops.SetLastWriteTimeUTC(p, stamp))
	got, err := ops.GetLastWriteTimeUTC(p)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got))

	local, err := ops.GetLastWriteTime(p)
	require.NoError(t, err)
	assert.Equal(t, time.Local, local.Location())

	require.NoError(t, ops.SetLastWriteTime(p, stamp.Add(time.Hour)))
	require.NoError(t, ops.SetLastAccessTime(p, stamp))
	require.NoError(t, ops.SetLastAccessTimeUTC(p, stamp))

	_, err = ops.GetCreationTime(p)
	require.NoError(t, err)
	_, err = ops.GetCreationTimeUTC(p)
	require.NoError(t, err)
	_, err = ops.GetLastAccessTime(p)
	require.NoError(t, err)

	assert.True(t, errors.Is(ops.SetCreationTime(p, stamp), errors.ErrUnsupported))
	assert.True(t, errors.Is(ops.SetCreationTimeUTC(p, stamp), errors.ErrUnsupported))
}

func TestAdapter_GetLastAccessTimeUTC(t *testing.T) {
	ops := New()
	p := filepath.Join(t.TempDir(), "atime.txt")
	require.NoError(t, ops.WriteAllText(p, "x"))
	access := time.Date(2020, 2, 29, 12, 0, 0, 0, time.UTC)

	require.NoError(t, ops.SetLastAccessTimeUTC(p, access))

	got, err := ops.GetLastAccessTimeUTC(p)
	require.NoError(t, err)
	assert.True(t, access.Equal(got), "got %v", got)
	assert.Equal(t, time.UTC, got.Location())

	_, err = ops.GetLastAccessTimeUTC(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, fsio.IsNotExist(err))
}

func TestAdapter_ErrorsPassThrough(t *testing.T) {
	ops, dir := newMemAdapter(t)
	missing := filepath.Join(dir, "missing.txt")

	_, err := ops.ReadAllBytes(missing)
	assert.Equal(t, fsio.KindNotFound, fsio.Classify(err))

	_, err = ops.ReadAllText(missing)
	assert.True(t, fsio.IsNotExist(err))

	_, err = ops.GetAttributes(missing)
	assert.True(t, fsio.IsNotExist(err))

	_, err = ops.GetLastWriteTime(missing)
	assert.True(t, fsio.IsNotExist(err))
}
