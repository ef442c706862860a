package fsio

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// backend is a filesystem plus a writable directory on it.
type backend struct {
	name string
	fs   afero.Fs
	root string
}

func (b backend) path(elem ...string) string {
	return filepath.Join(append([]string{b.root}, elem...)...)
}

func backends(t *testing.T) []backend {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work", 0o755))
	return []backend{
		{name: "os", fs: afero.NewOsFs(), root: t.TempDir()},
		{name: "memory", fs: mem, root: "/work"},
	}
}

func osBackend(t *testing.T) backend {
	t.Helper()
	return backend{name: "os", fs: afero.NewOsFs(), root: t.TempDir()}
}

func writeFile(t *testing.T, b backend, rel, content string) string {
	t.Helper()
	p := b.path(rel)
	require.NoError(t, b.fs.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, afero.WriteFile(b.fs, p, []byte(content), 0o644))
	return p
}
