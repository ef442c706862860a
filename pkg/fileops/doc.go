// Package fileops exposes path-addressed file operations behind the
// FileOperations interface so callers can substitute a test double.
//
// Adapter is the production implementation. New binds it to the OS
// filesystem; NewWithFS accepts any afero.Fs, which lets tests run the real
// adapter against afero.NewMemMapFs(). For interaction tests, mocks holds a
// gomock double generated from interfaces.go.
//
// Errors are returned exactly as the filesystem reports them. Use
// fsio.IsNotExist and the other fsio predicates to inspect them.
package fileops
