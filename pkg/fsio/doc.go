// Package fsio provides the file and directory primitives wrapped by the
// fileops, fileinfo and dirinfo packages.
//
// The standard library offers path-level file functions but no handle-bound
// file or directory objects, no encoding-aware text helpers and no access to
// attributes or timestamps beyond the modification time. This package fills
// that gap on top of an afero.Fs backend:
//
//   - Path functions (ReadAllText, WriteAllLines, Copy, GetAttributes, ...)
//     mirror a static file API, one call per operation.
//   - FileInfo and DirectoryInfo are handles bound to one path. They cache
//     metadata after the first query; Refresh re-reads it.
//   - TextReader and TextWriter encode and decode text through
//     golang.org/x/text encodings.
//
// Production code uses afero.NewOsFs(), whose methods forward to the os
// package unchanged. Tests can substitute afero.NewMemMapFs().
//
// Errors from the backend are returned as-is. IsNotExist, IsNotEmpty and the
// other predicates, plus Classify, inspect them without rewrapping.
//
// # Thread Safety
//
// Handles are not safe for concurrent use. Callers sharing a handle across
// goroutines must serialize access themselves.
package fsio
