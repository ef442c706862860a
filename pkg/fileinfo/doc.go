// Package fileinfo exposes a handle on a single file behind the
// FileInfoOperations interface.
//
// An Adapter starts unbound (New, NewWithFS) or bound (NewForPath). Bind
// replaces the wrapped *fsio.FileInfo with a fresh one, so nothing cached
// for the previous path survives. Create always creates the file on disk.
//
// Metadata is cached after the first query. Call Refresh to observe changes
// made outside the handle.
package fileinfo
