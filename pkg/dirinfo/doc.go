// Package dirinfo exposes a handle on a single directory behind the
// DirectoryInfoOperations interface.
//
// Listings come in two shapes with the same contents. GetFiles and its
// siblings return slices; EnumerateFiles and its siblings return
// iter.Seq2 sequences that read one directory at a time and stop as soon as
// the caller breaks out of the loop.
//
//	for f, err := range dirs.EnumerateFiles(fsio.WithPattern("*.log")) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(f.Name())
//	}
//
// Delete fails on a non-empty directory; DeleteRecursive removes the tree.
package dirinfo
