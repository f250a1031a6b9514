// Package randomaccess provides seekable byte resources for content
// streams that live on disk, and bounded windows over them.
//
// A [RandomAccess] is either a memory-mapped file ([OpenFile]) or an
// in-memory [Buffer]. Several content streams of one document usually sit
// in the same file, so readers share the handle through [Shared], which
// runs each seek and read pair under one mutex. A [Window] is an
// io.Reader over a byte range of a Shared resource:
//
//	f, err := randomaccess.OpenFile(path)
//	if err != nil {
//	    return err
//	}
//	shared := randomaccess.Share(f)
//	defer shared.Close()
//
//	page := randomaccess.NewWindow(shared, pageOffset, pageLength)
//	tile := randomaccess.NewWindow(shared, tileOffset, tileLength)
//
// Closing a Window leaves the underlying resource open.
package randomaccess
