package randomaccess

import "io"

// Window reads the byte range [start, start+length) of a shared resource.
// It implements io.Reader and io.ByteReader. A Window is not safe for
// concurrent use; distinct windows on one Shared are.
type Window struct {
	src *Shared
	pos int64
	end int64
}

// NewWindow returns a window of length bytes starting at start. A
// negative length is treated as zero.
func NewWindow(src *Shared, start, length int64) *Window {
	if length < 0 {
		length = 0
	}
	return &Window{src: src, pos: start, end: start + length}
}

// Available returns the number of bytes left in the window.
func (w *Window) Available() int64 {
	return w.end - w.pos
}

// Read fills p from the window, never past its end. It returns io.EOF
// once the window is exhausted.
func (w *Window) Read(p []byte) (int, error) {
	avail := w.Available()
	if avail <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > avail {
		p = p[:avail]
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := w.src.ReadAt(p, w.pos)
	if n > 0 {
		w.pos += int64(n)
	}
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// ReadByte reads one byte from the window.
func (w *Window) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := w.Read(b[:])
		if n == 1 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// Skip advances by up to n bytes and returns how many were skipped.
func (w *Window) Skip(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if avail := w.Available(); n > avail {
		n = avail
	}
	w.pos += n
	return n
}

// Close does nothing; the shared resource stays open.
func (w *Window) Close() error {
	return nil
}
