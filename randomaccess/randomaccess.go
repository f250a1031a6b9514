package randomaccess

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
)

// ErrClosed is returned by operations on a closed resource.
var ErrClosed = errors.New("randomaccess: resource closed")

// RandomAccess is a seekable, readable byte resource.
type RandomAccess interface {
	// Seek moves the cursor to pos bytes from the start. Seeking past
	// the end is allowed; the next read reports io.EOF.
	Seek(pos int64) error
	Position() (int64, error)
	Read(p []byte) (int, error)
	ReadByte() (byte, error)
	Length() (int64, error)
	Close() error
}

// cursor implements RandomAccess over an io.ReaderAt of known size.
type cursor struct {
	r      io.ReaderAt
	size   int64
	pos    int64
	closed bool
	close  func() error
}

func (c *cursor) Seek(pos int64) error {
	if c.closed {
		return ErrClosed
	}
	if pos < 0 {
		return errors.Errorf("randomaccess: negative position %d", pos)
	}
	c.pos = pos
	return nil
}

func (c *cursor) Position() (int64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return c.pos, nil
}

func (c *cursor) Read(p []byte) (int, error) {
	if c.closed {
		return 0, ErrClosed
	}
	if c.pos >= c.size {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if remaining := c.size - c.pos; int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := c.r.ReadAt(p, c.pos)
	c.pos += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

func (c *cursor) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := c.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) Length() (int64, error) {
	if c.closed {
		return 0, ErrClosed
	}
	return c.size, nil
}

func (c *cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.close != nil {
		return c.close()
	}
	return nil
}

// Buffer is an in-memory RandomAccess.
type Buffer struct {
	cursor
}

// NewBuffer returns a resource reading data. The slice is not copied.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{cursor{r: bytes.NewReader(data), size: int64(len(data))}}
}

// File is a memory-mapped, read-only file.
type File struct {
	cursor
	name string
}

// OpenFile maps the named file for reading.
func OpenFile(name string) (*File, error) {
	m, err := mmap.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %s", name)
	}
	return &File{
		cursor: cursor{r: m, size: int64(m.Len()), close: m.Close},
		name:   name,
	}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string {
	return f.name
}
