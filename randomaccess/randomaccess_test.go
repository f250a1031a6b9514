package randomaccess

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer([]byte("0 0 m 10 10 l S"))

	n, err := b.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(15), n)

	require.NoError(t, b.Seek(6))
	c, err := b.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('1'), c)

	pos, err := b.Position()
	require.NoError(t, err)
	assert.Equal(t, int64(7), pos)

	buf := make([]byte, 32)
	got, err := b.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "0 10 l S", string(buf[:got]))

	_, err = b.Read(buf)
	assert.Equal(t, io.EOF, err)
	_, err = b.ReadByte()
	assert.Equal(t, io.EOF, err)
}

func TestSeekBounds(t *testing.T) {
	b := NewBuffer([]byte("abc"))

	assert.Error(t, b.Seek(-1))

	require.NoError(t, b.Seek(10))
	_, err := b.Read(make([]byte, 1))
	assert.Equal(t, io.EOF, err)
}

func TestClosed(t *testing.T) {
	b := NewBuffer([]byte("abc"))
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, err := b.Read(make([]byte, 1))
	assert.Equal(t, ErrClosed, err)
	assert.Equal(t, ErrClosed, b.Seek(0))
	_, err = b.Length()
	assert.Equal(t, ErrClosed, err)
	_, err = b.Position()
	assert.Equal(t, ErrClosed, err)
}

func writeTemp(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.bin")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestOpenFile(t *testing.T) {
	path := writeTemp(t, "q 1 0 0 1 5 5 cm 0 0 m Q")

	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, path, f.Name())
	n, err := f.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(24), n)

	require.NoError(t, f.Seek(2))
	buf := make([]byte, 5)
	got, err := f.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "1 0 0", string(buf[:got]))
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

func TestShareIsIdempotent(t *testing.T) {
	s := Share(NewBuffer(nil))
	assert.True(t, s == Share(s))
}

func TestSharedReadAt(t *testing.T) {
	s := Share(NewBuffer([]byte("abcdef")))

	buf := make([]byte, 2)
	n, err := s.ReadAt(buf, 3)
	require.NoError(t, err)
	assert.Equal(t, "de", string(buf[:n]))

	pos, err := s.Position()
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)

	length, err := s.Length()
	require.NoError(t, err)
	assert.Equal(t, int64(6), length)
}
