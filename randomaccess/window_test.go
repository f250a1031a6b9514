package randomaccess

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowClampsReads(t *testing.T) {
	s := Share(NewBuffer([]byte("xxx0 0 m 5 5 lyyy")))
	w := NewWindow(s, 3, 11)

	assert.Equal(t, int64(11), w.Available())

	buf := make([]byte, 64)
	n, err := w.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "0 0 m 5 5 l", string(buf[:n]))
	assert.Equal(t, int64(0), w.Available())

	n, err = w.Read(buf)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
	_, err = w.ReadByte()
	assert.Equal(t, io.EOF, err)
}

func TestWindowReadAll(t *testing.T) {
	s := Share(NewBuffer([]byte("headerBODYtrailer")))
	data, err := io.ReadAll(NewWindow(s, 6, 4))
	require.NoError(t, err)
	assert.Equal(t, "BODY", string(data))
}

func TestWindowSkip(t *testing.T) {
	s := Share(NewBuffer([]byte("0123456789")))
	w := NewWindow(s, 2, 5)

	assert.Equal(t, int64(2), w.Skip(2))
	b, err := w.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('4'), b)

	assert.Equal(t, int64(2), w.Skip(100))
	assert.Equal(t, int64(0), w.Skip(1))
	assert.Equal(t, int64(0), w.Skip(-3))
	assert.Equal(t, int64(0), w.Available())
}

func TestWindowPastEndOfResource(t *testing.T) {
	s := Share(NewBuffer([]byte("abc")))
	w := NewWindow(s, 1, 10)

	data, err := io.ReadAll(w)
	require.NoError(t, err)
	assert.Equal(t, "bc", string(data))
}

func TestWindowNegativeLength(t *testing.T) {
	w := NewWindow(Share(NewBuffer([]byte("abc"))), 0, -5)
	assert.Equal(t, int64(0), w.Available())
}

func TestWindowCloseLeavesResourceOpen(t *testing.T) {
	s := Share(NewBuffer([]byte("abcdef")))
	w := NewWindow(s, 0, 3)
	require.NoError(t, w.Close())

	other := NewWindow(s, 3, 3)
	data, err := io.ReadAll(other)
	require.NoError(t, err)
	assert.Equal(t, "def", string(data))
}

func TestWindowAfterSharedClose(t *testing.T) {
	s := Share(NewBuffer([]byte("abcdef")))
	w := NewWindow(s, 0, 3)
	require.NoError(t, s.Close())

	_, err := w.Read(make([]byte, 1))
	assert.Equal(t, ErrClosed, err)
}

func TestConcurrentWindows(t *testing.T) {
	const parts = 16
	var data bytes.Buffer
	offsets := make([]int64, parts+1)
	for i := 0; i < parts; i++ {
		offsets[i] = int64(data.Len())
		fmt.Fprintf(&data, "part-%02d:%s;", i, bytes.Repeat([]byte{byte('a' + i)}, 200+i))
	}
	offsets[parts] = int64(data.Len())
	want := data.Bytes()

	s := Share(NewBuffer(want))
	var wg sync.WaitGroup
	results := make([][]byte, parts)
	for i := 0; i < parts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := NewWindow(s, offsets[i], offsets[i+1]-offsets[i])
			var out []byte
			// byte-at-a-time maximises interleaving of seek and read
			for {
				b, err := w.ReadByte()
				if err != nil {
					break
				}
				out = append(out, b)
			}
			results[i] = out
		}(i)
	}
	wg.Wait()

	for i := 0; i < parts; i++ {
		assert.Equal(t, string(want[offsets[i]:offsets[i+1]]), string(results[i]), "window %d", i)
	}
}
