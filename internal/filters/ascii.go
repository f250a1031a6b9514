package filters

import (
	"bytes"
	"encoding/ascii85"

	"github.com/pkg/errors"
)

// ASCIIHexDecode decodes pairs of hex digits. Whitespace is skipped, >
// ends the data, and a final odd digit is padded with 0.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)/2)
	var hi byte
	half := false
	for _, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			break
		}
		v, ok := hexValue(c)
		if !ok {
			return nil, errors.Errorf("invalid hex digit %q", c)
		}
		if half {
			out = append(out, hi<<4|v)
		} else {
			hi = v
		}
		half = !half
	}
	if half {
		out = append(out, hi<<4)
	}
	return out, nil
}

// ASCII85Decode decodes base-85 data terminated by ~>. An optional <~
// prefix and embedded whitespace are ignored.
func ASCII85Decode(data []byte) ([]byte, error) {
	data = bytes.TrimLeftFunc(data, func(r rune) bool { return r < 0x80 && isWhitespace(byte(r)) })
	data = bytes.TrimPrefix(data, []byte("<~"))
	if end := bytes.Index(data, []byte("~>")); end >= 0 {
		data = data[:end]
	}

	// z expands one character into four zero bytes
	out := make([]byte, 4*len(data)+4)
	n, _, err := ascii85.Decode(out, data, true)
	if err != nil {
		return nil, errors.Wrap(err, "ascii85")
	}
	return out[:n], nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}
