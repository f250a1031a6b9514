package filters

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/pkg/errors"
)

// FlateDecode inflates zlib data and undoes the predictor named in params.
func FlateDecode(data []byte, params Params) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "flate header")
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, errors.Wrap(err, "inflating")
	}
	return unpredict(buf.Bytes(), params)
}

func unpredict(data []byte, params Params) ([]byte, error) {
	switch p := params.Predictor; {
	case p <= 1:
		return data, nil
	case p == 2:
		return tiff(data, params)
	case p >= 10 && p <= 15:
		return png(data, params)
	default:
		return nil, errors.Errorf("unsupported predictor %d", p)
	}
}

// rowGeometry returns bytes per pixel and bytes per row for 8-bit samples.
func rowGeometry(params Params) (bpp, row int, err error) {
	if params.BitsPerComponent != 8 {
		return 0, 0, errors.Errorf("predictor needs 8 bits per component, got %d", params.BitsPerComponent)
	}
	if params.Colors < 1 || params.Columns < 1 {
		return 0, 0, errors.Errorf("invalid predictor geometry: %d colors, %d columns", params.Colors, params.Columns)
	}
	return params.Colors, params.Colors * params.Columns, nil
}

// tiff undoes TIFF Predictor 2: each sample is stored as the difference
// from the sample one pixel to its left.
func tiff(data []byte, params Params) ([]byte, error) {
	bpp, row, err := rowGeometry(params)
	if err != nil {
		return nil, err
	}
	if len(data)%row != 0 {
		return nil, errors.Errorf("data length %d is not a multiple of row length %d", len(data), row)
	}

	out := make([]byte, len(data))
	copy(out, data)
	for start := 0; start < len(out); start += row {
		line := out[start : start+row]
		for i := bpp; i < row; i++ {
			line[i] += line[i-bpp]
		}
	}
	return out, nil
}

// png undoes PNG prediction. Every row starts with its own algorithm byte.
func png(data []byte, params Params) ([]byte, error) {
	bpp, row, err := rowGeometry(params)
	if err != nil {
		return nil, err
	}
	stride := row + 1
	if len(data)%stride != 0 {
		return nil, errors.Errorf("data length %d is not a multiple of row length %d", len(data), stride)
	}

	rows := len(data) / stride
	out := make([]byte, rows*row)
	prev := make([]byte, row)
	for r := 0; r < rows; r++ {
		algo := data[r*stride]
		in := data[r*stride+1 : (r+1)*stride]
		cur := out[r*row : (r+1)*row]
		if err := unfilterRow(cur, in, prev, algo, bpp); err != nil {
			return nil, errors.Wrapf(err, "row %d", r)
		}
		prev = cur
	}
	return out, nil
}

func unfilterRow(cur, in, prev []byte, algo byte, bpp int) error {
	for i := range in {
		var left, upLeft byte
		if i >= bpp {
			left = cur[i-bpp]
			upLeft = prev[i-bpp]
		}
		up := prev[i]

		var pred byte
		switch algo {
		case 0:
		case 1:
			pred = left
		case 2:
			pred = up
		case 3:
			pred = byte((int(left) + int(up)) / 2)
		case 4:
			pred = paeth(left, up, upLeft)
		default:
			return errors.Errorf("unknown PNG filter type %d", algo)
		}
		cur[i] = in[i] + pred
	}
	return nil
}

// paeth picks whichever of left, up and upper-left is nearest to
// left + up - upLeft.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := abs(p-int(a)), abs(p-int(b)), abs(p-int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
