package filters

import (
	"github.com/pkg/errors"
)

// ErrUnsupported is returned for filters this package cannot decode.
var ErrUnsupported = errors.New("unsupported filter")

// Params holds the /DecodeParms entries the supported filters use.
type Params struct {
	Predictor        int
	Colors           int
	BitsPerComponent int
	Columns          int
}

// DefaultParams returns the values PDF assumes for absent entries.
func DefaultParams() Params {
	return Params{Predictor: 1, Colors: 1, BitsPerComponent: 8, Columns: 1}
}

// Decode applies the filter called name to data.
func Decode(name string, data []byte, params Params) ([]byte, error) {
	switch name {
	case "FlateDecode", "Fl":
		return FlateDecode(data, params)
	case "ASCIIHexDecode", "AHx":
		return ASCIIHexDecode(data)
	case "ASCII85Decode", "A85":
		return ASCII85Decode(data)
	default:
		return nil, errors.Wrap(ErrUnsupported, name)
	}
}
