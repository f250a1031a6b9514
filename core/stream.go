package core

import (
	"github.com/pkg/errors"

	"github.com/tsawler/pdfvector/internal/filters"
)

// Decoded returns the stream content with its /Filter chain applied. The
// result is cached.
func (s *Stream) Decoded() ([]byte, error) {
	if s.decoded != nil {
		return s.decoded, nil
	}

	names, params, err := s.filterChain()
	if err != nil {
		return nil, err
	}

	data := s.Data
	for i, name := range names {
		data, err = filters.Decode(name, data, params[i])
		if err != nil {
			return nil, errors.Wrapf(err, "filter %d (%s)", i, name)
		}
	}
	if data == nil {
		data = []byte{}
	}
	s.decoded = data
	return data, nil
}

// filterChain reads /Filter and /DecodeParms. Either may be a single value
// or an array; a null or missing parameter entry means the defaults.
func (s *Stream) filterChain() ([]string, []filters.Params, error) {
	var names []string
	switch f := s.Dict.Get("Filter").(type) {
	case nil:
		return nil, nil, nil
	case Name:
		names = []string{string(f)}
	case Array:
		for i, elem := range f {
			n, ok := elem.(Name)
			if !ok {
				return nil, nil, errors.Errorf("/Filter[%d] is %T, want name", i, elem)
			}
			names = append(names, string(n))
		}
	default:
		return nil, nil, errors.Errorf("/Filter is %T, want name or array", f)
	}

	params := make([]filters.Params, len(names))
	for i := range params {
		params[i] = filters.DefaultParams()
	}
	switch p := s.Dict.Get("DecodeParms").(type) {
	case Dict:
		if len(params) > 0 {
			params[0] = decodeParams(p)
		}
	case Array:
		for i, elem := range p {
			if d, ok := elem.(Dict); ok && i < len(params) {
				params[i] = decodeParams(d)
			}
		}
	}
	return names, params, nil
}

func decodeParams(d Dict) filters.Params {
	p := filters.DefaultParams()
	if v, ok := d.GetInt("Predictor"); ok {
		p.Predictor = int(v)
	}
	if v, ok := d.GetInt("Colors"); ok {
		p.Colors = int(v)
	}
	if v, ok := d.GetInt("BitsPerComponent"); ok {
		p.BitsPerComponent = int(v)
	}
	if v, ok := d.GetInt("Columns"); ok {
		p.Columns = int(v)
	}
	return p
}
