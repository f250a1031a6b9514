// Package filters decodes PDF stream data.
//
// Content streams are usually compressed. [Decode] applies one named
// filter; a stream with a /Filter array applies them in order:
//
//	data, err := filters.Decode("FlateDecode", raw, filters.Params{Predictor: 12, Columns: 5})
//
// FlateDecode, ASCIIHexDecode and ASCII85Decode are supported, along with
// their abbreviated inline-image names. Image-only codecs (DCTDecode,
// CCITTFaxDecode, JBIG2Decode, JPXDecode) fail with [ErrUnsupported]:
// nothing that carries path geometry uses them.
//
// # Predictors
//
// Flate data may be post-processed by a predictor:
//   - 1: none (default)
//   - 2: TIFF Predictor 2
//   - 10-15: PNG predictors, chosen per row
package filters
