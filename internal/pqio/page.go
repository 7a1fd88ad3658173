// Package pqio assembles and reads the on-disk Parquet envelope: data
// pages, column chunks, row groups, and the header/footer framing spec.md
// §4.7-§4.9 describe. It sits directly on top of internal/encoding,
// internal/compress and internal/shred.
package pqio

import (
	"fmt"
	"math/bits"

	"github.com/murakmii/parquet/internal/compress"
	"github.com/murakmii/parquet/internal/encoding"
	"github.com/murakmii/parquet/internal/format"
	"github.com/murakmii/parquet/internal/pschema"
	"github.com/murakmii/parquet/internal/shred"
)

// Error is pqio's sentinel-carrying error type (spec.md §7).
type Error struct {
	Kind string
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("pqio: %s: %s", e.Kind, e.Msg) }

func bitWidthFor(max int32) int {
	if max <= 0 {
		return 0
	}
	return bits.Len32(uint32(max))
}

// valueEncoding reports the DataPageHeader.Encoding a leaf's schema
// option maps to, and whether this repo's writer actually knows how to
// RLE-encode that leaf's values: RLE value pages are only wired for
// BOOLEAN and INT32 (see DESIGN.md); any other primitive requesting RLE
// falls back to PLAIN at the wire-encoding level.
func valueEncoding(leaf *pschema.Node) (format.Encoding, bool) {
	if leaf.Encoding == pschema.EncodingRLE {
		switch leaf.Primitive {
		case format.Type_BOOLEAN, format.Type_INT32:
			return format.Encoding_RLE, true
		}
	}
	return format.Encoding_PLAIN, false
}

func encodeValues(leaf *pschema.Node, values []any) ([]byte, format.Encoding, error) {
	enc, useRLE := valueEncoding(leaf)
	if !useRLE {
		buf, err := encoding.PlainEncode(leaf.Primitive, values, leaf.TypeLength)
		return buf, format.Encoding_PLAIN, err
	}

	bitWidth := 32
	ints := make([]int32, len(values))
	for i, v := range values {
		switch leaf.Primitive {
		case format.Type_BOOLEAN:
			bitWidth = 1
			if b, _ := v.(bool); b {
				ints[i] = 1
			}
		case format.Type_INT32:
			n, ok := v.(int32)
			if !ok {
				return nil, enc, fmt.Errorf("pqio: expected int32 for RLE value, got %T", v)
			}
			ints[i] = n
		}
	}
	buf, err := encoding.RLEEncode(ints, bitWidth, true)
	return buf, enc, err
}

// pageBuild is the shared result of assembling one data page's body plus
// the header fields that depend on it.
type pageBuild struct {
	header *format.PageHeader
	body   []byte
}

// buildPage encodes one leaf's full ColumnBuffer into a single data page
// (this repo emits exactly one page per column chunk, per spec.md §4.7).
func buildPage(leaf *pschema.Node, col *shred.ColumnBuffer, numRows int32, codecName string, useV2 bool) (*pageBuild, error) {
	rBits := bitWidthFor(leaf.RLevelMax)
	dBits := bitWidthFor(leaf.DLevelMax)

	var rBuf, dBuf []byte
	var err error
	if !useV2 {
		rBuf, err = encoding.RLEEncode(col.RLevels, rBits, false)
		if err != nil {
			return nil, err
		}
		dBuf, err = encoding.RLEEncode(col.DLevels, dBits, false)
		if err != nil {
			return nil, err
		}
	} else {
		rBuf, err = encoding.RLEEncode(col.RLevels, rBits, true)
		if err != nil {
			return nil, err
		}
		dBuf, err = encoding.RLEEncode(col.DLevels, dBits, true)
		if err != nil {
			return nil, err
		}
	}

	rawValues, valEnc, err := encodeValues(leaf, col.Values)
	if err != nil {
		return nil, err
	}

	codec, err := compress.Lookup(codecName)
	if err != nil {
		return nil, err
	}
	compressedValues, err := codec.Deflate(rawValues)
	if err != nil {
		return nil, err
	}

	uncompressedSize := int32(len(rBuf) + len(dBuf) + len(rawValues))
	compressedSize := int32(len(rBuf) + len(dBuf) + len(compressedValues))

	body := make([]byte, 0, uncompressedSize)
	body = append(body, rBuf...)
	body = append(body, dBuf...)
	body = append(body, compressedValues...)

	header := &format.PageHeader{
		UncompressedPageSize: uncompressedSize,
		CompressedPageSize:   compressedSize,
	}

	if useV2 {
		header.Type = format.PageType_DATA_PAGE_V2
		numNulls := col.Count - int32(len(col.Values))
		header.DataPageHeaderV2 = &format.DataPageHeaderV2{
			NumValues:                  col.Count,
			NumNulls:                   numNulls,
			NumRows:                    numRows,
			Encoding:                   valEnc,
			DefinitionLevelsByteLength: int32(len(dBuf)),
			RepetitionLevelsByteLength: int32(len(rBuf)),
			IsCompressed:               codecName != "UNCOMPRESSED",
		}
	} else {
		header.Type = format.PageType_DATA_PAGE
		header.DataPageHeader = &format.DataPageHeader{
			NumValues:               col.Count,
			Encoding:                valEnc,
			DefinitionLevelEncoding: format.Encoding_RLE,
			RepetitionLevelEncoding: format.Encoding_RLE,
		}
	}

	return &pageBuild{header: header, body: body}, nil
}

// readPage decodes one data page's body back into a ColumnBuffer leaf
// stream, the inverse of buildPage.
func readPage(leaf *pschema.Node, header *format.PageHeader, body []byte, codecName string) (*shred.ColumnBuffer, error) {
	switch header.Type {
	case format.PageType_DATA_PAGE:
		return readPageV1(leaf, header, body, codecName)
	case format.PageType_DATA_PAGE_V2:
		return readPageV2(leaf, header, body, codecName)
	}
	return nil, &Error{Kind: "UnknownPageType", Msg: header.Type.String()}
}

func readPageV1(leaf *pschema.Node, header *format.PageHeader, body []byte, codecName string) (*shred.ColumnBuffer, error) {
	dph := header.DataPageHeader
	if dph == nil {
		return nil, &Error{Kind: "BadTrailer", Msg: "missing data_page_header on DATA_PAGE"}
	}
	rBits := bitWidthFor(leaf.RLevelMax)
	dBits := bitWidthFor(leaf.DLevelMax)

	offset := 0
	rLen, err := peekEnvelopeLen(body, offset)
	if err != nil {
		return nil, err
	}
	rLevels, err := encoding.RLEDecode(body[offset:offset+4+rLen], rBits, int(dph.NumValues), true)
	if err != nil {
		return nil, err
	}
	offset += 4 + rLen

	dLen, err := peekEnvelopeLen(body, offset)
	if err != nil {
		return nil, err
	}
	dLevels, err := encoding.RLEDecode(body[offset:offset+4+dLen], dBits, int(dph.NumValues), true)
	if err != nil {
		return nil, err
	}
	offset += 4 + dLen

	numNonNull := countNonNull(dLevels, leaf.DLevelMax)
	values, err := decodeValues(leaf, dph.Encoding, body[offset:], numNonNull, codecName, int(header.UncompressedPageSize)-offset)
	if err != nil {
		return nil, err
	}

	return &shred.ColumnBuffer{RLevels: rLevels, DLevels: dLevels, Values: values, Count: dph.NumValues}, nil
}

func readPageV2(leaf *pschema.Node, header *format.PageHeader, body []byte, codecName string) (*shred.ColumnBuffer, error) {
	dph := header.DataPageHeaderV2
	if dph == nil {
		return nil, &Error{Kind: "BadTrailer", Msg: "missing data_page_header_v2 on DATA_PAGE_V2"}
	}
	rBits := bitWidthFor(leaf.RLevelMax)
	dBits := bitWidthFor(leaf.DLevelMax)

	offset := 0
	rBuf := body[offset : offset+int(dph.RepetitionLevelsByteLength)]
	rLevels, err := encoding.RLEDecode(rBuf, rBits, int(dph.NumValues), false)
	if err != nil {
		return nil, err
	}
	offset += int(dph.RepetitionLevelsByteLength)

	dBuf := body[offset : offset+int(dph.DefinitionLevelsByteLength)]
	dLevels, err := encoding.RLEDecode(dBuf, dBits, int(dph.NumValues), false)
	if err != nil {
		return nil, err
	}
	offset += int(dph.DefinitionLevelsByteLength)

	numNonNull := int(dph.NumValues - dph.NumNulls)
	valuesCodec := codecName
	if !dph.IsCompressed {
		valuesCodec = "UNCOMPRESSED"
	}
	values, err := decodeValues(leaf, dph.Encoding, body[offset:], numNonNull, valuesCodec, int(header.UncompressedPageSize)-offset)
	if err != nil {
		return nil, err
	}

	return &shred.ColumnBuffer{RLevels: rLevels, DLevels: dLevels, Values: values, Count: dph.NumValues}, nil
}

func peekEnvelopeLen(buf []byte, offset int) (int, error) {
	if offset+4 > len(buf) {
		return 0, &Error{Kind: "Truncated", Msg: "RLE envelope length"}
	}
	l := int(buf[offset]) | int(buf[offset+1])<<8 | int(buf[offset+2])<<16 | int(buf[offset+3])<<24
	if offset+4+l > len(buf) {
		return 0, &Error{Kind: "Truncated", Msg: "RLE envelope payload"}
	}
	return l, nil
}

func countNonNull(dLevels []int32, dLevelMax int32) int {
	n := 0
	for _, d := range dLevels {
		if d == dLevelMax {
			n++
		}
	}
	return n
}

func decodeValues(leaf *pschema.Node, enc format.Encoding, raw []byte, numValues int, codecName string, uncompressedValuesSize int) ([]any, error) {
	codec, err := compress.Lookup(codecName)
	if err != nil {
		return nil, err
	}
	rawValues, err := codec.Inflate(raw, uncompressedValuesSize)
	if err != nil {
		return nil, err
	}

	if enc == format.Encoding_RLE {
		bitWidth := 32
		if leaf.Primitive == format.Type_BOOLEAN {
			bitWidth = 1
		}
		ints, err := encoding.RLEDecode(rawValues, bitWidth, numValues, false)
		if err != nil {
			return nil, err
		}
		out := make([]any, numValues)
		for i, v := range ints {
			if leaf.Primitive == format.Type_BOOLEAN {
				out[i] = v != 0
			} else {
				out[i] = v
			}
		}
		return out, nil
	}

	values, _, err := encoding.PlainDecode(leaf.Primitive, rawValues, 0, numValues, leaf.TypeLength)
	return values, err
}
