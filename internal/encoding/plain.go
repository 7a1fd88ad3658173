// Package encoding implements the PLAIN and RLE/bit-packed hybrid value
// codecs spec.md §4.4 and §4.5 describe. PLAIN decoding operates on a
// cursor (buffer, offset) rather than an io.Reader: callers decode many
// small values out of one page buffer and need exact byte accounting to
// find the next section. RLE decoding takes the byte slice of exactly one
// section.
package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/murakmii/parquet/internal/format"
)

// Error is encoding's sentinel-carrying error type (spec.md §7:
// Truncated / InvalidRle).
type Error struct {
	Kind string
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("encoding: %s: %s", e.Kind, e.Msg) }

func truncated(msg string) error { return &Error{Kind: "Truncated", Msg: msg} }

// PlainEncode encodes values (already converted to their wire primitive
// Go type by ptype.ToPrimitive) into a newly allocated buffer using the
// PLAIN layout for primitive.
func PlainEncode(primitive format.Type, values []any, typeLength int32) ([]byte, error) {
	switch primitive {
	case format.Type_BOOLEAN:
		return plainEncodeBool(values), nil
	case format.Type_INT32:
		return plainEncodeFixed(values, 4, func(b []byte, v any) error {
			n, ok := v.(int32)
			if !ok {
				return fmt.Errorf("encoding: expected int32, got %T", v)
			}
			binary.LittleEndian.PutUint32(b, uint32(n))
			return nil
		})
	case format.Type_INT64:
		return plainEncodeFixed(values, 8, func(b []byte, v any) error {
			n, ok := v.(int64)
			if !ok {
				return fmt.Errorf("encoding: expected int64, got %T", v)
			}
			binary.LittleEndian.PutUint64(b, uint64(n))
			return nil
		})
	case format.Type_INT96:
		return plainEncodeFixed(values, 12, func(b []byte, v any) error {
			n, ok := v.(int64)
			if !ok {
				return fmt.Errorf("encoding: expected int64, got %T", v)
			}
			u := uint64(n)
			if n < 0 {
				u = uint64(-n)
			}
			binary.LittleEndian.PutUint64(b[:8], u)
			if n < 0 {
				binary.LittleEndian.PutUint32(b[8:], 0xFFFFFFFF)
			}
			return nil
		})
	case format.Type_FLOAT:
		return plainEncodeFixed(values, 4, func(b []byte, v any) error {
			f, ok := v.(float32)
			if !ok {
				return fmt.Errorf("encoding: expected float32, got %T", v)
			}
			binary.LittleEndian.PutUint32(b, math.Float32bits(f))
			return nil
		})
	case format.Type_DOUBLE:
		return plainEncodeFixed(values, 8, func(b []byte, v any) error {
			f, ok := v.(float64)
			if !ok {
				return fmt.Errorf("encoding: expected float64, got %T", v)
			}
			binary.LittleEndian.PutUint64(b, math.Float64bits(f))
			return nil
		})
	case format.Type_BYTE_ARRAY:
		return plainEncodeByteArray(values)
	case format.Type_FIXED_LEN_BYTE_ARRAY:
		return plainEncodeFixedLenByteArray(values, typeLength)
	}
	return nil, fmt.Errorf("encoding: unsupported primitive %s", primitive)
}

func plainEncodeBool(values []any) []byte {
	out := make([]byte, (len(values)+7)/8)
	for i, v := range values {
		b, _ := v.(bool)
		if b {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

func plainEncodeFixed(values []any, width int, put func([]byte, any) error) ([]byte, error) {
	out := make([]byte, width*len(values))
	for i, v := range values {
		if err := put(out[i*width:(i+1)*width], v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func plainEncodeByteArray(values []any) ([]byte, error) {
	var out []byte
	for _, v := range values {
		b, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("encoding: expected []byte, got %T", v)
		}
		hdr := make([]byte, 4)
		binary.LittleEndian.PutUint32(hdr, uint32(len(b)))
		out = append(out, hdr...)
		out = append(out, b...)
	}
	return out, nil
}

func plainEncodeFixedLenByteArray(values []any, typeLength int32) ([]byte, error) {
	out := make([]byte, 0, int(typeLength)*len(values))
	for _, v := range values {
		b, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("encoding: expected []byte, got %T", v)
		}
		if int32(len(b)) != typeLength {
			return nil, fmt.Errorf("encoding: FIXED_LEN_BYTE_ARRAY expected %d bytes, got %d", typeLength, len(b))
		}
		out = append(out, b...)
	}
	return out, nil
}

// PlainDecode reads n values of primitive out of buf starting at offset,
// returning the decoded values and the offset just past the last one
// consumed.
func PlainDecode(primitive format.Type, buf []byte, offset int, n int, typeLength int32) ([]any, int, error) {
	switch primitive {
	case format.Type_BOOLEAN:
		return plainDecodeBool(buf, offset, n)
	case format.Type_INT32:
		return plainDecodeFixed(buf, offset, n, 4, func(b []byte) any {
			return int32(binary.LittleEndian.Uint32(b))
		})
	case format.Type_INT64:
		return plainDecodeFixed(buf, offset, n, 8, func(b []byte) any {
			return int64(binary.LittleEndian.Uint64(b))
		})
	case format.Type_INT96:
		return plainDecodeFixed(buf, offset, n, 12, func(b []byte) any {
			lo := binary.LittleEndian.Uint64(b[:8])
			hi := binary.LittleEndian.Uint32(b[8:])
			if hi == 0xFFFFFFFF {
				return -int64(lo)
			}
			return int64(lo)
		})
	case format.Type_FLOAT:
		return plainDecodeFixed(buf, offset, n, 4, func(b []byte) any {
			return math.Float32frombits(binary.LittleEndian.Uint32(b))
		})
	case format.Type_DOUBLE:
		return plainDecodeFixed(buf, offset, n, 8, func(b []byte) any {
			return math.Float64frombits(binary.LittleEndian.Uint64(b))
		})
	case format.Type_BYTE_ARRAY:
		return plainDecodeByteArray(buf, offset, n)
	case format.Type_FIXED_LEN_BYTE_ARRAY:
		return plainDecodeFixed(buf, offset, n, int(typeLength), func(b []byte) any {
			return append([]byte{}, b...)
		})
	}
	return nil, offset, fmt.Errorf("encoding: unsupported primitive %s", primitive)
}

func plainDecodeBool(buf []byte, offset, n int) ([]any, int, error) {
	need := (n + 7) / 8
	if offset+need > len(buf) {
		return nil, offset, truncated("PLAIN BOOLEAN")
	}
	out := make([]any, n)
	for i := 0; i < n; i++ {
		out[i] = buf[offset+i/8]&(1<<uint(i%8)) != 0
	}
	return out, offset + need, nil
}

func plainDecodeFixed(buf []byte, offset, n, width int, get func([]byte) any) ([]any, int, error) {
	need := width * n
	if offset+need > len(buf) {
		return nil, offset, truncated("PLAIN fixed-width values")
	}
	out := make([]any, n)
	for i := 0; i < n; i++ {
		out[i] = get(buf[offset+i*width : offset+(i+1)*width])
	}
	return out, offset + need, nil
}

func plainDecodeByteArray(buf []byte, offset, n int) ([]any, int, error) {
	out := make([]any, n)
	for i := 0; i < n; i++ {
		if offset+4 > len(buf) {
			return nil, offset, truncated("PLAIN BYTE_ARRAY length")
		}
		l := int(binary.LittleEndian.Uint32(buf[offset : offset+4]))
		offset += 4
		if offset+l > len(buf) {
			return nil, offset, truncated("PLAIN BYTE_ARRAY body")
		}
		out[i] = append([]byte{}, buf[offset:offset+l]...)
		offset += l
	}
	return out, offset, nil
}
