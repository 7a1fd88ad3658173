// Package compress is the pluggable deflate/inflate registry spec.md
// §4.6 describes. UNCOMPRESSED is identity; SNAPPY delegates to this
// repo's own from-scratch codec; GZIP, BROTLI, LZ4 and the bonus ZSTD
// entry delegate to platform libraries. LZO has a registry entry with no
// working codec behind it: Lookup("LZO") succeeds, but Deflate and
// Inflate fail with CodecUnavailable (see DESIGN.md).
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/DataDog/zstd"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"

	"github.com/murakmii/parquet/internal/compress/snappy"
)

// Error is compress's sentinel-carrying error type.
type Error struct {
	Kind string
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("compress: %s: %s", e.Kind, e.Msg) }

// Codec is a registered (deflate, inflate) pair. inflate receives the
// expected uncompressed size as an auxiliary parameter for formats that
// need to preallocate or validate against it.
type Codec struct {
	Deflate func(src []byte) ([]byte, error)
	Inflate func(src []byte, uncompressedSize int) ([]byte, error)
}

var registry = map[string]Codec{
	"UNCOMPRESSED": {
		Deflate: func(src []byte) ([]byte, error) { return src, nil },
		Inflate: func(src []byte, _ int) ([]byte, error) { return src, nil },
	},
	"SNAPPY": {
		Deflate: func(src []byte) ([]byte, error) { return snappy.Encode(src), nil },
		Inflate: func(src []byte, _ int) ([]byte, error) { return snappy.Decode(src) },
	},
	"GZIP": {
		Deflate: gzipDeflate,
		Inflate: gzipInflate,
	},
	"BROTLI": {
		Deflate: brotliDeflate,
		Inflate: brotliInflate,
	},
	"LZ4": {
		Deflate: lz4Deflate,
		Inflate: lz4Inflate,
	},
	"ZSTD": {
		Deflate: func(src []byte) ([]byte, error) { return zstd.Compress(nil, src) },
		Inflate: func(src []byte, uncompressedSize int) ([]byte, error) {
			return zstd.Decompress(make([]byte, 0, uncompressedSize), src)
		},
	},
	"LZO": {
		Deflate: func([]byte) ([]byte, error) { return nil, unavailable("LZO") },
		Inflate: func([]byte, int) ([]byte, error) { return nil, unavailable("LZO") },
	},
}

func unavailable(name string) error {
	return &Error{Kind: "CodecUnavailable", Msg: name}
}

// Lookup returns the registered codec for name, or an UnknownCodec error.
func Lookup(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return Codec{}, &Error{Kind: "UnknownCodec", Msg: name}
	}
	return c, nil
}

func gzipDeflate(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gzipInflate(src []byte, uncompressedSize int) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	out := make([]byte, 0, uncompressedSize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliDeflate(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliInflate(src []byte, uncompressedSize int) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	out := make([]byte, 0, uncompressedSize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lz4Deflate(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lz4Inflate(src []byte, uncompressedSize int) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(src))
	out := make([]byte, 0, uncompressedSize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
