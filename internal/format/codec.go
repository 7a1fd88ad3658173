package format

import "fmt"

// CompressionCodecFromName maps a registry codec name (spec.md §4.6) onto
// its wire-level CompressionCodec enum value.
func CompressionCodecFromName(name string) (CompressionCodec, error) {
	switch name {
	case "UNCOMPRESSED":
		return CompressionCodec_UNCOMPRESSED, nil
	case "SNAPPY":
		return CompressionCodec_SNAPPY, nil
	case "GZIP":
		return CompressionCodec_GZIP, nil
	case "LZO":
		return CompressionCodec_LZO, nil
	case "BROTLI":
		return CompressionCodec_BROTLI, nil
	case "LZ4":
		return CompressionCodec_LZ4, nil
	case "ZSTD":
		return CompressionCodec_ZSTD, nil
	}
	return 0, fmt.Errorf("format: unknown compression codec name %q", name)
}

// CompressionCodecName is the inverse of CompressionCodecFromName.
func CompressionCodecName(c CompressionCodec) string {
	switch c {
	case CompressionCodec_UNCOMPRESSED:
		return "UNCOMPRESSED"
	case CompressionCodec_SNAPPY:
		return "SNAPPY"
	case CompressionCodec_GZIP:
		return "GZIP"
	case CompressionCodec_LZO:
		return "LZO"
	case CompressionCodec_BROTLI:
		return "BROTLI"
	case CompressionCodec_LZ4:
		return "LZ4"
	case CompressionCodec_ZSTD:
		return "ZSTD"
	}
	return c.String()
}
