package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripEachCodec(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly, repeatedly")
	for _, name := range []string{"UNCOMPRESSED", "SNAPPY", "GZIP", "BROTLI", "LZ4", "ZSTD"} {
		t.Run(name, func(t *testing.T) {
			codec, err := Lookup(name)
			require.NoError(t, err)

			compressed, err := codec.Deflate(src)
			require.NoError(t, err)

			got, err := codec.Inflate(compressed, len(src))
			require.NoError(t, err)
			assert.Equal(t, src, got)
		})
	}
}

func TestLZOUnavailable(t *testing.T) {
	codec, err := Lookup("LZO")
	require.NoError(t, err)

	_, err = codec.Deflate([]byte("x"))
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "CodecUnavailable", cerr.Kind)
}

func TestUnknownCodec(t *testing.T) {
	_, err := Lookup("DOES_NOT_EXIST")
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "UnknownCodec", cerr.Kind)
}
