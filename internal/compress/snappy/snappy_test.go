package snappy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripShort(t *testing.T) {
	src := []byte("hello, hello, hello, parquet parquet parquet")
	enc := Encode(src)
	require.LessOrEqual(t, len(enc), MaxCompressedLength(len(src)))

	dec, err := Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, src, dec)
}

func TestRoundTripEmpty(t *testing.T) {
	enc := Encode(nil)
	dec, err := Decode(enc)
	require.NoError(t, err)
	assert.Empty(t, dec)
}

func TestRoundTripRepetitive(t *testing.T) {
	src := bytes.Repeat([]byte("abcdefgh"), 10000)
	enc := Encode(src)
	assert.Less(t, len(enc), len(src)/4)

	dec, err := Decode(enc)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(src, dec))
}

func TestRoundTripLongLiteral(t *testing.T) {
	src := []byte(strings.Repeat("x", 100))
	enc := Encode(src)
	dec, err := Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, src, dec)
}

func TestRoundTripMultiFragment(t *testing.T) {
	src := bytes.Repeat([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 20000) // > 64KiB
	enc := Encode(src)
	dec, err := Decode(enc)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(src, dec))
}

func TestDecodeRejectsBadOffset(t *testing.T) {
	// varint(1) followed by a copy tag whose offset exceeds output length.
	bad := []byte{1, 0b00000101, 0x01}
	_, err := Decode(bad)
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "InvalidSnappy", serr.Kind)
}
