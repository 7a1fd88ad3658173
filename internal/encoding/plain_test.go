package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murakmii/parquet/internal/format"
)

func TestPlainInt32RoundTrip(t *testing.T) {
	buf, err := PlainEncode(format.Type_INT32, []any{int32(1), int32(-2), int32(3)}, 0)
	require.NoError(t, err)
	require.Len(t, buf, 12)

	vals, off, err := PlainDecode(format.Type_INT32, buf, 0, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, off)
	assert.Equal(t, []any{int32(1), int32(-2), int32(3)}, vals)
}

func TestPlainBooleanRoundTrip(t *testing.T) {
	vals := []any{true, false, true, true, false, false, false, true, true}
	buf, err := PlainEncode(format.Type_BOOLEAN, vals, 0)
	require.NoError(t, err)
	require.Len(t, buf, 2)

	got, off, err := PlainDecode(format.Type_BOOLEAN, buf, 0, len(vals), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, off)
	assert.Equal(t, vals, got)
}

func TestPlainByteArrayRoundTrip(t *testing.T) {
	vals := []any{[]byte("hi"), []byte(""), []byte("parquet")}
	buf, err := PlainEncode(format.Type_BYTE_ARRAY, vals, 0)
	require.NoError(t, err)

	got, off, err := PlainDecode(format.Type_BYTE_ARRAY, buf, 0, len(vals), 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), off)
	assert.Equal(t, vals, got)
}

func TestPlainFixedLenByteArrayRejectsWrongLength(t *testing.T) {
	_, err := PlainEncode(format.Type_FIXED_LEN_BYTE_ARRAY, []any{[]byte{1, 2}}, 4)
	require.Error(t, err)
}

func TestPlainByteArrayTruncated(t *testing.T) {
	_, _, err := PlainDecode(format.Type_BYTE_ARRAY, []byte{5, 0, 0, 0, 'h', 'i'}, 0, 1, 0)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Truncated", perr.Kind)
}
