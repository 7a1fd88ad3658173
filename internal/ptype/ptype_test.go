package ptype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murakmii/parquet/internal/format"
)

func TestResolveDecimalByCarrier(t *testing.T) {
	cases := []struct {
		primitive format.Type
		want      Logical
	}{
		{format.Type_INT32, Decimal32},
		{format.Type_INT64, Decimal64},
		{format.Type_FIXED_LEN_BYTE_ARRAY, DecimalFixed},
		{format.Type_BYTE_ARRAY, DecimalBinary},
	}
	for _, c := range cases {
		got, err := Resolve("DECIMAL", c.primitive)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestResolveUnknownOriginal(t *testing.T) {
	_, err := Resolve("NOT_A_TYPE", format.Type_INT32)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "UnknownType", perr.Kind)
}

func TestResolveDefaultsToPrimitive(t *testing.T) {
	got, err := Resolve("", format.Type_DOUBLE)
	require.NoError(t, err)
	assert.Equal(t, Double, got)
}

func TestUTF8RoundTrip(t *testing.T) {
	prim, err := ToPrimitive(UTF8, "hello", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), prim)

	back, err := FromPrimitive(UTF8, prim, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", back)
}

func TestDateRoundTrip(t *testing.T) {
	epoch := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	prim, err := ToPrimitive(Date, epoch, 0, 0)
	require.NoError(t, err)

	back, err := FromPrimitive(Date, prim, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, epoch, back)
}

func TestTimestampMicrosRoundTrip(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 10, 30, 0, 123000, time.UTC)
	prim, err := ToPrimitive(TimestampMicros, ts, 0, 0)
	require.NoError(t, err)

	back, err := FromPrimitive(TimestampMicros, prim, 0, 0)
	require.NoError(t, err)
	assert.True(t, ts.Equal(back.(time.Time)))
}

func TestIntervalRoundTrip(t *testing.T) {
	iv := IntervalValue{Months: 3, Days: 10, Millis: 5000}
	prim, err := ToPrimitive(Interval, iv, 0, 0)
	require.NoError(t, err)
	require.Len(t, prim.([]byte), 12)

	back, err := FromPrimitive(Interval, prim, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, iv, back)
}

func TestFixedLenByteArrayRejectsWrongLength(t *testing.T) {
	_, err := ToPrimitive(FixedLenByteArray, []byte{1, 2, 3}, 0, 4)
	require.Error(t, err)
}

func TestUint8RangeCheck(t *testing.T) {
	_, err := ToPrimitive(Uint8, 256, 0, 0)
	require.Error(t, err)

	v, err := ToPrimitive(Uint8, 200, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(200), v)
}

func TestDecimal64RoundTrip(t *testing.T) {
	prim, err := ToPrimitive(Decimal64, 12.34, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), prim)

	back, err := FromPrimitive(Decimal64, prim, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 12.34, back.(float64), 0.001)
}

func TestDecimalFixedBigEndian(t *testing.T) {
	prim, err := ToPrimitive(DecimalFixed, -1.5, 1, 4)
	require.NoError(t, err)
	b := prim.([]byte)
	require.Len(t, b, 4)

	back, err := FromPrimitive(DecimalFixed, b, 1, 4)
	require.NoError(t, err)
	assert.InDelta(t, -1.5, back.(float64), 0.001)
}
