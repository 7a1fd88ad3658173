package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRLERepeatedRunRoundTrip(t *testing.T) {
	values := make([]int32, 16)
	for i := range values {
		values[i] = 7
	}
	buf, err := RLEEncode(values, 4, false)
	require.NoError(t, err)

	got, err := RLEDecode(buf, 4, len(values), true)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestRLEBitPackedRunRoundTrip(t *testing.T) {
	values := []int32{0, 1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7}
	buf, err := RLEEncode(values, 3, false)
	require.NoError(t, err)

	got, err := RLEDecode(buf, 3, len(values), true)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestRLEMixedRunsRoundTrip(t *testing.T) {
	values := []int32{1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 9, 2}
	buf, err := RLEEncode(values, 4, false)
	require.NoError(t, err)

	got, err := RLEDecode(buf, 4, len(values), true)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestRLEDisabledEnvelope(t *testing.T) {
	values := []int32{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	buf, err := RLEEncode(values, 2, true)
	require.NoError(t, err)

	got, err := RLEDecode(buf, 2, len(values), false)
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestRLEDecodeRejectsLengthMismatch(t *testing.T) {
	values := []int32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	buf, err := RLEEncode(values, 2, true)
	require.NoError(t, err)

	_, err = RLEDecode(buf, 2, 3, false)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "InvalidRle", rerr.Kind)
}
