package pqio

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murakmii/parquet/internal/format"
	"github.com/murakmii/parquet/internal/pschema"
	"github.com/murakmii/parquet/internal/shred"
)

// seekBuffer adapts a growable byte slice into an io.ReadWriteSeeker,
// since bytes.Buffer itself isn't seekable and os.File round trips would
// touch the filesystem for no benefit in these tests.
type seekBuffer struct {
	buf []byte
	pos int64
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if b.pos != int64(len(b.buf)) {
		n := copy(b.buf[b.pos:], p)
		b.buf = append(b.buf, p[n:]...)
		b.pos += int64(len(p))
		return len(p), nil
	}
	b.buf = append(b.buf, p...)
	b.pos += int64(len(p))
	return len(p), nil
}

func (b *seekBuffer) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.buf)) {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.pos:])
	b.pos += int64(n)
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = b.pos
	case io.SeekEnd:
		base = int64(len(b.buf))
	}
	b.pos = base + offset
	return b.pos, nil
}

func flatSchema(t *testing.T) *pschema.Schema {
	s, err := pschema.Build([]*pschema.FieldDef{
		{Name: "id", Primitive: format.Type_INT64},
		{Name: "name", Optional: true, Type: "UTF8", Primitive: format.Type_BYTE_ARRAY},
		{Name: "score", Optional: true, Primitive: format.Type_FLOAT},
	})
	require.NoError(t, err)
	return s
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := flatSchema(t)
	sb := &seekBuffer{}

	w, err := New(sb, s, WithMetadata("created_by", "pqio_test"))
	require.NoError(t, err)

	rows := []shred.Record{
		{"id": int64(1), "name": "alice", "score": float32(9.5)},
		{"id": int64(2), "score": float32(1.5)},
		{"id": int64(3), "name": "carol"},
	}
	for _, r := range rows {
		require.NoError(t, w.AppendRow(r))
	}
	require.NoError(t, w.Close())

	rd, err := Open(sb)
	require.NoError(t, err)
	defer rd.Close()

	assert.Equal(t, int64(3), rd.NumRows())
	assert.Equal(t, "pqio_test", rd.GetMetadata()["created_by"])

	cur, err := rd.GetCursor()
	require.NoError(t, err)

	var got []shred.Record
	for {
		row, err := cur.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, row)
	}
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0]["id"])
	assert.Equal(t, "alice", got[0]["name"])
	assert.Equal(t, float32(9.5), got[0]["score"])
	assert.Equal(t, int64(2), got[1]["id"])
	_, hasName := got[1]["name"]
	assert.False(t, hasName)
	assert.Equal(t, int64(3), got[2]["id"])
	assert.Equal(t, "carol", got[2]["name"])
}

func TestColumnProjection(t *testing.T) {
	s := flatSchema(t)
	sb := &seekBuffer{}

	w, err := New(sb, s)
	require.NoError(t, err)
	require.NoError(t, w.AppendRow(shred.Record{"id": int64(1), "name": "alice", "score": float32(9.5)}))
	require.NoError(t, w.Close())

	rd, err := Open(sb)
	require.NoError(t, err)
	defer rd.Close()

	cur, err := rd.GetCursor("id")
	require.NoError(t, err)

	row, err := cur.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), row["id"])
	_, hasName := row["name"]
	assert.False(t, hasName)
	_, hasScore := row["score"]
	assert.False(t, hasScore)
}

func TestRowGroupFlushing(t *testing.T) {
	s := flatSchema(t)
	sb := &seekBuffer{}

	w, err := New(sb, s, WithRowGroupSize(2))
	require.NoError(t, err)
	for i := int64(0); i < 5; i++ {
		require.NoError(t, w.AppendRow(shred.Record{"id": i}))
	}
	require.NoError(t, w.Close())

	rd, err := Open(sb)
	require.NoError(t, err)
	defer rd.Close()

	assert.Equal(t, int64(5), rd.NumRows())
	assert.Len(t, rd.RowGroups(), 3)
	assert.Equal(t, int64(2), rd.RowGroups()[0].NumRows)
	assert.Equal(t, int64(1), rd.RowGroups()[2].NumRows)
}

func TestDataPageV2RoundTrip(t *testing.T) {
	s := flatSchema(t)
	sb := &seekBuffer{}

	w, err := New(sb, s, WithDataPageV2(), WithCompression("SNAPPY"))
	require.NoError(t, err)
	require.NoError(t, w.AppendRow(shred.Record{"id": int64(42), "name": []byte("dora"), "score": float32(2.25)}))
	require.NoError(t, w.Close())

	rd, err := Open(sb)
	require.NoError(t, err)
	defer rd.Close()

	cur, err := rd.GetCursor()
	require.NoError(t, err)
	row, err := cur.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(42), row["id"])
	assert.Equal(t, []byte("dora"), row["name"])
	assert.Equal(t, float32(2.25), row["score"])
}

func TestOpenRejectsBadMagic(t *testing.T) {
	sb := &seekBuffer{buf: []byte("NOTPARQUET-trailing-bytes-padding")}
	_, err := Open(sb)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "BadMagic", perr.Kind)
}

func TestCloseRejectsEmptyFile(t *testing.T) {
	s := flatSchema(t)
	sb := &seekBuffer{}
	w, err := New(sb, s)
	require.NoError(t, err)
	err = w.Close()
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "EmptyFile", perr.Kind)
}
