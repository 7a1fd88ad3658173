package shred

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murakmii/parquet/internal/format"
	"github.com/murakmii/parquet/internal/pschema"
)

// docIDSchema is the canonical Dremel DocId/Links/Name/Language example:
// one required scalar, one optional repeated-leaf group, and a doubly
// nested repeated group with an optional leaf underneath it.
func docIDSchema(t *testing.T) *pschema.Schema {
	s, err := pschema.Build([]*pschema.FieldDef{
		{Name: "DocId", Primitive: format.Type_INT64},
		{
			Name: "Links", Optional: true,
			Fields: []*pschema.FieldDef{
				{Name: "Backward", Repeated: true, Primitive: format.Type_INT64},
				{Name: "Forward", Repeated: true, Primitive: format.Type_INT64},
			},
		},
		{
			Name: "Name", Repeated: true,
			Fields: []*pschema.FieldDef{
				{
					Name: "Language", Repeated: true,
					Fields: []*pschema.FieldDef{
						{Name: "Code", Type: "UTF8", Primitive: format.Type_BYTE_ARRAY},
						{Name: "Country", Optional: true, Type: "UTF8", Primitive: format.Type_BYTE_ARRAY},
					},
				},
				{Name: "Url", Optional: true, Type: "UTF8", Primitive: format.Type_BYTE_ARRAY},
			},
		},
	})
	require.NoError(t, err)
	return s
}

func TestShredMaterializeRoundTrip(t *testing.T) {
	s := docIDSchema(t)
	rb := NewRowBuffer(s)

	r1 := Record{
		"DocId": int64(10),
		"Links": Record{"Forward": []any{int64(20), int64(40), int64(60)}},
		"Name": []any{
			Record{
				"Language": []any{
					Record{"Code": "en-us", "Country": "us"},
					Record{"Code": "en"},
				},
				"Url": "http://A",
			},
			Record{"Url": "http://B"},
			Record{"Language": []any{Record{"Code": "en-gb", "Country": "gb"}}},
		},
	}
	r2 := Record{
		"DocId": int64(20),
		"Links": Record{"Backward": []any{int64(10), int64(30)}, "Forward": []any{int64(80)}},
		"Name": []any{
			Record{"Url": "http://C"},
		},
	}

	require.NoError(t, Shred(s, r1, rb))
	require.NoError(t, Shred(s, r2, rb))
	assert.Equal(t, int32(2), rb.RowCount)

	code := rb.Columns["Name,Language,Code"]
	require.NotNil(t, code)
	assert.Equal(t, []any{[]byte("en-us"), []byte("en"), []byte("en-gb")}, code.Values)

	rows, err := Materialize(s, rb)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, r1, rows[0])
	assert.Equal(t, r2, rows[1])
}

func TestMissingRequiredRejected(t *testing.T) {
	s := docIDSchema(t)
	rb := NewRowBuffer(s)
	err := Shred(s, Record{"Name": []any{}}, rb)
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "MissingRequired", serr.Kind)
}

func TestTooManyValuesRejected(t *testing.T) {
	s := docIDSchema(t)
	rb := NewRowBuffer(s)
	err := Shred(s, Record{"DocId": []any{int64(1), int64(2)}}, rb)
	require.Error(t, err)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "TooManyValues", serr.Kind)
}

func TestListSugarShredMaterializeRoundTrip(t *testing.T) {
	s, err := pschema.Build([]*pschema.FieldDef{
		{Name: "tags", List: &pschema.ListDef{Element: &pschema.FieldDef{Type: "UTF8", Primitive: format.Type_BYTE_ARRAY}}},
	})
	require.NoError(t, err)

	rb := NewRowBuffer(s)
	rec := Record{"tags": []any{"a", "b", "c"}}
	require.NoError(t, Shred(s, rec, rb))

	rows, err := Materialize(s, rb)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []any{"a", "b", "c"}, rows[0]["tags"])
}

func TestMapSugarShredMaterializeRoundTrip(t *testing.T) {
	s, err := pschema.Build([]*pschema.FieldDef{
		{
			Name: "attrs",
			Map: &pschema.MapDef{
				Key:   &pschema.FieldDef{Type: "UTF8", Primitive: format.Type_BYTE_ARRAY},
				Value: &pschema.FieldDef{Primitive: format.Type_INT32},
			},
		},
	})
	require.NoError(t, err)

	rb := NewRowBuffer(s)
	rec := Record{"attrs": map[string]any{"a": int32(1), "b": int32(2)}}
	require.NoError(t, Shred(s, rec, rb))

	rows, err := Materialize(s, rb)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, map[string]any{"a": int32(1), "b": int32(2)}, rows[0]["attrs"])
}
