package pschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murakmii/parquet/internal/format"
)

func docIDSchema(t *testing.T) *Schema {
	s, err := Build([]*FieldDef{
		{Name: "DocId", Type: "", Primitive: format.Type_INT64},
		{
			Name: "Links", Optional: true,
			Fields: []*FieldDef{
				{Name: "Backward", Repeated: true, Primitive: format.Type_INT64},
				{Name: "Forward", Repeated: true, Primitive: format.Type_INT64},
			},
		},
		{
			Name: "Name", Repeated: true,
			Fields: []*FieldDef{
				{
					Name: "Language", Repeated: true,
					Fields: []*FieldDef{
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

func TestLevelMaxima(t *testing.T) {
	s := docIDSchema(t)

	docID := s.FindField("DocId")
	assert.Equal(t, int32(0), docID.RLevelMax)
	assert.Equal(t, int32(0), docID.DLevelMax)

	code := s.FindField([]string{"Name", "Language", "Code"})
	require.NotNil(t, code)
	assert.Equal(t, int32(2), code.RLevelMax)
	assert.Equal(t, int32(2), code.DLevelMax)

	country := s.FindField("Name,Language,Country")
	require.NotNil(t, country)
	assert.Equal(t, int32(2), country.RLevelMax)
	assert.Equal(t, int32(3), country.DLevelMax)

	backward := s.FindField("Links,Backward")
	require.NotNil(t, backward)
	assert.Equal(t, int32(1), backward.RLevelMax)
	assert.Equal(t, int32(2), backward.DLevelMax)
}

func TestFindFieldBranch(t *testing.T) {
	s := docIDSchema(t)
	branch := s.FindFieldBranch("Name,Language,Code")
	require.Len(t, branch, 3)
	assert.Equal(t, "Name", branch[0].Name)
	assert.Equal(t, "Language", branch[1].Name)
	assert.Equal(t, "Code", branch[2].Name)
}

func TestUnknownEncodingRejected(t *testing.T) {
	_, err := Build([]*FieldDef{
		{Name: "x", Primitive: format.Type_INT32, Encoding: "DELTA_BINARY_PACKED"},
	})
	require.Error(t, err)
}

func TestRLERejectedForByteArray(t *testing.T) {
	_, err := Build([]*FieldDef{
		{Name: "x", Type: "UTF8", Primitive: format.Type_BYTE_ARRAY, Encoding: "RLE"},
	})
	require.Error(t, err)
}

func TestFixedLenByteArrayRequiresTypeLength(t *testing.T) {
	_, err := Build([]*FieldDef{
		{Name: "x", Primitive: format.Type_FIXED_LEN_BYTE_ARRAY},
	})
	require.Error(t, err)
}

func TestDuplicatePathRejected(t *testing.T) {
	_, err := Build([]*FieldDef{
		{Name: "x", Primitive: format.Type_INT32},
		{Name: "x", Primitive: format.Type_INT64},
	})
	require.Error(t, err)
}

func TestListSugarExpandsToCanonicalShape(t *testing.T) {
	s, err := Build([]*FieldDef{
		{
			Name: "tags",
			List: &ListDef{Element: &FieldDef{Type: "UTF8", Primitive: format.Type_BYTE_ARRAY}},
		},
	})
	require.NoError(t, err)

	leaf := s.FindField("tags,list,element")
	require.NotNil(t, leaf)
	assert.True(t, leaf.IsLeaf)
	assert.Equal(t, Required, leaf.Repetition)

	list := s.FindField("tags,list")
	require.NotNil(t, list)
	assert.Equal(t, Repeated, list.Repetition)

	group := s.FindField("tags")
	require.NotNil(t, group)
	require.NotNil(t, group.Original)
	assert.Equal(t, format.ConvertedType_LIST, *group.Original)
}

func TestMapSugarExpandsToCanonicalShape(t *testing.T) {
	s, err := Build([]*FieldDef{
		{
			Name: "attrs",
			Map: &MapDef{
				Key:   &FieldDef{Type: "UTF8", Primitive: format.Type_BYTE_ARRAY},
				Value: &FieldDef{Primitive: format.Type_INT32},
			},
		},
	})
	require.NoError(t, err)

	key := s.FindField("attrs,key_value,key")
	require.NotNil(t, key)
	val := s.FindField("attrs,key_value,value")
	require.NotNil(t, val)

	attrs := s.FindField("attrs")
	require.NotNil(t, attrs)
	require.NotNil(t, attrs.Original)
	assert.Equal(t, format.ConvertedType_MAP, *attrs.Original)

	kv := s.FindField("attrs,key_value")
	require.NotNil(t, kv)
	require.NotNil(t, kv.Original)
	assert.Equal(t, format.ConvertedType_MAP_KEY_VALUE, *kv.Original)
	assert.Equal(t, Repeated, kv.Repetition)
}

func TestSchemaElementRoundTrip(t *testing.T) {
	s := docIDSchema(t)
	elements := s.ToSchemaElements()
	require.Equal(t, "root", elements[0].Name) // synthetic root comes first

	rebuilt, err := FromSchemaElements(elements[1:]) // drop synthetic root
	require.NoError(t, err)
	assert.ElementsMatch(t, s.SortedLeafKeys(), rebuilt.SortedLeafKeys())
}
