// Code generated by the Apache Thrift compiler's Go plugin, trimmed to the
// subset of github.com/apache/thrift/lib/go/thrift this repo exercises.
// DO NOT EDIT UNLESS YOU ARE SURE THAT YOU KNOW WHAT YOU ARE DOING.

// Package format carries the Parquet metadata IDL: the wire-visible shapes
// that FileMetaData, SchemaElement, ColumnChunk and friends take on disk.
// Binary framing is delegated to github.com/apache/thrift's TCompactProtocol,
// exactly the way murakmii/retsu's internal/parquet.go drives it.
package format

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

// Type is the physical (primitive) storage type of a column.
type Type int32

const (
	Type_BOOLEAN              Type = 0
	Type_INT32                Type = 1
	Type_INT64                Type = 2
	Type_INT96                Type = 3
	Type_FLOAT                Type = 4
	Type_DOUBLE               Type = 5
	Type_BYTE_ARRAY            Type = 6
	Type_FIXED_LEN_BYTE_ARRAY Type = 7
)

func (t Type) String() string {
	switch t {
	case Type_BOOLEAN:
		return "BOOLEAN"
	case Type_INT32:
		return "INT32"
	case Type_INT64:
		return "INT64"
	case Type_INT96:
		return "INT96"
	case Type_FLOAT:
		return "FLOAT"
	case Type_DOUBLE:
		return "DOUBLE"
	case Type_BYTE_ARRAY:
		return "BYTE_ARRAY"
	case Type_FIXED_LEN_BYTE_ARRAY:
		return "FIXED_LEN_BYTE_ARRAY"
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// FieldRepetitionType is a schema node's repetition: REQUIRED, OPTIONAL or
// REPEATED.
type FieldRepetitionType int32

const (
	FieldRepetitionType_REQUIRED FieldRepetitionType = 0
	FieldRepetitionType_OPTIONAL FieldRepetitionType = 1
	FieldRepetitionType_REPEATED FieldRepetitionType = 2
)

func (t FieldRepetitionType) String() string {
	switch t {
	case FieldRepetitionType_REQUIRED:
		return "REQUIRED"
	case FieldRepetitionType_OPTIONAL:
		return "OPTIONAL"
	case FieldRepetitionType_REPEATED:
		return "REPEATED"
	}
	return fmt.Sprintf("FieldRepetitionType(%d)", int32(t))
}

// Encoding names a column value (or level) encoding.
type Encoding int32

const (
	Encoding_PLAIN                   Encoding = 0
	Encoding_PLAIN_DICTIONARY        Encoding = 2
	Encoding_RLE                     Encoding = 3
	Encoding_BIT_PACKED              Encoding = 4
	Encoding_DELTA_BINARY_PACKED     Encoding = 5
	Encoding_DELTA_LENGTH_BYTE_ARRAY Encoding = 6
	Encoding_DELTA_BYTE_ARRAY        Encoding = 7
	Encoding_RLE_DICTIONARY          Encoding = 8
	Encoding_BYTE_STREAM_SPLIT       Encoding = 9
)

func (e Encoding) String() string {
	switch e {
	case Encoding_PLAIN:
		return "PLAIN"
	case Encoding_PLAIN_DICTIONARY:
		return "PLAIN_DICTIONARY"
	case Encoding_RLE:
		return "RLE"
	case Encoding_BIT_PACKED:
		return "BIT_PACKED"
	case Encoding_DELTA_BINARY_PACKED:
		return "DELTA_BINARY_PACKED"
	case Encoding_DELTA_LENGTH_BYTE_ARRAY:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case Encoding_DELTA_BYTE_ARRAY:
		return "DELTA_BYTE_ARRAY"
	case Encoding_RLE_DICTIONARY:
		return "RLE_DICTIONARY"
	case Encoding_BYTE_STREAM_SPLIT:
		return "BYTE_STREAM_SPLIT"
	}
	return fmt.Sprintf("Encoding(%d)", int32(e))
}

// CompressionCodec names the page-body compressor.
type CompressionCodec int32

const (
	CompressionCodec_UNCOMPRESSED CompressionCodec = 0
	CompressionCodec_SNAPPY       CompressionCodec = 1
	CompressionCodec_GZIP         CompressionCodec = 2
	CompressionCodec_LZO          CompressionCodec = 3
	CompressionCodec_BROTLI       CompressionCodec = 4
	CompressionCodec_LZ4          CompressionCodec = 5
	CompressionCodec_ZSTD         CompressionCodec = 6
)

func (c CompressionCodec) String() string {
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
	return fmt.Sprintf("CompressionCodec(%d)", int32(c))
}

// PageType distinguishes data pages (v1/v2) from the page kinds this repo
// doesn't produce but must still be able to name (dictionary, index).
type PageType int32

const (
	PageType_DATA_PAGE       PageType = 0
	PageType_INDEX_PAGE      PageType = 1
	PageType_DICTIONARY_PAGE PageType = 2
	PageType_DATA_PAGE_V2    PageType = 3
)

func (p PageType) String() string {
	switch p {
	case PageType_DATA_PAGE:
		return "DATA_PAGE"
	case PageType_INDEX_PAGE:
		return "INDEX_PAGE"
	case PageType_DICTIONARY_PAGE:
		return "DICTIONARY_PAGE"
	case PageType_DATA_PAGE_V2:
		return "DATA_PAGE_V2"
	}
	return fmt.Sprintf("PageType(%d)", int32(p))
}

// ConvertedType is the legacy name for what spec.md calls the "original
// type": a logical overlay on top of a primitive Type.
type ConvertedType int32

const (
	ConvertedType_UTF8             ConvertedType = 0
	ConvertedType_MAP              ConvertedType = 1
	ConvertedType_MAP_KEY_VALUE    ConvertedType = 2
	ConvertedType_LIST             ConvertedType = 3
	ConvertedType_ENUM             ConvertedType = 4
	ConvertedType_DECIMAL          ConvertedType = 5
	ConvertedType_DATE             ConvertedType = 6
	ConvertedType_TIME_MILLIS      ConvertedType = 7
	ConvertedType_TIME_MICROS      ConvertedType = 8
	ConvertedType_TIMESTAMP_MILLIS ConvertedType = 9
	ConvertedType_TIMESTAMP_MICROS ConvertedType = 10
	ConvertedType_UINT_8           ConvertedType = 11
	ConvertedType_UINT_16          ConvertedType = 12
	ConvertedType_UINT_32          ConvertedType = 13
	ConvertedType_UINT_64          ConvertedType = 14
	ConvertedType_INT_8            ConvertedType = 15
	ConvertedType_INT_16           ConvertedType = 16
	ConvertedType_INT_32           ConvertedType = 17
	ConvertedType_INT_64           ConvertedType = 18
	ConvertedType_JSON             ConvertedType = 19
	ConvertedType_BSON             ConvertedType = 20
	ConvertedType_INTERVAL         ConvertedType = 21
)

func (c ConvertedType) String() string {
	names := map[ConvertedType]string{
		ConvertedType_UTF8: "UTF8", ConvertedType_MAP: "MAP",
		ConvertedType_MAP_KEY_VALUE: "MAP_KEY_VALUE", ConvertedType_LIST: "LIST",
		ConvertedType_ENUM: "ENUM", ConvertedType_DECIMAL: "DECIMAL",
		ConvertedType_DATE: "DATE", ConvertedType_TIME_MILLIS: "TIME_MILLIS",
		ConvertedType_TIME_MICROS: "TIME_MICROS", ConvertedType_TIMESTAMP_MILLIS: "TIMESTAMP_MILLIS",
		ConvertedType_TIMESTAMP_MICROS: "TIMESTAMP_MICROS", ConvertedType_UINT_8: "UINT_8",
		ConvertedType_UINT_16: "UINT_16", ConvertedType_UINT_32: "UINT_32",
		ConvertedType_UINT_64: "UINT_64", ConvertedType_INT_8: "INT_8",
		ConvertedType_INT_16: "INT_16", ConvertedType_INT_32: "INT_32",
		ConvertedType_INT_64: "INT_64", ConvertedType_JSON: "JSON",
		ConvertedType_BSON: "BSON", ConvertedType_INTERVAL: "INTERVAL",
	}
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("ConvertedType(%d)", int32(c))
}

// KeyValue is one entry of FileMetaData's free-form user metadata map.
type KeyValue struct {
	Key   string  `thrift:"key,1,required"`
	Value *string `thrift:"value,2"`
}

func NewKeyValue() *KeyValue { return &KeyValue{} }

func (p *KeyValue) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("error reading struct beginning: "), err)
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("error reading field beginning: "), err)
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			if v, err := iprot.ReadString(ctx); err != nil {
				return err
			} else {
				p.Key = v
			}
		case 2:
			if v, err := iprot.ReadString(ctx); err != nil {
				return err
			} else {
				p.Value = &v
			}
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *KeyValue) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "KeyValue"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "key", thrift.STRING, 1); err != nil {
		return err
	}
	if err := oprot.WriteString(ctx, p.Key); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if p.Value != nil {
		if err := oprot.WriteFieldBegin(ctx, "value", thrift.STRING, 2); err != nil {
			return err
		}
		if err := oprot.WriteString(ctx, *p.Value); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

// SchemaElement is one node (internal or leaf) of the depth-first-flattened
// schema tree, as described by spec.md §6.
type SchemaElement struct {
	Type           *Type                `thrift:"type,1"`
	TypeLength     *int32               `thrift:"type_length,2"`
	RepetitionType *FieldRepetitionType `thrift:"repetition_type,3"`
	Name           string               `thrift:"name,4,required"`
	NumChildren    *int32               `thrift:"num_children,5"`
	ConvertedType  *ConvertedType       `thrift:"converted_type,6"`
	Scale          *int32               `thrift:"scale,7"`
	Precision      *int32               `thrift:"precision,8"`
	FieldID        *int32               `thrift:"field_id,9"`
}

func NewSchemaElement() *SchemaElement { return &SchemaElement{} }

func (p *SchemaElement) IsSetType() bool           { return p.Type != nil }
func (p *SchemaElement) IsSetNumChildren() bool     { return p.NumChildren != nil }
func (p *SchemaElement) GetNumChildren() int32 {
	if p.NumChildren == nil {
		return 0
	}
	return *p.NumChildren
}

func (p *SchemaElement) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				t := Type(v)
				p.Type = &t
			}
		case 2:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.TypeLength = &v
			}
		case 3:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				rt := FieldRepetitionType(v)
				p.RepetitionType = &rt
			}
		case 4:
			if v, err := iprot.ReadString(ctx); err != nil {
				return err
			} else {
				p.Name = v
			}
		case 5:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.NumChildren = &v
			}
		case 6:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				ct := ConvertedType(v)
				p.ConvertedType = &ct
			}
		case 7:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.Scale = &v
			}
		case 8:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.Precision = &v
			}
		case 9:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.FieldID = &v
			}
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *SchemaElement) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "SchemaElement"); err != nil {
		return err
	}
	if p.Type != nil {
		if err := oprot.WriteFieldBegin(ctx, "type", thrift.I32, 1); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, int32(*p.Type)); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.TypeLength != nil {
		if err := oprot.WriteFieldBegin(ctx, "type_length", thrift.I32, 2); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, *p.TypeLength); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.RepetitionType != nil {
		if err := oprot.WriteFieldBegin(ctx, "repetition_type", thrift.I32, 3); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, int32(*p.RepetitionType)); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldBegin(ctx, "name", thrift.STRING, 4); err != nil {
		return err
	}
	if err := oprot.WriteString(ctx, p.Name); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if p.NumChildren != nil {
		if err := oprot.WriteFieldBegin(ctx, "num_children", thrift.I32, 5); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, *p.NumChildren); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.ConvertedType != nil {
		if err := oprot.WriteFieldBegin(ctx, "converted_type", thrift.I32, 6); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, int32(*p.ConvertedType)); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.Scale != nil {
		if err := oprot.WriteFieldBegin(ctx, "scale", thrift.I32, 7); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, *p.Scale); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.Precision != nil {
		if err := oprot.WriteFieldBegin(ctx, "precision", thrift.I32, 8); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, *p.Precision); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.FieldID != nil {
		if err := oprot.WriteFieldBegin(ctx, "field_id", thrift.I32, 9); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, *p.FieldID); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

// DataPageHeader carries the v1 data-page-specific fields (spec.md §4.7).
type DataPageHeader struct {
	NumValues               int32    `thrift:"num_values,1,required"`
	Encoding                Encoding `thrift:"encoding,2,required"`
	DefinitionLevelEncoding Encoding `thrift:"definition_level_encoding,3,required"`
	RepetitionLevelEncoding Encoding `thrift:"repetition_level_encoding,4,required"`
}

func (p *DataPageHeader) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.NumValues = v
			}
		case 2:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.Encoding = Encoding(v)
			}
		case 3:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.DefinitionLevelEncoding = Encoding(v)
			}
		case 4:
			if v, err := iprot.ReadI32(ctx); err != nil {
				return err
			} else {
				p.RepetitionLevelEncoding = Encoding(v)
			}
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *DataPageHeader) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "DataPageHeader"); err != nil {
		return err
	}
	fields := []struct {
		name string
		id   int16
		val  int32
	}{
		{"num_values", 1, p.NumValues},
		{"encoding", 2, int32(p.Encoding)},
		{"definition_level_encoding", 3, int32(p.DefinitionLevelEncoding)},
		{"repetition_level_encoding", 4, int32(p.RepetitionLevelEncoding)},
	}
	for _, f := range fields {
		if err := oprot.WriteFieldBegin(ctx, f.name, thrift.I32, f.id); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, f.val); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

// DataPageHeaderV2 carries the v2 data-page-specific fields; unlike v1 the
// level byte-lengths live in the header and IsCompressed defaults true.
type DataPageHeaderV2 struct {
	NumValues                  int32    `thrift:"num_values,1,required"`
	NumNulls                   int32    `thrift:"num_nulls,2,required"`
	NumRows                    int32    `thrift:"num_rows,3,required"`
	Encoding                   Encoding `thrift:"encoding,4,required"`
	DefinitionLevelsByteLength int32    `thrift:"definition_levels_byte_length,5,required"`
	RepetitionLevelsByteLength int32    `thrift:"repetition_levels_byte_length,6,required"`
	IsCompressed               bool     `thrift:"is_compressed,7"`
}

func NewDataPageHeaderV2() *DataPageHeaderV2 {
	return &DataPageHeaderV2{IsCompressed: true}
}

func (p *DataPageHeaderV2) Read(ctx context.Context, iprot thrift.TProtocol) error {
	p.IsCompressed = true
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.NumValues = v
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.NumNulls = v
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.NumRows = v
		case 4:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.Encoding = Encoding(v)
		case 5:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.DefinitionLevelsByteLength = v
		case 6:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.RepetitionLevelsByteLength = v
		case 7:
			v, err := iprot.ReadBool(ctx)
			if err != nil {
				return err
			}
			p.IsCompressed = v
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *DataPageHeaderV2) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "DataPageHeaderV2"); err != nil {
		return err
	}
	i32Fields := []struct {
		name string
		id   int16
		val  int32
	}{
		{"num_values", 1, p.NumValues},
		{"num_nulls", 2, p.NumNulls},
		{"num_rows", 3, p.NumRows},
		{"encoding", 4, int32(p.Encoding)},
		{"definition_levels_byte_length", 5, p.DefinitionLevelsByteLength},
		{"repetition_levels_byte_length", 6, p.RepetitionLevelsByteLength},
	}
	for _, f := range i32Fields {
		if err := oprot.WriteFieldBegin(ctx, f.name, thrift.I32, f.id); err != nil {
			return err
		}
		if err := oprot.WriteI32(ctx, f.val); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldBegin(ctx, "is_compressed", thrift.BOOL, 7); err != nil {
		return err
	}
	if err := oprot.WriteBool(ctx, p.IsCompressed); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

// PageHeader is the common envelope in front of every page body; exactly one
// of DataPageHeader / DataPageHeaderV2 is set, keyed by Type.
type PageHeader struct {
	Type                 PageType          `thrift:"type,1,required"`
	UncompressedPageSize int32             `thrift:"uncompressed_page_size,2,required"`
	CompressedPageSize   int32             `thrift:"compressed_page_size,3,required"`
	DataPageHeader       *DataPageHeader   `thrift:"data_page_header,5"`
	DataPageHeaderV2     *DataPageHeaderV2 `thrift:"data_page_header_v2,8"`
}

func NewPageHeader() *PageHeader { return &PageHeader{} }

func (p *PageHeader) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.Type = PageType(v)
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.UncompressedPageSize = v
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.CompressedPageSize = v
		case 5:
			p.DataPageHeader = &DataPageHeader{}
			if err := p.DataPageHeader.Read(ctx, iprot); err != nil {
				return err
			}
		case 8:
			p.DataPageHeaderV2 = NewDataPageHeaderV2()
			if err := p.DataPageHeaderV2.Read(ctx, iprot); err != nil {
				return err
			}
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *PageHeader) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "PageHeader"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "type", thrift.I32, 1); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(p.Type)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "uncompressed_page_size", thrift.I32, 2); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, p.UncompressedPageSize); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "compressed_page_size", thrift.I32, 3); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, p.CompressedPageSize); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if p.DataPageHeader != nil {
		if err := oprot.WriteFieldBegin(ctx, "data_page_header", thrift.STRUCT, 5); err != nil {
			return err
		}
		if err := p.DataPageHeader.Write(ctx, oprot); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.DataPageHeaderV2 != nil {
		if err := oprot.WriteFieldBegin(ctx, "data_page_header_v2", thrift.STRUCT, 8); err != nil {
			return err
		}
		if err := p.DataPageHeaderV2.Write(ctx, oprot); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

// ColumnMetaData describes one column chunk's contents (spec.md §4.7).
type ColumnMetaData struct {
	Type                  Type              `thrift:"type,1,required"`
	Encodings             []Encoding        `thrift:"encodings,2,required"`
	PathInSchema          []string          `thrift:"path_in_schema,3,required"`
	Codec                 CompressionCodec  `thrift:"codec,4,required"`
	NumValues             int64             `thrift:"num_values,5,required"`
	TotalUncompressedSize int64             `thrift:"total_uncompressed_size,6,required"`
	TotalCompressedSize   int64             `thrift:"total_compressed_size,7,required"`
	KeyValueMetadata      []*KeyValue       `thrift:"key_value_metadata,8"`
	DataPageOffset        int64             `thrift:"data_page_offset,9,required"`
	IndexPageOffset       *int64            `thrift:"index_page_offset,10"`
	DictionaryPageOffset  *int64            `thrift:"dictionary_page_offset,11"`
}

func NewColumnMetaData() *ColumnMetaData { return &ColumnMetaData{} }

func (p *ColumnMetaData) IsSetDictionaryPageOffset() bool { return p.DictionaryPageOffset != nil }

func (p *ColumnMetaData) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.Type = Type(v)
		case 2:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			p.Encodings = make([]Encoding, 0, size)
			for i := 0; i < size; i++ {
				v, err := iprot.ReadI32(ctx)
				if err != nil {
					return err
				}
				p.Encodings = append(p.Encodings, Encoding(v))
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 3:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			p.PathInSchema = make([]string, 0, size)
			for i := 0; i < size; i++ {
				v, err := iprot.ReadString(ctx)
				if err != nil {
					return err
				}
				p.PathInSchema = append(p.PathInSchema, v)
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 4:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.Codec = CompressionCodec(v)
		case 5:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.NumValues = v
		case 6:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.TotalUncompressedSize = v
		case 7:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.TotalCompressedSize = v
		case 8:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			p.KeyValueMetadata = make([]*KeyValue, 0, size)
			for i := 0; i < size; i++ {
				kv := NewKeyValue()
				if err := kv.Read(ctx, iprot); err != nil {
					return err
				}
				p.KeyValueMetadata = append(p.KeyValueMetadata, kv)
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 9:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.DataPageOffset = v
		case 10:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.IndexPageOffset = &v
		case 11:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.DictionaryPageOffset = &v
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *ColumnMetaData) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "ColumnMetaData"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "type", thrift.I32, 1); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(p.Type)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "encodings", thrift.LIST, 2); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.I32, len(p.Encodings)); err != nil {
		return err
	}
	for _, e := range p.Encodings {
		if err := oprot.WriteI32(ctx, int32(e)); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "path_in_schema", thrift.LIST, 3); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.STRING, len(p.PathInSchema)); err != nil {
		return err
	}
	for _, s := range p.PathInSchema {
		if err := oprot.WriteString(ctx, s); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "codec", thrift.I32, 4); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, int32(p.Codec)); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	i64Fields := []struct {
		name string
		id   int16
		val  int64
	}{
		{"num_values", 5, p.NumValues},
		{"total_uncompressed_size", 6, p.TotalUncompressedSize},
		{"total_compressed_size", 7, p.TotalCompressedSize},
	}
	for _, f := range i64Fields {
		if err := oprot.WriteFieldBegin(ctx, f.name, thrift.I64, f.id); err != nil {
			return err
		}
		if err := oprot.WriteI64(ctx, f.val); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if len(p.KeyValueMetadata) > 0 {
		if err := oprot.WriteFieldBegin(ctx, "key_value_metadata", thrift.LIST, 8); err != nil {
			return err
		}
		if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(p.KeyValueMetadata)); err != nil {
			return err
		}
		for _, kv := range p.KeyValueMetadata {
			if err := kv.Write(ctx, oprot); err != nil {
				return err
			}
		}
		if err := oprot.WriteListEnd(ctx); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if err := oprot.WriteFieldBegin(ctx, "data_page_offset", thrift.I64, 9); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, p.DataPageOffset); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if p.IndexPageOffset != nil {
		if err := oprot.WriteFieldBegin(ctx, "index_page_offset", thrift.I64, 10); err != nil {
			return err
		}
		if err := oprot.WriteI64(ctx, *p.IndexPageOffset); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if p.DictionaryPageOffset != nil {
		if err := oprot.WriteFieldBegin(ctx, "dictionary_page_offset", thrift.I64, 11); err != nil {
			return err
		}
		if err := oprot.WriteI64(ctx, *p.DictionaryPageOffset); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

// ColumnChunk is a row group's pointer to one column's metadata, plus the
// absolute file offset of that metadata (spec.md §4.7).
type ColumnChunk struct {
	FilePath *string         `thrift:"file_path,1"`
	FileOffset int64         `thrift:"file_offset,2,required"`
	MetaData *ColumnMetaData `thrift:"meta_data,3"`
}

func NewColumnChunk() *ColumnChunk { return &ColumnChunk{} }

func (p *ColumnChunk) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return err
			}
			p.FilePath = &v
		case 2:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.FileOffset = v
		case 3:
			p.MetaData = NewColumnMetaData()
			if err := p.MetaData.Read(ctx, iprot); err != nil {
				return err
			}
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *ColumnChunk) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "ColumnChunk"); err != nil {
		return err
	}
	if p.FilePath != nil {
		if err := oprot.WriteFieldBegin(ctx, "file_path", thrift.STRING, 1); err != nil {
			return err
		}
		if err := oprot.WriteString(ctx, *p.FilePath); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldBegin(ctx, "file_offset", thrift.I64, 2); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, p.FileOffset); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if p.MetaData != nil {
		if err := oprot.WriteFieldBegin(ctx, "meta_data", thrift.STRUCT, 3); err != nil {
			return err
		}
		if err := p.MetaData.Write(ctx, oprot); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

// RowGroup is one row group's column-chunk list plus size bookkeeping.
type RowGroup struct {
	Columns       []*ColumnChunk `thrift:"columns,1,required"`
	TotalByteSize int64          `thrift:"total_byte_size,2,required"`
	NumRows       int64          `thrift:"num_rows,3,required"`
}

func NewRowGroup() *RowGroup { return &RowGroup{} }

func (p *RowGroup) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			p.Columns = make([]*ColumnChunk, 0, size)
			for i := 0; i < size; i++ {
				cc := NewColumnChunk()
				if err := cc.Read(ctx, iprot); err != nil {
					return err
				}
				p.Columns = append(p.Columns, cc)
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 2:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.TotalByteSize = v
		case 3:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.NumRows = v
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *RowGroup) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "RowGroup"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "columns", thrift.LIST, 1); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(p.Columns)); err != nil {
		return err
	}
	for _, c := range p.Columns {
		if err := c.Write(ctx, oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "total_byte_size", thrift.I64, 2); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, p.TotalByteSize); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "num_rows", thrift.I64, 3); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, p.NumRows); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

// FileMetaData is the footer record: version, schema, row groups, and
// free-form user metadata (spec.md §3, §6).
type FileMetaData struct {
	Version          int32       `thrift:"version,1,required"`
	Schema           []*SchemaElement `thrift:"schema,2,required"`
	NumRows          int64       `thrift:"num_rows,3,required"`
	RowGroups        []*RowGroup `thrift:"row_groups,4,required"`
	KeyValueMetadata []*KeyValue `thrift:"key_value_metadata,5"`
	CreatedBy        *string     `thrift:"created_by,6"`
}

func NewFileMetaData() *FileMetaData { return &FileMetaData{} }

func (p *FileMetaData) Read(ctx context.Context, iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, fieldTypeID, fieldID, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch fieldID {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			p.Version = v
		case 2:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			p.Schema = make([]*SchemaElement, 0, size)
			for i := 0; i < size; i++ {
				se := NewSchemaElement()
				if err := se.Read(ctx, iprot); err != nil {
					return err
				}
				p.Schema = append(p.Schema, se)
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 3:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return err
			}
			p.NumRows = v
		case 4:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			p.RowGroups = make([]*RowGroup, 0, size)
			for i := 0; i < size; i++ {
				rg := NewRowGroup()
				if err := rg.Read(ctx, iprot); err != nil {
					return err
				}
				p.RowGroups = append(p.RowGroups, rg)
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 5:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			p.KeyValueMetadata = make([]*KeyValue, 0, size)
			for i := 0; i < size; i++ {
				kv := NewKeyValue()
				if err := kv.Read(ctx, iprot); err != nil {
					return err
				}
				p.KeyValueMetadata = append(p.KeyValueMetadata, kv)
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return err
			}
		case 6:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return err
			}
			p.CreatedBy = &v
		default:
			if err := iprot.Skip(ctx, fieldTypeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func (p *FileMetaData) Write(ctx context.Context, oprot thrift.TProtocol) error {
	if err := oprot.WriteStructBegin(ctx, "FileMetaData"); err != nil {
		return err
	}
	if err := oprot.WriteFieldBegin(ctx, "version", thrift.I32, 1); err != nil {
		return err
	}
	if err := oprot.WriteI32(ctx, p.Version); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "schema", thrift.LIST, 2); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(p.Schema)); err != nil {
		return err
	}
	for _, se := range p.Schema {
		if err := se.Write(ctx, oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "num_rows", thrift.I64, 3); err != nil {
		return err
	}
	if err := oprot.WriteI64(ctx, p.NumRows); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if err := oprot.WriteFieldBegin(ctx, "row_groups", thrift.LIST, 4); err != nil {
		return err
	}
	if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(p.RowGroups)); err != nil {
		return err
	}
	for _, rg := range p.RowGroups {
		if err := rg.Write(ctx, oprot); err != nil {
			return err
		}
	}
	if err := oprot.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := oprot.WriteFieldEnd(ctx); err != nil {
		return err
	}

	if len(p.KeyValueMetadata) > 0 {
		if err := oprot.WriteFieldBegin(ctx, "key_value_metadata", thrift.LIST, 5); err != nil {
			return err
		}
		if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(p.KeyValueMetadata)); err != nil {
			return err
		}
		for _, kv := range p.KeyValueMetadata {
			if err := kv.Write(ctx, oprot); err != nil {
				return err
			}
		}
		if err := oprot.WriteListEnd(ctx); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if p.CreatedBy != nil {
		if err := oprot.WriteFieldBegin(ctx, "created_by", thrift.STRING, 6); err != nil {
			return err
		}
		if err := oprot.WriteString(ctx, *p.CreatedBy); err != nil {
			return err
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}

	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}
