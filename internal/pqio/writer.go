package pqio

import (
	"context"
	"fmt"
	"io"

	"github.com/apache/thrift/lib/go/thrift"
	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/murakmii/parquet/internal/format"
	"github.com/murakmii/parquet/internal/pschema"
	"github.com/murakmii/parquet/internal/shred"
)

const magic = "PAR1"

const (
	defaultRowGroupSize = 4096
	defaultPageSize     = 8192
)

// Option configures a Writer, per spec.md §4.8's functional-options
// surface.
type Option func(*writerOptions)

type writerOptions struct {
	rowGroupSize  int32
	pageSize      int32
	useDataPageV2 bool
	compression   string
	metadata      map[string]string
	logger        gokitlog.Logger
}

func defaultOptions() writerOptions {
	return writerOptions{
		rowGroupSize: defaultRowGroupSize,
		pageSize:     defaultPageSize,
		compression:  "UNCOMPRESSED",
		logger:       gokitlog.NewNopLogger(),
	}
}

// WithRowGroupSize overrides the default 4096-row flush cadence.
func WithRowGroupSize(n int32) Option { return func(o *writerOptions) { o.rowGroupSize = n } }

// WithPageSize overrides the default 8192-value page size (advisory:
// this writer emits exactly one page per column chunk regardless).
func WithPageSize(n int32) Option { return func(o *writerOptions) { o.pageSize = n } }

// WithDataPageV2 switches page framing to DATA_PAGE_V2.
func WithDataPageV2() Option { return func(o *writerOptions) { o.useDataPageV2 = true } }

// WithCompression sets the file-default codec name. A leaf whose
// schema-level Compression is anything other than UNCOMPRESSED uses that
// codec instead; a leaf set to UNCOMPRESSED follows the file default.
func WithCompression(name string) Option { return func(o *writerOptions) { o.compression = name } }

// WithMetadata attaches one free-form key/value pair to the file
// footer's key_value_metadata.
func WithMetadata(key, value string) Option {
	return func(o *writerOptions) {
		if o.metadata == nil {
			o.metadata = map[string]string{}
		}
		o.metadata[key] = value
	}
}

// WithLogger attaches a go-kit/log logger for diagnostic output during
// flush/close.
func WithLogger(l gokitlog.Logger) Option { return func(o *writerOptions) { o.logger = l } }

// countingWriter tracks the absolute byte offset written so far, since
// ColumnMetaData.DataPageOffset and ColumnChunk.FileOffset both need
// file-absolute positions.
type countingWriter struct {
	w      io.Writer
	offset int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.offset += int64(n)
	return n, err
}

// Writer is the Parquet file envelope writer described by spec.md §4.8.
// It owns w exclusively from construction to Close.
type Writer struct {
	cw     *countingWriter
	schema *pschema.Schema
	opts   writerOptions
	proto  thrift.TProtocol

	rowBuffer    *shred.RowBuffer
	bufferedRows int32
	rowGroups    []*format.RowGroup
	closed       bool
}

// New opens w for writing, emits the leading magic, and returns a ready
// Writer.
func New(w io.Writer, schema *pschema.Schema, opts ...Option) (*Writer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cw := &countingWriter{w: w}
	if _, err := cw.Write([]byte(magic)); err != nil {
		if closer, ok := w.(io.Closer); ok {
			closer.Close()
		}
		return nil, fmt.Errorf("pqio: failed to write header magic: %w", err)
	}

	return &Writer{
		cw:        cw,
		schema:    schema,
		opts:      o,
		proto:     thrift.NewTCompactProtocolConf(&thrift.StreamTransport{Writer: cw}, nil),
		rowBuffer: shred.NewRowBuffer(schema),
	}, nil
}

// AppendRow shreds record into the current row buffer, flushing a row
// group when it reaches the configured size.
func (wr *Writer) AppendRow(record shred.Record) error {
	if wr.closed {
		return &Error{Kind: "Closed", Msg: "AppendRow called after Close"}
	}
	if err := shred.Shred(wr.schema, record, wr.rowBuffer); err != nil {
		return err
	}
	wr.bufferedRows++
	if wr.bufferedRows >= wr.opts.rowGroupSize {
		return wr.flush()
	}
	return nil
}

func (wr *Writer) flush() error {
	if wr.bufferedRows == 0 {
		return nil
	}

	rg := &format.RowGroup{NumRows: int64(wr.bufferedRows)}
	var totalByteSize int64

	for _, leaf := range wr.schema.Leaves {
		col := wr.rowBuffer.Columns[leaf.Key]
		codecName := wr.opts.compression
		if leaf.Compression != pschema.CompressionUncompressed {
			codecName = string(leaf.Compression)
		}

		pb, err := buildPage(leaf, col, wr.bufferedRows, codecName, wr.opts.useDataPageV2)
		if err != nil {
			return err
		}

		pageOffset := wr.cw.offset
		if err := pb.header.Write(context.Background(), wr.proto); err != nil {
			return fmt.Errorf("pqio: failed to write page header: %w", err)
		}
		if _, err := wr.cw.Write(pb.body); err != nil {
			return fmt.Errorf("pqio: failed to write page body: %w", err)
		}

		codec, _ := format.CompressionCodecFromName(codecName)
		encodings := []format.Encoding{format.Encoding_RLE}
		if pb.header.DataPageHeader != nil {
			encodings = append(encodings, pb.header.DataPageHeader.Encoding)
		} else {
			encodings = append(encodings, pb.header.DataPageHeaderV2.Encoding)
		}

		meta := &format.ColumnMetaData{
			Type:                  leaf.Primitive,
			Encodings:             encodings,
			PathInSchema:          leaf.Path,
			Codec:                 codec,
			NumValues:             int64(col.Count),
			TotalUncompressedSize: int64(pb.header.UncompressedPageSize),
			TotalCompressedSize:   int64(pb.header.CompressedPageSize),
			DataPageOffset:        pageOffset,
		}

		chunkOffset := wr.cw.offset
		if err := meta.Write(context.Background(), wr.proto); err != nil {
			return fmt.Errorf("pqio: failed to write column metadata: %w", err)
		}

		chunkLen := wr.cw.offset - pageOffset
		totalByteSize += chunkLen

		rg.Columns = append(rg.Columns, &format.ColumnChunk{
			FileOffset: chunkOffset,
			MetaData:   meta,
		})

		level.Debug(wr.opts.logger).Log(
			"msg", "wrote column chunk",
			"column", leaf.Key,
			"codec", codecName,
			"compressed_bytes", pb.header.CompressedPageSize,
		)
	}

	rg.TotalByteSize = totalByteSize
	wr.rowGroups = append(wr.rowGroups, rg)
	wr.rowBuffer = shred.NewRowBuffer(wr.schema)
	wr.bufferedRows = 0

	level.Debug(wr.opts.logger).Log(
		"msg", "flushed row group",
		"rows", rg.NumRows,
		"bytes", rg.TotalByteSize,
		"row_group", len(wr.rowGroups),
	)
	return nil
}

// Close flushes any residual buffered rows, writes the footer, and
// closes the underlying stream if it implements io.Closer — on every
// exit path, not only the happy one, mirroring New's cleanup on a failed
// header write.
func (wr *Writer) Close() error {
	if wr.closed {
		return &Error{Kind: "Closed", Msg: "Close called after Close"}
	}
	wr.closed = true

	err := wr.writeFooter()
	if closer, ok := wr.cw.w.(io.Closer); ok {
		if cerr := closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (wr *Writer) writeFooter() error {
	if err := wr.flush(); err != nil {
		return err
	}

	var numRows int64
	for _, rg := range wr.rowGroups {
		numRows += rg.NumRows
	}
	if numRows == 0 || len(wr.schema.Leaves) == 0 {
		return &Error{Kind: "EmptyFile", Msg: "cannot close a writer with zero rows or zero leaf fields"}
	}

	footer := &format.FileMetaData{
		Version:   1,
		Schema:    wr.schema.ToSchemaElements(),
		NumRows:   numRows,
		RowGroups: wr.rowGroups,
		CreatedBy: strPtr("parquet-go"),
	}
	for k, v := range wr.opts.metadata {
		footer.KeyValueMetadata = append(footer.KeyValueMetadata, &format.KeyValue{Key: k, Value: strPtr(v)})
	}

	footerStart := wr.cw.offset
	if err := footer.Write(context.Background(), wr.proto); err != nil {
		return fmt.Errorf("pqio: failed to write footer: %w", err)
	}
	footerLen := uint32(wr.cw.offset - footerStart)

	trailer := make([]byte, 8)
	trailer[0] = byte(footerLen)
	trailer[1] = byte(footerLen >> 8)
	trailer[2] = byte(footerLen >> 16)
	trailer[3] = byte(footerLen >> 24)
	copy(trailer[4:], magic)
	if _, err := wr.cw.Write(trailer); err != nil {
		return fmt.Errorf("pqio: failed to write trailer: %w", err)
	}

	level.Debug(wr.opts.logger).Log(
		"msg", "wrote footer",
		"num_rows", numRows,
		"row_groups", len(wr.rowGroups),
		"footer_bytes", footerLen,
	)
	return nil
}

func strPtr(s string) *string { return &s }
