package pqio

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/murakmii/parquet/internal/format"
	"github.com/murakmii/parquet/internal/pschema"
)

// Reader opens a Parquet file for reading, per spec.md §4.9. It owns r
// exclusively from Open to Close; cursors created from it share the
// same underlying io.ReadSeeker and must not issue overlapping reads.
type Reader struct {
	r      io.ReadSeeker
	schema *pschema.Schema
	footer *format.FileMetaData
	closed bool
}

// Open reads and validates the header/trailer magic, decodes the
// footer, and rebuilds the schema, per spec.md §4.9. On any error it
// closes r, if r implements io.Closer, before returning.
func Open(r io.ReadSeeker) (rd *Reader, err error) {
	defer func() {
		if err == nil {
			return
		}
		if closer, ok := r.(io.Closer); ok {
			closer.Close()
		}
	}()

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	header := make([]byte, 4)
	if _, err := io.ReadFull(r, header); err != nil || string(header) != magic {
		return nil, &Error{Kind: "BadMagic", Msg: "missing header magic"}
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if size < 12 {
		return nil, &Error{Kind: "BadTrailer", Msg: "file too small for a trailer"}
	}

	if _, err := r.Seek(-8, io.SeekEnd); err != nil {
		return nil, err
	}
	tail := make([]byte, 8)
	if _, err := io.ReadFull(r, tail); err != nil {
		return nil, err
	}
	footerLen := int64(binary.LittleEndian.Uint32(tail[:4]))
	if string(tail[4:]) != magic {
		return nil, &Error{Kind: "BadMagic", Msg: "missing trailer magic"}
	}

	footerStart := size - 8 - footerLen
	if footerStart < 4 {
		return nil, &Error{Kind: "BadTrailer", Msg: "declared metadata size underflows the header"}
	}
	if _, err := r.Seek(footerStart, io.SeekStart); err != nil {
		return nil, err
	}

	proto := thrift.NewTCompactProtocolConf(&thrift.StreamTransport{Reader: io.LimitReader(r, footerLen)}, nil)
	footer := &format.FileMetaData{}
	if err := footer.Read(context.Background(), proto); err != nil {
		return nil, fmt.Errorf("pqio: failed to read footer: %w", err)
	}

	if footer.Version != 1 {
		return nil, &Error{Kind: "BadVersion", Msg: fmt.Sprintf("unsupported version %d", footer.Version)}
	}
	for _, rg := range footer.RowGroups {
		for _, col := range rg.Columns {
			if col.FilePath != nil {
				return nil, &Error{Kind: "ExternalRef", Msg: "column chunk file_path is set"}
			}
		}
	}

	if len(footer.Schema) == 0 {
		return nil, &Error{Kind: "BadTrailer", Msg: "empty schema"}
	}
	schema, err := pschema.FromSchemaElements(footer.Schema[1:])
	if err != nil {
		return nil, fmt.Errorf("pqio: failed to rebuild schema: %w", err)
	}

	return &Reader{r: r, schema: schema, footer: footer}, nil
}

// Schema returns the reconstructed schema.
func (rd *Reader) Schema() *pschema.Schema { return rd.schema }

// NumRows is the total row count across all row groups.
func (rd *Reader) NumRows() int64 { return rd.footer.NumRows }

// RowGroups exposes the footer's row-group metadata verbatim, for
// tooling that needs chunk-level shape without materializing rows.
func (rd *Reader) RowGroups() []*format.RowGroup { return rd.footer.RowGroups }

// GetMetadata returns the footer's free-form key/value user metadata.
func (rd *Reader) GetMetadata() map[string]string {
	out := make(map[string]string, len(rd.footer.KeyValueMetadata))
	for _, kv := range rd.footer.KeyValueMetadata {
		if kv.Value != nil {
			out[kv.Key] = *kv.Value
		}
	}
	return out
}

// Close invalidates every cursor created from this reader and closes
// the underlying file descriptor, if r implements io.Closer.
func (rd *Reader) Close() error {
	rd.closed = true
	if closer, ok := rd.r.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
