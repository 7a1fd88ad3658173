package pqio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/murakmii/parquet/internal/format"
	"github.com/murakmii/parquet/internal/pschema"
	"github.com/murakmii/parquet/internal/shred"
)

// Cursor walks a Reader's row groups one row at a time, materializing a
// full row group into records lazily on first access. It shares its
// parent Reader's io.ReadSeeker and becomes invalid once the Reader is
// closed, per spec.md §4.9's cursor independence note.
type Cursor struct {
	reader  *Reader
	columns [][]string // nil means every leaf

	rowGroupIdx int
	rows        []shred.Record
	rowIdx      int
	done        bool
}

// GetCursor opens a new cursor over every row group. columns, if
// non-empty, restricts materialization to leaves whose path starts with
// one of the given prefixes; each entry may be a comma-joined string or
// a []string, per pschema.ParsePath.
func (rd *Reader) GetCursor(columns ...any) (*Cursor, error) {
	if rd.closed {
		return nil, &Error{Kind: "Closed", Msg: "GetCursor called after Close"}
	}
	var prefixes [][]string
	for _, c := range columns {
		prefixes = append(prefixes, pschema.ParsePath(c))
	}
	return &Cursor{reader: rd, columns: prefixes}, nil
}

// Next advances the cursor and returns the next record, or (nil, io.EOF)
// once every row group is exhausted.
func (c *Cursor) Next() (shred.Record, error) {
	if c.reader.closed {
		return nil, &Error{Kind: "Closed", Msg: "Next called on a cursor whose reader is closed"}
	}
	for {
		if c.done {
			return nil, io.EOF
		}
		if c.rowIdx < len(c.rows) {
			rec := c.rows[c.rowIdx]
			c.rowIdx++
			return rec, nil
		}
		if err := c.loadNextRowGroup(); err != nil {
			return nil, err
		}
	}
}

// selected reports whether leaf's path matches one of the cursor's
// requested prefixes (or every leaf, if no projection was requested).
func (c *Cursor) selected(leaf *pschema.Node) bool {
	if len(c.columns) == 0 {
		return true
	}
	for _, prefix := range c.columns {
		if len(prefix) > len(leaf.Path) {
			continue
		}
		match := true
		for i, p := range prefix {
			if leaf.Path[i] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (c *Cursor) loadNextRowGroup() error {
	footer := c.reader.footer
	if c.rowGroupIdx >= len(footer.RowGroups) {
		c.done = true
		return nil
	}
	rg := footer.RowGroups[c.rowGroupIdx]
	c.rowGroupIdx++

	rb := &shred.RowBuffer{Columns: make(map[string]*shred.ColumnBuffer, len(c.reader.schema.Leaves))}
	for _, leaf := range c.reader.schema.Leaves {
		rb.Columns[leaf.Key] = &shred.ColumnBuffer{}
	}

	for _, chunk := range rg.Columns {
		meta := chunk.MetaData
		leaf := c.reader.schema.FindField(meta.PathInSchema)
		if leaf == nil {
			return fmt.Errorf("pqio: column chunk path %s not present in schema", strings.Join(meta.PathInSchema, "."))
		}
		if !c.selected(leaf) {
			continue
		}

		if _, err := c.reader.r.Seek(meta.DataPageOffset, io.SeekStart); err != nil {
			return err
		}
		proto := thrift.NewTCompactProtocolConf(&thrift.StreamTransport{Reader: c.reader.r}, nil)

		header := &format.PageHeader{}
		if err := header.Read(context.Background(), proto); err != nil {
			return fmt.Errorf("pqio: failed to read page header: %w", err)
		}

		body := make([]byte, header.CompressedPageSize)
		if _, err := io.ReadFull(c.reader.r, body); err != nil {
			return fmt.Errorf("pqio: failed to read page body: %w", err)
		}

		codecName := format.CompressionCodecName(meta.Codec)
		col, err := readPage(leaf, header, body, codecName)
		if err != nil {
			return err
		}
		rb.Columns[leaf.Key] = col
	}
	rb.RowCount = int32(rg.NumRows)

	rows, err := shred.Materialize(c.reader.schema, rb)
	if err != nil {
		return err
	}

	c.rows = rows
	c.rowIdx = 0
	return nil
}
