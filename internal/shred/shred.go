// Package shred implements the Dremel striping/assembly algorithm spec.md
// §4.3 describes: shredding a nested record tree into parallel
// (values, rLevel, dLevel) column streams, and materializing those streams
// back into records. Records are represented as a dynamic tagged value
// tree (map[string]any / []any / scalar), per spec.md §9's suggested
// strategy for a typed systems language with dynamic input shape.
package shred

import (
	"fmt"

	"github.com/murakmii/parquet/internal/format"
	"github.com/murakmii/parquet/internal/pschema"
	"github.com/murakmii/parquet/internal/ptype"
)

// Error is shred's sentinel-carrying error type (spec.md §7).
type Error struct {
	Kind string
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("shred: %s: %s", e.Kind, e.Msg) }

func missingRequired(path string) error {
	return &Error{Kind: "MissingRequired", Msg: path}
}

func tooManyValues(path string) error {
	return &Error{Kind: "TooManyValues", Msg: path}
}

// Record is the dynamic tagged value tree a caller hands to Shred, or gets
// back from Materialize. Internal nodes are map[string]any; REPEATED
// fields are []any; leaves are whatever ptype.ToPrimitive/FromPrimitive
// accepts/returns.
type Record = map[string]any

// ColumnBuffer holds one leaf's parallel (values, rlevels, dlevels)
// streams plus the redundant Count invariant spec.md §3 requires.
type ColumnBuffer struct {
	Values  []any
	RLevels []int32
	DLevels []int32
	Count   int32
}

func (c *ColumnBuffer) push(rLevel, dLevel int32, value any, hasValue bool) {
	c.RLevels = append(c.RLevels, rLevel)
	c.DLevels = append(c.DLevels, dLevel)
	c.Count++
	if hasValue {
		c.Values = append(c.Values, value)
	}
}

// RowBuffer is the per-writer accumulation unit: a row count plus one
// ColumnBuffer per leaf key.
type RowBuffer struct {
	RowCount int32
	Columns  map[string]*ColumnBuffer
}

// NewRowBuffer allocates an empty RowBuffer with one ColumnBuffer per leaf
// of s.
func NewRowBuffer(s *pschema.Schema) *RowBuffer {
	rb := &RowBuffer{Columns: make(map[string]*ColumnBuffer, len(s.Leaves))}
	for _, leaf := range s.Leaves {
		rb.Columns[leaf.Key] = &ColumnBuffer{}
	}
	return rb
}

// Shred appends one record's contribution to every leaf's column stream in
// rb, per the Dremel algorithm in spec.md §4.3.
func Shred(s *pschema.Schema, record Record, rb *RowBuffer) error {
	if err := shredNode(s.Root(), record, rb, 0, 0); err != nil {
		return err
	}
	rb.RowCount++
	return nil
}

func shredNode(node *pschema.Node, record Record, rb *RowBuffer, rLevel, dLevel int32) error {
	for _, child := range nodeChildren(node) {
		if err := shredField(child, record, rb, rLevel, dLevel); err != nil {
			return err
		}
	}
	return nil
}

func nodeChildren(node *pschema.Node) []*pschema.Node {
	out := make([]*pschema.Node, 0, len(node.ChildOrder))
	for _, name := range node.ChildOrder {
		out = append(out, node.Child(name))
	}
	return out
}

func shredField(field *pschema.Node, record Record, rb *RowBuffer, parentR, parentD int32) error {
	values, err := fetchValues(field, record)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		if field.Repetition == pschema.Required && record != nil {
			return missingRequired(field.Key)
		}
		return shredAbsent(field, rb, parentR, parentD)
	}

	if len(values) > 1 && field.Repetition != pschema.Repeated {
		return tooManyValues(field.Key)
	}

	for i, v := range values {
		rLevel := parentR
		if i > 0 {
			rLevel = field.RLevelMax
		}
		if err := shredPresent(field, v, rb, rLevel, field.DLevelMax); err != nil {
			return err
		}
	}
	return nil
}

// shredAbsent recurses into a field that has no value at all: internal
// nodes still need their leaves to record an absence entry, leaves record
// one with dLevel < dLevelMax (the absence is the gap itself, per
// spec.md §4.3 step 3).
func shredAbsent(field *pschema.Node, rb *RowBuffer, rLevel, dLevel int32) error {
	if field.IsLeaf {
		rb.Columns[field.Key].push(rLevel, dLevel, nil, false)
		return nil
	}
	for _, child := range nodeChildren(field) {
		if err := shredField(child, nil, rb, rLevel, dLevel); err != nil {
			return err
		}
	}
	return nil
}

func shredPresent(field *pschema.Node, value any, rb *RowBuffer, rLevel, dLevel int32) error {
	if field.IsLeaf {
		prim, err := ptype.ToPrimitive(field.Logical, value, field.Scale, field.TypeLength)
		if err != nil {
			return err
		}
		rb.Columns[field.Key].push(rLevel, dLevel, prim, true)
		return nil
	}

	rec, ok := value.(Record)
	if !ok {
		if m, ok := value.(map[string]any); ok {
			rec = m
		} else {
			return &Error{Kind: "MissingRequired", Msg: fmt.Sprintf("%s: expected object, got %T", field.Key, value)}
		}
	}
	for _, child := range nodeChildren(field) {
		if err := shredField(child, rec, rb, rLevel, dLevel); err != nil {
			return err
		}
	}
	return nil
}

// fetchValues implements spec.md §4.3 step 1-2, including LIST/MAP sugar
// rewriting (done by constructing a fresh wrapper, never by mutating the
// caller's record — spec.md §9 flags in-place rewriting as a defect to
// avoid).
func fetchValues(field *pschema.Node, record Record) ([]any, error) {
	if record == nil {
		return nil, nil
	}
	raw, present := record[field.Name]
	if !present || raw == nil {
		return nil, nil
	}

	raw = applySugar(field, raw)

	if arr, ok := raw.([]any); ok {
		return arr, nil
	}
	return []any{raw}, nil
}

// applySugar rewrites a plain array/map value into the canonical LIST /
// MAP_KEY_VALUE wrapper shape the schema expects, without touching the
// caller's original value.
func applySugar(field *pschema.Node, raw any) any {
	if field.Original == nil {
		return raw
	}

	switch *field.Original {
	case format.ConvertedType_LIST:
		arr, ok := raw.([]any)
		if !ok {
			return raw
		}
		elemName := "element"
		if child := soleListChild(field); child != "" {
			elemName = child
		}
		items := make([]any, len(arr))
		for i, v := range arr {
			items[i] = Record{elemName: v}
		}
		return Record{"list": items}

	case format.ConvertedType_MAP:
		m, ok := raw.(map[string]any)
		if !ok {
			return raw
		}
		entries := make([]any, 0, len(m))
		for k, v := range m {
			entries = append(entries, Record{"key": k, "value": v})
		}
		return Record{"key_value": entries}
	}
	return raw
}

func soleListChild(field *pschema.Node) string {
	listGroup := field.Child("list")
	if listGroup == nil || len(listGroup.ChildOrder) != 1 {
		return ""
	}
	return listGroup.ChildOrder[0]
}

// Materialize reassembles rb's per-leaf column streams back into records,
// the inverse of Shred per spec.md §4.3's assembly algorithm: walk each
// leaf's (rlevel, dlevel, value) stream and fold every entry into the row
// and branch position it belongs to.
func Materialize(s *pschema.Schema, rb *RowBuffer) ([]Record, error) {
	rows := make([]Record, rb.RowCount)
	for i := range rows {
		rows[i] = Record{}
	}

	for _, leaf := range s.Leaves {
		col, ok := rb.Columns[leaf.Key]
		if !ok || col.Count == 0 {
			continue
		}
		branch := s.FindFieldBranch(leaf.Path)
		if err := materializeColumn(leaf, branch, col, rows); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		rows[i] = unsugarRecord(s.Root(), row)
	}
	return rows, nil
}

// materializeColumn folds one leaf's stream into rows. A repetition level
// of 0 starts a new row; any other level r moves the r-th REPEATED
// ancestor's list on to its next element and restarts every list nested
// inside it at index 0, while shallower lists keep the index they were
// already at.
func materializeColumn(leaf *pschema.Node, branch []*pschema.Node, col *ColumnBuffer, rows []Record) error {
	idx := make([]int32, leaf.RLevelMax+1)
	for k := range idx {
		idx[k] = -1
	}

	rowIdx := int32(-1)
	valueIdx := 0

	for i := int32(0); i < col.Count; i++ {
		r, d := col.RLevels[i], col.DLevels[i]
		if r == 0 {
			rowIdx++
		}
		for k := r + 1; k <= leaf.RLevelMax; k++ {
			idx[k] = -1
		}
		idx[r]++

		cur := rows[rowIdx]
		repSoFar := int32(0)
		null := false

		for _, node := range branch {
			if d < node.DLevelMax {
				null = true
				break
			}
			if node.IsLeaf {
				break
			}
			if node.Repetition == pschema.Repeated {
				repSoFar++
				if repSoFar > r {
					idx[repSoFar]++
				}
				cur = descendArray(cur, node.Name, idx[repSoFar])
			} else {
				cur = descendMap(cur, node.Name)
			}
		}
		if null {
			continue
		}

		val := col.Values[valueIdx]
		valueIdx++
		native, err := ptype.FromPrimitive(leaf.Logical, val, leaf.Scale, leaf.TypeLength)
		if err != nil {
			return err
		}

		if leaf.Repetition == pschema.Repeated {
			repSoFar++
			if repSoFar > r {
				idx[repSoFar]++
			}
			setArraySlot(cur, leaf.Name, idx[repSoFar], native)
		} else {
			cur[leaf.Name] = native
		}
	}
	return nil
}

// descendArray returns the Record living at arr[idx] under parent[name],
// padding with nil placeholders and allocating a fresh Record on first
// visit; a slot already populated by another leaf column's pass is
// reused rather than clobbered.
func descendArray(parent Record, name string, idx int32) Record {
	arr, _ := parent[name].([]any)
	for int32(len(arr)) <= idx {
		arr = append(arr, nil)
	}
	if arr[idx] == nil {
		arr[idx] = Record{}
	}
	parent[name] = arr
	return arr[idx].(Record)
}

// descendMap returns the Record living at parent[name], allocating one on
// first visit and reusing whatever an earlier column's pass left there.
func descendMap(parent Record, name string) Record {
	child, ok := parent[name].(Record)
	if !ok {
		child = Record{}
		parent[name] = child
	}
	return child
}

// setArraySlot assigns a scalar leaf value into arr[idx] under
// parent[name], padding with nils as needed.
func setArraySlot(parent Record, name string, idx int32, value any) {
	arr, _ := parent[name].([]any)
	for int32(len(arr)) <= idx {
		arr = append(arr, nil)
	}
	arr[idx] = value
	parent[name] = arr
}

// unsugarRecord reverses the LIST / MAP_KEY_VALUE wrapper shapes applySugar
// introduced, walking node's schema so only fields that were actually
// rewritten on the way in are rewritten back.
func unsugarRecord(node *pschema.Node, rec Record) Record {
	out := make(Record, len(rec))
	for name, v := range rec {
		child := node.Child(name)
		if child == nil {
			out[name] = v
			continue
		}
		out[name] = unsugarValue(child, v)
	}
	return out
}

func unsugarValue(node *pschema.Node, v any) any {
	if v == nil || node.IsLeaf {
		return v
	}
	if node.Original != nil {
		switch *node.Original {
		case format.ConvertedType_LIST:
			return unsugarList(node, v)
		case format.ConvertedType_MAP:
			return unsugarMap(node, v)
		}
	}
	if arr, ok := v.([]any); ok {
		out := make([]any, len(arr))
		for i, item := range arr {
			rec, ok := item.(Record)
			if !ok {
				out[i] = item
				continue
			}
			out[i] = unsugarRecord(node, rec)
		}
		return out
	}
	if rec, ok := v.(Record); ok {
		return unsugarRecord(node, rec)
	}
	return v
}

func unsugarList(node *pschema.Node, v any) any {
	wrapper, ok := v.(Record)
	if !ok {
		return v
	}
	listGroup := node.Child("list")
	items, _ := wrapper["list"].([]any)

	var elemChild *pschema.Node
	if listGroup != nil && len(listGroup.ChildOrder) == 1 {
		elemChild = listGroup.Child(listGroup.ChildOrder[0])
	}

	out := make([]any, len(items))
	for i, item := range items {
		rec, ok := item.(Record)
		if !ok || elemChild == nil {
			out[i] = item
			continue
		}
		out[i] = unsugarValue(elemChild, rec[elemChild.Name])
	}
	return out
}

func unsugarMap(node *pschema.Node, v any) any {
	wrapper, ok := v.(Record)
	if !ok {
		return v
	}
	kv := node.Child("key_value")
	entries, _ := wrapper["key_value"].([]any)

	out := map[string]any{}
	for _, e := range entries {
		erec, ok := e.(Record)
		if !ok {
			continue
		}
		key := fmt.Sprintf("%v", erec["key"])
		val := erec["value"]
		if kv != nil {
			if vc := kv.Child("value"); vc != nil {
				val = unsugarValue(vc, val)
			}
		}
		out[key] = val
	}
	return out
}
