// Package pschema parses a nested schema definition into a flattened leaf
// list, computing the per-leaf facts (path, key, r/d level maxima,
// encoding, compression) spec.md §3 and §4.2 require. Nodes live in an
// arena owned by the Schema; lookups return borrow-only views, generalizing
// the weak-"this" pattern spec.md §9 flags in the teacher's original
// language.
package pschema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/murakmii/parquet/internal/format"
	"github.com/murakmii/parquet/internal/ptype"
)

// Error is pschema's sentinel-carrying error type.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("pschema: %s", e.Msg) }

func errf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Repetition mirrors format.FieldRepetitionType with the names spec.md §3
// uses.
type Repetition int

const (
	Required Repetition = iota
	Optional
	Repeated
)

func (r Repetition) toFormat() format.FieldRepetitionType {
	switch r {
	case Optional:
		return format.FieldRepetitionType_OPTIONAL
	case Repeated:
		return format.FieldRepetitionType_REPEATED
	}
	return format.FieldRepetitionType_REQUIRED
}

// FieldDef is the user-facing nested schema definition: the input to
// Build. A def with Fields (or List/Map sugar) is an internal node; any
// other def is a leaf typed by Type and Primitive.
type FieldDef struct {
	Name        string
	Type        string // logical/original type name, or "" to default to primitive
	Primitive   format.Type
	TypeLength  int32
	Encoding    string // "PLAIN" | "RLE"; default PLAIN
	Compression string // "UNCOMPRESSED" | "GZIP" | "SNAPPY" | "LZO" | "BROTLI" | "LZ4"
	Optional    bool
	Repeated    bool
	Precision   int32
	Scale       int32
	Fields      []*FieldDef // non-nil makes this an internal node

	List *ListDef
	Map  *MapDef
}

// ListDef is LIST sugar: expands to the canonical 3-level Parquet LIST
// shape spec.md §4.2 describes.
type ListDef struct {
	Element     *FieldDef
	ElementName string // defaults to "element"
}

// MapDef is MAP sugar: expands to the canonical MAP_KEY_VALUE shape.
type MapDef struct {
	Key   *FieldDef
	Value *FieldDef
}

// Encoding and Compression are the recognized wire-level choices spec.md
// §4.2's table allows.
type Encoding string
type Compression string

const (
	EncodingPlain Encoding = "PLAIN"
	EncodingRLE   Encoding = "RLE"

	CompressionUncompressed Compression = "UNCOMPRESSED"
	CompressionGzip         Compression = "GZIP"
	CompressionSnappy       Compression = "SNAPPY"
	CompressionLZO          Compression = "LZO"
	CompressionBrotli       Compression = "BROTLI"
	CompressionLZ4          Compression = "LZ4"
)

var validEncodings = map[string]Encoding{"PLAIN": EncodingPlain, "RLE": EncodingRLE}

var validCompressions = map[string]Compression{
	"UNCOMPRESSED": CompressionUncompressed,
	"GZIP":         CompressionGzip,
	"SNAPPY":       CompressionSnappy,
	"LZO":          CompressionLZO,
	"BROTLI":       CompressionBrotli,
	"LZ4":          CompressionLZ4,
}

// Node is one element of the schema tree, arena-owned by Schema. Node
// never outlives its Schema and never mutates it; Child/Children resolve
// lazily against the owning Schema's arena so Node itself stays a plain
// borrowed view rather than a second copy of the tree.
type Node struct {
	owner      *Schema
	Name       string
	Parent     int // index into Schema.nodes, -1 for the synthetic root
	Children   map[string]int
	ChildOrder []string

	IsLeaf      bool
	Logical     ptype.Logical
	Primitive   format.Type
	TypeLength  int32
	Original    *format.ConvertedType
	Repetition  Repetition
	Encoding    Encoding
	Compression Compression
	Precision   int32
	Scale       int32

	Path     []string
	Key      string
	RLevelMax int32
	DLevelMax int32
}

// Schema is the flattened, arena-backed schema tree. Immutable after Build.
type Schema struct {
	nodes []*Node
	root  int

	// Leaves, in depth-first order, matching field-list / wire order.
	Leaves []*Node
	byKey  map[string]*Node
}

// Build walks defs (the root's children) and produces an immutable Schema.
func Build(defs []*FieldDef) (*Schema, error) {
	s := &Schema{byKey: make(map[string]*Node)}
	root := &Node{Name: "root", Parent: -1, Children: map[string]int{}}
	s.nodes = append(s.nodes, root)
	s.root = 0
	root.owner = s

	for _, d := range defs {
		if err := s.addChild(s.root, d, 0, 0, 0); err != nil {
			return nil, err
		}
	}

	for _, n := range s.nodes {
		if n.IsLeaf {
			s.Leaves = append(s.Leaves, n)
		}
	}

	if err := s.checkUniquePaths(); err != nil {
		return nil, err
	}

	return s, nil
}

func expandSugar(d *FieldDef) (*FieldDef, error) {
	if d.List != nil && d.Map != nil {
		return nil, errf("field %q: cannot set both list and map sugar", d.Name)
	}
	if d.List != nil {
		elemName := d.List.ElementName
		if elemName == "" {
			elemName = "element"
		}
		elem := *d.List.Element
		elem.Name = elemName

		listGroup := &FieldDef{Name: "list", Repeated: true, Fields: []*FieldDef{&elem}}
		return &FieldDef{
			Name:     d.Name,
			Optional: true,
			Type:     "LIST",
			Fields:   []*FieldDef{listGroup},
		}, nil
	}
	if d.Map != nil {
		key := *d.Map.Key
		key.Name = "key"
		value := *d.Map.Value
		value.Name = "value"

		kv := &FieldDef{
			Name:     "key_value",
			Type:     "MAP_KEY_VALUE",
			Repeated: true,
			Fields:   []*FieldDef{&key, &value},
		}
		return &FieldDef{
			Name:     d.Name,
			Optional: true,
			Type:     "MAP",
			Fields:   []*FieldDef{kv},
		}, nil
	}
	return d, nil
}

func (s *Schema) addChild(parentIdx int, raw *FieldDef, branchRLevelMax, branchDLevelMax int32, depth int) error {
	d, err := expandSugar(raw)
	if err != nil {
		return err
	}

	rep := Required
	switch {
	case d.Optional && d.Repeated:
		return errf("field %q: cannot be both optional and repeated", d.Name)
	case d.Optional:
		rep = Optional
	case d.Repeated:
		rep = Repeated
	}

	n := &Node{
		owner:      s,
		Name:       d.Name,
		Parent:     parentIdx,
		Repetition: rep,
	}

	rLevelMax := branchRLevelMax
	if rep == Repeated {
		rLevelMax++
	}
	dLevelMax := branchDLevelMax
	if rep == Optional || rep == Repeated {
		dLevelMax++
	}
	n.RLevelMax = rLevelMax
	n.DLevelMax = dLevelMax

	idx := len(s.nodes)
	s.nodes = append(s.nodes, n)
	parent := s.nodes[parentIdx]
	if parent.Children == nil {
		parent.Children = map[string]int{}
	}
	if _, exists := parent.Children[d.Name]; exists {
		return errf("duplicate field name %q under %q", d.Name, parent.Name)
	}
	parent.Children[d.Name] = idx
	parent.ChildOrder = append(parent.ChildOrder, d.Name)

	n.Path = append(append([]string{}, s.pathOf(parentIdx)...), d.Name)
	n.Key = strings.Join(n.Path, ",")

	if len(d.Fields) > 0 {
		switch d.Type {
		case "":
		case "LIST":
			ct := format.ConvertedType_LIST
			n.Original = &ct
		case "MAP":
			ct := format.ConvertedType_MAP
			n.Original = &ct
		case "MAP_KEY_VALUE":
			ct := format.ConvertedType_MAP_KEY_VALUE
			n.Original = &ct
		default:
			return errf("field %q: internal node cannot declare type %q (only LIST/MAP/MAP_KEY_VALUE group annotations are allowed)", d.Name, d.Type)
		}
		n.Children = map[string]int{}
		for _, child := range d.Fields {
			if err := s.addChild(idx, child, rLevelMax, dLevelMax, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	n.IsLeaf = true
	primitive := d.Primitive
	logical, err := ptype.Resolve(d.Type, primitive)
	if err != nil {
		return errf("field %q: %v", d.Name, err)
	}
	n.Logical = logical
	n.Primitive = ptype.PrimitiveOf(logical)

	if n.Primitive == format.Type_FIXED_LEN_BYTE_ARRAY {
		length := d.TypeLength
		if logical == ptype.DecimalFixed && length == 0 {
			return errf("field %q: FIXED_LEN_BYTE_ARRAY/DECIMAL_FIXED requires typeLength", d.Name)
		}
		if length == 0 {
			return errf("field %q: FIXED_LEN_BYTE_ARRAY requires typeLength", d.Name)
		}
		n.TypeLength = length
	}

	if d.Type == "DECIMAL" {
		if d.Precision <= 0 {
			return errf("field %q: DECIMAL requires positive precision", d.Name)
		}
		n.Precision = d.Precision
		n.Scale = d.Scale
	}

	if d.Type != "" && d.Type != "DECIMAL" {
		ct := convertedTypeOf(logical)
		if ct != nil {
			n.Original = ct
		}
	} else if d.Type == "DECIMAL" {
		ct := format.ConvertedType_DECIMAL
		n.Original = &ct
	}

	enc := d.Encoding
	if enc == "" {
		enc = "PLAIN"
	}
	e, ok := validEncodings[enc]
	if !ok {
		return errf("field %q: unsupported encoding %q", d.Name, enc)
	}
	if e == EncodingRLE {
		switch primitive {
		case format.Type_BOOLEAN, format.Type_INT32, format.Type_INT64:
		default:
			return errf("field %q: RLE encoding unsupported for primitive %s", d.Name, primitive)
		}
	}
	n.Encoding = e

	comp := d.Compression
	if comp == "" {
		comp = "UNCOMPRESSED"
	}
	c, ok := validCompressions[comp]
	if !ok {
		return errf("field %q: unsupported compression %q", d.Name, comp)
	}
	n.Compression = c

	s.byKey[n.Key] = n
	return nil
}

func convertedTypeOf(l ptype.Logical) *format.ConvertedType {
	m := map[ptype.Logical]format.ConvertedType{
		ptype.UTF8: format.ConvertedType_UTF8, ptype.Enum: format.ConvertedType_ENUM,
		ptype.JSON: format.ConvertedType_JSON, ptype.BSON: format.ConvertedType_BSON,
		ptype.Date: format.ConvertedType_DATE, ptype.TimeMillis: format.ConvertedType_TIME_MILLIS,
		ptype.TimeMicros: format.ConvertedType_TIME_MICROS, ptype.TimestampMillis: format.ConvertedType_TIMESTAMP_MILLIS,
		ptype.TimestampMicros: format.ConvertedType_TIMESTAMP_MICROS, ptype.Uint8: format.ConvertedType_UINT_8,
		ptype.Uint16: format.ConvertedType_UINT_16, ptype.Uint32: format.ConvertedType_UINT_32,
		ptype.Uint64: format.ConvertedType_UINT_64, ptype.Int8: format.ConvertedType_INT_8,
		ptype.Int16: format.ConvertedType_INT_16, ptype.Int32Logical: format.ConvertedType_INT_32,
		ptype.Int64Logical: format.ConvertedType_INT_64, ptype.Interval: format.ConvertedType_INTERVAL,
		ptype.ListSugar: format.ConvertedType_LIST, ptype.MapSugar: format.ConvertedType_MAP,
		ptype.MapKeyValue: format.ConvertedType_MAP_KEY_VALUE,
	}
	if ct, ok := m[l]; ok {
		return &ct
	}
	return nil
}

func (s *Schema) pathOf(idx int) []string {
	if idx == s.root {
		return nil
	}
	return s.nodes[idx].Path
}

func (s *Schema) checkUniquePaths() error {
	seen := map[string]bool{}
	for _, l := range s.Leaves {
		if seen[l.Key] {
			return errf("duplicate leaf path %q", l.Key)
		}
		seen[l.Key] = true
	}
	return nil
}

// Root returns the root internal node (synthetic; not itself a leaf).
func (s *Schema) Root() *Node { return s.nodes[s.root] }

// Child resolves a direct child by name, or nil. Borrow-only: the returned
// Node is owned by the same Schema as the receiver.
func (n *Node) Child(name string) *Node {
	idx, ok := n.Children[name]
	if !ok {
		return nil
	}
	return n.owner.nodes[idx]
}

// splitPath accepts either a comma-joined string or a []string.
func splitPath(path any) []string {
	switch p := path.(type) {
	case string:
		if p == "" {
			return nil
		}
		return strings.Split(p, ",")
	case []string:
		return p
	}
	return nil
}

// FindField returns the node (leaf or internal) at path, or nil.
func (s *Schema) FindField(path any) *Node {
	parts := splitPath(path)
	cur := s.root
	for _, p := range parts {
		next, ok := s.nodes[cur].Children[p]
		if !ok {
			return nil
		}
		cur = next
	}
	if cur == s.root {
		return nil
	}
	return s.nodes[cur]
}

// FindFieldBranch returns the full ancestor chain (root's child first,
// target last) for the node at path, or nil if not found.
func (s *Schema) FindFieldBranch(path any) []*Node {
	parts := splitPath(path)
	cur := s.root
	branch := make([]*Node, 0, len(parts))
	for _, p := range parts {
		next, ok := s.nodes[cur].Children[p]
		if !ok {
			return nil
		}
		cur = next
		branch = append(branch, s.nodes[cur])
	}
	return branch
}

// ToSchemaElements flattens the tree depth-first with a synthetic root,
// the exact shape spec.md §6 requires for FileMetaData.Schema.
func (s *Schema) ToSchemaElements() []*format.SchemaElement {
	var out []*format.SchemaElement
	var walk func(idx int)
	walk = func(idx int) {
		n := s.nodes[idx]
		se := &format.SchemaElement{Name: n.Name}
		if idx != s.root {
			rt := n.Repetition.toFormat()
			se.RepetitionType = &rt
		}
		if n.IsLeaf {
			pt := n.Primitive
			se.Type = &pt
			if n.TypeLength != 0 {
				tl := n.TypeLength
				se.TypeLength = &tl
			}
			if n.Original != nil {
				se.ConvertedType = n.Original
			}
			if n.Precision != 0 {
				p := n.Precision
				se.Precision = &p
				sc := n.Scale
				se.Scale = &sc
			}
		} else {
			nc := int32(len(n.ChildOrder))
			se.NumChildren = &nc
			if n.Original != nil {
				se.ConvertedType = n.Original
			}
		}
		out = append(out, se)
		for _, name := range n.ChildOrder {
			walk(n.Children[name])
		}
	}
	walk(s.root)
	return out
}

// FromSchemaElements rebuilds a Schema from a flattened element list that
// already had its synthetic root dropped by the caller (spec.md §4.9).
func FromSchemaElements(elements []*format.SchemaElement) (*Schema, error) {
	if len(elements) == 0 {
		return nil, errf("empty schema element list")
	}
	defs, rest, err := elementsToDefs(elements)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errf("%d trailing schema elements not consumed", len(rest))
	}
	return Build(defs)
}

// elementsToDefs consumes elements as a sibling run (as many FieldDefs as
// fit before the list runs out) and returns whatever it didn't consume.
func elementsToDefs(elements []*format.SchemaElement) ([]*FieldDef, []*format.SchemaElement, error) {
	var defs []*FieldDef
	for len(elements) > 0 {
		var d *FieldDef
		var err error
		d, elements, err = parseOneNode(elements)
		if err != nil {
			return nil, nil, err
		}
		defs = append(defs, d)
	}
	return defs, elements, nil
}

// parseOneNode consumes exactly one schema element, plus (if it declares
// NumChildren) its entire child subtree, and returns the remaining
// elements.
func parseOneNode(elements []*format.SchemaElement) (*FieldDef, []*format.SchemaElement, error) {
	if len(elements) == 0 {
		return nil, nil, errf("unexpected end of schema element list")
	}
	e := elements[0]
	rest := elements[1:]

	d := &FieldDef{Name: e.Name}
	if e.RepetitionType != nil {
		switch *e.RepetitionType {
		case format.FieldRepetitionType_OPTIONAL:
			d.Optional = true
		case format.FieldRepetitionType_REPEATED:
			d.Repeated = true
		}
	}

	if e.NumChildren != nil {
		n := *e.NumChildren
		children := make([]*FieldDef, 0, n)
		for i := int32(0); i < n; i++ {
			var child *FieldDef
			var err error
			child, rest, err = parseOneNode(rest)
			if err != nil {
				return nil, nil, err
			}
			children = append(children, child)
		}
		d.Fields = children
		if e.ConvertedType != nil {
			switch *e.ConvertedType {
			case format.ConvertedType_LIST:
				d.Type = "LIST"
			case format.ConvertedType_MAP:
				d.Type = "MAP"
			case format.ConvertedType_MAP_KEY_VALUE:
				d.Type = "MAP_KEY_VALUE"
			}
		}
		return d, rest, nil
	}

	if e.Type == nil {
		return nil, nil, errf("schema element %q has neither num_children nor type", e.Name)
	}
	d.Primitive = *e.Type
	if e.ConvertedType != nil {
		d.Type = e.ConvertedType.String()
		if *e.ConvertedType == format.ConvertedType_DECIMAL {
			if e.Precision != nil {
				d.Precision = *e.Precision
			}
			if e.Scale != nil {
				d.Scale = *e.Scale
			}
		}
	}
	if e.TypeLength != nil {
		d.TypeLength = *e.TypeLength
	}
	return d, rest, nil
}

// Key builds the stable comma-joined key for a path, matching the one
// stored on each leaf Node.
func Key(path []string) string { return strings.Join(path, ",") }

// SortedLeafKeys is a debugging/testing helper returning leaf keys in
// sorted order.
func (s *Schema) SortedLeafKeys() []string {
	keys := make([]string, 0, len(s.Leaves))
	for _, l := range s.Leaves {
		keys = append(keys, l.Key)
	}
	sort.Strings(keys)
	return keys
}

// ParsePath is exposed for callers (e.g. the reader cursor's column
// projection) that need to accept both string and []string forms.
func ParsePath(path any) []string { return splitPath(path) }
