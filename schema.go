package reltab

import (
	"fmt"
	"slices"
	"strings"
)

// Schema is an ordered sequence of attribute name / domain kind pairs.
// Schemas are immutable once built; operators that need to reshape one
// work on copies.
type Schema struct {
	attrs []string
	kinds []Kind
}

func NewSchema(attrs []string, kinds []Kind) (*Schema, error) {
	if len(attrs) != len(kinds) {
		return nil, fmt.Errorf("reltab: %d attributes but %d domains", len(attrs), len(kinds))
	}
	for i, a := range attrs {
		if a == "" {
			return nil, fmt.Errorf("reltab: empty attribute name at position %d", i)
		}
		if slices.Index(attrs[:i], a) >= 0 {
			return nil, fmt.Errorf("reltab: duplicate attribute %q", a)
		}
	}
	return &Schema{attrs: slices.Clone(attrs), kinds: slices.Clone(kinds)}, nil
}

// ParseSchema builds a schema from the textual form: space-separated
// attribute names and space-separated domain names ("title year",
// "String Integer32").
func ParseSchema(attributes, domains string) (*Schema, error) {
	attrs := strings.Fields(attributes)
	domNames := strings.Fields(domains)
	kinds := make([]Kind, len(domNames))
	for i, dn := range domNames {
		k, ok := KindNamed(dn)
		if !ok {
			return nil, fmt.Errorf("reltab: unknown domain %q", dn)
		}
		kinds[i] = k
	}
	return NewSchema(attrs, kinds)
}

func (s *Schema) Arity() int        { return len(s.attrs) }
func (s *Schema) Attr(i int) string { return s.attrs[i] }
func (s *Schema) Kind(i int) Kind   { return s.kinds[i] }

func (s *Schema) Attrs() []string { return slices.Clone(s.attrs) }
func (s *Schema) Kinds() []Kind   { return slices.Clone(s.kinds) }

func (s *Schema) String() string {
	var buf strings.Builder
	buf.WriteByte('(')
	for i, a := range s.attrs {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(a)
		buf.WriteByte(':')
		buf.WriteString(s.kinds[i].String())
	}
	buf.WriteByte(')')
	return buf.String()
}

// ColumnOf returns the position of the named attribute, or false if the
// schema has no such attribute.
func (s *Schema) ColumnOf(name string) (int, bool) {
	for i, a := range s.attrs {
		if a == name {
			return i, true
		}
	}
	return 0, false
}

// ColumnsOf resolves every name; an unresolved name fails the whole call.
func (s *Schema) ColumnsOf(names []string) ([]int, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		col, ok := s.ColumnOf(name)
		if !ok {
			return nil, &UnresolvedAttributeError{Attr: name}
		}
		cols[i] = col
	}
	return cols, nil
}

// Compatible reports whether two schemas agree on arity and on the domain
// kind at every position, as required by union and minus.
func (s *Schema) Compatible(other *Schema) error {
	if len(s.kinds) != len(other.kinds) {
		return &SchemaMismatchError{Position: -1, ArityA: len(s.kinds), ArityB: len(other.kinds)}
	}
	for i, k := range s.kinds {
		if k != other.kinds[i] {
			return &SchemaMismatchError{Position: i, ArityA: len(s.kinds), ArityB: len(other.kinds), KindA: k, KindB: other.kinds[i]}
		}
	}
	return nil
}

// TypeCheck verifies that the tuple has the schema's arity and that every
// value carries the kind the schema demands at its position.
func (s *Schema) TypeCheck(tup Tuple) error {
	if len(tup) != len(s.kinds) {
		return &TypeMismatchError{Position: -1, WantArity: len(s.kinds), GotArity: len(tup)}
	}
	for i, v := range tup {
		if v.Kind() != s.kinds[i] {
			return &TypeMismatchError{Position: i, Want: s.kinds[i], Got: v.Kind()}
		}
	}
	return nil
}

// project builds the schema made of the given column positions, in order.
func (s *Schema) project(cols []int) *Schema {
	attrs := make([]string, len(cols))
	kinds := make([]Kind, len(cols))
	for i, c := range cols {
		attrs[i] = s.attrs[c]
		kinds[i] = s.kinds[c]
	}
	return &Schema{attrs: attrs, kinds: kinds}
}

// concat appends other's attributes and kinds after s's.
func (s *Schema) concat(other *Schema) *Schema {
	return &Schema{
		attrs: append(slices.Clone(s.attrs), other.attrs...),
		kinds: append(slices.Clone(s.kinds), other.kinds...),
	}
}

// disambiguated returns a copy of s whose attribute names do not collide
// with left's: a colliding name gets an integer suffix, incremented until
// unique. The receiver is left untouched, so joins never mutate their
// right-hand table.
func (s *Schema) disambiguated(left *Schema) *Schema {
	attrs := slices.Clone(s.attrs)
	for i, a := range attrs {
		if _, taken := left.ColumnOf(a); !taken {
			continue
		}
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s%d", a, n)
			if _, taken := left.ColumnOf(candidate); !taken && slices.Index(attrs, candidate) < 0 {
				attrs[i] = candidate
				break
			}
		}
	}
	return &Schema{attrs: attrs, kinds: slices.Clone(s.kinds)}
}

// containsAll reports whether every name in sub occurs in names.
func containsAll(names, sub []string) bool {
	for _, s := range sub {
		if slices.Index(names, s) < 0 {
			return false
		}
	}
	return true
}

// Tuple is a fixed-arity ordered sequence of values conforming to a
// schema. Tuples are validated on insert and never modified afterwards.
type Tuple []Value

func (t Tuple) Equal(u Tuple) bool {
	if len(t) != len(u) {
		return false
	}
	for i, v := range t {
		if !v.Equal(u[i]) {
			return false
		}
	}
	return true
}

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// project extracts the values at the given positions into a new tuple.
func (t Tuple) project(cols []int) Tuple {
	out := make(Tuple, len(cols))
	for i, c := range cols {
		out[i] = t[c]
	}
	return out
}

// concat returns a wider tuple holding t's values followed by u's.
func (t Tuple) concat(u Tuple) Tuple {
	out := make(Tuple, 0, len(t)+len(u))
	out = append(out, t...)
	return append(out, u...)
}

// Key is the sub-tuple of a tuple's key-attribute values.
type Key []Value

func (k Key) String() string {
	return Tuple(k).String()
}
