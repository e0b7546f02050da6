package reltab

import "fmt"

// EquiJoin joins t with t2 on positionally paired attribute lists: a
// pair of tuples qualifies when every paired value compares equal.
// Nested-loop algorithm. The output schema is t's attributes followed by
// t2's, where t2 attribute names colliding with t's get an integer
// suffix; the renaming happens on a copy, t2 is never modified. The
// output key is t's key.
func (t *Table) EquiJoin(attrs1, attrs2 []string, t2 *Table) (*Table, error) {
	t.sess.tracef("RA", "%s.join (%v, %v, %s)", t.name, attrs1, attrs2, t2.name)
	if len(attrs1) != len(attrs2) {
		return nil, fmt.Errorf("reltab: equi-join attribute lists have lengths %d and %d", len(attrs1), len(attrs2))
	}
	cols1, err := t.schema.ColumnsOf(attrs1)
	if err != nil {
		return nil, err
	}
	cols2, err := t2.schema.ColumnsOf(attrs2)
	if err != nil {
		return nil, err
	}

	var rows []Tuple
	for _, left := range t.tuples {
		for _, right := range t2.tuples {
			if pairedEqual(left, right, cols1, cols2) {
				rows = append(rows, left.concat(right))
			}
		}
	}
	schema := t.schema.concat(t2.schema.disambiguated(t.schema))
	return t.derived(schema, t.key, rows), nil
}

func pairedEqual(left, right Tuple, cols1, cols2 []int) bool {
	for i, c := range cols1 {
		if !left[c].Equal(right[cols2[i]]) {
			return false
		}
	}
	return true
}

// ThetaJoin joins t with t2 on a single comparison "<attribute1> <op>
// <attribute2>", attribute1 from t and attribute2 from t2, resolved
// against the original attribute names before any disambiguation.
// Nested-loop algorithm; schema and key as in EquiJoin.
func (t *Table) ThetaJoin(cond string, t2 *Table) (*Table, error) {
	t.sess.tracef("RA", "%s.join (%s, %s)", t.name, cond, t2.name)
	c, err := parseThetaCond(cond)
	if err != nil {
		return nil, err
	}
	col1, ok := t.schema.ColumnOf(c.left)
	if !ok {
		return nil, &UnresolvedAttributeError{Attr: c.left}
	}
	col2, ok := t2.schema.ColumnOf(c.right)
	if !ok {
		return nil, &UnresolvedAttributeError{Attr: c.right}
	}

	var rows []Tuple
	for _, left := range t.tuples {
		for _, right := range t2.tuples {
			if c.op.holds(left[col1].Compare(right[col2])) {
				rows = append(rows, left.concat(right))
			}
		}
	}
	schema := t.schema.concat(t2.schema.disambiguated(t.schema))
	return t.derived(schema, t.key, rows), nil
}

// NaturalJoin joins t with t2 on all attributes common to both schemas
// by name, in t's schema order. When common attributes exist, each
// qualifying pair contributes the left tuple only and the result keeps
// t's schema and key. With no common attributes the result is the
// unrestricted Cartesian product with the concatenated schema.
func (t *Table) NaturalJoin(t2 *Table) (*Table, error) {
	t.sess.tracef("RA", "%s.join (%s)", t.name, t2.name)

	var cols1, cols2 []int
	for i, a := range t.schema.attrs {
		if c2, ok := t2.schema.ColumnOf(a); ok {
			cols1 = append(cols1, i)
			cols2 = append(cols2, c2)
		}
	}

	var rows []Tuple
	if len(cols1) == 0 {
		for _, left := range t.tuples {
			for _, right := range t2.tuples {
				rows = append(rows, left.concat(right))
			}
		}
		return t.derived(t.schema.concat(t2.schema), t.key, rows), nil
	}

	for _, left := range t.tuples {
		for _, right := range t2.tuples {
			if pairedEqual(left, right, cols1, cols2) {
				rows = append(rows, left)
			}
		}
	}
	return t.derived(t.schema, t.key, rows), nil
}

// IndexJoin is a declared-but-deferred equi-join over the right table's
// primary-key index.
func (t *Table) IndexJoin(attrs1, attrs2 []string, t2 *Table) (*Table, error) {
	return nil, &UnsupportedError{Op: "index join"}
}

// HashJoin is a declared-but-deferred hashed equi-join.
func (t *Table) HashJoin(attrs1, attrs2 []string, t2 *Table) (*Table, error) {
	return nil, &UnsupportedError{Op: "hash join"}
}
