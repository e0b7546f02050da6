package reltab

// Project derives a table holding only the named attributes, in the
// order given. Row order and cardinality are preserved; duplicates are
// not eliminated (bag semantics). The derived key is the source key when
// the projection retains all of it, otherwise the projected attribute
// set itself serves as a best-effort key.
func (t *Table) Project(names ...string) (*Table, error) {
	t.sess.tracef("RA", "%s.project %v", t.name, names)
	cols, err := t.schema.ColumnsOf(names)
	if err != nil {
		return nil, err
	}

	newKey := t.key
	if !containsAll(names, t.key) {
		newKey = names
	}

	rows := make([]Tuple, 0, len(t.tuples))
	for _, tup := range t.tuples {
		rows = append(rows, tup.project(cols))
	}
	return t.derived(t.schema.project(cols), newKey, rows), nil
}
