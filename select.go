package reltab

// Select derives a table holding the tuples for which the predicate
// holds, in source order. Schema and key are unchanged.
func (t *Table) Select(pred func(Tuple) bool) *Table {
	t.sess.tracef("RA", "%s.select <predicate>", t.name)
	var rows []Tuple
	for _, tup := range t.tuples {
		if pred(tup) {
			rows = append(rows, tup)
		}
	}
	return t.derived(t.schema, t.key, rows)
}

// SelectWhere filters by a textual condition "<attribute> <op>
// <intLiteral>". The condition is resolved against the schema before the
// scan: an unknown attribute, a malformed condition or a literal that
// cannot be compared to the column's domain fail the whole call.
func (t *Table) SelectWhere(cond string) (*Table, error) {
	t.sess.tracef("RA", "%s.select (%s)", t.name, cond)
	c, err := parseSelectCond(cond)
	if err != nil {
		return nil, err
	}
	col, ok := t.schema.ColumnOf(c.attr)
	if !ok {
		return nil, &UnresolvedAttributeError{Attr: c.attr}
	}
	lit, err := literalValue(c.lit, t.schema.Kind(col))
	if err != nil {
		return nil, &MalformedConditionError{Cond: cond, Err: err}
	}

	var rows []Tuple
	for _, tup := range t.tuples {
		if c.op.holds(tup[col].Compare(lit)) {
			rows = append(rows, tup)
		}
	}
	return t.derived(t.schema, t.key, rows), nil
}

// SelectKey looks the key value up in the primary-key index and derives
// a table with at most one tuple. This is the indexed fast path; it only
// sees tuples that went through Insert, so it finds nothing on a derived
// table that has not been inserted into.
func (t *Table) SelectKey(keyVal ...Value) (*Table, error) {
	t.sess.tracef("RA", "%s.select key %v", t.name, Key(keyVal))
	if len(keyVal) != len(t.keyCols) {
		return nil, &TypeMismatchError{Position: -1, WantArity: len(t.keyCols), GotArity: len(keyVal)}
	}
	for i, v := range keyVal {
		want := t.schema.Kind(t.keyCols[i])
		if v.Kind() != want {
			return nil, &TypeMismatchError{Position: i, Want: want, Got: v.Kind()}
		}
	}

	var rows []Tuple
	if tup, ok := t.index.get(encodeKey(Key(keyVal))); ok {
		rows = append(rows, tup)
	}
	return t.derived(t.schema, t.key, rows), nil
}
