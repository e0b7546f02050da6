package reltab

// Union derives a table holding every tuple of t followed by every tuple
// of t2 that is not exact-tuple-equal to a tuple already in the result.
// Duplicates already present within t survive; t2 contributes each
// distinct tuple at most once. Membership is tested against a set keyed
// by the tuple fingerprint instead of the quadratic scan the semantics
// would also allow. Schema and key come from t; the schemas must be
// compatible.
func (t *Table) Union(t2 *Table) (*Table, error) {
	t.sess.tracef("RA", "%s.union (%s)", t.name, t2.name)
	if err := t.schema.Compatible(t2.schema); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(t.tuples)+len(t2.tuples))
	rows := make([]Tuple, 0, len(t.tuples))
	for _, tup := range t.tuples {
		rows = append(rows, tup)
		seen[tup.fingerprint()] = struct{}{}
	}
	for _, tup := range t2.tuples {
		fp := tup.fingerprint()
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		rows = append(rows, tup)
	}
	return t.derived(t.schema, t.key, rows), nil
}

// Minus derives a table holding the tuples of t that are not
// exact-tuple-equal to any tuple of t2. Schema and key are unchanged;
// the schemas must be compatible.
func (t *Table) Minus(t2 *Table) (*Table, error) {
	t.sess.tracef("RA", "%s.minus (%s)", t.name, t2.name)
	if err := t.schema.Compatible(t2.schema); err != nil {
		return nil, err
	}

	exclude := make(map[string]struct{}, len(t2.tuples))
	for _, tup := range t2.tuples {
		exclude[tup.fingerprint()] = struct{}{}
	}

	var rows []Tuple
	for _, tup := range t.tuples {
		if _, drop := exclude[tup.fingerprint()]; !drop {
			rows = append(rows, tup)
		}
	}
	return t.derived(t.schema, t.key, rows), nil
}
