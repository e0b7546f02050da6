package reltab

// Table composes a schema, a primary key, an append-only tuple store and
// a primary-key index. Base tables are created through Session.NewTable;
// every algebra operator returns a new derived table and leaves its
// inputs untouched.
//
// The index is maintained by Insert only. Derived tables start with an
// empty index even when they carry tuples; SelectKey on a derived table
// finds nothing until tuples are inserted through Insert.
type Table struct {
	sess    *Session
	name    string
	schema  *Schema
	key     []string
	keyCols []int
	tuples  []Tuple
	index   *tableIndex
}

// derived builds an operator result. The key attribute set is expected
// to resolve within the schema; operators guarantee that.
func (t *Table) derived(schema *Schema, key []string, tuples []Tuple) *Table {
	keyCols, err := schema.ColumnsOf(key)
	if err != nil {
		// Operators only pass keys contained in the schema.
		panic("reltab: derived table key outside schema: " + err.Error())
	}
	return &Table{
		sess:    t.sess,
		name:    t.sess.tempName(t.name),
		schema:  schema,
		key:     append([]string(nil), key...),
		keyCols: keyCols,
		tuples:  tuples,
		index:   newTableIndex(),
	}
}

func (t *Table) Name() string    { return t.name }
func (t *Table) Schema() *Schema { return t.schema }
func (t *Table) Len() int        { return len(t.tuples) }

// Key returns the key attribute names, in key-tuple order.
func (t *Table) Key() []string {
	return append([]string(nil), t.key...)
}

// Tuples returns the stored tuples in insertion order. The slice is a
// copy; the tuples themselves are shared and must not be modified.
func (t *Table) Tuples() []Tuple {
	return append([]Tuple(nil), t.tuples...)
}

// IndexLen reports how many keys the primary-key index holds.
func (t *Table) IndexLen() int {
	return t.index.len()
}

// EachIndexed walks the primary-key index in key order.
func (t *Table) EachIndexed(fn func(key Key, tup Tuple) bool) {
	t.index.ascend(fn)
}

// keyOf projects a stored tuple onto the key attribute positions.
func (t *Table) keyOf(tup Tuple) Key {
	k := make(Key, len(t.keyCols))
	for i, c := range t.keyCols {
		k[i] = tup[c]
	}
	return k
}

// Insert appends a tuple to the store and indexes its key value. The
// tuple is rejected, with the store and index unchanged, when it fails
// the type check or its key value is already indexed.
func (t *Table) Insert(tup Tuple) error {
	t.sess.tracef("DML", "insert into %s values %v", t.name, tup)
	if err := t.schema.TypeCheck(tup); err != nil {
		return err
	}
	keyVal := t.keyOf(tup)
	enc := encodeKey(keyVal)
	if _, exists := t.index.get(enc); exists {
		return &KeyConflictError{Table: t.name, Key: keyVal}
	}
	t.tuples = append(t.tuples, tup)
	t.index.put(enc, keyVal, tup)
	return nil
}
