package reltab

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Session owns the state shared by a family of tables: the counter that
// names derived tables and the optional logger that traces operator
// calls. Two sessions never share naming state, so concurrent evaluation
// contexts do not interfere.
type Session struct {
	lastTemp atomic.Uint64
	logger   *slog.Logger
}

type SessionOptions struct {
	Logger *slog.Logger
}

func NewSession(opt SessionOptions) *Session {
	return &Session{logger: opt.Logger}
}

// NewTable creates an empty base table.
func (sess *Session) NewTable(name string, schema *Schema, key []string) (*Table, error) {
	keyCols, err := schema.ColumnsOf(key)
	if err != nil {
		return nil, fmt.Errorf("reltab: table %s: %w", name, err)
	}
	sess.tracef("DDL", "create table %s %v key %v", name, schema, key)
	return &Table{
		sess:    sess,
		name:    name,
		schema:  schema,
		key:     append([]string(nil), key...),
		keyCols: keyCols,
		index:   newTableIndex(),
	}, nil
}

// NewTableFromSpec creates an empty base table from the textual form:
// space-separated attribute names, domain names and key attribute names.
func (sess *Session) NewTableFromSpec(name, attributes, domains, key string) (*Table, error) {
	schema, err := ParseSchema(attributes, domains)
	if err != nil {
		return nil, err
	}
	return sess.NewTable(name, schema, strings.Fields(key))
}

// RestoreTable rebuilds a table from previously captured contents, such
// as a persistence snapshot. Tuples are type checked and appended in
// order; the primary-key index maps each key value to the first tuple
// bearing it, so snapshots of tables whose best-effort key repeats
// (derived tables) restore without a key conflict.
func (sess *Session) RestoreTable(name string, schema *Schema, key []string, tuples []Tuple) (*Table, error) {
	tbl, err := sess.NewTable(name, schema, key)
	if err != nil {
		return nil, err
	}
	for _, tup := range tuples {
		if err := schema.TypeCheck(tup); err != nil {
			return nil, fmt.Errorf("reltab: table %s: %w", name, err)
		}
		keyVal := tbl.keyOf(tup)
		enc := encodeKey(keyVal)
		tbl.tuples = append(tbl.tuples, tup)
		if _, exists := tbl.index.get(enc); !exists {
			tbl.index.put(enc, keyVal, tup)
		}
	}
	return tbl, nil
}

// tempName synthesizes a derived-table name from the originating table's
// name and the session counter.
func (sess *Session) tempName(base string) string {
	return fmt.Sprintf("%s%d", base, sess.lastTemp.Add(1))
}

func (sess *Session) tracef(tag, format string, args ...any) {
	if sess.logger != nil {
		sess.logger.Debug(tag + "> " + fmt.Sprintf(format, args...))
	}
}
