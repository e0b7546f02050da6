// Package store persists whole-table snapshots in a Bolt file. A saved
// table round-trips: Load(Save(T)) reproduces an equivalent table,
// tuples in insertion order and the index rebuilt. The snapshot format
// is opaque to callers.
package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/reltab/reltab"
)

var tablesBucket = []byte("tables")

type Store struct {
	bdb    *bbolt.DB
	logger *slog.Logger
}

type Options struct {
	Logger    *slog.Logger
	IsTesting bool
}

// Open opens (creating if needed) the snapshot store at path.
func Open(path string, opt Options) (*Store, error) {
	bopt := &bbolt.Options{
		Timeout: 10 * time.Second,
	}
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
	}
	bdb, err := bbolt.Open(path, 0666, bopt)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	err = bdb.Update(func(btx *bbolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(tablesBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("store: %w", err)
	}

	return &Store{bdb: bdb, logger: opt.Logger}, nil
}

func (s *Store) Close() error {
	return s.bdb.Close()
}

// savedTable is the snapshot wire format.
type savedTable struct {
	Attrs   []string     `msgpack:"a"`
	Domains []uint8      `msgpack:"d"`
	Key     []string     `msgpack:"k"`
	Rows    [][]savedVal `msgpack:"r"`
}

type savedVal struct {
	Kind uint8   `msgpack:"k"`
	Num  int64   `msgpack:"n,omitempty"`
	Fp   float64 `msgpack:"f,omitempty"`
	Str  string  `msgpack:"s,omitempty"`
}

// Save writes a full snapshot of the table under its name, replacing any
// prior snapshot. In-memory state is not touched on failure.
func (s *Store) Save(tbl *reltab.Table) error {
	snap := snapshot(tbl)
	raw, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", tbl.Name(), err)
	}

	err = s.bdb.Update(func(btx *bbolt.Tx) error {
		return btx.Bucket(tablesBucket).Put([]byte(tbl.Name()), raw)
	})
	if err != nil {
		return fmt.Errorf("store: save %s: %w", tbl.Name(), err)
	}
	if s.logger != nil {
		s.logger.Debug("saved table", slog.String("table", tbl.Name()), slog.Int("rows", tbl.Len()))
	}
	return nil
}

// Load reads the named snapshot and rebuilds the table within sess,
// reinserting every tuple so the primary-key index is populated.
func (s *Store) Load(sess *reltab.Session, name string) (*reltab.Table, error) {
	var raw []byte
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		v := btx.Bucket(tablesBucket).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("no such table %q", name)
		}
		raw = append(raw, v...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: load: %w", err)
	}

	var snap savedTable
	if err := msgpack.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}
	tbl, err := restore(sess, name, &snap)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}
	if s.logger != nil {
		s.logger.Debug("loaded table", slog.String("table", name), slog.Int("rows", tbl.Len()))
	}
	return tbl, nil
}

// Names lists the saved table names in lexicographic order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		return btx.Bucket(tablesBucket).ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return names, nil
}

func snapshot(tbl *reltab.Table) *savedTable {
	schema := tbl.Schema()
	snap := &savedTable{
		Attrs: schema.Attrs(),
		Key:   tbl.Key(),
	}
	for _, k := range schema.Kinds() {
		snap.Domains = append(snap.Domains, uint8(k))
	}
	for _, tup := range tbl.Tuples() {
		row := make([]savedVal, len(tup))
		for i, v := range tup {
			row[i] = saveValue(v)
		}
		snap.Rows = append(snap.Rows, row)
	}
	return snap
}

func restore(sess *reltab.Session, name string, snap *savedTable) (*reltab.Table, error) {
	kinds := make([]reltab.Kind, len(snap.Domains))
	for i, d := range snap.Domains {
		kinds[i] = reltab.Kind(d)
	}
	schema, err := reltab.NewSchema(snap.Attrs, kinds)
	if err != nil {
		return nil, err
	}
	tuples := make([]reltab.Tuple, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		tup := make(reltab.Tuple, len(row))
		for i, sv := range row {
			tup[i], err = loadValue(sv)
			if err != nil {
				return nil, err
			}
		}
		tuples = append(tuples, tup)
	}
	// Derived tables carry a best-effort key that may repeat across
	// rows, so the snapshot goes back through the restore path rather
	// than Insert.
	return sess.RestoreTable(name, schema, snap.Key, tuples)
}

func saveValue(v reltab.Value) savedVal {
	sv := savedVal{Kind: uint8(v.Kind())}
	switch v.Kind() {
	case reltab.KindFloat64, reltab.KindFloat32:
		sv.Fp = v.Float()
	case reltab.KindString:
		sv.Str = v.Text()
	default:
		sv.Num = v.Int()
	}
	return sv
}

func loadValue(sv savedVal) (reltab.Value, error) {
	switch reltab.Kind(sv.Kind) {
	case reltab.KindInt64:
		return reltab.Int64(sv.Num), nil
	case reltab.KindInt32:
		return reltab.Int32(int32(sv.Num)), nil
	case reltab.KindInt16:
		return reltab.Int16(int16(sv.Num)), nil
	case reltab.KindInt8:
		return reltab.Int8(int8(sv.Num)), nil
	case reltab.KindFloat64:
		return reltab.Float64(sv.Fp), nil
	case reltab.KindFloat32:
		return reltab.Float32(float32(sv.Fp)), nil
	case reltab.KindChar:
		return reltab.Char(rune(sv.Num)), nil
	case reltab.KindString:
		return reltab.String(sv.Str), nil
	default:
		return reltab.Value{}, fmt.Errorf("corrupt snapshot: kind %d", sv.Kind)
	}
}
