package reltab

import (
	"testing"
)

func newTestSession() *Session {
	return NewSession(SessionOptions{})
}

// movieTable builds the canonical sample table with two rows.
func movieTable(t *testing.T) *Table {
	t.Helper()
	sess := newTestSession()
	tbl, err := sess.NewTableFromSpec("movie",
		"title year length genre studioName producerNo",
		"String Integer32 Integer32 String String Integer32",
		"title")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	mustInsert(t, tbl,
		Tuple{String("Star_Wars"), Int32(1977), Int32(124), String("sciFi"), String("Fox"), Int32(12345)},
		Tuple{String("Rocky"), Int32(1980), Int32(200), String("action"), String("Universal"), Int32(12125)},
	)
	return tbl
}

func studioTable(t *testing.T, sess *Session) *Table {
	t.Helper()
	tbl, err := sess.NewTableFromSpec("studio",
		"name address presNo",
		"String String Integer32",
		"name")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	mustInsert(t, tbl,
		Tuple{String("Fox"), String("Los_Angeles"), Int32(7777)},
		Tuple{String("Universal"), String("Universal_City"), Int32(8888)},
	)
	return tbl
}

func mustInsert(t *testing.T, tbl *Table, tuples ...Tuple) {
	t.Helper()
	for _, tup := range tuples {
		if err := tbl.Insert(tup); err != nil {
			t.Fatalf("Insert %v: %v", tup, err)
		}
	}
}

func wantTuples(t *testing.T, tbl *Table, want []Tuple) {
	t.Helper()
	got := tbl.Tuples()
	if len(got) != len(want) {
		t.Fatalf("%s has %d tuples, wanted %d", tbl.Name(), len(got), len(want))
	}
	for i, tup := range want {
		if !got[i].Equal(tup) {
			t.Fatalf("%s tuple %d = %v, wanted %v", tbl.Name(), i, got[i], tup)
		}
	}
}
