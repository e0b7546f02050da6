package reltab

import (
	"errors"
	"slices"
	"testing"
)

func TestEquiJoin(t *testing.T) {
	tbl := movieTable(t)
	studio := studioTable(t, tbl.sess)

	got, err := tbl.EquiJoin([]string{"studioName"}, []string{"name"}, studio)
	if err != nil {
		t.Fatalf("EquiJoin: %v", err)
	}
	wantTuples(t, got, []Tuple{
		{String("Star_Wars"), Int32(1977), Int32(124), String("sciFi"), String("Fox"), Int32(12345),
			String("Fox"), String("Los_Angeles"), Int32(7777)},
		{String("Rocky"), Int32(1980), Int32(200), String("action"), String("Universal"), Int32(12125),
			String("Universal"), String("Universal_City"), Int32(8888)},
	})
	if got.Schema().Arity() != 9 {
		t.Fatalf("joined arity = %d, wanted 9", got.Schema().Arity())
	}
	if !slices.Equal(got.Key(), []string{"title"}) {
		t.Fatalf("joined key = %v, wanted left key", got.Key())
	}
}

func TestEquiJoinNoMatchContributesNothing(t *testing.T) {
	tbl := movieTable(t)
	sess := tbl.sess
	studio, err := sess.NewTableFromSpec("studio", "name address presNo",
		"String String Integer32", "name")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	mustInsert(t, studio, Tuple{String("Paramount"), String("Hollywood"), Int32(1111)})

	got, err := tbl.EquiJoin([]string{"studioName"}, []string{"name"}, studio)
	if err != nil {
		t.Fatalf("EquiJoin: %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("join with no matches produced %d rows", got.Len())
	}
}

func TestEquiJoinDisambiguation(t *testing.T) {
	sess := newTestSession()
	a, err := sess.NewTableFromSpec("a", "id name", "Integer32 String", "id")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	b, err := sess.NewTableFromSpec("b", "id name", "Integer32 String", "id")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	mustInsert(t, a, Tuple{Int32(1), String("x")})
	mustInsert(t, b, Tuple{Int32(1), String("y")})

	got, err := a.EquiJoin([]string{"id"}, []string{"id"}, b)
	if err != nil {
		t.Fatalf("EquiJoin: %v", err)
	}
	if !slices.Equal(got.Schema().Attrs(), []string{"id", "name", "id2", "name2"}) {
		t.Fatalf("joined attrs = %v", got.Schema().Attrs())
	}
	// The right-hand table keeps its own attribute names.
	if !slices.Equal(b.Schema().Attrs(), []string{"id", "name"}) {
		t.Fatalf("join mutated the right-hand schema: %v", b.Schema().Attrs())
	}
}

func TestEquiJoinErrors(t *testing.T) {
	tbl := movieTable(t)
	studio := studioTable(t, tbl.sess)

	if _, err := tbl.EquiJoin([]string{"studioName", "year"}, []string{"name"}, studio); err == nil {
		t.Fatalf("EquiJoin accepted attribute lists of different lengths")
	}

	var uerr *UnresolvedAttributeError
	_, err := tbl.EquiJoin([]string{"nope"}, []string{"name"}, studio)
	if !errors.As(err, &uerr) || uerr.Attr != "nope" {
		t.Fatalf("EquiJoin = %v, wanted UnresolvedAttributeError", err)
	}
	_, err = tbl.EquiJoin([]string{"studioName"}, []string{"nope"}, studio)
	if !errors.As(err, &uerr) {
		t.Fatalf("EquiJoin = %v, wanted UnresolvedAttributeError for the right table", err)
	}
}

func TestThetaJoin(t *testing.T) {
	tbl := movieTable(t)
	studio := studioTable(t, tbl.sess)

	got, err := tbl.ThetaJoin("studioName == name", studio)
	if err != nil {
		t.Fatalf("ThetaJoin: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("theta equality join returned %d rows, wanted 2", got.Len())
	}
	if got.Schema().Arity() != 9 {
		t.Fatalf("joined arity = %d, wanted 9", got.Schema().Arity())
	}

	lt, err := tbl.ThetaJoin("producerNo < presNo", studio)
	if err != nil {
		t.Fatalf("ThetaJoin: %v", err)
	}
	// Both producerNo values exceed both presNo values.
	if lt.Len() != 0 {
		t.Fatalf("producerNo < presNo returned %d rows, wanted 0", lt.Len())
	}
}

func TestThetaJoinErrors(t *testing.T) {
	tbl := movieTable(t)
	studio := studioTable(t, tbl.sess)

	var merr *MalformedConditionError
	if _, err := tbl.ThetaJoin("studioName ~ name", studio); !errors.As(err, &merr) {
		t.Fatalf("ThetaJoin accepted an unknown operator")
	}

	var uerr *UnresolvedAttributeError
	if _, err := tbl.ThetaJoin("bogus == name", studio); !errors.As(err, &uerr) {
		t.Fatalf("ThetaJoin accepted an unresolved left attribute")
	}
	if _, err := tbl.ThetaJoin("studioName == bogus", studio); !errors.As(err, &uerr) {
		t.Fatalf("ThetaJoin accepted an unresolved right attribute")
	}
}

func TestNaturalJoinCommonAttributes(t *testing.T) {
	sess := newTestSession()
	movie, err := sess.NewTableFromSpec("movie", "title year genre",
		"String Integer32 String", "title")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	mustInsert(t, movie,
		Tuple{String("Star_Wars"), Int32(1977), String("sciFi")},
		Tuple{String("Rocky"), Int32(1985), String("action")},
	)

	starsIn, err := sess.NewTableFromSpec("starsIn", "starName title",
		"String String", "starName title")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	mustInsert(t, starsIn,
		Tuple{String("Hamill"), String("Star_Wars")},
		Tuple{String("Fisher"), String("Star_Wars")},
		Tuple{String("Stallone"), String("Rambo")},
	)

	got, err := movie.NaturalJoin(starsIn)
	if err != nil {
		t.Fatalf("NaturalJoin: %v", err)
	}
	// Common attribute: title. Each qualifying pair contributes the left
	// tuple; Star_Wars matches twice, Rocky never.
	wantTuples(t, got, []Tuple{
		{String("Star_Wars"), Int32(1977), String("sciFi")},
		{String("Star_Wars"), Int32(1977), String("sciFi")},
	})
	if !slices.Equal(got.Schema().Attrs(), movie.Schema().Attrs()) {
		t.Fatalf("natural-join schema = %v, wanted the left schema", got.Schema().Attrs())
	}
}

func TestNaturalJoinNoCommonAttributes(t *testing.T) {
	sess := newTestSession()
	a, err := sess.NewTableFromSpec("a", "x", "Integer32", "x")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	b, err := sess.NewTableFromSpec("b", "y", "String", "y")
	if err != nil {
		t.Fatalf("NewTableFromSpec: %v", err)
	}
	mustInsert(t, a, Tuple{Int32(1)}, Tuple{Int32(2)})
	mustInsert(t, b, Tuple{String("p")}, Tuple{String("q")})

	got, err := a.NaturalJoin(b)
	if err != nil {
		t.Fatalf("NaturalJoin: %v", err)
	}
	// No common attributes: unrestricted Cartesian product.
	if got.Len() != 4 {
		t.Fatalf("Cartesian product has %d rows, wanted 4", got.Len())
	}
	if !slices.Equal(got.Schema().Attrs(), []string{"x", "y"}) {
		t.Fatalf("Cartesian schema = %v", got.Schema().Attrs())
	}
	wantTuples(t, got, []Tuple{
		{Int32(1), String("p")},
		{Int32(1), String("q")},
		{Int32(2), String("p")},
		{Int32(2), String("q")},
	})
}

func TestDeferredJoins(t *testing.T) {
	tbl := movieTable(t)
	studio := studioTable(t, tbl.sess)

	_, err := tbl.IndexJoin([]string{"studioName"}, []string{"name"}, studio)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("IndexJoin = %v, wanted ErrUnsupported", err)
	}
	_, err = tbl.HashJoin([]string{"studioName"}, []string{"name"}, studio)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("HashJoin = %v, wanted ErrUnsupported", err)
	}
}
