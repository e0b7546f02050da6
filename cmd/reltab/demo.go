package main

import (
	"fmt"
	"io"

	"github.com/reltab/reltab"
	"github.com/reltab/reltab/display"
)

// sampleTables builds the movie/studio base tables the original driver
// used.
func sampleTables(sess *reltab.Session) (movie, studio *reltab.Table, err error) {
	movie, err = sess.NewTableFromSpec("movie",
		"title year length genre studioName producerNo",
		"String Integer32 Integer32 String String Integer32",
		"title")
	if err != nil {
		return nil, nil, err
	}

	movieRows := []reltab.Tuple{
		{reltab.String("Star_Wars"), reltab.Int32(1977), reltab.Int32(124), reltab.String("sciFi"), reltab.String("Fox"), reltab.Int32(12345)},
		{reltab.String("Star_Wars_2"), reltab.Int32(1980), reltab.Int32(124), reltab.String("sciFi"), reltab.String("Fox"), reltab.Int32(12345)},
		{reltab.String("Rocky"), reltab.Int32(1985), reltab.Int32(200), reltab.String("action"), reltab.String("Universal"), reltab.Int32(12125)},
		{reltab.String("Rambo"), reltab.Int32(1978), reltab.Int32(100), reltab.String("action"), reltab.String("Universal"), reltab.Int32(32355)},
	}
	for _, tup := range movieRows {
		if err := movie.Insert(tup); err != nil {
			return nil, nil, err
		}
	}

	studio, err = sess.NewTableFromSpec("studio",
		"name address presNo",
		"String String Integer32",
		"name")
	if err != nil {
		return nil, nil, err
	}

	studioRows := []reltab.Tuple{
		{reltab.String("Fox"), reltab.String("Los_Angeles"), reltab.Int32(7777)},
		{reltab.String("Universal"), reltab.String("Universal_City"), reltab.Int32(8888)},
		{reltab.String("DreamWorks"), reltab.String("Universal_City"), reltab.Int32(9999)},
	}
	for _, tup := range studioRows {
		if err := studio.Insert(tup); err != nil {
			return nil, nil, err
		}
	}

	return movie, studio, nil
}

// runDemoOps exercises every algebra operator and prints each result.
func runDemoOps(out io.Writer, movie, studio *reltab.Table) error {
	projected, err := movie.Project("title", "year")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Table(projected))

	yearCol, _ := movie.Schema().ColumnOf("year")
	selected := movie.Select(func(tup reltab.Tuple) bool {
		return tup[yearCol].Equal(reltab.Int32(1977))
	})
	fmt.Fprintln(out, display.Table(selected))

	byCond, err := movie.SelectWhere("year >= 1978")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Table(byCond))

	byKey, err := movie.SelectKey(reltab.String("Star_Wars"))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Table(byKey))

	union, err := movie.Union(movie)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Table(union))

	minus, err := movie.Minus(byCond)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Table(minus))

	equi, err := movie.EquiJoin([]string{"studioName"}, []string{"name"}, studio)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Table(equi))

	theta, err := movie.ThetaJoin("studioName == name", studio)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Table(theta))

	natural, err := movie.NaturalJoin(studio)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, display.Table(natural))

	return nil
}
