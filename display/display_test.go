package display

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reltab/reltab"
)

func sampleTable(t *testing.T) *reltab.Table {
	t.Helper()
	sess := reltab.NewSession(reltab.SessionOptions{})
	tbl, err := sess.NewTableFromSpec("movie", "title year", "String Integer32", "title")
	require.NoError(t, err)
	require.NoError(t, tbl.Insert(reltab.Tuple{reltab.String("Star_Wars"), reltab.Int32(1977)}))
	require.NoError(t, tbl.Insert(reltab.Tuple{reltab.String("Rocky"), reltab.Int32(1976)}))
	return tbl
}

func TestTable(t *testing.T) {
	out := Table(sampleTable(t))
	assert.Contains(t, out, "Table movie")
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "year")
	assert.Contains(t, out, "Star_Wars")
	assert.Contains(t, out, "1977")
	assert.Contains(t, out, "2 rows")
}

func TestTableUnicodeAlignment(t *testing.T) {
	sess := reltab.NewSession(reltab.SessionOptions{})
	tbl, err := sess.NewTableFromSpec("films", "title note", "String String", "title")
	require.NoError(t, err)
	require.NoError(t, tbl.Insert(reltab.Tuple{reltab.String("Amélie"), reltab.String("first")}))
	require.NoError(t, tbl.Insert(reltab.Tuple{reltab.String("Rocky"), reltab.String("second")}))

	// "Amélie" is longer in bytes than on screen; the second column
	// must still start at the same rendered position in every row.
	out := Table(tbl)
	assert.Equal(t, columnOf(t, out, "first"), columnOf(t, out, "second"))
}

// columnOf returns the rendered position of the line cell holding want.
func columnOf(t *testing.T, out, want string) int {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if i := strings.Index(line, want); i >= 0 {
			return utf8.RuneCountInString(line[:i])
		}
	}
	t.Fatalf("%q not found in output", want)
	return -1
}

func TestIndex(t *testing.T) {
	out := Index(sampleTable(t))
	assert.Contains(t, out, "Index for movie")
	assert.Contains(t, out, "Rocky")
	assert.Contains(t, out, "Star_Wars")

	// Index order is key order, not insertion order.
	assert.Less(t, strings.Index(out, "Rocky"), strings.Index(out, "Star_Wars"))
}

func TestIndexEmpty(t *testing.T) {
	sess := reltab.NewSession(reltab.SessionOptions{})
	tbl, err := sess.NewTableFromSpec("empty", "a", "String", "a")
	require.NoError(t, err)
	assert.Contains(t, Index(tbl), "(empty)")
}
