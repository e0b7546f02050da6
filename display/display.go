// Package display renders tables and their primary-key indexes for
// terminal inspection. It is a read-only collaborator; nothing here is
// part of the algebra contract.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reltab/reltab"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8FAFC"))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))
)

// Table renders the table name, attribute header and every stored tuple
// in insertion order.
func Table(tbl *reltab.Table) string {
	schema := tbl.Schema()
	n := schema.Arity()

	widths := make([]int, n)
	for i := 0; i < n; i++ {
		widths[i] = lipgloss.Width(schema.Attr(i))
	}
	rows := tbl.Tuples()
	cells := make([][]string, len(rows))
	for r, tup := range rows {
		cells[r] = make([]string, n)
		for i, v := range tup {
			s := v.String()
			cells[r][i] = s
			if w := lipgloss.Width(s); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var body strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			body.WriteString("  ")
		}
		body.WriteString(headerStyle.Render(pad(schema.Attr(i), widths[i])))
	}
	for _, row := range cells {
		body.WriteByte('\n')
		for i, s := range row {
			if i > 0 {
				body.WriteString("  ")
			}
			body.WriteString(pad(s, widths[i]))
		}
	}

	title := titleStyle.Render(fmt.Sprintf("Table %s", tbl.Name()))
	count := mutedStyle.Render(fmt.Sprintf("%d rows", len(rows)))
	return title + " " + count + "\n" + frameStyle.Render(body.String())
}

// Index renders the primary-key index contents in key order.
func Index(tbl *reltab.Table) string {
	var body strings.Builder
	tbl.EachIndexed(func(key reltab.Key, tup reltab.Tuple) bool {
		if body.Len() > 0 {
			body.WriteByte('\n')
		}
		body.WriteString(key.String())
		body.WriteString(" -> ")
		body.WriteString(tup.String())
		return true
	})
	if body.Len() == 0 {
		body.WriteString(mutedStyle.Render("(empty)"))
	}

	title := titleStyle.Render(fmt.Sprintf("Index for %s", tbl.Name()))
	return title + "\n" + frameStyle.Render(body.String())
}

// pad right-pads to the rendered cell width, not the byte length, so
// multi-byte values stay aligned.
func pad(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
