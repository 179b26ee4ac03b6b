// Package ui renders human-oriented views of computed layouts.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"uniformgen/internal/layout"
)

// TableOpts configures RenderLayouts.
type TableOpts struct {
	Color bool
}

type column struct {
	title      string
	alignRight bool
}

var columns = []column{
	{title: "OFFSET", alignRight: true},
	{title: "SIZE", alignRight: true},
	{title: "ALIGN", alignRight: true},
	{title: "FIELD"},
	{title: "TYPE"},
	{title: "DECL"},
}

type styles struct {
	title  func(...string) string
	header func(...string) string
	pad    func(...string) string
}

func plain(strs ...string) string { return strings.Join(strs, " ") }

func newStyles(color bool) styles {
	if !color {
		return styles{title: plain, header: plain, pad: plain}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Render,
		header: lipgloss.NewStyle().Bold(true).Render,
		pad:    lipgloss.NewStyle().Faint(true).Render,
	}
}

// RenderLayouts prints one table per layout: a title line with name, origin
// and total size, then one row per padding block and field.
func RenderLayouts(w io.Writer, layouts []layout.Layout, opts TableOpts) error {
	st := newStyles(opts.Color)
	for i, l := range layouts {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := renderOne(w, l, st); err != nil {
			return err
		}
	}
	return nil
}

func renderOne(w io.Writer, l layout.Layout, st styles) error {
	origin := l.Signature.File
	if l.Signature.Line > 0 {
		origin = fmt.Sprintf("%s:%d", origin, l.Signature.Line)
	}
	title := fmt.Sprintf("%s  %s  size %d, padding %d", l.Signature.Name, origin, l.Size, l.PaddingBytes())
	if _, err := fmt.Fprintln(w, st.title(title)); err != nil {
		return err
	}

	rows := make([][]string, 0, len(l.Entries)*2)
	padRow := make(map[int]bool)
	for _, e := range l.Entries {
		if e.HasPadding() {
			padRow[len(rows)] = true
			rows = append(rows, []string{
				strconv.Itoa(e.PaddingOffset), strconv.Itoa(e.Padding), "-", "(padding)", "", "",
			})
		}
		ty := e.Field.Type
		rows = append(rows, []string{
			strconv.Itoa(e.Offset),
			strconv.Itoa(ty.Size()),
			strconv.Itoa(ty.Alignment()),
			e.Field.Name,
			ty.String(),
			ty.Declare(e.Field.Name),
		})
	}

	widths := make([]int, len(columns))
	for c, col := range columns {
		widths[c] = runewidth.StringWidth(col.title)
	}
	for _, r := range rows {
		for c, cell := range r {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}

	header := make([]string, len(columns))
	for c, col := range columns {
		header[c] = col.title
	}
	if _, err := fmt.Fprintln(w, st.header(formatRow(header, widths))); err != nil {
		return err
	}
	for i, r := range rows {
		line := formatRow(r, widths)
		if padRow[i] {
			line = st.pad(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for c, cell := range cells {
		if columns[c].alignRight {
			parts[c] = runewidth.FillLeft(cell, widths[c])
		} else {
			parts[c] = runewidth.FillRight(cell, widths[c])
		}
	}
	return "  " + strings.TrimRight(strings.Join(parts, "  "), " ")
}
