// Package layout maps key symbols to horizontal screen positions.
package layout

import "sort"

// Table maps a key symbol to its x position in viewport coordinates.
type Table map[string]float64

// Build places every non-empty entry of rows at the midpoint of its slot.
// A row of length L is split into L equal slots across width; rows are
// independent, so rows of different length use different slot widths.
// When a symbol appears in more than one row the last occurrence wins.
func Build(rows [][]string, width float64) Table {
	t := make(Table)
	for _, row := range rows {
		l := float64(len(row))
		for i, symbol := range row {
			if symbol == "" {
				continue
			}
			t[symbol] = (float64(i)/l + 0.5/l) * width
		}
	}
	return t
}

// Position returns the x position of symbol.
func (t Table) Position(symbol string) (float64, bool) {
	x, ok := t[symbol]
	return x, ok
}

// Symbols returns the mapped symbols in sorted order.
func (t Table) Symbols() []string {
	out := make([]string, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
