package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/automoto/keyrain/config"
)

func TestBuildSlotMidpoints(t *testing.T) {
	rows := [][]string{
		{"A", "", "C", "D"},
		{"", "X"},
	}

	for _, width := range []float64{1, 320, 1280, 1921.5} {
		table := Build(rows, width)

		want := map[string]float64{
			"A": (0.0/4 + 0.5/4) * width,
			"C": (2.0/4 + 0.5/4) * width,
			"D": (3.0/4 + 0.5/4) * width,
			"X": (1.0/2 + 0.5/2) * width,
		}
		if len(table) != len(want) {
			t.Fatalf("width %v: got %d entries, want %d", width, len(table), len(want))
		}
		for symbol, x := range want {
			got, ok := table.Position(symbol)
			if !ok {
				t.Fatalf("width %v: %q missing", width, symbol)
			}
			if math.Abs(got-x) > 1e-9 {
				t.Errorf("width %v: %q at %v, want %v", width, symbol, got, x)
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build(config.Keyboard.Rows, 1024)
	b := Build(config.Keyboard.Rows, 1024)
	if !reflect.DeepEqual(a, b) {
		t.Error("rebuilding with the same width changed the table")
	}
}

func TestAbsentSymbols(t *testing.T) {
	table := Build(config.Keyboard.Rows, 1024)

	for _, symbol := range []string{"", "shift", "space", "enter", "a", "F1", "num-9x"} {
		if _, ok := table.Position(symbol); ok {
			t.Errorf("%q should not be mapped", symbol)
		}
	}
}

func TestKeyboardLayout(t *testing.T) {
	const width = 1400.0
	table := Build(config.Keyboard.Rows, width)

	// "R" is column 4 of a 14-wide row.
	if x, _ := table.Position("R"); math.Abs(x-(4.0/14+0.5/14)*width) > 1e-9 {
		t.Errorf("R at %v", x)
	}
	// "A" is column 1 of a 13-wide row.
	if x, _ := table.Position("A"); math.Abs(x-(1.0/13+0.5/13)*width) > 1e-9 {
		t.Errorf("A at %v", x)
	}
	// "num-." is column 17 of a 19-wide row.
	if x, _ := table.Position("num-."); math.Abs(x-(17.0/19+0.5/19)*width) > 1e-9 {
		t.Errorf("num-. at %v", x)
	}

	symbols := table.Symbols()
	if len(symbols) != 62 {
		t.Errorf("got %d symbols, want 62", len(symbols))
	}
}
