package keymap

import "testing"

func TestSymbol(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want string
		ok   bool
	}{
		{"letter", CodeA, "A", true},
		{"last letter", CodeA + 25, "Z", true},
		{"digit", Code0 + 7, "7", true},
		{"numpad digit", CodeNumpad0 + 3, "num-3", true},
		{"numpad operator", CodeNumpadMultiply, "num-*", true},
		{"backslash", CodeBackslash, "\\", true},
		{"gecko minus", 173, "-", true},
		{"decorated modifier", CodeShift, "shift", true},
		{"decorated function key", CodeF1 + 11, "F12", true},
		{"unknown", 255, "", false},
		{"negative", -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Symbol(tt.code)
			if ok != tt.ok {
				t.Fatalf("Symbol(%d) ok = %v, want %v", tt.code, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Symbol(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLookupKeepsDecoration(t *testing.T) {
	name, ok := Lookup(CodeSpace)
	if !ok || name != "<space>" {
		t.Errorf("Lookup(space) = %q, %v; want \"<space>\", true", name, ok)
	}
}

func TestNoSymbolKeepsBrackets(t *testing.T) {
	for code := range names {
		sym, _ := Symbol(code)
		for _, r := range sym {
			if r == '<' || r == '>' {
				t.Errorf("Symbol(%d) = %q still decorated", code, sym)
			}
		}
	}
}

func TestTexturePath(t *testing.T) {
	tests := map[string]string{
		"A":     "img/A.png",
		"7":     "img/7.png",
		"num-7": "img/7.png",
		"*":     "img/star.png",
		"num-*": "img/star.png",
		"num-+": "img/plus.png",
		".":     "img/dot.png",
		"num-.": "img/dot.png",
		"/":     "img/slash.png",
		"num-/": "img/slash.png",
		"\\":    "img/backslash.png",
		"num--": "img/-.png",
		";":     "img/;.png",
	}

	for symbol, want := range tests {
		if got := TexturePath(symbol); got != want {
			t.Errorf("TexturePath(%q) = %q, want %q", symbol, got, want)
		}
	}
}

func TestFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'a', "A"},
		{'R', "R"},
		{'7', "7"},
		{'/', "/"},
		{'\\', "\\"},
		{'*', "num-*"},
		{'+', "num-+"},
	}
	for _, tt := range tests {
		code, ok := FromRune(tt.r)
		if !ok {
			t.Errorf("FromRune(%q) not mapped", tt.r)
			continue
		}
		if got, _ := Symbol(code); got != tt.want {
			t.Errorf("FromRune(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}

	if _, ok := FromRune('é'); ok {
		t.Error("FromRune mapped a non-US character")
	}
}
