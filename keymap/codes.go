package keymap

import "fmt"

// Well-known codes used by frontends.
const (
	CodeBackspace Code = 8
	CodeTab       Code = 9
	CodeEnter     Code = 13
	CodeShift     Code = 16
	CodeControl   Code = 17
	CodeAlt       Code = 18
	CodeEscape    Code = 27
	CodeSpace     Code = 32
	CodeLeft      Code = 37
	CodeUp        Code = 38
	CodeRight     Code = 39
	CodeDown      Code = 40

	Code0 Code = 48
	CodeA Code = 65

	CodeNumpad0        Code = 96
	CodeNumpadMultiply Code = 106
	CodeNumpadAdd      Code = 107
	CodeNumpadSubtract Code = 109
	CodeNumpadDecimal  Code = 110
	CodeNumpadDivide   Code = 111
	CodeF1             Code = 112
	CodeF2             Code = 113

	CodeSemicolon    Code = 186
	CodeEqual        Code = 187
	CodeComma        Code = 188
	CodeMinus        Code = 189
	CodePeriod       Code = 190
	CodeSlash        Code = 191
	CodeBackquote    Code = 192
	CodeBracketLeft  Code = 219
	CodeBackslash    Code = 220
	CodeBracketRight Code = 221
	CodeQuote        Code = 222
)

var names = map[Code]string{
	3:             "<cancel>",
	6:             "<help>",
	CodeBackspace: "<backspace>",
	CodeTab:       "<tab>",
	12:            "<clear>",
	CodeEnter:     "<enter>",
	CodeShift:     "<shift>",
	CodeControl:   "<control>",
	CodeAlt:       "<alt>",
	19:            "<pause>",
	20:            "<caps-lock>",
	21:            "<ime-hangul>",
	23:            "<ime-junja>",
	24:            "<ime-final>",
	25:            "<ime-kanji>",
	CodeEscape:    "<escape>",
	28:            "<ime-convert>",
	29:            "<ime-nonconvert>",
	30:            "<ime-accept>",
	31:            "<ime-mode-change>",
	CodeSpace:     "<space>",
	33:            "<page-up>",
	34:            "<page-down>",
	35:            "<end>",
	36:            "<home>",
	CodeLeft:      "<left>",
	CodeUp:        "<up>",
	CodeRight:     "<right>",
	CodeDown:      "<down>",
	41:            "<select>",
	42:            "<print>",
	43:            "<execute>",
	44:            "<snapshot>",
	45:            "<insert>",
	46:            "<delete>",
	47:            "<help>",
	91:            "<meta>",
	92:            "<meta>",
	93:            "<meta>",
	95:            "<sleep>",
	144:           "<num-lock>",
	145:           "<scroll-lock>",
	224:           "<meta>",
	225:           "<alt-gr>",

	// Gecko reports a few punctuation keys with different codes.
	59:  ";",
	61:  "=",
	173: "-",

	CodeNumpadMultiply: "num-*",
	CodeNumpadAdd:      "num-+",
	CodeNumpadSubtract: "num--",
	CodeNumpadDecimal:  "num-.",
	CodeNumpadDivide:   "num-/",

	CodeSemicolon:    ";",
	CodeEqual:        "=",
	CodeComma:        ",",
	CodeMinus:        "-",
	CodePeriod:       ".",
	CodeSlash:        "/",
	CodeBackquote:    "`",
	CodeBracketLeft:  "[",
	CodeBackslash:    "\\",
	CodeBracketRight: "]",
	CodeQuote:        "'",
}

func init() {
	for i := Code(0); i < 10; i++ {
		names[Code0+i] = string(rune('0' + i))
		names[CodeNumpad0+i] = NumpadPrefix + string(rune('0'+i))
	}
	for i := Code(0); i < 26; i++ {
		names[CodeA+i] = string(rune('A' + i))
	}
	for i := Code(0); i < 24; i++ {
		names[CodeF1+i] = fmt.Sprintf("<F%d>", i+1)
	}
}
