package keymap

var punctuation = map[rune]Code{
	' ':  CodeSpace,
	';':  CodeSemicolon,
	'=':  CodeEqual,
	',':  CodeComma,
	'-':  CodeMinus,
	'.':  CodePeriod,
	'/':  CodeSlash,
	'`':  CodeBackquote,
	'[':  CodeBracketLeft,
	'\\': CodeBackslash,
	']':  CodeBracketRight,
	'\'': CodeQuote,
	'*':  CodeNumpadMultiply,
	'+':  CodeNumpadAdd,
}

// FromRune returns the code of the key that types r on a US layout, for
// frontends that only see characters. Letters map regardless of case.
func FromRune(r rune) (Code, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return CodeA + Code(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return CodeA + Code(r-'A'), true
	case r >= '0' && r <= '9':
		return Code0 + Code(r-'0'), true
	}
	code, ok := punctuation[r]
	return code, ok
}
