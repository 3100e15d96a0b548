// Package keymap translates platform key codes into canonical key symbols.
//
// Codes follow the DOM KeyboardEvent.keyCode numbering (which matches Windows
// virtual-key codes for the printable block). Frontends translate their own
// key enumerations into a Code before calling Symbol.
package keymap

import "strings"

// Code is a platform-native numeric key code.
type Code int

// Lookup returns the raw table name for code. Modifier and navigation keys
// come back decorated, e.g. "<shift>".
func Lookup(code Code) (string, bool) {
	name, ok := names[code]
	return name, ok
}

// Symbol returns the canonical key symbol for code with any angle-bracket
// decoration removed. Unknown codes return false.
func Symbol(code Code) (string, bool) {
	name, ok := names[code]
	if !ok {
		return "", false
	}
	return Normalize(name), true
}

// Normalize strips every '<' and '>' from name.
func Normalize(name string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(name)
}

// NumpadPrefix marks numeric-pad symbols.
const NumpadPrefix = "num-"

var assetNames = map[string]string{
	"*":  "star",
	"+":  "plus",
	".":  "dot",
	"/":  "slash",
	"\\": "backslash",
}

// AssetName returns the file-safe base name for a symbol's texture.
// The numpad prefix is dropped so "num-7" and "7" share an asset.
func AssetName(symbol string) string {
	symbol = strings.TrimPrefix(symbol, NumpadPrefix)
	if name, ok := assetNames[symbol]; ok {
		return name
	}
	return symbol
}

// TexturePath returns the texture path for symbol.
func TexturePath(symbol string) string {
	return "img/" + AssetName(symbol) + ".png"
}
