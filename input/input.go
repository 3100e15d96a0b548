// Package input turns ebiten key presses into keymap codes for the session.
package input

import (
	"github.com/automoto/keyrain/keymap"
	"github.com/automoto/keyrain/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// keyCodes maps ebiten keys onto the DOM keyCode numbering used by keymap.
var keyCodes = map[ebiten.Key]keymap.Code{
	ebiten.KeyA:              keymap.CodeA + 0,
	ebiten.KeyB:              keymap.CodeA + 1,
	ebiten.KeyC:              keymap.CodeA + 2,
	ebiten.KeyD:              keymap.CodeA + 3,
	ebiten.KeyE:              keymap.CodeA + 4,
	ebiten.KeyF:              keymap.CodeA + 5,
	ebiten.KeyG:              keymap.CodeA + 6,
	ebiten.KeyH:              keymap.CodeA + 7,
	ebiten.KeyI:              keymap.CodeA + 8,
	ebiten.KeyJ:              keymap.CodeA + 9,
	ebiten.KeyK:              keymap.CodeA + 10,
	ebiten.KeyL:              keymap.CodeA + 11,
	ebiten.KeyM:              keymap.CodeA + 12,
	ebiten.KeyN:              keymap.CodeA + 13,
	ebiten.KeyO:              keymap.CodeA + 14,
	ebiten.KeyP:              keymap.CodeA + 15,
	ebiten.KeyQ:              keymap.CodeA + 16,
	ebiten.KeyR:              keymap.CodeA + 17,
	ebiten.KeyS:              keymap.CodeA + 18,
	ebiten.KeyT:              keymap.CodeA + 19,
	ebiten.KeyU:              keymap.CodeA + 20,
	ebiten.KeyV:              keymap.CodeA + 21,
	ebiten.KeyW:              keymap.CodeA + 22,
	ebiten.KeyX:              keymap.CodeA + 23,
	ebiten.KeyY:              keymap.CodeA + 24,
	ebiten.KeyZ:              keymap.CodeA + 25,
	ebiten.KeyDigit0:         keymap.Code0 + 0,
	ebiten.KeyDigit1:         keymap.Code0 + 1,
	ebiten.KeyDigit2:         keymap.Code0 + 2,
	ebiten.KeyDigit3:         keymap.Code0 + 3,
	ebiten.KeyDigit4:         keymap.Code0 + 4,
	ebiten.KeyDigit5:         keymap.Code0 + 5,
	ebiten.KeyDigit6:         keymap.Code0 + 6,
	ebiten.KeyDigit7:         keymap.Code0 + 7,
	ebiten.KeyDigit8:         keymap.Code0 + 8,
	ebiten.KeyDigit9:         keymap.Code0 + 9,
	ebiten.KeyNumpad0:        keymap.CodeNumpad0 + 0,
	ebiten.KeyNumpad1:        keymap.CodeNumpad0 + 1,
	ebiten.KeyNumpad2:        keymap.CodeNumpad0 + 2,
	ebiten.KeyNumpad3:        keymap.CodeNumpad0 + 3,
	ebiten.KeyNumpad4:        keymap.CodeNumpad0 + 4,
	ebiten.KeyNumpad5:        keymap.CodeNumpad0 + 5,
	ebiten.KeyNumpad6:        keymap.CodeNumpad0 + 6,
	ebiten.KeyNumpad7:        keymap.CodeNumpad0 + 7,
	ebiten.KeyNumpad8:        keymap.CodeNumpad0 + 8,
	ebiten.KeyNumpad9:        keymap.CodeNumpad0 + 9,
	ebiten.KeyF1:             keymap.CodeF1 + 0,
	ebiten.KeyF2:             keymap.CodeF1 + 1,
	ebiten.KeyF3:             keymap.CodeF1 + 2,
	ebiten.KeyF4:             keymap.CodeF1 + 3,
	ebiten.KeyF5:             keymap.CodeF1 + 4,
	ebiten.KeyF6:             keymap.CodeF1 + 5,
	ebiten.KeyF7:             keymap.CodeF1 + 6,
	ebiten.KeyF8:             keymap.CodeF1 + 7,
	ebiten.KeyF9:             keymap.CodeF1 + 8,
	ebiten.KeyF10:            keymap.CodeF1 + 9,
	ebiten.KeyF11:            keymap.CodeF1 + 10,
	ebiten.KeyF12:            keymap.CodeF1 + 11,
	ebiten.KeyNumpadMultiply: keymap.CodeNumpadMultiply,
	ebiten.KeyNumpadAdd:      keymap.CodeNumpadAdd,
	ebiten.KeyNumpadSubtract: keymap.CodeNumpadSubtract,
	ebiten.KeyNumpadDecimal:  keymap.CodeNumpadDecimal,
	ebiten.KeyNumpadDivide:   keymap.CodeNumpadDivide,
	ebiten.KeyNumpadEnter:    keymap.CodeEnter,
	ebiten.KeySemicolon:      keymap.CodeSemicolon,
	ebiten.KeyEqual:          keymap.CodeEqual,
	ebiten.KeyComma:          keymap.CodeComma,
	ebiten.KeyMinus:          keymap.CodeMinus,
	ebiten.KeyPeriod:         keymap.CodePeriod,
	ebiten.KeySlash:          keymap.CodeSlash,
	ebiten.KeyBackquote:      keymap.CodeBackquote,
	ebiten.KeyBracketLeft:    keymap.CodeBracketLeft,
	ebiten.KeyBackslash:      keymap.CodeBackslash,
	ebiten.KeyBracketRight:   keymap.CodeBracketRight,
	ebiten.KeyQuote:          keymap.CodeQuote,
	ebiten.KeySpace:          keymap.CodeSpace,
	ebiten.KeyEnter:          keymap.CodeEnter,
	ebiten.KeyBackspace:      keymap.CodeBackspace,
	ebiten.KeyTab:            keymap.CodeTab,
	ebiten.KeyEscape:         keymap.CodeEscape,
	ebiten.KeyArrowLeft:      keymap.CodeLeft,
	ebiten.KeyArrowUp:        keymap.CodeUp,
	ebiten.KeyArrowRight:     keymap.CodeRight,
	ebiten.KeyArrowDown:      keymap.CodeDown,
	ebiten.KeyShiftLeft:      keymap.CodeShift,
	ebiten.KeyShiftRight:     keymap.CodeShift,
	ebiten.KeyControlLeft:    keymap.CodeControl,
	ebiten.KeyControlRight:   keymap.CodeControl,
	ebiten.KeyAltLeft:        keymap.CodeAlt,
	ebiten.KeyAltRight:       keymap.CodeAlt,
}

var pressed []ebiten.Key

// Code returns the keymap code for k.
func Code(k ebiten.Key) (keymap.Code, bool) {
	code, ok := keyCodes[k]
	return code, ok
}

// UpdateInput queues the keys pressed this tick.
func UpdateInput(e *ecs.ECS) {
	pressed = inpututil.AppendJustPressedKeys(pressed[:0])
	for _, k := range pressed {
		if code, ok := Code(k); ok {
			systems.QueueKey(e.World, code)
		}
	}
}
