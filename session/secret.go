package session

import "github.com/automoto/keyrain/config"

// Recent is a rolling window over the last four typed symbols.
type Recent struct {
	keys [4]string
}

// Observe appends symbol, dropping the oldest entry, and reports whether the
// window now equals the secret sequence. Comparison is case-sensitive.
func (r *Recent) Observe(symbol string) bool {
	copy(r.keys[:], r.keys[1:])
	r.keys[len(r.keys)-1] = symbol
	return r.keys == config.Secret.Sequence
}

// Keys returns the window, oldest first. Unfilled slots are empty.
func (r *Recent) Keys() [4]string {
	return r.keys
}
