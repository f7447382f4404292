package command

import (
	"fmt"
	"strings"
)

// Tokens is an immutable view over one invocation, split at whitespace.
// Token 0 is the command name itself; arguments start at index 1.
type Tokens struct {
	toks []string
}

// NewTokens splits raw invocation text into tokens. No normalization beyond
// the whitespace split is applied; case handling is up to the caller.
func NewTokens(raw string) Tokens {
	return Tokens{toks: strings.Fields(raw)}
}

// TokensOf builds a token view from an already-split slice.
func TokensOf(toks ...string) Tokens {
	cp := make([]string, len(toks))
	copy(cp, toks)
	return Tokens{toks: cp}
}

// Count returns the number of tokens, command name included.
func (t Tokens) Count() int {
	return len(t.toks)
}

// Get returns the i-th token verbatim.
func (t Tokens) Get(i int) (string, error) {
	if i < 0 || i >= len(t.toks) {
		return "", fmt.Errorf("token index %d out of range (have %d)", i, len(t.toks))
	}
	return t.toks[i], nil
}

// Tail returns tokens [i, Count) rejoined with single spaces. An index at or
// past the end yields an empty string, not an error; a final free-form
// parameter may legitimately be empty.
func (t Tokens) Tail(i int) string {
	if i < 0 {
		i = 0
	}
	if i >= len(t.toks) {
		return ""
	}
	return strings.Join(t.toks[i:], " ")
}
