package engine

import "fmt"

// ErrInvalidQuerySyntax indicates a barcode query containing characters
// outside the accepted alphabet (digits, hyphens, whitespace).
//
// This is user-input validation, surfaced as a typed result: it separates
// "malformed input" from "input that matches nothing".
type ErrInvalidQuerySyntax struct {
	Rune rune // the offending rune
	Pos  int  // byte offset within the raw query
}

func (e *ErrInvalidQuerySyntax) Error() string {
	return fmt.Sprintf("invalid barcode query syntax: disallowed character %q at offset %d", e.Rune, e.Pos)
}

// ErrQueryTooShort indicates a name query under the minimum trimmed length.
type ErrQueryTooShort struct {
	Length int // trimmed rune count of the query
	Min    int // required minimum
}

func (e *ErrQueryTooShort) Error() string {
	return fmt.Sprintf("name query too short: %d runes, need at least %d", e.Length, e.Min)
}
