// Released under an MIT license. See LICENSE.

// Package token is shared by the jsh lexer and parser.
package token

import (
	"strconv"
	"unicode"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class Class
	col   int
	value string
}

type token = T

// Token classes. A newline is its own class: Class('\n').
const (
	Error Class = iota

	Pipe Class = unicode.MaxRune + iota
	Symbol
)

// New creates a new token. Col is the 1-based column of the token's first byte.
func New(class Class, value string, col int) *token {
	return &token{
		class: class,
		col:   col,
		value: value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c *Class) String() string {
	switch *c {
	case Error:
		return "Error"
	case Pipe:
		return "Pipe"
	case Symbol:
		return "Symbol"
	}

	return strconv.QuoteRune(rune(*c))
}

// Col returns the 1-based column where the token starts.
func (t *token) Col() int {
	return t.col
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		strconv.Itoa(t.col) + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
