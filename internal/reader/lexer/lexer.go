// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for jsh input.
//
// The jsh lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk "Lexical
// Scanning in Go". See https://talks.golang.org/2011/lex.slide for more
// information. The input language is flat: the bytes space, tab, '|', and
// '\n' are structural and every other byte belongs to a word, so the
// scanner works on bytes and multibyte characters pass through untouched.
package lexer

import (
	"strconv"

	"github.com/tyganChin/shell/internal/reader/token"
)

// MaxWordBytes is the longest word the lexer will emit. A longer word is
// reported as an Error token and scanning stops.
const MaxWordBytes = 100

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	tokens chan *token.T
}

type lexer = T

// New creates a new T.
func New() *lexer {
	return &lexer{
		state:  skipSpace,
		tokens: make(chan *token.T, 16),
	}
}

// Scan hands the lexer a line of text to scan, replacing any previous line.
func (l *lexer) Scan(text string) {
	l.bytes = text
	l.first = 0
	l.index = 0
	l.state = skipSpace
}

// Text returns the text of the current token.
func (l *lexer) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil when the line is done.
func (l *lexer) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

type action func(*T) action

const eof = -1

// accept adds the current byte to the current token.
func (l *lexer) accept() {
	l.index++
}

func (l *lexer) emit(c token.Class) {
	l.tokens <- token.New(c, l.Text(), l.first+1)
	l.skip()
}

func (l *lexer) error(msg string) action {
	l.tokens <- token.New(token.Error, msg, l.first+1)

	return nil
}

// peek returns the current byte, or eof at the end of the buffer.
func (l *lexer) peek() rune {
	if l.index < len(l.bytes) {
		return rune(l.bytes[l.index])
	}

	return eof
}

// skip moves the start of the current token past any accepted bytes.
func (l *lexer) skip() {
	l.first = l.index
}

// T states.

func skipSpace(l *lexer) action {
	for {
		switch l.peek() {
		case eof:
			return nil
		case ' ', '\t':
			l.accept()
			l.skip()
		case '|':
			l.accept()
			l.emit(token.Pipe)

			return skipSpace
		case '\n':
			l.accept()
			l.emit('\n')

			return nil
		default:
			return scanWord
		}
	}
}

func scanWord(l *lexer) action {
	for {
		switch l.peek() {
		case eof, ' ', '\t', '|', '\n':
			if l.index-l.first > MaxWordBytes {
				return l.error("word too long (max " +
					strconv.Itoa(MaxWordBytes) + " bytes)")
			}

			l.emit(token.Symbol)

			return skipSpace
		default:
			l.accept()
		}
	}
}
