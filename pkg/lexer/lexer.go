// Package lexer splits SQL text into a typed token stream.
//
// The lexer never discards input: comments and whitespace become
// WHITESPACE tokens, unterminated quotes become ERROR tokens, and the
// lexemes of a stream always concatenate back to the original text.
package lexer

import (
	"unicode/utf8"

	"github.com/leapstack-labs/sqlforge/pkg/token"
)

// Keywords reports whether a word is reserved. *dialect.Dialect and
// keywords.Set both satisfy it.
type Keywords interface {
	IsKeyword(word string) bool
}

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	keywords Keywords // nil classifies every word as IDENTIFIER
}

// New creates a new Lexer for the given input.
func New(input string, kw Keywords) *Lexer {
	l := &Lexer{
		input:    input,
		line:     1,
		keywords: kw,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.pos < len(l.input) && l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.input)
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. It reports false once the input is
// exhausted.
func (l *Lexer) NextToken() (token.Token, bool) {
	if l.eof() {
		return token.Token{}, false
	}
	pos := l.currentPos()
	start := l.pos
	kind := l.scan()
	return token.Token{Kind: kind, Lexeme: l.input[start:l.pos], Pos: pos}, true
}

// scan consumes one token and returns its kind.
func (l *Lexer) scan() token.Kind {
	switch ch := l.ch; {
	case isSpace(ch):
		for !l.eof() && isSpace(l.ch) {
			l.readChar()
		}
		return token.Whitespace
	case ch == '#':
		l.skipLine()
		return token.Whitespace
	case ch == '-' && l.peekChar() == '-':
		l.skipLine()
		return token.Whitespace
	case ch == '/' && l.peekChar() == '*':
		return l.readBlockComment()
	case ch == '\'':
		return l.readQuoted('\'', token.Literal)
	case ch == '"' || ch == '`':
		return l.readQuoted(ch, token.Identifier)
	case ch == '[':
		return l.readQuoted(']', token.Identifier)
	case isDigit(ch), ch == '.' && isDigit(l.peekChar()):
		return l.readNumber()
	case isLetter(ch) || ch == '_':
		return l.readWord()
	case ch == '?':
		l.readChar()
		return token.Parameter
	case ch == '$' && isDigit(l.peekChar()):
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
		return token.Parameter
	case ch == ';':
		l.readChar()
		return token.Terminal
	case isOperator(ch):
		l.readOperator()
		return token.Operator
	case ch >= utf8.RuneSelf:
		_, size := utf8.DecodeRuneInString(l.input[l.pos:])
		start := l.pos
		for l.pos < start+size {
			l.readChar()
		}
		return token.Kind(l.input[start:l.pos])
	default:
		l.readChar()
		return token.Kind(string(ch))
	}
}

// skipLine consumes a line comment through its end-of-line character.
func (l *Lexer) skipLine() {
	for !l.eof() && l.ch != '\n' {
		l.readChar()
	}
	if !l.eof() {
		l.readChar() // the newline
	}
}

// readBlockComment consumes /* ... */. An unterminated comment runs to the
// end of input and is reported as ERROR.
func (l *Lexer) readBlockComment() token.Kind {
	l.readChar() // skip /
	l.readChar() // skip *
	for !l.eof() {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return token.Whitespace
		}
		l.readChar()
	}
	return token.Error
}

// readQuoted consumes a span opened by the current character and closed by
// end. A doubled closing character is an escaped occurrence, not the end.
func (l *Lexer) readQuoted(end byte, kind token.Kind) token.Kind {
	l.readChar() // skip opening delimiter
	for !l.eof() {
		if l.ch == end {
			if l.peekChar() == end {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			return kind
		}
		l.readChar()
	}
	return token.Error
}

// readNumber consumes an integer, real or 0x hexadecimal numeral.
func (l *Lexer) readNumber() token.Kind {
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
		return token.Hex
	}

	kind := token.Integer
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		kind = token.Real
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	// Exponent: 1e10, 2.5E-3
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		signed := (next == '+' || next == '-') && l.readPos+1 < len(l.input) && isDigit(l.input[l.readPos+1])
		if isDigit(next) || signed {
			kind = token.Real
			l.readChar()
			if signed {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return kind
}

// readWord consumes a word and classifies it as KEYWORD or IDENTIFIER.
func (l *Lexer) readWord() token.Kind {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	if l.keywords != nil && l.keywords.IsKeyword(l.input[start:l.pos]) {
		return token.Keyword
	}
	return token.Identifier
}

// readOperator consumes an operator, preferring the two-character form.
func (l *Lexer) readOperator() {
	ch, next := l.ch, l.peekChar()
	l.readChar()
	switch {
	case ch == '|' && next == '|',
		ch == '=' && next == '=',
		ch == '!' && next == '=',
		ch == '<' && (next == '>' || next == '=' || next == '<'),
		ch == '>' && (next == '=' || next == '>'):
		l.readChar()
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

// isLetter returns true if ch is an ASCII letter.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '*', '%', '&', '~', '|', '=', '!', '<', '>':
		return true
	}
	return false
}
