package lexer

import (
	"iter"
	"slices"
	"strings"

	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/token"
)

// Stream is the immutable result of tokenizing one input. It is safe to
// share between goroutines; iteration state lives in a Cursor.
type Stream struct {
	tokens []token.Token
}

// Tokenize scans input into a Stream. kw classifies words; it may be nil.
func Tokenize(input string, kw Keywords) *Stream {
	l := New(input, kw)
	s := &Stream{}
	for {
		tok, ok := l.NextToken()
		if !ok {
			return s
		}
		s.tokens = append(s.tokens, tok)
	}
}

// Len returns the number of tokens.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at index i.
func (s *Stream) At(i int) (token.Token, error) {
	if i < 0 || i >= len(s.tokens) {
		return token.Token{}, &core.OutOfBoundsError{Index: i, Len: len(s.tokens)}
	}
	return s.tokens[i], nil
}

// Tokens returns a copy of all tokens.
func (s *Stream) Tokens() []token.Token {
	return slices.Clone(s.tokens)
}

// All iterates over index and token pairs.
func (s *Stream) All() iter.Seq2[int, token.Token] {
	return slices.All(s.tokens)
}

// Filter returns the tokens whose kind is not one of kinds.
func (s *Stream) Filter(kinds ...token.Kind) []token.Token {
	out := make([]token.Token, 0, len(s.tokens))
	for _, tok := range s.tokens {
		if !tok.Is(kinds...) {
			out = append(out, tok)
		}
	}
	return out
}

// String reassembles the original input.
func (s *Stream) String() string {
	var b strings.Builder
	for _, tok := range s.tokens {
		b.WriteString(tok.Lexeme)
	}
	return b.String()
}

// Cursor returns a new cursor positioned before the first token.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s, index: -1}
}

// Cursor walks a Stream forward, with random access through Seek.
// A Cursor is owned by one goroutine.
type Cursor struct {
	stream *Stream
	index  int
}

// Next advances to the next token and reports whether one exists.
func (c *Cursor) Next() bool {
	if c.index < len(c.stream.tokens) {
		c.index++
	}
	return c.index < len(c.stream.tokens)
}

// Token returns the current token, or the zero Token when the cursor is not
// on one.
func (c *Cursor) Token() token.Token {
	if c.index < 0 || c.index >= len(c.stream.tokens) {
		return token.Token{}
	}
	return c.stream.tokens[c.index]
}

// Index returns the current position; -1 before the first call to Next.
func (c *Cursor) Index() int { return c.index }

// Seek moves the cursor onto token i, so that Token returns it and Next
// continues from i+1.
func (c *Cursor) Seek(i int) error {
	if i < 0 || i >= len(c.stream.tokens) {
		return &core.OutOfBoundsError{Index: i, Len: len(c.stream.tokens)}
	}
	c.index = i
	return nil
}

// Rewind moves the cursor back before the first token.
func (c *Cursor) Rewind() { c.index = -1 }
