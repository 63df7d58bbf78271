// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"strconv"
)

// TokenKind discriminates the three token variants produced by the tokenizer.
type TokenKind uint8

const (
	KindWord TokenKind = iota + 1
	KindNumber
	KindCharacter
)

func (k TokenKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindNumber:
		return "number"
	case KindCharacter:
		return "character"
	default:
		return "invalid"
	}
}

// Token is the smallest classified unit of source text.
//
// It is a closed union over Word, Number and Character. Only the payload that
// matches Kind is meaningful; the fields are unexported so a token cannot be
// changed once built.
type Token struct {
	kind   TokenKind
	text   string
	number float64
	symbol rune
	line   int
}

// Word builds a token for a run of identifier characters.
func Word(text string, line int) Token {
	return Token{kind: KindWord, text: text, line: line}
}

// Number builds a token for a numeric literal.
func Number(value float64, line int) Token {
	return Token{kind: KindNumber, number: value, line: line}
}

// Character builds a token for a single significant character.
func Character(symbol rune, line int) Token {
	return Token{kind: KindCharacter, symbol: symbol, line: line}
}

func (t Token) Kind() TokenKind {
	return t.kind
}

// Line is the 1-based source line the token started on.
func (t Token) Line() int {
	return t.line
}

// Text returns the word text, or "" for non-word tokens.
func (t Token) Text() string {
	return t.text
}

// Value returns the numeric value, or 0 for non-number tokens.
func (t Token) Value() float64 {
	return t.number
}

// Symbol returns the character, or 0 for non-character tokens.
func (t Token) Symbol() rune {
	return t.symbol
}

func (t Token) IsWord(text string) bool {
	return t.kind == KindWord && t.text == text
}

func (t Token) IsCharacter(symbol rune) bool {
	return t.kind == KindCharacter && t.symbol == symbol
}

// Lexeme renders the token back to source-like text.
func (t Token) Lexeme() string {
	switch t.kind {
	case KindWord:
		return t.text
	case KindNumber:
		return strconv.FormatFloat(t.number, 'f', -1, 64)
	case KindCharacter:
		return string(t.symbol)
	default:
		return ""
	}
}

func (t Token) String() string {
	switch t.kind {
	case KindWord:
		return fmt.Sprintf("Word: '%s'", t.text)
	case KindNumber:
		return fmt.Sprintf("Number: '%s'", t.Lexeme())
	case KindCharacter:
		return fmt.Sprintf("Character: '%c'", t.symbol)
	default:
		return "Invalid"
	}
}

// Span is a half-open [Start, End) index range into a TokenBuffer.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// TokenBuffer owns every token of one source file. Functions extracted from
// the file refer back into it by index.
type TokenBuffer struct {
	Path   string
	Tokens []Token
}

func (b *TokenBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Tokens)
}

// Slice returns a read-only view of the span. The returned slice has its
// capacity clipped so appends never write into the buffer.
func (b *TokenBuffer) Slice(s Span) []Token {
	if b == nil || s.Start < 0 || s.End > len(b.Tokens) || s.Start > s.End {
		return nil
	}
	return b.Tokens[s.Start:s.End:s.End]
}
