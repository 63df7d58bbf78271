// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import (
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
)

// Scanner splits C-family source into Word, Number and Character tokens.
//
// Comments and whitespace produce nothing. '.' is never part of a word or a
// number, so qualified names and decimals come out as several tokens. A
// quoted literal ("..." or '...') produces a single Character token holding
// the quote, which keeps brackets inside strings out of bracket matching.
type Scanner struct {
	source []byte
	cursor int
	line   int
}

func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
}

// Next returns the next token, or false once the source is exhausted.
func (s *Scanner) Next() (model.Token, bool) {
	for {
		s.skipWhitespace()
		if s.cursor >= len(s.source) {
			return model.Token{}, false
		}

		ch, size := utf8.DecodeRune(s.source[s.cursor:])

		switch {
		case ch == '/' && s.peek() == '/':
			s.skipLineComment()
			continue
		case ch == '/' && s.peek() == '*':
			s.skipBlockComment()
			continue
		case ch == '"' || ch == '\'':
			return s.scanQuoted(byte(ch)), true
		case isDigit(ch):
			return s.scanNumber(), true
		case isWordStart(ch):
			return s.scanWord(), true
		}

		s.cursor += size
		return model.Character(ch, s.line), true
	}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		if s.consumeNewline() {
			continue
		}
		ch, size := utf8.DecodeRune(s.source[s.cursor:])
		if !unicode.IsSpace(ch) {
			return
		}
		s.cursor += size
	}
}

// consumeNewline advances past "\n", "\r\n" or "\r" and bumps the line.
func (s *Scanner) consumeNewline() bool {
	switch s.source[s.cursor] {
	case '\n':
		s.cursor++
	case '\r':
		s.cursor++
		if s.cursor < len(s.source) && s.source[s.cursor] == '\n' {
			s.cursor++
		}
	default:
		return false
	}
	s.line++
	return true
}

func (s *Scanner) skipLineComment() {
	for s.cursor < len(s.source) && !isNewline(s.source[s.cursor]) {
		s.cursor++
	}
}

// skipBlockComment consumes through the closing "*/", or to EOF when the
// comment is never closed. Block comments do not nest.
func (s *Scanner) skipBlockComment() {
	s.cursor += 2
	for s.cursor < len(s.source) {
		if s.consumeNewline() {
			continue
		}
		if s.source[s.cursor] == '*' && s.peek() == '/' {
			s.cursor += 2
			return
		}
		s.cursor++
	}
}

// scanQuoted consumes a literal up to its closing quote, the end of the
// line, or EOF. A backslash escapes the next character on the same line.
func (s *Scanner) scanQuoted(quote byte) model.Token {
	tok := model.Character(rune(quote), s.line)
	s.cursor++
	for s.cursor < len(s.source) {
		c := s.source[s.cursor]
		if isNewline(c) {
			break
		}
		s.cursor++
		if c == quote {
			break
		}
		if c == '\\' && s.cursor < len(s.source) && !isNewline(s.source[s.cursor]) {
			s.cursor++
		}
	}
	return tok
}

func (s *Scanner) scanNumber() model.Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(rune(s.source[s.cursor])) {
		s.cursor++
	}
	// A digit run always parses; overflow yields +Inf which is still a value.
	value, _ := strconv.ParseFloat(string(s.source[start:s.cursor]), 64)
	return model.Number(value, s.line)
}

func (s *Scanner) scanWord() model.Token {
	start := s.cursor
	for s.cursor < len(s.source) {
		ch, size := utf8.DecodeRune(s.source[s.cursor:])
		if !isWordPart(ch) {
			break
		}
		s.cursor += size
	}
	return model.Word(string(s.source[start:s.cursor]), s.line)
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isNewline(c byte) bool {
	return c == '\n' || c == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isWordStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isWordPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// Tokenize lexes src into a new buffer for path. It never fails.
func Tokenize(path string, src []byte) *model.TokenBuffer {
	buf := &model.TokenBuffer{Path: path}
	s := NewScanner(src)
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		buf.Tokens = append(buf.Tokens, tok)
	}
	return buf
}

// TokenizeReader reads r to the end and lexes it. When reading fails it
// returns an empty buffer together with a *model.ReadError.
func TokenizeReader(path string, r io.Reader) (*model.TokenBuffer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return &model.TokenBuffer{Path: path}, &model.ReadError{Path: path, Err: err}
	}
	return Tokenize(path, src), nil
}
