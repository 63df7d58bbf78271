// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"path/filepath"
)

// Function is a function candidate promoted by the extractor. It stores
// indices into the TokenBuffer of its file instead of copying tokens, so the
// buffer must outlive it.
//
// The parameter span always ends before the body span starts.
type Function struct {
	buf    *TokenBuffer
	name   int
	params Span
	body   Span
}

func NewFunction(buf *TokenBuffer, name int, params, body Span) Function {
	return Function{
		buf:    buf,
		name:   name,
		params: params,
		body:   body,
	}
}

func (f Function) NameToken() Token {
	if f.buf == nil || f.name < 0 || f.name >= len(f.buf.Tokens) {
		return Token{}
	}
	return f.buf.Tokens[f.name]
}

func (f Function) Name() string {
	return f.NameToken().Text()
}

// Line is the line of the name token.
func (f Function) Line() int {
	return f.NameToken().Line()
}

func (f Function) SourceFile() string {
	if f.buf == nil {
		return ""
	}
	return f.buf.Path
}

// Parameters returns the tokens between the parameter-list parentheses.
func (f Function) Parameters() []Token {
	return f.buf.Slice(f.params)
}

// Body returns the tokens between the body braces.
func (f Function) Body() []Token {
	return f.buf.Slice(f.body)
}

func (f Function) ParameterSpan() Span {
	return f.params
}

func (f Function) BodySpan() Span {
	return f.body
}

// Metrics snapshots the function into its serializable report form.
func (f Function) Metrics() FunctionMetrics {
	path := f.SourceFile()
	return FunctionMetrics{
		Name:            f.Name(),
		FilePath:        path,
		Language:        LanguageFromPath(path),
		Line:            f.Line(),
		Complexity:      f.Complexity(),
		CamelCase:       f.IsCamelCase(),
		ParameterTokens: f.params.Len(),
		BodyTokens:      f.body.Len(),
	}
}

func (f Function) String() string {
	return displayName(f.Name(), f.SourceFile(), f.Line())
}

func displayName(name, path string, line int) string {
	return fmt.Sprintf("%s(%s:%d)", name, filepath.Base(path), line)
}
