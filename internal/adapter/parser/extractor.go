// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import (
	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
)

// candidateRule rejects a Word at index i as a function name by looking at
// its neighbours. Callers guarantee 1 <= i <= len(tokens)-2.
type candidateRule struct {
	name   string
	reject func(tokens []model.Token, i int) bool
}

// Rules run in order; the first match drops the candidate.
var candidateRules = []candidateRule{
	{name: "control keyword", reject: isControlKeyword},
	{name: "constructor", reject: followsAccessModifier},
	{name: "anonymous class", reject: followsNew},
	{name: "no return type", reject: lacksTypeToken},
	{name: "no parameter list", reject: lacksParameterList},
}

var controlKeywords = map[string]struct{}{
	"if":     {},
	"else":   {},
	"for":    {},
	"while":  {},
	"do":     {},
	"switch": {},
	"try":    {},
	"catch":  {},
}

// Constructors without a modifier are not caught here and come out as
// functions.
var accessModifiers = map[string]struct{}{
	"public":    {},
	"private":   {},
	"protected": {},
}

func isControlKeyword(tokens []model.Token, i int) bool {
	_, ok := controlKeywords[tokens[i].Text()]
	return ok
}

func followsAccessModifier(tokens []model.Token, i int) bool {
	prev := tokens[i-1]
	if prev.Kind() != model.KindWord {
		return false
	}
	_, ok := accessModifiers[prev.Text()]
	return ok
}

func followsNew(tokens []model.Token, i int) bool {
	return tokens[i-1].IsWord("new")
}

// lacksTypeToken accepts any Word before the name, or the '>' closing a
// generic return type such as List<T>.
func lacksTypeToken(tokens []model.Token, i int) bool {
	prev := tokens[i-1]
	switch prev.Kind() {
	case model.KindWord:
		return false
	case model.KindCharacter:
		return prev.Symbol() != '>'
	case model.KindNumber:
		return true
	default:
		return true
	}
}

func lacksParameterList(tokens []model.Token, i int) bool {
	return !tokens[i+1].IsCharacter('(')
}

// ExtractStats describes how the candidates of one buffer were resolved.
type ExtractStats struct {
	Candidates int
	Rejected   int
	Bodiless   int
	Unresolved int
	Emitted    int

	// RejectedBy counts rejections per rule name.
	RejectedBy map[string]int
}

// Extract finds function declarations in buf.
func Extract(buf *model.TokenBuffer) []model.Function {
	functions, _ := ExtractWithStats(buf)
	return functions
}

// ExtractWithStats is Extract plus a breakdown of the skipped candidates.
// A candidate whose parentheses or braces never balance is counted as
// Unresolved and skipped; it never fails the buffer.
func ExtractWithStats(buf *model.TokenBuffer) ([]model.Function, ExtractStats) {
	stats := ExtractStats{RejectedBy: make(map[string]int)}
	var functions []model.Function
	if buf == nil {
		return nil, stats
	}

	tokens := buf.Tokens

	for i := 1; i < len(tokens)-1; i++ {
		if tokens[i].Kind() != model.KindWord {
			continue
		}
		stats.Candidates++

		if rule, rejected := rejectCandidate(tokens, i); rejected {
			stats.Rejected++
			stats.RejectedBy[rule]++
			continue
		}

		paramsClose, ok := matchBracket(tokens, i+1, '(', ')')
		if !ok {
			stats.Unresolved++
			continue
		}

		bodyOpen := paramsClose + 1
		if bodyOpen >= len(tokens) || !tokens[bodyOpen].IsCharacter('{') {
			stats.Bodiless++
			continue
		}

		bodyClose, ok := matchBracket(tokens, bodyOpen, '{', '}')
		if !ok {
			stats.Unresolved++
			continue
		}

		functions = append(functions, model.NewFunction(
			buf,
			i,
			model.Span{Start: i + 2, End: paramsClose},
			model.Span{Start: bodyOpen + 1, End: bodyClose},
		))
		stats.Emitted++
	}

	return functions, stats
}

func rejectCandidate(tokens []model.Token, i int) (string, bool) {
	for _, rule := range candidateRules {
		if rule.reject(tokens, i) {
			return rule.name, true
		}
	}
	return "", false
}

// matchBracket scans forward from the opening bracket at index open and
// returns the index of its balancing closer. Only Character tokens count.
func matchBracket(tokens []model.Token, open int, opening, closing rune) (int, bool) {
	depth := 0
	for j := open; j < len(tokens); j++ {
		tok := tokens[j]
		if tok.Kind() != model.KindCharacter {
			continue
		}
		switch tok.Symbol() {
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return -1, false
}
