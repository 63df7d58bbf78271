// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import "regexp"

// Only these words count. else, do, case, catch, ?: and boolean operators
// are left out on purpose.
var branchingKeywords = map[string]struct{}{
	"if":     {},
	"switch": {},
	"for":    {},
	"while":  {},
}

var camelCasePattern = regexp.MustCompile(`^[a-z][a-z0-9]*([A-Z][a-z0-9]+)*[A-Za-z0-9]?$`)

// Complexity counts branching keywords in the body. Keywords of nested
// functions or lambdas count toward the enclosing function as well.
func (f Function) Complexity() int {
	count := 0
	for _, tok := range f.Body() {
		switch tok.Kind() {
		case KindWord:
			if _, ok := branchingKeywords[tok.Text()]; ok {
				count++
			}
		case KindNumber, KindCharacter:
		}
	}
	return count
}

func (f Function) IsCamelCase() bool {
	return IsCamelCase(f.Name())
}

// IsCamelCase reports whether name is lowerCamelCase.
func IsCamelCase(name string) bool {
	return camelCasePattern.MatchString(name)
}
