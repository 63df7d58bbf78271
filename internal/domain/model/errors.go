// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import "fmt"

type ErrorKind string

const (
	// ErrorKindIO marks a file that could not be read. The file contributes
	// no tokens.
	ErrorKindIO ErrorKind = "IoError"
	// ErrorKindMalformedStructure marks a candidate whose brackets never
	// balanced. It is counted, never returned as an error.
	ErrorKindMalformedStructure ErrorKind = "MalformedStructure"
)

// ReadError is returned when a source file cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Kind() ErrorKind {
	return ErrorKindIO
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
