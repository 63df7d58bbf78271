// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package logging builds the structured logger shared by the CLI and the
// use cases. Logs always go to a separate stream from the report itself.
package logging

import (
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const DefaultLevel = "warn"

func New(w io.Writer, level string) (*charmlog.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := charmlog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: false,
		Prefix:          "cqa",
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *charmlog.Logger {
	return charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.FatalLevel})
}
