// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "WARN")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden message")
	logger.Warn("skipped file", "path", "A.java")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "skipped file") || !strings.Contains(out, "A.java") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewDefaultLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, ""); err != nil {
		t.Fatalf("empty level should fall back to default: %v", err)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing to see")
}
