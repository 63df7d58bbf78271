// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
)

func TestRenderHistory(t *testing.T) {
	runs := []model.RunRecord{
		{
			ID:              "r2",
			GeneratedAt:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Files:           4,
			Functions:       9,
			MaxComplexity:   6,
			AvgComplexity:   1.5,
			NonCamelCasePct: 11.11,
		},
	}

	var table bytes.Buffer
	if err := RenderHistory(&table, runs, "text"); err != nil {
		t.Fatalf("text: %v", err)
	}
	for _, want := range []string{"r2", "2025-02-01T00:00:00Z", "11.11%"} {
		if !strings.Contains(table.String(), want) {
			t.Errorf("table missing %q:\n%s", want, table.String())
		}
	}

	var js bytes.Buffer
	if err := RenderHistory(&js, runs, "json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	var decoded []model.RunRecord
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil || len(decoded) != 1 || decoded[0].Functions != 9 {
		t.Errorf("json round trip: %v, %+v", err, decoded)
	}

	var ym bytes.Buffer
	if err := RenderHistory(&ym, runs, "yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(ym.String(), "id: r2") {
		t.Errorf("yaml output:\n%s", ym.String())
	}

	if err := RenderHistory(&bytes.Buffer{}, runs, "xml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var text bytes.Buffer
	if err := RenderHistory(&text, nil, "text"); err != nil || !strings.Contains(text.String(), "No recorded runs.") {
		t.Errorf("text: %v %q", err, text.String())
	}

	var js bytes.Buffer
	if err := RenderHistory(&js, nil, "json"); err != nil || strings.TrimSpace(js.String()) != "[]" {
		t.Errorf("json: %v %q", err, js.String())
	}
}
