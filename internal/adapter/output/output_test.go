// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
)

func sampleReport() *model.ProjectReport {
	top := []model.FunctionMetrics{
		{Name: "parseAll", FilePath: "/src/Parser.java", Line: 12, Complexity: 7, CamelCase: true},
		{Name: "Run_Once", FilePath: "/src/Main.java", Line: 3, Complexity: 2, CamelCase: false},
		{Name: "x", FilePath: "/src/Main.java", Line: 9, Complexity: 0, CamelCase: true},
	}
	return &model.ProjectReport{
		RunID:       "run-42",
		RootPath:    "/src",
		GeneratedAt: time.Date(2025, 5, 4, 3, 2, 1, 0, time.UTC),
		Files: []model.FileMetrics{
			{Path: "/src/Main.java", Functions: top[1:]},
			{Path: "/src/Parser.java", Functions: top[:1]},
		},
		Project: model.ProjectMetrics{
			TotalFiles:            2,
			TotalFunctions:        3,
			TotalComplexity:       9,
			MaxComplexity:         7,
			AvgComplexity:         3,
			NonCamelCaseFunctions: 1,
			NonCamelCasePct:       100.0 / 3.0,
		},
		TopFunctions: top,
		Warnings:     []string{"read /src/Broken.java: permission denied"},
	}
}

func TestTextRendererPlain(t *testing.T) {
	out, err := NewTextRenderer(false).Render(sampleReport())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if strings.Contains(out, "\033[") {
		t.Errorf("plain output contains ANSI escapes")
	}
	for _, want := range []string{
		"Highest complexity scores:\n" +
			"Score = 7, function = parseAll(Parser.java:12)\n" +
			"Score = 2, function = Run_Once(Main.java:3)\n" +
			"Score = 0, function = x(Main.java:9)\n",
		"Total functions: 3",
		"Non-camelCase functions: 33.33%",
		"Warnings:\n- read /src/Broken.java: permission denied",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "branching keyword") {
		t.Errorf("mixed report should not claim all-zero complexity")
	}
}

func TestTextRendererColor(t *testing.T) {
	out, err := NewTextRenderer(true).Render(sampleReport())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, ansiReset) {
		t.Errorf("coloured output has no ANSI escapes")
	}
}

func TestTextRendererNoFunctions(t *testing.T) {
	report := &model.ProjectReport{RootPath: "/empty", Project: model.ProjectMetrics{TotalFiles: 1}}
	out, err := NewTextRenderer(false).Render(report)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "No functions found.") {
		t.Errorf("expected no-functions message:\n%s", out)
	}
	if strings.Contains(out, "Highest complexity scores") || strings.Contains(out, "%") {
		t.Errorf("no-functions report should not print scores or percentages:\n%s", out)
	}
}

func TestTextRendererAllZero(t *testing.T) {
	report := &model.ProjectReport{
		Project: model.ProjectMetrics{TotalFunctions: 1, ZeroComplexityFunctions: 1},
		TopFunctions: []model.FunctionMetrics{
			{Name: "get", FilePath: "A.java", Line: 2, CamelCase: true},
		},
	}
	out, err := NewTextRenderer(false).Render(report)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Score = 0, function = get(A.java:2)") ||
		!strings.Contains(out, "No function contains a branching keyword.") {
		t.Errorf("unexpected all-zero output:\n%s", out)
	}
}

func TestJSONRenderer(t *testing.T) {
	out, err := NewJSONRenderer().Render(sampleReport())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["runId"] != "run-42" {
		t.Errorf("runId = %v", decoded["runId"])
	}
	top, ok := decoded["topFunctions"].([]any)
	if !ok || len(top) != 3 {
		t.Fatalf("topFunctions = %v", decoded["topFunctions"])
	}
}

func TestYAMLRenderer(t *testing.T) {
	out, err := NewYAMLRenderer().Render(sampleReport())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded struct {
		RunID        string `yaml:"runId"`
		TopFunctions []struct {
			Name       string `yaml:"name"`
			Complexity int    `yaml:"complexity"`
		} `yaml:"topFunctions"`
	}
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	if decoded.RunID != "run-42" || len(decoded.TopFunctions) != 3 ||
		decoded.TopFunctions[0].Name != "parseAll" || decoded.TopFunctions[0].Complexity != 7 {
		t.Errorf("unexpected decode: %+v", decoded)
	}
}

func TestTableRenderer(t *testing.T) {
	out, err := NewTableRenderer().Render(sampleReport())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, want := range []string{"parseAll", "Parser.java", "Run_Once", "33.33%", "permission denied"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRegistry(t *testing.T) {
	reg := NewDefaultRegistry(false)

	if got, want := reg.Formats(), []string{"json", "table", "text", "yaml"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
	if r, ok := reg.Get(" JSON "); !ok || r.Format() != "json" {
		t.Errorf("lookup should be case-insensitive")
	}
	if _, ok := reg.Get("xml"); ok {
		t.Errorf("unexpected renderer for xml")
	}

	var nilReg *RendererRegistry
	if _, ok := nilReg.Get("json"); ok || nilReg.List() != nil {
		t.Errorf("nil registry should be empty")
	}
}
