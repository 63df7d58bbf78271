// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/usecase"
)

const fixture = `
public class Shop {
    public Shop() { }

    public int priceOf(Item item) {
        if (item == null) { return 0; }
        for (Rule r : rules) {
            if (r.applies(item)) { return r.price(); }
        }
        return item.base;
    }

    private void Log_Event(String msg) { System.out.println(msg); }
}
`

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Shop.java"), []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return root
}

func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewApp(&stdout, &stderr), &stdout, &stderr
}

func TestParseExtensions(t *testing.T) {
	cases := map[string][]string{
		"java,c":          {".java", ".c"},
		".java, .C ,,.h":  {".java", ".c", ".h"},
		"":                nil,
		defaultExtensions: {".java", ".c", ".h", ".cpp", ".hpp", ".cc", ".cs", ".js", ".ts", ".kt", ".scala", ".go"},
	}
	for raw, want := range cases {
		if got := parseExtensions(raw); !reflect.DeepEqual(got, want) {
			t.Errorf("parseExtensions(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestRunAnalyzeJSON(t *testing.T) {
	root := newProject(t)
	app, stdout, _ := newTestApp()

	if err := app.runAnalyze(context.Background(), []string{"--format", "json", root}); err != nil {
		t.Fatalf("runAnalyze failed: %v", err)
	}

	var report model.ProjectReport
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, stdout.String())
	}
	if report.Project.TotalFunctions != 2 || report.Project.MaxComplexity != 3 {
		t.Errorf("project = %+v", report.Project)
	}
	if report.TopFunctions[0].Name != "priceOf" || report.Project.NonCamelCasePct != 50 {
		t.Errorf("unexpected ranking: %+v", report.TopFunctions)
	}

	if _, err := os.Stat(filepath.Join(root, model.WorkspaceDir, "report.json")); err != nil {
		t.Errorf("report not persisted: %v", err)
	}
}

func TestRunAnalyzeThenReportAndHistory(t *testing.T) {
	root := newProject(t)

	app, _, _ := newTestApp()
	if err := app.runAnalyze(context.Background(), []string{"--color=false", root}); err != nil {
		t.Fatalf("runAnalyze failed: %v", err)
	}

	app, stdout, _ := newTestApp()
	if err := app.runReport(context.Background(), []string{"--color=false", "--path", root}); err != nil {
		t.Fatalf("runReport failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "Score = 3, function = priceOf(Shop.java:5)") {
		t.Errorf("report output:\n%s", stdout.String())
	}

	app, stdout, _ = newTestApp()
	if err := app.runHistory(context.Background(), []string{"--format", "json", root}); err != nil {
		t.Fatalf("runHistory failed: %v", err)
	}
	var runs []model.RunRecord
	if err := json.Unmarshal(stdout.Bytes(), &runs); err != nil {
		t.Fatalf("invalid history json: %v\n%s", err, stdout.String())
	}
	if len(runs) != 1 || runs[0].Functions != 2 {
		t.Errorf("history = %+v", runs)
	}
}

func TestRunAnalyzeWithoutHistory(t *testing.T) {
	root := newProject(t)
	app, _, _ := newTestApp()

	if err := app.runAnalyze(context.Background(), []string{"--history=false", root}); err != nil {
		t.Fatalf("runAnalyze failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, model.WorkspaceDir, "history.db")); !os.IsNotExist(err) {
		t.Errorf("history database should not exist, stat err = %v", err)
	}
}

func TestRunAnalyzeFailOver(t *testing.T) {
	root := newProject(t)
	app, stdout, _ := newTestApp()

	err := app.runAnalyze(context.Background(), []string{"--fail-over", "2", "--color=false", root})
	if !errors.Is(err, errThresholdExceeded) {
		t.Fatalf("expected threshold error, got %v", err)
	}
	if !strings.Contains(stdout.String(), "Highest complexity scores:") {
		t.Errorf("report should still be printed before failing")
	}

	app, _, _ = newTestApp()
	if err := app.runAnalyze(context.Background(), []string{"--fail-over", "3", root}); err != nil {
		t.Errorf("max complexity equal to the limit should pass: %v", err)
	}
}

func TestRunAnalyzeProjectConfig(t *testing.T) {
	root := newProject(t)
	config := "top: 1\nformat: json\nhistory: false\n"
	if err := os.WriteFile(filepath.Join(root, ".cqa.yaml"), []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	app, stdout, _ := newTestApp()
	if err := app.runAnalyze(context.Background(), []string{root}); err != nil {
		t.Fatalf("runAnalyze failed: %v", err)
	}

	var report model.ProjectReport
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("config format not applied: %v\n%s", err, stdout.String())
	}
	if len(report.TopFunctions) != 1 {
		t.Errorf("config top not applied: %d functions", len(report.TopFunctions))
	}

	// Flags still win over the file.
	app, stdout, _ = newTestApp()
	if err := app.runAnalyze(context.Background(), []string{"--format", "text", "--color=false", root}); err != nil {
		t.Fatalf("runAnalyze failed: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "Code Quality Report") {
		t.Errorf("flag should override config format:\n%s", stdout.String())
	}
}

func TestRunAnalyzeNoSources(t *testing.T) {
	app, _, _ := newTestApp()
	err := app.runAnalyze(context.Background(), []string{t.TempDir()})
	if !errors.Is(err, usecase.ErrNoSourceFiles) {
		t.Fatalf("expected ErrNoSourceFiles, got %v", err)
	}
}

func TestRunAnalyzeBadLogLevel(t *testing.T) {
	app, _, _ := newTestApp()
	if err := app.runAnalyze(context.Background(), []string{"--log-level", "loud", newProject(t)}); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestRunMetrics(t *testing.T) {
	app, stdout, _ := newTestApp()
	if err := app.runMetrics(context.Background(), nil); err != nil {
		t.Fatalf("runMetrics failed: %v", err)
	}
	if !strings.Contains(stdout.String(), string(model.MetricComplexity)) {
		t.Errorf("metrics output:\n%s", stdout.String())
	}
}
