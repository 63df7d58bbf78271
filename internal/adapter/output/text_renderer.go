// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"

	colMain   = "\033[38;5;223m"
	colMuted  = "\033[38;5;246m"
	colTitle  = "\033[38;5;142m"
	colAccent = "\033[38;5;208m"

	colGood   = "\033[38;5;108m"
	colWarn   = "\033[38;5;214m"
	colDanger = "\033[38;5;167m"

	colFunc = "\033[38;5;150m"
)

type TextRenderer struct {
	color bool
}

func NewTextRenderer(useColor bool) *TextRenderer {
	return &TextRenderer{color: useColor}
}

var _ ports.OutputRenderer = (*TextRenderer)(nil)

func (r *TextRenderer) Format() string {
	return "text"
}

func (r *TextRenderer) Render(report *model.ProjectReport) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.accent("Code Quality Report"))
	fmt.Fprintf(&b, "%s %s\n", r.label("Root:"), r.value(report.RootPath))
	if report.RunID != "" {
		fmt.Fprintf(&b, "%s %s\n", r.label("Run:"), r.value(report.RunID))
	}
	if !report.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "%s %s\n", r.label("Generated at:"), r.value(report.GeneratedAt.Format(time.RFC3339)))
	}
	fmt.Fprintf(&b, "%s %s\n", r.label("Files:"), r.value(fmt.Sprintf("%d", report.Project.TotalFiles)))

	b.WriteString("\n")

	if !report.HasFunctions() {
		fmt.Fprintf(&b, "%s\n", r.title("No functions found."))
		r.writeWarnings(&b, report.Warnings)
		return b.String(), nil
	}

	fmt.Fprintf(&b, "%s\n", r.title("Highest complexity scores:"))
	for _, fn := range report.TopFunctions {
		fmt.Fprintf(
			&b,
			"Score = %s, function = %s\n",
			r.score(fn.Complexity),
			r.paint(colFunc, fn.DisplayName()),
		)
	}
	if report.AllZeroComplexity() {
		fmt.Fprintf(&b, "%s\n", r.label("No function contains a branching keyword."))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", r.label("Total functions:"), r.value(fmt.Sprintf("%d", report.Project.TotalFunctions)))
	fmt.Fprintf(&b, "%s %s\n", r.label("Average complexity:"), r.value(fmt.Sprintf("%.2f", report.Project.AvgComplexity)))
	fmt.Fprintf(&b, "%s %s\n", r.label("Non-camelCase functions:"), r.pct(report.Project.NonCamelCasePct))

	r.writeWarnings(&b, report.Warnings)
	return b.String(), nil
}

func (r *TextRenderer) writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", r.title("Warnings:"))
	for _, w := range warnings {
		fmt.Fprintf(b, "%s %s\n", r.paint(colWarn, "-"), r.paint(colWarn, w))
	}
}

func (r *TextRenderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

func (r *TextRenderer) title(s string) string {
	return r.paint(ansiBold+colTitle, s)
}

func (r *TextRenderer) accent(s string) string {
	return r.paint(ansiBold+colAccent, s)
}

func (r *TextRenderer) label(s string) string {
	return r.paint(colMuted, s)
}

func (r *TextRenderer) value(s string) string {
	return r.paint(colMain, s)
}

func (r *TextRenderer) score(n int) string {
	s := fmt.Sprintf("%d", n)
	switch {
	case n <= 5:
		return r.paint(colGood, s)
	case n <= 10:
		return r.paint(colWarn, s)
	default:
		return r.paint(colDanger, s)
	}
}

func (r *TextRenderer) pct(p float64) string {
	s := fmt.Sprintf("%.2f%%", p)
	switch {
	case p < 10.0:
		return r.paint(colGood, s)
	case p < 30.0:
		return r.paint(colWarn, s)
	default:
		return r.paint(colDanger, s)
	}
}
