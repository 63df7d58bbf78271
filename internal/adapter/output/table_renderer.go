// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

// TableRenderer prints the project summary followed by one row per top
// function. Plain text, no colour.
type TableRenderer struct{}

func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

var _ ports.OutputRenderer = (*TableRenderer)(nil)

func (r *TableRenderer) Format() string {
	return "table"
}

func (r *TableRenderer) Render(report *model.ProjectReport) (string, error) {
	var b strings.Builder

	summary := tablewriter.NewWriter(&b)
	summary.SetHeader([]string{"Metric", "Value"})
	summary.SetBorder(false)
	summary.SetColumnSeparator("|")
	summary.Append([]string{"Root Directory", report.RootPath})
	summary.Append([]string{"Files", fmt.Sprintf("%d", report.Project.TotalFiles)})
	summary.Append([]string{"Functions", fmt.Sprintf("%d", report.Project.TotalFunctions)})
	summary.Append([]string{"Max Complexity", fmt.Sprintf("%d", report.Project.MaxComplexity)})
	summary.Append([]string{"Avg Complexity", fmt.Sprintf("%.2f", report.Project.AvgComplexity)})
	summary.Append([]string{"Non-camelCase", fmt.Sprintf("%.2f%%", report.Project.NonCamelCasePct)})
	summary.Render()

	if len(report.TopFunctions) > 0 {
		b.WriteString("\n")
		top := tablewriter.NewWriter(&b)
		top.SetHeader([]string{"#", "Function", "File", "Line", "Complexity", "camelCase"})
		top.SetBorder(false)
		top.SetColumnSeparator("|")
		for i, fn := range report.TopFunctions {
			top.Append([]string{
				fmt.Sprintf("%d", i+1),
				fn.Name,
				filepath.Base(fn.FilePath),
				fmt.Sprintf("%d", fn.Line),
				fmt.Sprintf("%d", fn.Complexity),
				yesNo(fn.CamelCase),
			})
		}
		top.Render()
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n")
		warn := tablewriter.NewWriter(&b)
		warn.SetHeader([]string{"Warning"})
		warn.SetBorder(false)
		warn.SetAutoWrapText(false)
		for _, w := range report.Warnings {
			warn.Append([]string{w})
		}
		warn.Render()
	}

	return b.String(), nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
