// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
)

// HistoryFormats lists the formats RenderHistory understands.
var HistoryFormats = []string{"json", "table", "text", "yaml"}

// RenderHistory writes past runs to w. "text" and "table" are the same
// table layout.
func RenderHistory(w io.Writer, runs []model.RunRecord, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "table":
		if len(runs) == 0 {
			_, err := fmt.Fprintln(w, "No recorded runs.")
			return err
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Run", "Generated At", "Files", "Functions", "Max", "Avg", "Non-camelCase", "Warnings"})
		table.SetBorder(false)
		table.SetColumnSeparator("|")
		for _, r := range runs {
			table.Append([]string{
				r.ID,
				r.GeneratedAt.Format(time.RFC3339),
				fmt.Sprintf("%d", r.Files),
				fmt.Sprintf("%d", r.Functions),
				fmt.Sprintf("%d", r.MaxComplexity),
				fmt.Sprintf("%.2f", r.AvgComplexity),
				fmt.Sprintf("%.2f%%", r.NonCamelCasePct),
				fmt.Sprintf("%d", r.Warnings),
			})
		}
		table.Render()
		return nil
	case "json":
		if runs == nil {
			runs = []model.RunRecord{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(runs); err != nil {
			return fmt.Errorf("encode json history: %w", err)
		}
		return nil
	case "yaml":
		if runs == nil {
			runs = []model.RunRecord{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(runs); err != nil {
			return fmt.Errorf("encode yaml history: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
