// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

var _ ports.OutputRenderer = (*JSONRenderer)(nil)

func (r *JSONRenderer) Format() string {
	return "json"
}

func (r *JSONRenderer) Render(report *model.ProjectReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json report: %w", err)
	}
	return string(data) + "\n", nil
}
