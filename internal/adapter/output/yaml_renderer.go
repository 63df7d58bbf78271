// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

type YAMLRenderer struct{}

func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

var _ ports.OutputRenderer = (*YAMLRenderer)(nil)

func (r *YAMLRenderer) Format() string {
	return "yaml"
}

func (r *YAMLRenderer) Render(report *model.ProjectReport) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return "", fmt.Errorf("encode yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("flush yaml report: %w", err)
	}
	return buf.String(), nil
}
