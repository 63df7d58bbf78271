// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

var defaultCFamilyExtensions = []string{
	".java", ".c", ".h", ".cpp", ".hpp", ".cc", ".hh", ".cs", ".js", ".ts", ".kt", ".scala", ".go",
}

type CFamilyParser struct {
	extensions map[string]struct{}
}

// NewCFamilyParser accepts files with the given extensions, or the default
// C-family set when none are given.
func NewCFamilyParser(extensions ...string) *CFamilyParser {
	if len(extensions) == 0 {
		extensions = defaultCFamilyExtensions
	}
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}
	return &CFamilyParser{extensions: allowed}
}

var _ ports.CodeParser = (*CFamilyParser)(nil)

func (p *CFamilyParser) Name() string {
	return "c-family"
}

func (p *CFamilyParser) SupportsFile(path string) bool {
	_, ok := p.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (p *CFamilyParser) ParseFile(path string, src io.Reader) (*model.FileMetrics, error) {
	buf, err := TokenizeReader(path, src)
	if err != nil {
		return nil, err
	}

	functions, stats := ExtractWithStats(buf)

	fm := &model.FileMetrics{
		Path:                 path,
		Language:             model.LanguageFromPath(path),
		Tokens:               buf.Len(),
		UnresolvedCandidates: stats.Unresolved,
		Functions:            make([]model.FunctionMetrics, 0, len(functions)),
	}
	for _, fn := range functions {
		fm.Functions = append(fm.Functions, fn.Metrics())
	}
	fm.Summarize()

	return fm, nil
}
