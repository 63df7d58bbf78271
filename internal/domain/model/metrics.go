// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import (
	"path/filepath"
	"strings"
	"time"
)

// WorkspaceDir is created under the analyzed root to hold the last report
// and the run history.
const WorkspaceDir = ".cqa"

type Language string

const (
	LanguageUnknown    Language = "unknown"
	LanguageJava       Language = "java"
	LanguageC          Language = "c"
	LanguageCpp        Language = "cpp"
	LanguageCSharp     Language = "csharp"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageKotlin     Language = "kotlin"
	LanguageScala      Language = "scala"
	LanguageGo         Language = "go"
)

func LanguageFromPath(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java":
		return LanguageJava
	case ".c", ".h":
		return LanguageC
	case ".cpp", ".hpp", ".cc", ".hh", ".cxx":
		return LanguageCpp
	case ".cs":
		return LanguageCSharp
	case ".js", ".mjs", ".cjs", ".jsx":
		return LanguageJavaScript
	case ".ts", ".tsx":
		return LanguageTypeScript
	case ".kt", ".kts":
		return LanguageKotlin
	case ".scala":
		return LanguageScala
	case ".go":
		return LanguageGo
	default:
		return LanguageUnknown
	}
}

type MetricID string

const (
	MetricComplexity      MetricID = "complexity.branching"
	MetricCamelCase       MetricID = "naming.camel_case"
	MetricFunctionCount   MetricID = "size.functions"
	MetricParameterTokens MetricID = "size.parameter_tokens"
	MetricBodyTokens      MetricID = "size.body_tokens"
)

type FunctionMetrics struct {
	Name            string   `json:"name" yaml:"name"`
	FilePath        string   `json:"filePath" yaml:"filePath"`
	Language        Language `json:"language" yaml:"language"`
	Line            int      `json:"line" yaml:"line"`
	Complexity      int      `json:"complexity" yaml:"complexity"`
	CamelCase       bool     `json:"camelCase" yaml:"camelCase"`
	ParameterTokens int      `json:"parameterTokens" yaml:"parameterTokens"`
	BodyTokens      int      `json:"bodyTokens" yaml:"bodyTokens"`
}

// DisplayName formats the function as name(file:line).
func (m FunctionMetrics) DisplayName() string {
	return displayName(m.Name, m.FilePath, m.Line)
}

type FileSummaryMetrics struct {
	FunctionsCount  int     `json:"functionsCount" yaml:"functionsCount"`
	ComplexityTotal int     `json:"complexityTotal" yaml:"complexityTotal"`
	ComplexityMax   int     `json:"complexityMax" yaml:"complexityMax"`
	ComplexityAvg   float64 `json:"complexityAvg" yaml:"complexityAvg"`
	NonCamelCase    int     `json:"nonCamelCase" yaml:"nonCamelCase"`
}

type FileMetrics struct {
	Path     string   `json:"path" yaml:"path"`
	Language Language `json:"language" yaml:"language"`
	Tokens   int      `json:"tokens" yaml:"tokens"`

	// UnresolvedCandidates counts candidates dropped because a bracket
	// scan ran off the end of the file.
	UnresolvedCandidates int `json:"unresolvedCandidates" yaml:"unresolvedCandidates"`

	Summary   FileSummaryMetrics `json:"summary" yaml:"summary"`
	Functions []FunctionMetrics  `json:"functions" yaml:"functions"`
}

// Summarize recomputes Summary from Functions.
func (fm *FileMetrics) Summarize() {
	s := FileSummaryMetrics{FunctionsCount: len(fm.Functions)}
	for _, fn := range fm.Functions {
		s.ComplexityTotal += fn.Complexity
		if fn.Complexity > s.ComplexityMax {
			s.ComplexityMax = fn.Complexity
		}
		if !fn.CamelCase {
			s.NonCamelCase++
		}
	}
	if s.FunctionsCount > 0 {
		s.ComplexityAvg = float64(s.ComplexityTotal) / float64(s.FunctionsCount)
	}
	fm.Summary = s
}

type ProjectMetrics struct {
	TotalFiles              int     `json:"totalFiles" yaml:"totalFiles"`
	TotalFunctions          int     `json:"totalFunctions" yaml:"totalFunctions"`
	TotalComplexity         int     `json:"totalComplexity" yaml:"totalComplexity"`
	MaxComplexity           int     `json:"maxComplexity" yaml:"maxComplexity"`
	AvgComplexity           float64 `json:"avgComplexity" yaml:"avgComplexity"`
	ZeroComplexityFunctions int     `json:"zeroComplexityFunctions" yaml:"zeroComplexityFunctions"`
	NonCamelCaseFunctions   int     `json:"nonCamelCaseFunctions" yaml:"nonCamelCaseFunctions"`

	// NonCamelCasePct is a percentage in [0, 100].
	NonCamelCasePct float64 `json:"nonCamelCasePct" yaml:"nonCamelCasePct"`
}

type MetricSummary struct {
	ID          MetricID `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Group       string   `json:"group" yaml:"group"`
}

type ProjectReport struct {
	RunID          string            `json:"runId" yaml:"runId"`
	RootPath       string            `json:"rootPath" yaml:"rootPath"`
	GeneratedAt    time.Time         `json:"generatedAt" yaml:"generatedAt"`
	Files          []FileMetrics     `json:"files" yaml:"files"`
	Project        ProjectMetrics    `json:"project" yaml:"project"`
	TopFunctions   []FunctionMetrics `json:"topFunctions" yaml:"topFunctions"`
	MetricMetadata []MetricSummary   `json:"metricMetadata" yaml:"metricMetadata"`
	Warnings       []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (r *ProjectReport) HasFunctions() bool {
	return r.Project.TotalFunctions > 0
}

// AllZeroComplexity is true when functions were found but none of them
// contains a branching keyword.
func (r *ProjectReport) AllZeroComplexity() bool {
	return r.HasFunctions() && r.Project.ZeroComplexityFunctions == r.Project.TotalFunctions
}

// RunRecord is one row of the run history.
type RunRecord struct {
	ID              string    `json:"id" yaml:"id"`
	RootPath        string    `json:"rootPath" yaml:"rootPath"`
	GeneratedAt     time.Time `json:"generatedAt" yaml:"generatedAt"`
	Files           int       `json:"files" yaml:"files"`
	Functions       int       `json:"functions" yaml:"functions"`
	MaxComplexity   int       `json:"maxComplexity" yaml:"maxComplexity"`
	AvgComplexity   float64   `json:"avgComplexity" yaml:"avgComplexity"`
	NonCamelCasePct float64   `json:"nonCamelCasePct" yaml:"nonCamelCasePct"`
	Warnings        int       `json:"warnings" yaml:"warnings"`
}

func RunRecordFromReport(r *ProjectReport) RunRecord {
	return RunRecord{
		ID:              r.RunID,
		RootPath:        r.RootPath,
		GeneratedAt:     r.GeneratedAt,
		Files:           r.Project.TotalFiles,
		Functions:       r.Project.TotalFunctions,
		MaxComplexity:   r.Project.MaxComplexity,
		AvgComplexity:   r.Project.AvgComplexity,
		NonCamelCasePct: r.Project.NonCamelCasePct,
		Warnings:        len(r.Warnings),
	}
}

func AllMetricSummaries() []MetricSummary {
	return []MetricSummary{
		{
			ID:          MetricComplexity,
			Name:        "Branching Complexity",
			Description: "Count of if/switch/for/while keywords in a function body.",
			Group:       "complexity",
		},
		{
			ID:          MetricCamelCase,
			Name:        "camelCase Naming",
			Description: "Whether the function name is lowerCamelCase.",
			Group:       "naming",
		},
		{
			ID:          MetricFunctionCount,
			Name:        "Function Count",
			Description: "Functions found by the heuristic extractor.",
			Group:       "size",
		},
		{
			ID:          MetricParameterTokens,
			Name:        "Parameter Tokens",
			Description: "Tokens between the parameter-list parentheses.",
			Group:       "size",
		},
		{
			ID:          MetricBodyTokens,
			Name:        "Body Tokens",
			Description: "Tokens between the body braces.",
			Group:       "size",
		},
	}
}
