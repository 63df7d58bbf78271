// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
	"github.com/Luj8n/code-quality-analyzer/internal/logging"
)

// DefaultTopN is how many functions the report ranks by complexity.
const DefaultTopN = 3

var ErrNoSourceFiles = errors.New("no source files found")

type AnalyzeProjectRequest struct {
	RootPath   string
	IncludeExt []string
	TopN       int

	// SkipHistory leaves the run history untouched.
	SkipHistory bool
}

type AnalyzeProjectUseCase struct {
	scanner ports.SourceFileScanner
	reader  ports.FileReader
	parsers []ports.CodeParser
	storage ports.ReportStorage
	history ports.HistoryStore
	logger  *charmlog.Logger
	workers int
}

// NewAnalyzeProjectUseCase wires the analysis pipeline. history and logger
// may be nil.
func NewAnalyzeProjectUseCase(
	scanner ports.SourceFileScanner,
	reader ports.FileReader,
	parsers []ports.CodeParser,
	storage ports.ReportStorage,
	history ports.HistoryStore,
	logger *charmlog.Logger,
	workers int,
) *AnalyzeProjectUseCase {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AnalyzeProjectUseCase{
		scanner: scanner,
		reader:  reader,
		parsers: parsers,
		storage: storage,
		history: history,
		logger:  logger,
		workers: workers,
	}
}

type fileResult struct {
	path    string
	metrics *model.FileMetrics
	err     error
}

func (uc *AnalyzeProjectUseCase) Execute(ctx context.Context, req AnalyzeProjectRequest) (*model.ProjectReport, error) {
	if req.RootPath == "" {
		return nil, fmt.Errorf("root path is required")
	}
	workers := uc.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	filesList, err := uc.scanner.Scan(ctx, req.RootPath, req.IncludeExt)
	if err != nil {
		return nil, fmt.Errorf("scan source files: %w", err)
	}
	if len(filesList) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSourceFiles, req.RootPath)
	}
	uc.logger.Info("scanning files", "root", req.RootPath, "files", len(filesList), "workers", workers)

	jobs := make(chan string)
	results := make(chan fileResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				fm, err := uc.analyzeFile(path)
				if fm == nil && err == nil {
					continue
				}
				results <- fileResult{path: path, metrics: fm, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range filesList {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var (
		files    []model.FileMetrics
		warnings []string
	)
	for res := range results {
		if res.err != nil {
			warnings = append(warnings, uc.describeFailure(res.path, res.err))
			continue
		}
		files = append(files, *res.metrics)
		if res.metrics.UnresolvedCandidates > 0 {
			uc.logger.Debug("unbalanced brackets",
				"path", res.path,
				"kind", model.ErrorKindMalformedStructure,
				"candidates", res.metrics.UnresolvedCandidates,
			)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	sort.Strings(warnings)

	report := buildProjectReport(req.RootPath, files, warnings, req.TopN)
	uc.logger.Info("analysis complete",
		"run", report.RunID,
		"files", report.Project.TotalFiles,
		"functions", report.Project.TotalFunctions,
	)

	if uc.history != nil && !req.SkipHistory {
		if err := uc.history.Record(ctx, req.RootPath, model.RunRecordFromReport(report)); err != nil {
			uc.logger.Warn("history disabled for this run", "err", err)
			report.Warnings = append(report.Warnings, fmt.Sprintf("history: %v", err))
		}
	}

	if err := uc.storage.Save(ctx, req.RootPath, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	return report, nil
}

// analyzeFile returns nil, nil for files no parser accepts.
func (uc *AnalyzeProjectUseCase) analyzeFile(path string) (*model.FileMetrics, error) {
	parser := uc.selectParser(path)
	if parser == nil {
		uc.logger.Debug("no parser for file", "path", path)
		return nil, nil
	}

	src, err := uc.reader.Open(path)
	if err != nil {
		return nil, &model.ReadError{Path: path, Err: err}
	}
	defer src.Close()

	fm, err := parser.ParseFile(path, src)
	if err != nil {
		return nil, err
	}
	return fm, nil
}

func (uc *AnalyzeProjectUseCase) describeFailure(path string, err error) string {
	var readErr *model.ReadError
	if errors.As(err, &readErr) {
		uc.logger.Warn("skipping unreadable file", "path", path, "kind", readErr.Kind(), "err", readErr.Err)
		return readErr.Error()
	}
	uc.logger.Warn("skipping file", "path", path, "err", err)
	return fmt.Sprintf("parse %s: %v", path, err)
}

func (uc *AnalyzeProjectUseCase) selectParser(path string) ports.CodeParser {
	for _, p := range uc.parsers {
		if p.SupportsFile(path) {
			return p
		}
	}
	return nil
}

// buildProjectReport expects files sorted by path. Functions keep their
// source order within each file, so the ranking below is stable in
// encounter order.
func buildProjectReport(root string, files []model.FileMetrics, warnings []string, topN int) *model.ProjectReport {
	if topN <= 0 {
		topN = DefaultTopN
	}

	var proj model.ProjectMetrics
	proj.TotalFiles = len(files)

	var all []model.FunctionMetrics
	for _, f := range files {
		proj.TotalFunctions += f.Summary.FunctionsCount
		proj.TotalComplexity += f.Summary.ComplexityTotal
		proj.NonCamelCaseFunctions += f.Summary.NonCamelCase
		if f.Summary.ComplexityMax > proj.MaxComplexity {
			proj.MaxComplexity = f.Summary.ComplexityMax
		}
		for _, fn := range f.Functions {
			if fn.Complexity == 0 {
				proj.ZeroComplexityFunctions++
			}
			all = append(all, fn)
		}
	}

	if proj.TotalFunctions > 0 {
		proj.AvgComplexity = float64(proj.TotalComplexity) / float64(proj.TotalFunctions)
		proj.NonCamelCasePct = 100 * float64(proj.NonCamelCaseFunctions) / float64(proj.TotalFunctions)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Complexity > all[j].Complexity
	})
	if len(all) > topN {
		all = all[:topN]
	}

	return &model.ProjectReport{
		RunID:          uuid.NewString(),
		RootPath:       root,
		GeneratedAt:    time.Now().UTC(),
		Files:          files,
		Project:        proj,
		TopFunctions:   all,
		MetricMetadata: model.AllMetricSummaries(),
		Warnings:       warnings,
	}
}
