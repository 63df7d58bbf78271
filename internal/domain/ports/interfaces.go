// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package ports

import (
	"context"
	"io"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
)

type SourceFileScanner interface {
	Scan(ctx context.Context, root string, includeExt []string) ([]string, error)
}

type FileReader interface {
	Open(path string) (io.ReadCloser, error)
}

// CodeParser turns one source file into metrics. A failure to read src is
// returned as *model.ReadError.
type CodeParser interface {
	Name() string
	SupportsFile(path string) bool
	ParseFile(path string, src io.Reader) (*model.FileMetrics, error)
}

type ReportStorage interface {
	Save(ctx context.Context, root string, report *model.ProjectReport) error
	Load(ctx context.Context, root string) (*model.ProjectReport, error)
}

type HistoryStore interface {
	Record(ctx context.Context, root string, run model.RunRecord) error
	List(ctx context.Context, root string, limit int) ([]model.RunRecord, error)
}

type OutputRenderer interface {
	Format() string
	Render(report *model.ProjectReport) (string, error)
}

type RendererRegistry interface {
	Get(format string) (OutputRenderer, bool)
	List() []OutputRenderer
}
