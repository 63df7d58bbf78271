// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

const reportFileName = "report.json"

// ErrNoReport is returned by Load when no analysis has been saved yet.
var ErrNoReport = errors.New("no saved report, run analyze first")

type FileStorage struct{}

func NewFileStorage() *FileStorage {
	return &FileStorage{}
}

var _ ports.ReportStorage = (*FileStorage)(nil)

func ReportPath(root string) string {
	return filepath.Join(root, model.WorkspaceDir, reportFileName)
}

func (s *FileStorage) Save(ctx context.Context, root string, report *model.ProjectReport) error {
	_ = ctx

	dir := filepath.Join(root, model.WorkspaceDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	// The report only ever appears complete: temp file, then rename.
	tmp, err := os.CreateTemp(dir, reportFileName+".*")
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		tmp.Close()
		return fmt.Errorf("encode report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	if err := os.Rename(tmp.Name(), ReportPath(root)); err != nil {
		return fmt.Errorf("move report into place: %w", err)
	}
	return nil
}

func (s *FileStorage) Load(ctx context.Context, root string) (*model.ProjectReport, error) {
	_ = ctx

	f, err := os.Open(ReportPath(root))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoReport
	}
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	var report model.ProjectReport
	dec := json.NewDecoder(f)
	if err := dec.Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}
