// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

var skippedDirs = map[string]struct{}{
	".git":             {},
	".hg":              {},
	".svn":             {},
	"vendor":           {},
	"node_modules":     {},
	model.WorkspaceDir: {},
}

type FSScanner struct{}

func NewFSScanner() *FSScanner {
	return &FSScanner{}
}

var _ ports.SourceFileScanner = (*FSScanner)(nil)
var _ ports.FileReader = (*FSScanner)(nil)

// Scan returns the matching regular files under root in lexical order.
func (s *FSScanner) Scan(ctx context.Context, root string, includeExt []string) ([]string, error) {
	var files []string

	allowed := make(map[string]struct{}, len(includeExt))
	for _, e := range includeExt {
		allowed[strings.ToLower(e)] = struct{}{}
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skippedDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if len(allowed) > 0 {
			if _, ok := allowed[ext]; !ok {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	sort.Strings(files)
	return files, err
}

func (s *FSScanner) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
