// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"fmt"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
	"github.com/Luj8n/code-quality-analyzer/internal/domain/ports"
)

type ListHistoryRequest struct {
	RootPath string
	Limit    int
}

type ListHistoryUseCase struct {
	history ports.HistoryStore
}

func NewListHistoryUseCase(history ports.HistoryStore) *ListHistoryUseCase {
	return &ListHistoryUseCase{history: history}
}

// Execute returns past runs, newest first.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, req ListHistoryRequest) ([]model.RunRecord, error) {
	if req.RootPath == "" {
		return nil, fmt.Errorf("root path is required")
	}
	runs, err := uc.history.List(ctx, req.RootPath, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return runs, nil
}
