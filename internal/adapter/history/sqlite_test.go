// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package history

import (
	"context"
	"testing"
	"time"

	"github.com/Luj8n/code-quality-analyzer/internal/domain/model"
)

func TestListWithoutDatabase(t *testing.T) {
	runs, err := NewSQLiteStore().List(context.Background(), t.TempDir(), 5)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %v", runs)
	}
}

func TestRecordAndList(t *testing.T) {
	root := t.TempDir()
	store := NewSQLiteStore()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"first", "second", "third"} {
		rec := model.RunRecord{
			ID:              id,
			RootPath:        root,
			GeneratedAt:     base.Add(time.Duration(i) * time.Minute),
			Files:           i + 1,
			Functions:       10 * (i + 1),
			MaxComplexity:   i,
			AvgComplexity:   0.5 * float64(i),
			NonCamelCasePct: 12.5,
			Warnings:        i,
		}
		if err := store.Record(ctx, root, rec); err != nil {
			t.Fatalf("Record(%s) failed: %v", id, err)
		}
	}

	runs, err := store.List(ctx, root, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "third" || runs[1].ID != "second" {
		t.Fatalf("unexpected order: %s, %s", runs[0].ID, runs[1].ID)
	}

	got := runs[0]
	if got.Files != 3 || got.Functions != 30 || got.MaxComplexity != 2 ||
		got.AvgComplexity != 1.0 || got.NonCamelCasePct != 12.5 || got.Warnings != 2 {
		t.Errorf("unexpected record: %+v", got)
	}
	if !got.GeneratedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("GeneratedAt = %v", got.GeneratedAt)
	}

	all, err := store.List(ctx, root, 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("default limit: %d runs, err %v", len(all), err)
	}
}

func TestRecordDuplicateID(t *testing.T) {
	root := t.TempDir()
	store := NewSQLiteStore()
	ctx := context.Background()
	rec := model.RunRecord{ID: "same", RootPath: root, GeneratedAt: time.Now()}

	if err := store.Record(ctx, root, rec); err != nil {
		t.Fatalf("first Record failed: %v", err)
	}
	if err := store.Record(ctx, root, rec); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
}
