package repository

import (
	"courseflow_backend/internal/model"
	"context"
	"testing"
	"time"
)

func sampleRecords() []model.ProgressRecord {
	return []model.ProgressRecord{
		{
			CourseID:         "course-1",
			CompletedLessons: []string{"l1", "l2"},
			QuizScores:       map[string]int{"l2": 85},
			LastAccessed:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			CourseID:          "course-2",
			CompletedLessons:  []string{},
			QuizScores:        map[string]int{},
			LastAccessed:      time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
			CertificateEarned: true,
		},
	}
}

func TestMemoryStoreReadMissingUser(t *testing.T) {
	store := NewMemoryProgressStore()

	records, err := store.ReadAll(context.Background(), 42)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty slice, got %v", records)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryProgressStore()
	ctx := context.Background()

	if err := store.WriteAll(ctx, 1, sampleRecords()); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}

	records, err := store.ReadAll(ctx, 1)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].CourseID != "course-1" || records[1].CourseID != "course-2" {
		t.Fatalf("order not preserved: %+v", records)
	}
	if !records[1].CertificateEarned {
		t.Fatal("certificate flag lost")
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	store := NewMemoryProgressStore()
	ctx := context.Background()

	original := sampleRecords()
	if err := store.WriteAll(ctx, 1, original); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}

	// 调用方修改自己的切片不得影响存储内容
	original[0].CompletedLessons[0] = "mutated"
	original[0].QuizScores["l2"] = 0

	records, err := store.ReadAll(ctx, 1)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if records[0].CompletedLessons[0] != "l1" {
		t.Fatal("store aliases the caller's lesson slice")
	}
	if records[0].QuizScores["l2"] != 85 {
		t.Fatal("store aliases the caller's score map")
	}

	// 读出来的副本同样不得影响存储内容
	records[0].CompletedLessons[0] = "mutated"
	again, _ := store.ReadAll(ctx, 1)
	if again[0].CompletedLessons[0] != "l1" {
		t.Fatal("store aliases the returned slice")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileProgressStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProgressStore returned error: %v", err)
	}
	ctx := context.Background()

	records, err := store.ReadAll(ctx, 1)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty slice for new user, got %v", records)
	}

	if err := store.WriteAll(ctx, 1, sampleRecords()); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}

	records, err = store.ReadAll(ctx, 1)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].QuizScores["l2"] != 85 {
		t.Fatalf("quiz score lost in round trip: %+v", records[0])
	}
	if !records[1].LastAccessed.Equal(time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("timestamp lost in round trip: %v", records[1].LastAccessed)
	}
}

func TestFileStoreSeparatesUsers(t *testing.T) {
	store, err := NewFileProgressStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProgressStore returned error: %v", err)
	}
	ctx := context.Background()

	if err := store.WriteAll(ctx, 1, sampleRecords()); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}

	records, err := store.ReadAll(ctx, 2)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("user 2 should be empty, got %v", records)
	}
}

func TestFileStoreOverwrites(t *testing.T) {
	store, err := NewFileProgressStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProgressStore returned error: %v", err)
	}
	ctx := context.Background()

	if err := store.WriteAll(ctx, 1, sampleRecords()); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}
	if err := store.WriteAll(ctx, 1, sampleRecords()[:1]); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}

	records, err := store.ReadAll(ctx, 1)
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("write must replace the whole collection, got %d records", len(records))
	}
}
