package repo

import (
	"context"
	"testing"

	"github.com/tbourn/go-ecli-dashboard/internal/domain"
)

func TestLatestSnapshot_EmptyTableIsNotAnError(t *testing.T) {
	db := newRepoDB(t, &domain.CorpusStats{})

	s, err := LatestSnapshot(context.Background(), db)
	if err != nil || s != nil {
		t.Fatalf("empty table should yield (nil, nil), got s=%+v err=%v", s, err)
	}
}

func TestLatestSnapshot_Error_NoTable(t *testing.T) {
	db := newRepoDB(t /* no migrations */)

	if _, err := LatestSnapshot(context.Background(), db); err == nil {
		t.Fatalf("expected error reading without table")
	}
}

func TestInsertSnapshot_LatestWins(t *testing.T) {
	db := newRepoDB(t, &domain.CorpusStats{})
	ctx := context.Background()

	first := &domain.CorpusStats{
		TotalDocuments: 1,
		Courts:         `{"STJ":1}`,
		Years:          `{"2023":1}`,
		GeneratedAt:    "2025-01-01T00:00:00Z",
	}
	second := &domain.CorpusStats{
		TotalDocuments: 2,
		TotalPages:     40,
		TotalSizeBytes: 2048,
		Courts:         `{"STJ":1,"TRL":1}`,
		Years:          `{"2023":2}`,
		GeneratedAt:    "2025-01-02T00:00:00Z",
	}
	if err := InsertSnapshot(ctx, db, first); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	if err := InsertSnapshot(ctx, db, second); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	got, err := LatestSnapshot(ctx, db)
	if err != nil {
		t.Fatalf("LatestSnapshot: %v", err)
	}
	if got == nil || got.TotalDocuments != 2 || got.GeneratedAt != "2025-01-02T00:00:00Z" {
		t.Fatalf("latest snapshot mismatch: %+v", got)
	}

	courts, ok := got.ParseCourts()
	if !ok || courts["TRL"] != 1 {
		t.Fatalf("courts blob did not round-trip: %#v ok=%v", courts, ok)
	}
}
