package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-ecli-dashboard/internal/domain"
	"github.com/tbourn/go-ecli-dashboard/internal/repo"
)

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("svc_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seedCorpusDoc inserts a document with an optional metrics row (pages < 0
// means no metrics). pdfMeta is stored verbatim on the metrics row.
func seedCorpusDoc(t *testing.T, db *gorm.DB, ecli, court, year, added string, pages int, pdfMeta string) domain.Document {
	t.Helper()

	doc := domain.Document{ECLIID: ecli, Court: court, Year: year, AddedDate: added, LastUpdated: added}
	if err := db.Create(&doc).Error; err != nil {
		t.Fatalf("seed document %s: %v", ecli, err)
	}
	if pages >= 0 {
		m := domain.DocumentMetrics{
			DocumentID:   doc.ID,
			PageCount:    pages,
			FileSize:     int64(pages) * 1024,
			DocumentDate: added,
			Language:     "Portuguese",
			Judge:        "A. Silva",
			PDFMetadata:  pdfMeta,
		}
		if err := db.Create(&m).Error; err != nil {
			t.Fatalf("seed metrics for %s: %v", ecli, err)
		}
	}
	return doc
}

func TestStatsService_Compute_TotalsAndBuckets(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()

	seedCorpusDoc(t, db, "e1", "STJ", "2023", "2025-01-01T10:00:00Z", 10, "")
	seedCorpusDoc(t, db, "e2", "STJ", "2024", "2025-01-02T10:00:00Z", 5, "")
	seedCorpusDoc(t, db, "e3", "", "", "2025-01-03T10:00:00Z", -1, "")

	s := &StatsService{DB: db}
	view, err := s.Compute(ctx)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if view.TotalDocuments != 3 || view.TotalPages != 15 || view.TotalSizeBytes != 15*1024 {
		t.Fatalf("totals unexpected: %+v", view)
	}
	if view.Courts["STJ"] != 2 || view.Courts[domain.UnknownBucket] != 1 {
		t.Fatalf("courts unexpected: %#v", view.Courts)
	}
	if view.Years["2023"] != 1 || view.Years["2024"] != 1 || view.Years[domain.UnknownBucket] != 1 {
		t.Fatalf("years unexpected: %#v", view.Years)
	}
	if sumCounts(view.Courts) != view.TotalDocuments || sumCounts(view.Years) != view.TotalDocuments {
		t.Fatalf("bucket counts must sum to the total: %+v", view)
	}
	if _, err := time.Parse(time.RFC3339, view.GeneratedAt); err != nil {
		t.Fatalf("GeneratedAt not RFC3339: %q", view.GeneratedAt)
	}
}

func TestStatsService_Corpus_ServesConsistentSnapshot(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()

	seedCorpusDoc(t, db, "e1", "STJ", "2023", "2025-01-01T10:00:00Z", 10, "")

	// A consistent snapshot that deliberately disagrees with the live store,
	// so we can tell which path served the response.
	snap := &domain.CorpusStats{
		TotalDocuments: 7,
		TotalPages:     70,
		TotalSizeBytes: 7000,
		Courts:         `{"STJ":4,"TRL":3}`,
		Years:          `{"2023":7}`,
		GeneratedAt:    "2025-06-01T00:00:00Z",
	}
	if err := repo.InsertSnapshot(ctx, db, snap); err != nil {
		t.Fatalf("insert snapshot: %v", err)
	}

	s := &StatsService{DB: db, FromSnapshot: true}
	view, err := s.Corpus(ctx)
	if err != nil {
		t.Fatalf("Corpus: %v", err)
	}
	if view.TotalDocuments != 7 || view.GeneratedAt != "2025-06-01T00:00:00Z" || view.Courts["TRL"] != 3 {
		t.Fatalf("expected the snapshot to be served, got %+v", view)
	}
}

func TestStatsService_Corpus_FallsBackOnBadSnapshot(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		snap domain.CorpusStats
	}{
		{"inconsistent courts", domain.CorpusStats{
			TotalDocuments: 5, Courts: `{"STJ":1}`, Years: `{"2023":5}`, GeneratedAt: "2025-06-01T00:00:00Z",
		}},
		{"inconsistent years", domain.CorpusStats{
			TotalDocuments: 5, Courts: `{"STJ":5}`, Years: `{"2023":1}`, GeneratedAt: "2025-06-01T00:00:00Z",
		}},
		{"malformed courts blob", domain.CorpusStats{
			TotalDocuments: 5, Courts: `{not json`, Years: `{"2023":5}`, GeneratedAt: "2025-06-01T00:00:00Z",
		}},
		{"empty blobs", domain.CorpusStats{
			TotalDocuments: 5, GeneratedAt: "2025-06-01T00:00:00Z",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newServiceDB(t)
			seedCorpusDoc(t, db, "e1", "STJ", "2023", "2025-01-01T10:00:00Z", 10, "")

			snap := tc.snap
			if err := repo.InsertSnapshot(ctx, db, &snap); err != nil {
				t.Fatalf("insert snapshot: %v", err)
			}

			s := &StatsService{DB: db, FromSnapshot: true}
			view, err := s.Corpus(ctx)
			if err != nil {
				t.Fatalf("Corpus: %v", err)
			}
			// Live recompute sees the single seeded document.
			if view.TotalDocuments != 1 || view.Courts["STJ"] != 1 {
				t.Fatalf("expected live fallback, got %+v", view)
			}
		})
	}
}

func TestStatsService_Corpus_SnapshotDisabledRecomputesLive(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()

	seedCorpusDoc(t, db, "e1", "STJ", "2023", "2025-01-01T10:00:00Z", 10, "")
	snap := &domain.CorpusStats{
		TotalDocuments: 7, Courts: `{"STJ":7}`, Years: `{"2023":7}`, GeneratedAt: "2025-06-01T00:00:00Z",
	}
	if err := repo.InsertSnapshot(ctx, db, snap); err != nil {
		t.Fatalf("insert snapshot: %v", err)
	}

	s := &StatsService{DB: db, FromSnapshot: false}
	view, err := s.Corpus(ctx)
	if err != nil {
		t.Fatalf("Corpus: %v", err)
	}
	if view.TotalDocuments != 1 {
		t.Fatalf("FromSnapshot=false must recompute live, got %+v", view)
	}
}

func TestStatsService_Materialize_AppendsServableSnapshot(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()

	seedCorpusDoc(t, db, "e1", "STJ", "2023", "2025-01-01T10:00:00Z", 10, "")
	seedCorpusDoc(t, db, "e2", "TRL", "2024", "2025-01-02T10:00:00Z", 2, "")

	s := &StatsService{DB: db, FromSnapshot: true}
	view, err := s.Materialize(ctx)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if view.TotalDocuments != 2 || view.TotalPages != 12 {
		t.Fatalf("materialized view unexpected: %+v", view)
	}

	row, err := repo.LatestSnapshot(ctx, db)
	if err != nil || row == nil {
		t.Fatalf("snapshot row missing: row=%+v err=%v", row, err)
	}

	// The appended snapshot must pass the consistency check and be served.
	served, err := s.Corpus(ctx)
	if err != nil {
		t.Fatalf("Corpus after Materialize: %v", err)
	}
	if served.GeneratedAt != view.GeneratedAt || served.TotalDocuments != 2 {
		t.Fatalf("materialized snapshot not served: %+v vs %+v", served, view)
	}
}
