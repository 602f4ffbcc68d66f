// Command seed initializes the corpus database: it creates the schema,
// populates a sample corpus when the documents table is empty, and appends a
// fresh corpus_stats snapshot.
//
// Re-running against a populated database only refreshes the snapshot, unless
// SEED_FORCE is truthy, in which case the sample corpus is inserted anyway
// (existing ECLI identifiers cause a constraint failure, so force-seeding is
// meant for empty-but-previously-used files).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-ecli-dashboard/internal/config"
	"github.com/tbourn/go-ecli-dashboard/internal/domain"
	"github.com/tbourn/go-ecli-dashboard/internal/repo"
	"github.com/tbourn/go-ecli-dashboard/internal/services"
	"github.com/tbourn/go-ecli-dashboard/internal/sysutil"
)

// Sample corpus shape: five decisions for each court, years cycled from a
// fixed list so the distributions are uneven but deterministic.
var (
	sampleCourts = []string{"STJ", "TRL", "TRP", "TRC", "TRE", "TRG", "STA", "TCA", "TCN", "TCS"}
	sampleYears  = []string{"1966", "1991", "1998", "2000", "2008", "2011", "2012", "2018", "2020", "2022", "2023", "2024", "2025"}
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx := context.Background()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("database open failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	count, err := repo.CountDocuments(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("document count failed")
	}

	switch {
	case count == 0:
		if err := insertSampleCorpus(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("sample corpus insert failed")
		}
	case sysutil.IsTruthy(os.Getenv("SEED_FORCE")):
		log.Warn().Int64("documents", count).Msg("SEED_FORCE set; inserting sample corpus into populated database")
		if err := insertSampleCorpus(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("sample corpus insert failed")
		}
	default:
		log.Info().Int64("documents", count).Msg("database already populated; skipping sample corpus")
	}

	stats := &services.StatsService{DB: db}
	view, err := stats.Materialize(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("stats snapshot failed")
	}

	log.Info().
		Str("db_path", cfg.DBPath).
		Int64("total_documents", view.TotalDocuments).
		Int64("total_pages", view.TotalPages).
		Int64("total_size_bytes", view.TotalSizeBytes).
		Int("courts", len(view.Courts)).
		Int("years", len(view.Years)).
		Msg("seed complete")
}

// insertSampleCorpus writes the deterministic sample corpus: documents plus a
// metrics row per document, all inside one transaction.
func insertSampleCorpus(ctx context.Context, db *gorm.DB) error {
	now := time.Now().UTC().Format(time.RFC3339)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inserted := 0
		for _, court := range sampleCourts {
			for i := 1; i <= 5; i++ {
				year := sampleYears[i%len(sampleYears)]
				caseNumber := fmt.Sprintf("%06d", i)
				ecliID := fmt.Sprintf("ECLI_PT_%s_%s_%s", court, year, caseNumber)

				doc := domain.Document{
					ECLIID:      ecliID,
					Court:       court,
					Year:        year,
					CaseNumber:  caseNumber,
					FilePath:    fmt.Sprintf("examples/sample_documents/%s.pdf", ecliID),
					AddedDate:   now,
					LastUpdated: now,
				}
				if err := tx.Create(&doc).Error; err != nil {
					return err
				}

				pageCount := (i % 30) + 1
				fileSize := int64(pageCount) * 50 * 1024

				meta, err := json.Marshal(domain.PDFMetadata{
					Creator:      "TCPDF 6.4.2",
					Producer:     "TCPDF 6.4.2 (http://www.tcpdf.org)",
					Title:        ecliID,
					Author:       "Portuguese Judicial System",
					CreationDate: now,
					ModDate:      now,
				})
				if err != nil {
					return err
				}

				metrics := domain.DocumentMetrics{
					DocumentID:   doc.ID,
					PageCount:    pageCount,
					FileSize:     fileSize,
					DocumentDate: now,
					Language:     "Portuguese",
					Judge:        "N° do Documento",
					PDFMetadata:  string(meta),
				}
				if err := tx.Create(&metrics).Error; err != nil {
					return err
				}
				inserted++
			}
		}
		log.Info().Int("documents", inserted).Msg("sample corpus inserted")
		return nil
	})
}
