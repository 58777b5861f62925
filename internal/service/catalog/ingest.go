package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/voyagewise-backend/internal/service/catalog/csvimport"
	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// Ingest parses a catalog CSV and stores every row in one transaction.
// Any malformed row rejects the whole upload.
func (s *Service) Ingest(ctx context.Context, r io.Reader) (int, error) {
	entries, err := csvimport.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("parse catalog csv: %w", err)
	}

	return s.IngestEntries(ctx, entries)
}

// IngestEntries stores already parsed entries in one transaction.
func (s *Service) IngestEntries(ctx context.Context, entries []domain.CatalogEntry) (int, error) {
	if len(entries) == 0 {
		return 0, domain.NewValidationError("file", "no rows to import")
	}
	if len(entries) > s.maxIngestRows {
		return 0, domain.NewValidationError("file", fmt.Sprintf("too many rows (max %d)", s.maxIngestRows))
	}

	var created int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.CreateBatch(txCtx, entries)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("store catalog entries: %w", err)
	}

	s.log.InfoContext(ctx, "catalog entries ingested", slog.Int("count", created))
	return created, nil
}
