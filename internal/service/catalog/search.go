package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// Search returns one page of catalog entries matching every supplied
// criterion. Count and page are read in one transaction.
func (s *Service) Search(ctx context.Context, input SearchInput) (domain.Page[domain.CatalogEntry], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.CatalogEntry]{}, err
	}

	filter := input.filter()
	req := input.pageRequest()

	var (
		items []domain.CatalogEntry
		total int
	)
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		items, total, err = s.repo.Search(txCtx, filter, req)
		return err
	})
	if err != nil {
		return domain.Page[domain.CatalogEntry]{}, fmt.Errorf("search catalog: %w", err)
	}

	return domain.NewPage(items, req, total), nil
}

// Recommend narrows the catalog by a single criterion: category, else
// location, else country, else popular=true. With none supplied it pages
// through the whole catalog.
func (s *Service) Recommend(ctx context.Context, input RecommendInput) (domain.Page[domain.CatalogEntry], error) {
	search := SearchInput{Page: input.Page, Size: input.Size}

	switch {
	case label(input.Category) != nil:
		search.Category = input.Category
	case label(input.Location) != nil:
		search.Location = input.Location
	case label(input.Country) != nil:
		search.Country = input.Country
	case input.Popular != nil && *input.Popular:
		search.Popular = input.Popular
	}

	return s.Search(ctx, search)
}
