package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

// FilterOptions returns the distinct values usable as filter criteria.
// The four lookups run concurrently.
func (s *Service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	var opts domain.FilterOptions

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.repo.DistinctCountries(gctx)
		if err != nil {
			return fmt.Errorf("countries: %w", err)
		}
		opts.Countries = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.DistinctLocations(gctx)
		if err != nil {
			return fmt.Errorf("locations: %w", err)
		}
		opts.Locations = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.DistinctCategories(gctx)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		opts.Categories = v
		return nil
	})
	g.Go(func() error {
		v, err := s.repo.DistinctTags(gctx)
		if err != nil {
			return fmt.Errorf("tags: %w", err)
		}
		opts.Tags = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("filter options: %w", err)
	}
	return &opts, nil
}

// Categories returns the distinct catalog categories in ascending order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return categories, nil
}

func (s *Service) CostRange(ctx context.Context) (domain.CostRange, error) {
	r, err := s.repo.CostRange(ctx)
	if err != nil {
		return domain.CostRange{}, fmt.Errorf("cost range: %w", err)
	}
	return r, nil
}

func (s *Service) DurationRange(ctx context.Context) (domain.DurationRange, error) {
	r, err := s.repo.DurationRange(ctx)
	if err != nil {
		return domain.DurationRange{}, fmt.Errorf("duration range: %w", err)
	}
	return r, nil
}

// FilterRanges returns cost and duration ranges, queried concurrently.
func (s *Service) FilterRanges(ctx context.Context) (*domain.FilterRanges, error) {
	var ranges domain.FilterRanges

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ranges.Cost, err = s.CostRange(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ranges.Duration, err = s.DurationRange(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ranges, nil
}
