package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

const loaderWait = 2 * time.Millisecond

// activityLoader batches activity lookups by trip block ID into a single
// repository call. It is built per operation, so its cache never outlives
// the transaction it reads from.
type activityLoader = dataloader.Loader[uuid.UUID, []domain.Activity]

// newActivityLoader creates a loader without a batch capacity: all keys of
// one LoadMany land in one batch. Batches are serialized because the
// underlying transaction serves one query at a time.
func newActivityLoader(repo activityRepo) *activityLoader {
	var mu sync.Mutex
	batchFn := func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Activity] {
		mu.Lock()
		defer mu.Unlock()

		activities, err := repo.ListByTripBlockIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Activity](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Activity, len(keys))
		for _, a := range activities {
			grouped[a.TripBlockID] = append(grouped[a.TripBlockID], a)
		}

		return mapResults(keys, grouped, emptySlice[domain.Activity])
	}

	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, []domain.Activity](loaderWait),
	)
}

// attachActivities fills Activities of every block, preserving block order.
func (s *Service) attachActivities(ctx context.Context, blocks []domain.TripBlock) error {
	if len(blocks) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}

	loader := newActivityLoader(s.activities)
	results, errs := loader.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("load activities: %w", err)
		}
	}

	for i := range blocks {
		blocks[i].Activities = results[i]
	}
	return nil
}

// ---------------------------------------------------------------------------
// Result helpers
// ---------------------------------------------------------------------------

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, empty func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, k := range keys {
		v, ok := grouped[k]
		if !ok {
			v = empty()
		}
		results[i] = &dataloader.Result[V]{Data: v}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
