package repo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/repo"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerInsertRejectsDuplicateID(t *testing.T) {
	l := repo.NewMemoryOrderLedger()
	ctx := context.Background()

	require.NoError(t, l.Insert(ctx, entity.Order{ID: "1000", Item: "A"}))
	err := l.Insert(ctx, entity.Order{ID: "1000", Item: "B"})
	assert.ErrorIs(t, err, usecase.ErrIDConflict)

	kept, ok := l.Get(ctx, "1000")
	require.True(t, ok)
	assert.Equal(t, "A", kept.Item, "existing entry must not be overwritten")
}

func TestLedgerUpdateUnknownID(t *testing.T) {
	l := repo.NewMemoryOrderLedger()
	_, err := l.Update(context.Background(), "4040", func(o *entity.Order) error { return nil })
	assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
}

func TestLedgerUpdateMutationErrorDiscardsChange(t *testing.T) {
	l := repo.NewMemoryOrderLedger()
	ctx := context.Background()
	require.NoError(t, l.Insert(ctx, entity.Order{ID: "2000", Quantity: 1}))

	_, err := l.Update(ctx, "2000", func(o *entity.Order) error {
		o.Quantity = 99
		return usecase.ErrProductNotFound
	})
	assert.Error(t, err)

	o, _ := l.Get(ctx, "2000")
	assert.Equal(t, 1, o.Quantity, "failed mutation must not be applied")
}

func TestLedgerConcurrentUpdatesAreAtomic(t *testing.T) {
	l := repo.NewMemoryOrderLedger()
	ctx := context.Background()
	require.NoError(t, l.Insert(ctx, entity.Order{ID: "3000", Quantity: 0}))

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = l.Update(ctx, "3000", func(o *entity.Order) error {
				o.Quantity++
				return nil
			})
		}()
	}
	wg.Wait()

	o, _ := l.Get(ctx, "3000")
	assert.Equal(t, workers, o.Quantity, "read-modify-write must not lose updates")
}
