package repo

import (
	"context"
	"sync"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
)

// MemoryOrderLedger is the in-process system of record for orders.
// Records are never deleted; cancellation only flips the status field.
// Update runs its mutation under the write lock, so read-modify-write on
// a single order id is atomic with respect to concurrent requests.
type MemoryOrderLedger struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
}

func NewMemoryOrderLedger() *MemoryOrderLedger {
	return &MemoryOrderLedger{orders: make(map[string]entity.Order)}
}

func (l *MemoryOrderLedger) Insert(_ context.Context, o entity.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.orders[o.ID]; exists {
		return usecase.ErrIDConflict
	}
	l.orders[o.ID] = o
	return nil
}

func (l *MemoryOrderLedger) Get(_ context.Context, id string) (entity.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	o, ok := l.orders[id]
	return o, ok
}

func (l *MemoryOrderLedger) Update(_ context.Context, id string, mutate func(*entity.Order) error) (entity.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.orders[id]
	if !ok {
		return entity.Order{}, usecase.ErrOrderNotFound
	}
	if err := mutate(&o); err != nil {
		return entity.Order{}, err
	}
	l.orders[id] = o
	return o, nil
}

// Len reports the number of ledger entries (used by tests and /healthz).
func (l *MemoryOrderLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

var _ usecase.OrderLedger = (*MemoryOrderLedger)(nil)
