package usecase

import (
	"context"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
)

// Catalog is the read-mostly product store. Lookup takes the canonical
// name form (entity.CanonicalName).
type Catalog interface {
	Lookup(name string) (entity.Product, bool)
	All() []entity.Product
	Categories() []string
}

// OrderLedger is the system of record for orders. Insert must reject an
// id that already exists so the generator can retry; Update runs mutate
// under the ledger's write lock, giving read-modify-write atomicity per
// order id.
type OrderLedger interface {
	Insert(ctx context.Context, o entity.Order) error
	Get(ctx context.Context, id string) (entity.Order, bool)
	Update(ctx context.Context, id string, mutate func(*entity.Order) error) (entity.Order, error)
}

// Notification is an outbound message for the external delivery channel.
type Notification struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// Notifier performs best-effort delivery. Errors are reported to the
// caller but must never abort the order operation that triggered them.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// StatusCache is an optional read-through cache for order status.
type StatusCache interface {
	SetStatus(ctx context.Context, orderID, status string) error
	GetStatus(ctx context.Context, orderID string) (string, bool, error)
}

// IdempotencyStore guards the direct order endpoint against duplicate
// submissions.
type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}
