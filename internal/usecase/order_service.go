package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/observ"
)

const (
	orderIDMin = 1000
	orderIDMax = 9999

	etaMinDays = 2
	etaMaxDays = 7

	// attempts before giving up on a free id in the numeric range
	idAllocAttempts = 32
)

type PlaceOrderInput struct {
	Item        string
	PhoneNumber string
	Address     string
	Quantity    int // 0 means default of 1
}

type UpdateOrderInput struct {
	OrderID  string
	Item     *string
	Quantity *int
}

// OrderResult is the structured outcome of an order operation. Message is
// always set, success or failure, so the router can fold it straight into
// the conversation. Suggestions accompany ErrProductNotFound on placement.
type OrderResult struct {
	OrderID     string
	Message     string
	Order       *entity.Order
	Suggestions []string
}

// OrderService owns the order lifecycle over the catalog and ledger.
type OrderService struct {
	catalog Catalog
	ledger  OrderLedger
	notify  Notifier
	cache   StatusCache // optional
	owner   string      // shop owner's phone, destination for update notices
	log     *slog.Logger

	notifyTimeout time.Duration
	randInt       func(lo, hi int) int // inclusive range
}

type ServiceOption func(*OrderService)

func WithStatusCache(c StatusCache) ServiceOption    { return func(s *OrderService) { s.cache = c } }
func WithOwnerPhone(p string) ServiceOption          { return func(s *OrderService) { s.owner = p } }
func WithLogger(l *slog.Logger) ServiceOption        { return func(s *OrderService) { s.log = l } }
func WithNotifyTimeout(d time.Duration) ServiceOption {
	return func(s *OrderService) { s.notifyTimeout = d }
}

// WithRandInt overrides the random source (deterministic ids/ETAs in tests).
func WithRandInt(f func(lo, hi int) int) ServiceOption {
	return func(s *OrderService) { s.randInt = f }
}

func NewOrderService(catalog Catalog, ledger OrderLedger, notify Notifier, opts ...ServiceOption) *OrderService {
	s := &OrderService{
		catalog:       catalog,
		ledger:        ledger,
		notify:        notify,
		log:           logging.New("order-service"),
		notifyTimeout: 5 * time.Second,
		randInt: func(lo, hi int) int {
			return lo + rand.IntN(hi-lo+1)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder validates the item against the catalog, allocates an id,
// inserts the order and sends a best-effort confirmation notification.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderResult, error) {
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	name := entity.CanonicalName(in.Item)
	p, ok := s.catalog.Lookup(name)
	if !ok {
		sugg := s.suggest(name)
		if len(sugg) > 0 {
			return OrderResult{
				Message:     fmt.Sprintf("❓ '%s' not found. Did you mean: %s?", in.Item, strings.Join(sugg, ", ")),
				Suggestions: sugg,
			}, ErrProductNotFound
		}
		return OrderResult{
			Message: fmt.Sprintf("❌ Product '%s' not available.", in.Item),
		}, ErrProductNotFound
	}

	o := entity.Order{
		Item:        p.Name,
		Quantity:    in.Quantity,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Price:       p.Price * float64(in.Quantity),
		Status:      entity.StatusPending,
		ETA:         s.rollETA(),
	}
	if err := o.Validate(); err != nil {
		return OrderResult{Message: err.Error()}, err
	}

	if err := s.insertWithFreshID(ctx, &o); err != nil {
		return OrderResult{Message: "could not place order, please try again"}, err
	}

	s.cacheStatus(ctx, o.ID, o.Status)
	s.deliver(ctx, Notification{To: waAddress(o.PhoneNumber), Body: confirmationBody(o)})
	observ.OrdersPlaced.Inc()

	return OrderResult{
		OrderID: o.ID,
		Message: fmt.Sprintf("✅ Order placed: %d x %s for $%.2f. WhatsApp notification sent!", o.Quantity, o.Item, o.Price),
		Order:   &o,
	}, nil
}

// UpdateOrder rewrites item and/or quantity on an existing order,
// recomputes the price from the current unit price and re-rolls the ETA.
// A nil quantity means "leave unchanged"; zero or negative is rejected.
func (s *OrderService) UpdateOrder(ctx context.Context, in UpdateOrderInput) (OrderResult, error) {
	if in.Quantity != nil && *in.Quantity <= 0 {
		return OrderResult{Message: entity.ErrInvalidQuantity.Error()}, entity.ErrInvalidQuantity
	}

	var newItem *entity.Product
	if in.Item != nil {
		p, ok := s.catalog.Lookup(entity.CanonicalName(*in.Item))
		if !ok {
			return OrderResult{
				Message: fmt.Sprintf("❌ Product '%s' not available.", *in.Item),
			}, ErrProductNotFound
		}
		newItem = &p
	}

	o, err := s.ledger.Update(ctx, in.OrderID, func(o *entity.Order) error {
		if newItem != nil {
			o.Item = newItem.Name
		}
		if in.Quantity != nil {
			o.Quantity = *in.Quantity
		}
		unit, ok := s.catalog.Lookup(o.Item)
		if !ok {
			return ErrProductNotFound
		}
		o.Price = unit.Price * float64(o.Quantity)
		o.ETA = s.rollETA()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return OrderResult{
				Message: fmt.Sprintf("❌ Order ID %s not found.", in.OrderID),
			}, ErrOrderNotFound
		}
		return OrderResult{Message: "could not update order"}, err
	}

	if s.owner != "" {
		s.deliver(ctx, Notification{To: waAddress(s.owner), Body: updateBody(o)})
	}
	observ.OrdersUpdated.Inc()

	return OrderResult{
		OrderID: o.ID,
		Message: fmt.Sprintf("📦 Order %s updated: %d x %s for $%.2f. Delivery in %d days.", o.ID, o.Quantity, o.Item, o.Price, o.ETA),
		Order:   &o,
	}, nil
}

// CancelOrder marks the order Cancelled. The transition is terminal and
// idempotent; repeating it is not an error.
func (s *OrderService) CancelOrder(ctx context.Context, orderID string) (OrderResult, error) {
	o, err := s.ledger.Update(ctx, orderID, func(o *entity.Order) error {
		o.Status = entity.StatusCancelled
		return nil
	})
	if err != nil {
		return OrderResult{
			Message: fmt.Sprintf("❌ Order ID %s not found.", orderID),
		}, ErrOrderNotFound
	}

	s.cacheStatus(ctx, o.ID, o.Status)
	observ.OrdersCancelled.Inc()

	return OrderResult{
		OrderID: o.ID,
		Message: fmt.Sprintf("✅ Order %s cancelled.", o.ID),
		Order:   &o,
	}, nil
}

// CheckOrderStatus is a pure read of the ledger.
func (s *OrderService) CheckOrderStatus(ctx context.Context, orderID string) (entity.Order, error) {
	o, ok := s.ledger.Get(ctx, orderID)
	if !ok {
		return entity.Order{}, ErrOrderNotFound
	}
	s.cacheStatus(ctx, o.ID, o.Status)
	return o, nil
}

func (s *OrderService) rollETA() int {
	return s.randInt(etaMinDays, etaMaxDays)
}

// insertWithFreshID draws numeric ids in [orderIDMin, orderIDMax] and
// retries until the ledger accepts one.
func (s *OrderService) insertWithFreshID(ctx context.Context, o *entity.Order) error {
	for i := 0; i < idAllocAttempts; i++ {
		o.ID = strconv.Itoa(s.randInt(orderIDMin, orderIDMax))
		err := s.ledger.Insert(ctx, *o)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrIDConflict) {
			return err
		}
	}
	return ErrLedgerExhausted
}

func (s *OrderService) cacheStatus(ctx context.Context, orderID string, st entity.Status) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetStatus(ctx, orderID, string(st)); err != nil {
		s.log.Warn("status cache write failed", "order_id", orderID, "error", err)
	}
}

// deliver sends a notification best-effort: a failure is logged and
// counted, never returned to the caller.
func (s *OrderService) deliver(ctx context.Context, n Notification) {
	cctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	if err := s.notify.Send(cctx, n); err != nil {
		observ.NotificationFailures.WithLabelValues("publish").Inc()
		s.log.Warn("notification delivery failed", "to", n.To, "error", err)
	}
}

// suggest collects catalog names that contain any whitespace-delimited
// token of the requested name, case-insensitively.
func (s *OrderService) suggest(name string) []string {
	words := strings.Fields(strings.ToLower(name))
	var out []string
	for _, p := range s.catalog.All() {
		lower := strings.ToLower(p.Name)
		for _, w := range words {
			if strings.Contains(lower, w) {
				out = append(out, p.Name)
				break
			}
		}
	}
	return out
}
