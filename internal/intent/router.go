package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
)

const clarifyMsg = "I couldn't match that request to a known action. " +
	"Please rephrase, or ask for the catalog, categories, offers, or an order by id."

// handler decodes slot arguments and invokes exactly one service
// operation, rendering the structured result as text for the oracle.
type handler func(ctx context.Context, args json.RawMessage) string

// Router is a pure dispatch table over the closed intent set. Unroutable
// or malformed calls come back as a clarification message, never a hard
// error, so the oracle can recover in conversation.
type Router struct {
	svc   *usecase.OrderService
	table map[Intent]handler
	log   *slog.Logger
}

func NewRouter(svc *usecase.OrderService) *Router {
	r := &Router{svc: svc, log: logging.New("intent-router")}
	r.table = map[Intent]handler{
		ShowCatalog:    r.showCatalog,
		ShowCategories: r.showCategories,
		SpecialOffers:  r.specialOffers,
		PlaceOrder:     r.placeOrder,
		UpdateOrder:    r.updateOrder,
		CancelOrder:    r.cancelOrder,
		CheckStatus:    r.checkStatus,
	}
	return r
}

// Routable reports whether the router has a handler for the intent.
func (r *Router) Routable(i Intent) bool {
	_, ok := r.table[i]
	return ok
}

// Dispatch runs the tool call named by the oracle and returns the text
// to fold back into the conversation.
func (r *Router) Dispatch(ctx context.Context, name string, args json.RawMessage) string {
	h, ok := r.table[Intent(name)]
	if !ok {
		r.log.Warn("unroutable tool call", "tool", name)
		return clarifyMsg
	}
	return h(ctx, args)
}

type showCatalogArgs struct {
	Category string `json:"category"`
}

func (r *Router) showCatalog(_ context.Context, raw json.RawMessage) string {
	var args showCatalogArgs
	if msg, ok := decode(raw, &args); !ok {
		return msg
	}
	products := r.svc.ShowCatalog(args.Category)
	if len(products) == 0 {
		return "No products found in this category."
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s ($%.2f, Stock: %d)", p.Name, p.Price, p.Stock))
	}
	return strings.Join(lines, "\n")
}

func (r *Router) showCategories(_ context.Context, _ json.RawMessage) string {
	return "Categories: " + strings.Join(r.svc.ShowCategories(), ", ")
}

func (r *Router) specialOffers(_ context.Context, _ json.RawMessage) string {
	return r.svc.SpecialOffers()
}

type placeOrderArgs struct {
	Item        string `json:"item"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Quantity    int    `json:"quantity"`
}

func (r *Router) placeOrder(ctx context.Context, raw json.RawMessage) string {
	var args placeOrderArgs
	if msg, ok := decode(raw, &args); !ok {
		return msg
	}
	res, err := r.svc.PlaceOrder(ctx, usecase.PlaceOrderInput{
		Item:        args.Item,
		PhoneNumber: args.PhoneNumber,
		Address:     args.Address,
		Quantity:    args.Quantity,
	})
	if err != nil {
		r.log.Info("place order rejected", "item", args.Item, "error", err)
	}
	return res.Message
}

type updateOrderArgs struct {
	OrderID  string  `json:"order_id"`
	Item     *string `json:"item"`
	Quantity *int    `json:"quantity"`
}

func (r *Router) updateOrder(ctx context.Context, raw json.RawMessage) string {
	var args updateOrderArgs
	if msg, ok := decode(raw, &args); !ok {
		return msg
	}
	res, err := r.svc.UpdateOrder(ctx, usecase.UpdateOrderInput{
		OrderID:  args.OrderID,
		Item:     args.Item,
		Quantity: args.Quantity,
	})
	if err != nil {
		r.log.Info("update order rejected", "order_id", args.OrderID, "error", err)
	}
	return res.Message
}

type orderIDArgs struct {
	OrderID string `json:"order_id"`
}

func (r *Router) cancelOrder(ctx context.Context, raw json.RawMessage) string {
	var args orderIDArgs
	if msg, ok := decode(raw, &args); !ok {
		return msg
	}
	res, _ := r.svc.CancelOrder(ctx, args.OrderID)
	return res.Message
}

func (r *Router) checkStatus(ctx context.Context, raw json.RawMessage) string {
	var args orderIDArgs
	if msg, ok := decode(raw, &args); !ok {
		return msg
	}
	o, err := r.svc.CheckOrderStatus(ctx, args.OrderID)
	if err != nil {
		return fmt.Sprintf("❌ Order ID %s not found.", args.OrderID)
	}
	return renderOrder(o)
}

func renderOrder(o entity.Order) string {
	return fmt.Sprintf(
		"Order %s: %d x %s, $%.2f, status %s, delivery in %d days, to %s (%s).",
		o.ID, o.Quantity, o.Item, o.Price, o.Status, o.ETA, o.Address, o.PhoneNumber)
}

// decode unmarshals tool arguments; on malformed input it yields the
// clarification message instead of failing the turn.
func decode(raw json.RawMessage, v any) (string, bool) {
	if len(raw) == 0 {
		return "", true
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return clarifyMsg, false
	}
	return "", true
}
