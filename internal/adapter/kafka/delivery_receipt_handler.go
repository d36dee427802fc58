package kafka

import (
	"context"
	"log/slog"
	"strings"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/logging"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/observ"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
)

// DeliveryReceiptHandler surfaces the fate of best-effort notifications.
// A failed delivery never rolls anything back; it is observable through
// the failure counter and the log.
type DeliveryReceiptHandler struct {
	Cache usecase.StatusCache // optional
	log   *slog.Logger
}

func NewDeliveryReceiptHandler(cache usecase.StatusCache) *DeliveryReceiptHandler {
	return &DeliveryReceiptHandler{Cache: cache, log: logging.New("delivery-receipts")}
}

func (h *DeliveryReceiptHandler) Handle(ctx context.Context, ev usecase.DeliveryReceiptMsg) error {
	switch strings.ToUpper(ev.Status) {
	case "DELIVERED":
		h.log.Info("notification delivered", "order_id", ev.OrderID, "to", ev.To)
	default:
		observ.NotificationFailures.WithLabelValues("delivery").Inc()
		h.log.Warn("notification delivery failed",
			"order_id", ev.OrderID, "to", ev.To, "status", ev.Status, "reason", ev.Reason)
	}

	if h.Cache != nil && ev.OrderID != "" {
		_ = h.Cache.SetStatus(ctx, "notify:"+ev.OrderID, ev.Status)
	}
	return nil
}
