package usecase

// Reported by the WhatsApp gateway on Kafka, one per notification.
type DeliveryReceiptMsg struct {
	OrderID string `json:"orderId"`
	To      string `json:"to"`
	Status  string `json:"status"` // e.g. "DELIVERED", "FAILED"
	Reason  string `json:"reason,omitempty"`
}
