package usecase

import (
	"fmt"
	"strings"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
)

// The delivery channel speaks WhatsApp addressing. Local numbers are
// written with a leading zero ("03001234567"); the wire form replaces it
// with the country code ("whatsapp:+923001234567").
const whatsappPrefix = "whatsapp:+92"

func waAddress(phone string) string {
	return whatsappPrefix + strings.TrimLeft(strings.TrimSpace(phone), "0")
}

func confirmationBody(o entity.Order) string {
	return fmt.Sprintf(
		"✅ Your order has been placed!\n\n"+
			"🛒 Product: %s\n"+
			"📦 Quantity: %d\n"+
			"💵 Total: $%.2f\n"+
			"🆔 Order ID: %s\n"+
			"🚚 Delivery in %d days.",
		o.Item, o.Quantity, o.Price, o.ID, o.ETA)
}

// updateBody is addressed to the shop owner, so it carries the customer's
// contact details as well.
func updateBody(o entity.Order) string {
	return fmt.Sprintf(
		"📦 Updated Order (ID: %s):\n"+
			"Item: %s x %d\n"+
			"Price: $%.2f\n"+
			"Phone: %s\n"+
			"Address: %s\n"+
			"ETA: %d days",
		o.ID, o.Item, o.Quantity, o.Price, o.PhoneNumber, o.Address, o.ETA)
}
