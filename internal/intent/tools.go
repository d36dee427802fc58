package intent

// Specs returns the tool signatures handed to the oracle on every turn,
// in a stable order.
func Specs() []ToolSpec {
	return []ToolSpec{
		{
			Name:        string(ShowCatalog),
			Description: "Show catalog items, optionally filtered by category",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{
						"type":        "string",
						"description": "Category to filter by (e.g. Mobiles, Audio); omit for the full catalog",
					},
				},
			},
		},
		{
			Name:        string(ShowCategories),
			Description: "List all distinct product categories",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        string(SpecialOffers),
			Description: "Show today's special offers",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        string(PlaceOrder),
			Description: "Place a new order and send a WhatsApp confirmation to the customer",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"item": map[string]any{
						"type":        "string",
						"description": "Product name as the customer said it",
					},
					"phone_number": map[string]any{
						"type":        "string",
						"description": "Customer phone number, local format (e.g. 03001234567)",
					},
					"address": map[string]any{
						"type":        "string",
						"description": "Delivery address",
					},
					"quantity": map[string]any{
						"type":        "integer",
						"description": "Number of units",
						"default":     1,
						"minimum":     1,
					},
				},
				"required": []string{"item", "phone_number", "address"},
			},
		},
		{
			Name:        string(UpdateOrder),
			Description: "Change item and/or quantity on an existing order",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"order_id": map[string]any{
						"type":        "string",
						"description": "Order id returned at placement",
					},
					"item": map[string]any{
						"type":        "string",
						"description": "New product name; omit to keep the current one",
					},
					"quantity": map[string]any{
						"type":        "integer",
						"description": "New quantity; omit to keep the current one",
						"minimum":     1,
					},
				},
				"required": []string{"order_id"},
			},
		},
		{
			Name:        string(CancelOrder),
			Description: "Cancel an existing order",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"order_id": map[string]any{
						"type":        "string",
						"description": "Order id to cancel",
					},
				},
				"required": []string{"order_id"},
			},
		},
		{
			Name:        string(CheckStatus),
			Description: "Check the status of an existing order",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"order_id": map[string]any{
						"type":        "string",
						"description": "Order id to look up",
					},
				},
				"required": []string{"order_id"},
			},
		},
	}
}
