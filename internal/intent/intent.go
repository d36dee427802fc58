// Package intent routes oracle tool calls to order and catalog
// operations. The intent set is closed; the routing table is built once
// at construction and never mutates state itself.
package intent

// Intent identifies one user goal the oracle can select. The values
// double as the tool names advertised to the oracle.
type Intent string

const (
	ShowCatalog    Intent = "show_catalog"
	ShowCategories Intent = "show_categories"
	SpecialOffers  Intent = "special_offers"
	PlaceOrder     Intent = "place_order"
	UpdateOrder    Intent = "update_order"
	CancelOrder    Intent = "cancel_order"
	CheckStatus    Intent = "check_order_status"
)

// All lists every routable intent. Keep in sync with the routing table;
// TestRouterCoversAllIntents enforces it.
func All() []Intent {
	return []Intent{
		ShowCatalog, ShowCategories, SpecialOffers,
		PlaceOrder, UpdateOrder, CancelOrder, CheckStatus,
	}
}

// ToolSpec is the machine-checkable signature the oracle selects
// against: name, selection description, and JSON-schema parameters.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}
