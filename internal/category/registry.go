// Package category holds the static spending-bucket registry. Categories
// are defined at process start and never mutated; lookups are total and
// fall back to the default entry for unknown identifiers.
package category

// Category is a user-facing spending bucket used for display and
// aggregation, not financial classification.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categories = []Category{
	{ID: "food", Label: "Food & Dining", Icon: "coffee", Color: "#4A5D4E"},
	{ID: "transport", Label: "Transport", Icon: "car", Color: "#A3B1C6"},
	{ID: "shopping", Label: "Shopping", Icon: "shopping-bag", Color: "#D4C3A3"},
	{ID: "utilities", Label: "Utilities", Icon: "zap", Color: "#E5E2DD"},
	{ID: "invest", Label: "Invest", Icon: "trending-up", Color: "#2C362F"},
}

// All returns a copy of the registry in definition order.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Default returns the fallback category, the first-defined entry.
func Default() Category {
	return categories[0]
}

// Lookup returns the category for id, or the default when id has no
// match. It never fails.
func Lookup(id string) Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return Default()
}

// Known reports whether id resolves to a defined category.
func Known(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
