package model

// CartItem is a single line in a user's cart. Quantity is at least 1;
// the product id is not validated against the catalog on write.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartLine is a priced line in a computed cart view. Money fields are
// currency strings; DiscountPercent is 0 when no reward applied.
type CartLine struct {
	ProductID       string `json:"productId"`
	Title           string `json:"title"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unitPrice"`
	ItemTotal       string `json:"itemTotal"`
	DiscountPercent int    `json:"discountPercent,omitempty"`
	DiscountAmount  string `json:"discountAmount,omitempty"`
	FinalPrice      string `json:"finalPrice"`
}

// SustainabilityMetrics summarizes a cart's environmental footprint.
type SustainabilityMetrics struct {
	Score         int     `json:"score"`
	TotalCarbonKg float64 `json:"totalCarbonKg"`
	Rating        string  `json:"rating,omitempty"`
}

// CartView is the full computed response for GET /cart/:userId.
type CartView struct {
	Items                []CartLine            `json:"items"`
	Subtotal             string                `json:"subtotal"`
	TotalDiscount        string                `json:"totalDiscount"`
	Total                string                `json:"total"`
	SustainabilityImpact SustainabilityMetrics `json:"sustainabilityImpact"`
}

// CartSummary is returned from a cart replacement.
type CartSummary struct {
	CartSize int
	Metrics  SustainabilityMetrics
}
