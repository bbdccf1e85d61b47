package structs

// CartItem is one merged line in the locally mirrored cart. Price is the
// unit price in the variant's currency, parsed once on add. LineID is the
// remote line identifier used to address updates and removals.
type CartItem struct {
	LineID       string  `json:"lineId,omitempty"`
	VariantID    string  `json:"variantId"`
	ProductID    string  `json:"productId"`
	Title        string  `json:"title"`
	VariantTitle string  `json:"variantTitle"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Handle       string  `json:"handle"`
}

// CartSnapshot is the persisted slice of cart state: line items plus the
// remote cart id. UI flags are deliberately not part of it.
type CartSnapshot struct {
	Items       []CartItem `json:"items"`
	CartID      string     `json:"cartId"`
	CheckoutURL string     `json:"checkoutUrl,omitempty"`
}

// TotalItems sums the quantities of all lines.
func (cs *CartSnapshot) TotalItems() int {
	total := 0
	for _, item := range cs.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums quantity-weighted unit prices of all lines.
func (cs *CartSnapshot) TotalPrice() float64 {
	total := 0.0
	for _, item := range cs.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// UserError is a user-level failure reported by a cart mutation. Any user
// error fails the whole operation; nothing is partially applied.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}
