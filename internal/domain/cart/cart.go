package cart

// Item is a denormalized snapshot taken when a tier is added to the cart.
// Later edits to the source product do not flow back into it. The JSON tags
// match the shape the admin UI kept in localStorage, so an existing cart
// payload loads unchanged.
type Item struct {
	ProductID       string  `json:"productId"`
	PricePointID    string  `json:"pricePointId"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	MRP             float64 `json:"mrp"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	PricePointLabel string  `json:"pricePointLabel"`
	DiscountPercent int     `json:"discountPercent"`
}

func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
