package catalog

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type Subcategory struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type Image struct {
	ID           string `json:"id"`
	URL          string `json:"image_url"`
	DisplayOrder Count  `json:"display_order"`
}

type PricePoint struct {
	ID              string `json:"id"`
	Quantity        string `json:"quantity"`
	Type            string `json:"type"`
	Price           Amount `json:"price"`
	MRP             Amount `json:"mrp"`
	Stock           Count  `json:"stock"`
	DiscountPercent Count  `json:"discount_percent"`
}

type Product struct {
	ID            string       `json:"id"`
	CategoryID    string       `json:"category_id"`
	SubcategoryID string       `json:"subcategory_id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Images        []Image      `json:"images"`
	PricePoints   []PricePoint `json:"price_points"`
	Offer         Count        `json:"offer"`
	CreatedAt     string       `json:"created_at,omitempty"`
	UpdatedAt     string       `json:"updated_at,omitempty"`
}

func (p Product) IsOffer() bool { return p.Offer != 0 }

// PrimaryImage returns the URL of the image with the lowest display order,
// or "" when the product has no images.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	best := p.Images[0]
	for _, img := range p.Images[1:] {
		if img.DisplayOrder < best.DisplayOrder {
			best = img
		}
	}
	return best.URL
}

// PricePointByID looks up a tier on the product.
func (p Product) PricePointByID(id string) (PricePoint, bool) {
	for _, pp := range p.PricePoints {
		if pp.ID == id {
			return pp, true
		}
	}
	return PricePoint{}, false
}
