package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sangeeth-21/velkani-admin/internal/domain/catalog"
)

const indexEndpoint = "index.php"

func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	err := c.get(ctx, indexEndpoint, url.Values{"action": {"get_categories"}}, &out)
	return out, err
}

func (c *Client) AddCategory(ctx context.Context, name, image, description string) error {
	return c.sendJSON(ctx, http.MethodPost, indexEndpoint, action("add_category", map[string]any{
		"name":        name,
		"image":       image,
		"description": description,
	}), nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodPost, indexEndpoint, action("delete_category", map[string]any{
		"id": id,
	}), nil)
}

func (c *Client) ListSubcategories(ctx context.Context, categoryID string) ([]catalog.Subcategory, error) {
	var out []catalog.Subcategory
	err := c.get(ctx, indexEndpoint, url.Values{
		"action":      {"get_subcategories"},
		"category_id": {categoryID},
	}, &out)
	return out, err
}

func (c *Client) ListAllSubcategories(ctx context.Context) ([]catalog.Subcategory, error) {
	var out []catalog.Subcategory
	err := c.get(ctx, indexEndpoint, url.Values{"action": {"get_all_subcategories"}}, &out)
	return out, err
}

func (c *Client) AddSubcategory(ctx context.Context, categoryID, name, image, description string) error {
	return c.sendJSON(ctx, http.MethodPost, indexEndpoint, action("add_subcategory", map[string]any{
		"category_id": categoryID,
		"name":        name,
		"image":       image,
		"description": description,
	}), nil)
}

func (c *Client) DeleteSubcategory(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodPost, indexEndpoint, action("delete_subcategory", map[string]any{
		"id": id,
	}), nil)
}

// ProductFilter narrows get_products the same way the UI pages did.
type ProductFilter struct {
	CategoryID    string
	SubcategoryID string
	OfferOnly     bool
}

func (c *Client) ListProducts(ctx context.Context, f ProductFilter) ([]catalog.Product, error) {
	q := url.Values{"action": {"get_products"}}
	if f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.SubcategoryID != "" {
		q.Set("subcategory_id", f.SubcategoryID)
	}
	if f.OfferOnly {
		q.Set("offer", "1")
	}
	var out []catalog.Product
	err := c.get(ctx, indexEndpoint, q, &out)
	return out, err
}

type NewImage struct {
	URL          string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type NewPricePoint struct {
	Quantity string  `json:"quantity"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	MRP      float64 `json:"mrp"`
	Stock    int     `json:"stock"`
}

type NewProduct struct {
	CategoryID    string
	SubcategoryID string
	Name          string
	Description   string
	Images        []NewImage
	PricePoints   []NewPricePoint
}

func (c *Client) AddProduct(ctx context.Context, p NewProduct) error {
	return c.sendJSON(ctx, http.MethodPost, indexEndpoint, action("add_product", map[string]any{
		"category_id":    p.CategoryID,
		"subcategory_id": p.SubcategoryID,
		"name":           p.Name,
		"description":    p.Description,
		"images":         p.Images,
		"price_points":   p.PricePoints,
	}), nil)
}

// ProductUpdate carries only the fields update_product accepts; nil slices
// leave the corresponding children untouched.
type ProductUpdate struct {
	ID          string
	Name        string
	Description string
	Images      []NewImage
	PricePoints []NewPricePoint
	Offer       *bool
}

func (c *Client) UpdateProduct(ctx context.Context, u ProductUpdate) error {
	fields := map[string]any{
		"id":          u.ID,
		"name":        u.Name,
		"description": u.Description,
	}
	if u.Images != nil {
		fields["images"] = u.Images
	}
	if u.PricePoints != nil {
		fields["price_points"] = u.PricePoints
	}
	if u.Offer != nil {
		offer := "0"
		if *u.Offer {
			offer = "1"
		}
		fields["offer"] = offer
	}
	return c.sendJSON(ctx, http.MethodPut, indexEndpoint, action("update_product", fields), nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodPost, indexEndpoint, action("delete_product", map[string]any{
		"id": id,
	}), nil)
}

// PricePointTypes returns the unit vocabulary offered when entering tiers
// (Packet, Loose, ...).
func (c *Client) PricePointTypes(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, indexEndpoint, url.Values{"action": {"get_price_point_types"}}, &out)
	return out, err
}
