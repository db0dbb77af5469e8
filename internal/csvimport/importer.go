package csvimport

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/sangeeth-21/velkani-admin/internal/domain/catalog"
	"github.com/sangeeth-21/velkani-admin/internal/upstream"
	"github.com/sangeeth-21/velkani-admin/internal/util"
)

// StoreAPI is the slice of the upstream client the importer drives.
type StoreAPI interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	ListAllSubcategories(ctx context.Context) ([]catalog.Subcategory, error)
	AddProduct(ctx context.Context, p upstream.NewProduct) error
}

type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result summarizes a best-effort batch: bad rows are counted and reported,
// never fatal to the rest of the file.
type Result struct {
	BatchID  string     `json:"batch_id"`
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
}

type Importer struct {
	api StoreAPI
}

func NewImporter(api StoreAPI) *Importer {
	return &Importer{api: api}
}

// nested shape of the optional pricepoints cell: a JSON array of
// {quantity, price} objects, numbers possibly quoted.
type csvPricePoint struct {
	Quantity csvQuantity    `json:"quantity"`
	Price    catalog.Amount `json:"price"`
}

// csvQuantity keeps the quantity token as written: it is a tier label
// ("1kg", "500g") that only sometimes happens to be a bare number.
type csvQuantity string

func (q *csvQuantity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = csvQuantity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid quantity %s", data)
	}
	*q = csvQuantity(n.String())
	return nil
}

// Import parses the CSV text and creates one product per valid row.
// Category and subcategory cells are matched by name, case-insensitively.
// The returned error covers only whole-file problems (unreadable CSV or a
// failed category fetch); per-row failures land in Result.Errors.
func (im *Importer) Import(ctx context.Context, text string) (Result, error) {
	res := Result{BatchID: uuid.NewString()}

	records, err := Parse(text)
	if err != nil {
		return res, err
	}

	categories, err := im.api.ListCategories(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch categories: %w", err)
	}
	subcategories, err := im.api.ListAllSubcategories(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch subcategories: %w", err)
	}

	for i, rec := range records {
		line := i + 2 // 1-based, after the header row
		if err := im.importRow(ctx, rec, categories, subcategories); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}
		res.Imported++
	}
	return res, nil
}

func (im *Importer) importRow(ctx context.Context, rec Record, categories []catalog.Category, subcategories []catalog.Subcategory) error {
	name := strings.TrimSpace(rec["name"])
	if name == "" {
		return fmt.Errorf("name is required")
	}

	if strings.TrimSpace(rec["category"]) == "" {
		return fmt.Errorf("category is required")
	}
	if strings.TrimSpace(rec["subcategory"]) == "" {
		return fmt.Errorf("subcategory is required")
	}

	categoryID := ""
	for _, c := range categories {
		if strings.EqualFold(c.Name, strings.TrimSpace(rec["category"])) ||
			util.Slugify(c.Name) == util.Slugify(rec["category"]) {
			categoryID = c.ID
			break
		}
	}
	if categoryID == "" {
		return fmt.Errorf("unknown category %q", rec["category"])
	}

	subcategoryID := ""
	for _, s := range subcategories {
		if s.CategoryID != categoryID {
			continue
		}
		if strings.EqualFold(s.Name, strings.TrimSpace(rec["subcategory"])) ||
			util.Slugify(s.Name) == util.Slugify(rec["subcategory"]) {
			subcategoryID = s.ID
			break
		}
	}
	if subcategoryID == "" {
		return fmt.Errorf("unknown subcategory %q", rec["subcategory"])
	}

	points, err := parsePricePoints(rec)
	if err != nil {
		return err
	}

	var images []upstream.NewImage
	if url := strings.TrimSpace(rec["imageurl"]); url != "" {
		images = append(images, upstream.NewImage{URL: url, DisplayOrder: 0})
	}

	return im.api.AddProduct(ctx, upstream.NewProduct{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Name:          name,
		Description:   rec["description"],
		Images:        images,
		PricePoints:   points,
	})
}

func parsePricePoints(rec Record) ([]upstream.NewPricePoint, error) {
	if cell := strings.TrimSpace(rec["pricepoints"]); cell != "" {
		var raw []csvPricePoint
		if err := json.Unmarshal([]byte(cell), &raw); err != nil {
			return nil, fmt.Errorf("invalid pricepoints json: %v", err)
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("pricepoints must not be empty")
		}
		points := make([]upstream.NewPricePoint, 0, len(raw))
		for _, pp := range raw {
			price := pp.Price.Float64()
			if price <= 0 {
				return nil, fmt.Errorf("pricepoint price must be positive")
			}
			quantity := strings.TrimSpace(string(pp.Quantity))
			if quantity == "" {
				quantity = "1"
			}
			points = append(points, upstream.NewPricePoint{
				Quantity: quantity,
				Price:    price,
				MRP:      price,
			})
		}
		return points, nil
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(rec["price"]), 64)
	if err != nil || price <= 0 {
		return nil, fmt.Errorf("invalid price %q", rec["price"])
	}
	return []upstream.NewPricePoint{{Quantity: "1", Price: price, MRP: price}}, nil
}
