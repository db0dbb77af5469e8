package pricing

import (
	"fmt"
	"math"

	"github.com/sangeeth-21/velkani-admin/internal/domain/catalog"
)

// Resolved carries the display and validation values derived from a price
// point: the numbers are already normalized by the decode layer, this only
// computes what the UI shows next to them.
type Resolved struct {
	Price           float64
	MRP             float64
	Stock           int
	OutOfStock      bool
	DiscountPercent int
	Label           string
}

func Resolve(pp catalog.PricePoint) Resolved {
	price := pp.Price.Float64()
	mrp := pp.MRP.Float64()
	stock := pp.Stock.Int()
	return Resolved{
		Price:           price,
		MRP:             mrp,
		Stock:           stock,
		OutOfStock:      stock <= 0,
		DiscountPercent: DiscountPercent(price, mrp),
		Label:           Label(pp.Quantity, pp.Type),
	}
}

// DiscountPercent is 0 unless the list price is strictly above the sale
// price. A zero or inverted MRP never produces a negative discount.
func DiscountPercent(price, mrp float64) int {
	if mrp <= price || mrp <= 0 {
		return 0
	}
	return int(math.Round((mrp - price) / mrp * 100))
}

// Label renders the tier as shown in listings: `1kg (Loose)` or just `1kg`
// when no unit type is set.
func Label(quantity, typ string) string {
	if typ == "" {
		return quantity
	}
	return fmt.Sprintf("%s (%s)", quantity, typ)
}
