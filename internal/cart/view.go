package cart

import (
	"github.com/angelmondragon/threadline-backend/internal/catalog"
	"github.com/angelmondragon/threadline-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// View is the derived read model of the cart: its lines plus subtotal and
// item count, recomputed from the rows on every call.
type View struct {
	Lines         []Line `json:"items"`
	Subtotal      string `json:"subtotal"`
	SubtotalCents int64  `json:"subtotal_cents"`
	ItemCount     int    `json:"item_count"`
}

// Line pairs a product snapshot with its quantity.
type Line struct {
	Product           catalog.ProductDTO `json:"product"`
	Quantity          int                `json:"quantity"`
	LineSubtotal      string             `json:"line_subtotal"`
	LineSubtotalCents int64              `json:"line_subtotal_cents"`
}

// NewView derives the read model from cart rows. Items must be loaded with
// their product association.
func NewView(items []models.CartItem) *View {
	view := &View{Lines: make([]Line, 0, len(items))}
	for i := range items {
		item := &items[i]
		if item.Product == nil {
			continue
		}
		lineCents := item.Product.PriceCents * int64(item.Quantity)
		view.Lines = append(view.Lines, Line{
			Product:           catalog.NewProductDTO(item.Product),
			Quantity:          item.Quantity,
			LineSubtotal:      decimal.NewFromInt(lineCents).Shift(-2).StringFixed(2),
			LineSubtotalCents: lineCents,
		})
		view.SubtotalCents += lineCents
		view.ItemCount += item.Quantity
	}
	view.Subtotal = decimal.NewFromInt(view.SubtotalCents).Shift(-2).StringFixed(2)
	return view
}
