package render

import (
	"github.com/shopspring/decimal"

	"github.com/rshade/catalogview/internal/catalog"
)

// NoResultsMessage fills the single row shown for an empty page.
const NoResultsMessage = "No products found"

// NoCategory is shown for products without a category name.
const NoCategory = "N/A"

// Columns are the table headers in display order.
//
//nolint:gochecknoglobals // Read-only header list shared by all writers.
var Columns = []string{"ID", "Image", "Title", "Price", "Category", "Description"}

// Row is one product prepared for display.
type Row struct {
	ID            string
	Image         string
	FallbackImage string
	Title         string
	Price         string
	Amount        decimal.Decimal
	Category      string
	Description   string
}

// FormatPrice renders an amount as "$" followed by its exact decimal text,
// e.g. "$10" or "$12.5".
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.String()
}

// BuildRows converts a page of products into display rows.
func BuildRows(items []catalog.Product, policy catalog.ImagePolicy) []Row {
	rows := make([]Row, 0, len(items))
	fallback := policy.Fallback()
	for _, p := range items {
		category := p.CategoryName()
		if category == "" {
			category = NoCategory
		}
		rows = append(rows, Row{
			ID:            p.ID.String(),
			Image:         policy.Resolve(p.Images),
			FallbackImage: fallback,
			Title:         p.Title,
			Price:         FormatPrice(p.Price),
			Amount:        p.Price,
			Category:      category,
			Description:   p.Description,
		})
	}
	return rows
}
