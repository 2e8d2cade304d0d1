package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// ProductID is a product identifier. The upstream API sends numbers, but string
// identifiers are accepted as well.
type ProductID string

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(n)
	return nil
}

// String returns the identifier text.
func (id ProductID) String() string {
	return string(id)
}

// Category is the optional category object attached to a product.
type Category struct {
	ID   ProductID `json:"id,omitempty"`
	Name string    `json:"name"`
}

// Images is the raw image list of a product. Entries that are not JSON strings are
// dropped during decoding, and a value that is not an array decodes as an empty list.
type Images []string

// UnmarshalJSON implements json.Unmarshaler.
func (imgs *Images) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*imgs = nil
		return nil //nolint:nilerr // A non-array images field means "no images", not a broken record.
	}

	out := make(Images, 0, len(raw))
	for _, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) == 0 || r[0] != '"' {
			continue
		}
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	*imgs = out
	return nil
}

// Product is a single catalog record.
type Product struct {
	ID          ProductID       `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    *Category       `json:"category,omitempty"`
	Images      Images          `json:"images"`
}

// CategoryName returns the category name, or an empty string when the product has none.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// FoldedTitle returns the title case-folded for caseless matching and ordering.
func (p Product) FoldedTitle() string {
	return Fold(p.Title)
}

// Fold case-folds s. A new Caser is used per call since a Caser must not be shared
// between goroutines.
func Fold(s string) string {
	return cases.Fold().String(s)
}
