package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/catalogview/internal/pagination"
)

// ProductJSON is the machine-readable form of a Row. Price is the exact decimal.
type ProductJSON struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Price         json.Number `json:"price"`
	Category      string      `json:"category"`
	Description   string      `json:"description"`
	Image         string      `json:"image"`
	FallbackImage string      `json:"fallback_image"`
}

// PageJSON is the document written by RenderJSON.
type PageJSON struct {
	Products   []ProductJSON    `json:"products"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
	Sort       string           `json:"sort,omitempty"`
	Query      string           `json:"query,omitempty"`
	Summary    string           `json:"summary,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func productJSON(row Row) ProductJSON {
	return ProductJSON{
		ID:            row.ID,
		Title:         row.Title,
		Price:         json.Number(row.Amount.String()),
		Category:      row.Category,
		Description:   row.Description,
		Image:         row.Image,
		FallbackImage: row.FallbackImage,
	}
}

// NewPageJSON converts page to its JSON document.
func NewPageJSON(page Page) PageJSON {
	// Empty slice so JSON produces [] instead of null.
	products := make([]ProductJSON, 0, len(page.Rows))
	for _, row := range page.Rows {
		products = append(products, productJSON(row))
	}
	if page.Err != nil {
		return PageJSON{Products: products, Error: page.Err.Error()}
	}
	meta := page.Meta
	return PageJSON{
		Products:   products,
		Pagination: &meta,
		Sort:       page.Sort.String(),
		Query:      page.Query,
		Summary:    page.Summary,
	}
}

// RenderJSON writes page as one indented JSON object with products and pagination
// metadata.
func RenderJSON(w io.Writer, page Page) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(NewPageJSON(page)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderNDJSON writes each product of page as a separate JSON line with no wrapper.
// A page with an error writes a single {"error": ...} line.
func RenderNDJSON(w io.Writer, page Page) error {
	if page.Err != nil {
		data, err := json.Marshal(map[string]string{"error": page.Err.Error()})
		if err != nil {
			return fmt.Errorf("marshaling error: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("writing NDJSON line: %w", err)
		}
		return nil
	}
	for _, row := range page.Rows {
		data, marshalErr := json.Marshal(productJSON(row))
		if marshalErr != nil {
			return fmt.Errorf("marshaling row: %w", marshalErr)
		}
		if _, writeErr := fmt.Fprintf(w, "%s\n", data); writeErr != nil {
			return fmt.Errorf("writing NDJSON line: %w", writeErr)
		}
	}
	return nil
}
