package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/catalogview/internal/browse"
	"github.com/rshade/catalogview/internal/catalog"
	"github.com/rshade/catalogview/internal/pagination"
)

func makeProducts(n int) []catalog.Product {
	products := make([]catalog.Product, n)
	for i := range products {
		products[i] = catalog.Product{
			ID:          catalog.ProductID(fmt.Sprint(i + 1)),
			Title:       fmt.Sprintf("Product %02d", i+1),
			Price:       decimal.NewFromInt(int64(10 + i)),
			Description: "desc",
			Category:    &catalog.Category{ID: "1", Name: "Clothes"},
			Images:      catalog.Images{"https://cdn.example.com/p.jpg"},
		}
	}
	return products
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "$10"},
		{"12.5", "$12.5"},
		{"12.50", "$12.5"},
		{"0", "$0"},
		{"1999.99", "$1999.99"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestBuildRows(t *testing.T) {
	policy := catalog.DefaultImagePolicy()
	items := []catalog.Product{
		{
			ID:          "7",
			Title:       "Hat",
			Price:       decimal.RequireFromString("12.5"),
			Description: "A hat",
			Category:    &catalog.Category{Name: "Clothes"},
			Images:      catalog.Images{`["http://via.placeholder.com/x","http://good.cdn/y.jpg"]`},
		},
		{ID: "8", Title: "Bag", Price: decimal.NewFromInt(10)},
	}

	rows := BuildRows(items, policy)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{
		ID:            "7",
		Image:         "http://good.cdn/y.jpg",
		FallbackImage: catalog.DefaultErrorPlaceholder,
		Title:         "Hat",
		Price:         "$12.5",
		Amount:        decimal.RequireFromString("12.5"),
		Category:      "Clothes",
		Description:   "A hat",
	}, rows[0])

	assert.Equal(t, catalog.DefaultPlaceholder, rows[1].Image)
	assert.Equal(t, NoCategory, rows[1].Category)
	assert.Empty(t, BuildRows(nil, policy))
}

// ---------------------------------------------------------------------------
// Controls
// ---------------------------------------------------------------------------

func TestBuildControls(t *testing.T) {
	tests := []struct {
		name         string
		meta         pagination.Meta
		wantDisabled [5]bool
		wantTargets  [5]int
		wantCurrent  string
	}{
		{
			name:         "last page",
			meta:         pagination.NewMeta(3, 10, 25),
			wantDisabled: [5]bool{false, false, false, true, true},
			wantTargets:  [5]int{1, 2, 3, 4, 3},
			wantCurrent:  "3 / 3",
		},
		{
			name:         "first page",
			meta:         pagination.NewMeta(1, 10, 25),
			wantDisabled: [5]bool{true, true, false, false, false},
			wantTargets:  [5]int{1, 0, 1, 2, 3},
			wantCurrent:  "1 / 3",
		},
		{
			name:         "single page",
			meta:         pagination.NewMeta(1, 10, 0),
			wantDisabled: [5]bool{true, true, false, true, true},
			wantTargets:  [5]int{1, 0, 1, 2, 1},
			wantCurrent:  "1 / 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := BuildControls(tt.meta)
			buttons := c.Buttons()
			require.Len(t, buttons, 5)
			for i, b := range buttons {
				assert.Equal(t, tt.wantDisabled[i], b.Disabled, "button %d (%s)", i, b.Label)
				assert.Equal(t, tt.wantTargets[i], b.Target, "button %d (%s)", i, b.Label)
			}
			assert.True(t, c.Current.Current)
			assert.Equal(t, tt.wantCurrent, c.Current.Label)
		})
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Showing 21-25 of 25 products", Summary(pagination.NewMeta(3, 10, 25)))
	assert.Equal(t, "Showing 0-0 of 0 products", Summary(pagination.NewMeta(1, 10, 0)))
}

func TestControlStrip(t *testing.T) {
	got := ControlStrip(BuildControls(pagination.NewMeta(3, 10, 25)))
	assert.Equal(t, "[« First] [‹ Prev] 3 / 3 (Next ›) (Last »)", got)
}

// ---------------------------------------------------------------------------
// Page
// ---------------------------------------------------------------------------

func TestFromState(t *testing.T) {
	s := browse.New(makeProducts(25), 10).GoToPage(3)
	page := FromState(s, catalog.DefaultImagePolicy())

	require.Len(t, page.Rows, 5)
	assert.Equal(t, "21", page.Rows[0].ID)
	assert.Equal(t, "25", page.Rows[4].ID)
	assert.True(t, page.Controls.Next.Disabled)
	assert.True(t, page.Controls.Last.Disabled)
	assert.Equal(t, "Showing 21-25 of 25 products", page.Summary)
	assert.False(t, page.Empty())
	assert.Empty(t, page.ErrorText())
}

func TestPageHeader(t *testing.T) {
	s := browse.New(makeProducts(3), 10).Sort(pagination.SortPrice)
	page := FromState(s, catalog.DefaultImagePolicy())
	assert.Equal(t, "Price ▲", page.Header("Price"))
	assert.Equal(t, "Title", page.Header("Title"))
	assert.Equal(t, "ID", page.Header("ID"))

	page = FromState(s.Sort(pagination.SortPrice), catalog.DefaultImagePolicy())
	assert.Equal(t, "Price ▼", page.Header("Price"))
}

// ---------------------------------------------------------------------------
// Formats
// ---------------------------------------------------------------------------

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", OutputTable, false},
		{"table", OutputTable, false},
		{"JSON", OutputJSON, false},
		{" ndjson ", OutputNDJSON, false},
		{"html", OutputHTML, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, OutputFormat("xml"), Page{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRenderTable(t *testing.T) {
	t.Run("page with rows", func(t *testing.T) {
		s := browse.New(makeProducts(25), 10).GoToPage(3)
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, OutputTable, FromState(s, catalog.DefaultImagePolicy())))

		out := buf.String()
		assert.Contains(t, out, "ID")
		assert.Contains(t, out, "Description")
		assert.Contains(t, out, "Product 21")
		assert.Contains(t, out, "Product 25")
		assert.NotContains(t, out, "Product 20")
		assert.Contains(t, out, "$34")
		assert.Contains(t, out, "(Next ›) (Last »)")
		assert.Contains(t, out, "Showing 21-25 of 25 products")
	})

	t.Run("no results", func(t *testing.T) {
		s := browse.New(makeProducts(5), 10).Search("zzz-no-match")
		var buf bytes.Buffer
		require.NoError(t, RenderTable(&buf, FromState(s, catalog.DefaultImagePolicy())))

		out := buf.String()
		assert.Equal(t, 1, strings.Count(out, NoResultsMessage))
		assert.Contains(t, out, "Showing 0-0 of 0 products")
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderTable(&buf, ErrorPage(errors.New("boom"))))
		assert.Equal(t, "Error: boom\n", buf.String())
	})

	t.Run("long description is truncated", func(t *testing.T) {
		products := makeProducts(1)
		products[0].Description = strings.Repeat("word ", 40)
		var buf bytes.Buffer
		require.NoError(t, RenderTable(&buf, FromState(browse.New(products, 10), catalog.DefaultImagePolicy())))
		assert.Contains(t, buf.String(), "...")
	})
}

func TestRenderJSON(t *testing.T) {
	t.Run("page", func(t *testing.T) {
		products := makeProducts(3)
		products[1].Price = decimal.RequireFromString("19.99")
		s := browse.New(products, 2).GoToPage(1)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, OutputJSON, FromState(s, catalog.DefaultImagePolicy())))

		var got PageJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got.Products, 2)
		assert.Equal(t, json.Number("19.99"), got.Products[1].Price)
		assert.Equal(t, "Clothes", got.Products[1].Category)
		require.NotNil(t, got.Pagination)
		assert.Equal(t, 2, got.Pagination.TotalPages)
		assert.True(t, got.Pagination.HasNext)
		assert.Empty(t, got.Error)
		assert.Contains(t, buf.String(), `"price": 19.99`)
	})

	t.Run("empty page has empty array", func(t *testing.T) {
		s := browse.New(nil, 10)
		var buf bytes.Buffer
		require.NoError(t, RenderJSON(&buf, FromState(s, catalog.DefaultImagePolicy())))
		assert.Contains(t, buf.String(), `"products": []`)
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderJSON(&buf, ErrorPage(errors.New("boom"))))
		var got PageJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "boom", got.Error)
		assert.Nil(t, got.Pagination)
	})
}

func TestRenderNDJSON(t *testing.T) {
	s := browse.New(makeProducts(3), 10)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputNDJSON, FromState(s, catalog.DefaultImagePolicy())))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	var first ProductJSON
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, json.Number("10"), first.Price)

	buf.Reset()
	require.NoError(t, RenderNDJSON(&buf, ErrorPage(errors.New("boom"))))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestRenderJSON_IDsStayStrings(t *testing.T) {
	ids := []catalog.ProductID{"007", "+5", "NaN", "42"}
	products := make([]catalog.Product, len(ids))
	for i, id := range ids {
		products[i] = catalog.Product{ID: id, Title: "Item", Price: decimal.NewFromInt(1)}
	}
	page := FromState(browse.New(products, 10), catalog.DefaultImagePolicy())

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, page))
	require.True(t, json.Valid(buf.Bytes()))

	var doc struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Products, len(ids))
	for i, id := range ids {
		assert.Equal(t, id.String(), doc.Products[i].ID)
	}
}

func TestRenderHTML(t *testing.T) {
	t.Run("page", func(t *testing.T) {
		products := makeProducts(25)
		products[20].Title = "<b>Bold</b> Hat"
		s := browse.New(products, 10).GoToPage(3)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, OutputHTML, FromState(s, catalog.DefaultImagePolicy())))

		out := buf.String()
		assert.Contains(t, out, "<th>ID</th>")
		assert.Contains(t, out, "<th>Description</th>")
		assert.Equal(t, 5, strings.Count(out, `class="product-image"`))
		assert.Contains(t, out, "onerror=")
		assert.Contains(t, out, "&lt;b&gt;Bold&lt;/b&gt; Hat")
		assert.NotContains(t, out, "<b>Bold</b>")
		assert.Contains(t, out, `<td class="price">$30</td>`)
		assert.Contains(t, out, `<button class="active">3 / 3</button>`)
		assert.Contains(t, out, `<button data-page="4" disabled>Next ›</button>`)
		assert.Contains(t, out, `<button data-page="1">« First</button>`)
		assert.Contains(t, out, `<div id="info">Showing 21-25 of 25 products</div>`)
	})

	t.Run("no results", func(t *testing.T) {
		s := browse.New(makeProducts(5), 10).Search("zzz-no-match")
		var buf bytes.Buffer
		require.NoError(t, RenderHTML(&buf, FromState(s, catalog.DefaultImagePolicy())))

		out := buf.String()
		assert.Contains(t, out, `<td colspan="6" style="text-align: center;">No products found</td>`)
		assert.Equal(t, 1, strings.Count(out, "<td"))
	})

	t.Run("error replaces the table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderHTML(&buf, ErrorPage(errors.New("unexpected status 500"))))

		out := buf.String()
		assert.Contains(t, out, `<div class="error">Error: unexpected status 500</div>`)
		assert.NotContains(t, out, "<table>")
		assert.NotContains(t, out, `id="pagination"`)
	})
}
