package render

import (
	"fmt"
	"html/template"
	"io"
)

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Product catalog</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; vertical-align: top; }
th { background: #f4f4f4; }
.product-image { width: 80px; height: 80px; object-fit: cover; }
.price { font-weight: bold; white-space: nowrap; }
.category { background: #eef; border-radius: 4px; padding: 2px 6px; }
.error { color: #b00; padding: 1em; }
#pagination button { margin: 0 2px; }
#pagination button.active { font-weight: bold; }
</style>
</head>
<body>
<div id="table-container">
{{- if .Err}}
<div class="error">{{.ErrorText}}</div>
{{- else}}
<table>
<thead>
<tr>{{range .Columns}}<th>{{$.Header .}}</th>{{end}}</tr>
</thead>
<tbody>
{{- if .Empty}}
<tr><td colspan="{{len .Columns}}" style="text-align: center;">{{.NoResults}}</td></tr>
{{- end}}
{{- range .Rows}}
<tr>
<td>{{.ID}}</td>
<td><img src="{{.Image}}" alt="{{.Title}}" class="product-image" onerror="this.onerror=null; this.src='{{.FallbackImage}}';"></td>
<td>{{.Title}}</td>
<td class="price">{{.Price}}</td>
<td><span class="category">{{.Category}}</span></td>
<td>{{.Description}}</td>
</tr>
{{- end}}
</tbody>
</table>
{{- end}}
</div>
{{- if not .Err}}
<div id="pagination">
{{- range .Controls.Buttons}}
{{- if .Current}}
<button class="active">{{.Label}}</button>
{{- else}}
<button data-page="{{.Target}}"{{if .Disabled}} disabled{{end}}>{{.Label}}</button>
{{- end}}
{{- end}}
</div>
<div id="info">{{.Summary}}</div>
{{- end}}
</body>
</html>
`

//nolint:gochecknoglobals // Parsed once; templates are safe for concurrent use.
var htmlTemplate = template.Must(template.New("catalog").Parse(htmlPage))

type htmlView struct {
	Page

	Columns   []string
	NoResults string
}

// RenderHTML writes page as a standalone HTML document. A page with an error renders
// an error block in place of the table and omits the pagination strip.
func RenderHTML(w io.Writer, page Page) error {
	view := htmlView{Page: page, Columns: Columns, NoResults: NoResultsMessage}
	if err := htmlTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}
