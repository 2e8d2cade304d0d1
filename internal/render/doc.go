// Package render turns a catalog view state into displayable rows, a pagination
// control strip and a range summary, and writes them as a text table, JSON, NDJSON
// or a static HTML page.
//
// Row and control construction is pure; the writers only format what BuildRows and
// BuildControls produce, so every surface shows the same data.
package render
