// Package catalog defines the product record served by the catalog endpoint and the
// pieces that deal with it directly:
//   - Product: the decoded record, tolerant of the loose shapes the upstream API returns
//   - Loader: the single HTTP fetch of the full catalog
//   - ImagePolicy: first-match selection of a displayable image URL
//
// Nothing in this package keeps state between calls; the working set, paging and
// sorting live in the browse package.
package catalog
