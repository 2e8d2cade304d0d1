// Package pagination provides the paging and sorting primitives behind the catalog view.
//
// This package contains the logic shared by the interactive browser and the list command:
//   - Params: page/page-size/sort flag values and their validation
//   - Meta: metadata describing one page of a result set, including the item-range summary
//   - SortState and ProductSorter: the two sortable fields and their toggle semantics
//
// Everything here is pure; callers own the working set and pass it in.
package pagination
