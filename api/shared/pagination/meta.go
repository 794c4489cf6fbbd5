package pagination

import "github.com/oortega14/jsonapi-responses/api/serialize"

// Paginated is the capability a collection must expose to be treated as a
// page of a larger result set.
type Paginated interface {
	CurrentPage() int
	TotalPages() int
	TotalCount() int
}

// PageSized is optionally implemented by paginated collections that also
// know their page size.
type PageSized interface {
	PerPage() int
}

// IsPaginated reports whether the record carries pagination capabilities.
func IsPaginated(record any) bool {
	_, ok := record.(Paginated)
	return ok
}

// Meta builds the pagination metadata map for a paginated record. Absent
// fields are omitted, never zeroed. Caller-supplied context meta is merged
// on top, so its keys win on collision.
func Meta(record any, sctx serialize.Context) map[string]any {
	meta := map[string]any{}

	if page, ok := record.(Paginated); ok {
		meta["current_page"] = page.CurrentPage()
		meta["total_pages"] = page.TotalPages()
		meta["total_count"] = page.TotalCount()
	}

	if sized, ok := record.(PageSized); ok {
		meta["per_page"] = sized.PerPage()
	} else if perPage, ok := sctx.PerPage(); ok {
		meta["per_page"] = perPage
	}

	for k, v := range sctx.Meta() {
		meta[k] = v
	}

	return meta
}
