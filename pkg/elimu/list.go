package elimu

import (
	"net/url"
	"strconv"
)

// SortOrder is a sort direction on list queries
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListParams narrows a collection query. Every field that affects the request
// also takes part in the cache key, so distinct combinations never collide.
type ListParams struct {
	// Search is a free-text search term
	Search string

	// Filters are category-style exact filters (role, status, type, ...)
	Filters map[string]string

	// SortBy names the sort field; SortOrder its direction
	SortBy    string
	SortOrder SortOrder

	// Page is 1-based; Limit is the page size
	Page  int
	Limit int
}

// Values encodes the params as query parameters. Encoding is canonical:
// url.Values.Encode sorts by key.
func (p *ListParams) Values() url.Values {
	vals := url.Values{}
	if p == nil {
		return vals
	}

	if p.Search != "" {
		vals.Set("search", p.Search)
	}
	for k, v := range p.Filters {
		if v != "" {
			vals.Set(k, v)
		}
	}
	if p.SortBy != "" {
		vals.Set("sortBy", p.SortBy)
		order := p.SortOrder
		if order == "" {
			order = SortAsc
		}
		vals.Set("sortOrder", string(order))
	}
	if p.Page > 0 {
		vals.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		vals.Set("limit", strconv.Itoa(p.Limit))
	}
	return vals
}

// path renders the request path for a resource collection
func (p *ListParams) path(resource string) string {
	qs := p.Values().Encode()
	if qs == "" {
		return "/" + resource
	}
	return "/" + resource + "?" + qs
}
