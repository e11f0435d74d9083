package elimu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Values(t *testing.T) {
	params := &ListParams{
		Search:    "golang",
		Filters:   map[string]string{"role": "editor", "status": ""},
		SortBy:    "createdAt",
		SortOrder: SortDesc,
		Page:      2,
		Limit:     25,
	}

	vals := params.Values()
	assert.Equal(t, "golang", vals.Get("search"))
	assert.Equal(t, "editor", vals.Get("role"))
	assert.Equal(t, "createdAt", vals.Get("sortBy"))
	assert.Equal(t, "desc", vals.Get("sortOrder"))
	assert.Equal(t, "2", vals.Get("page"))
	assert.Equal(t, "25", vals.Get("limit"))
	assert.False(t, vals.Has("status"), "empty filters are dropped")
}

func TestListParams_DefaultSortOrder(t *testing.T) {
	params := &ListParams{SortBy: "title"}
	assert.Equal(t, "asc", params.Values().Get("sortOrder"))
}

func TestListParams_Path(t *testing.T) {
	var nilParams *ListParams
	assert.Equal(t, "/books", nilParams.path("books"))

	params := &ListParams{Page: 1, Limit: 10}
	assert.Equal(t, "/books?limit=10&page=1", params.path("books"))
}

func TestListParams_CanonicalEncoding(t *testing.T) {
	a := &ListParams{Search: "math", Page: 3}
	b := &ListParams{Page: 3, Search: "math"}
	assert.Equal(t, a.path("articles"), b.path("articles"))
}
