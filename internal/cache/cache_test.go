package cache

import (
	"encoding/json"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_CanonicalOrder(t *testing.T) {
	a := url.Values{}
	a.Set("search", "golang")
	a.Set("page", "2")

	b := url.Values{}
	b.Set("page", "2")
	b.Set("search", "golang")

	assert.Equal(t, Key("jobs", "", a), Key("jobs", "", b))
}

func TestKey_DistinctParams(t *testing.T) {
	page1 := url.Values{"page": {"1"}}
	page2 := url.Values{"page": {"2"}}

	assert.NotEqual(t, Key("books", "", page1), Key("books", "", page2))
	assert.NotEqual(t, Key("books", "", nil), Key("books", "", page1))
	assert.NotEqual(t, Key("books", "42", nil), Key("books", "", nil))
}

func TestInvalidate_RemovesAllResourceEntries(t *testing.T) {
	c := New()
	c.Set("books", json.RawMessage(`[]`))
	c.Set("books?page=1", json.RawMessage(`[]`))
	c.Set("books?page=2&search=go", json.RawMessage(`[]`))
	c.Set("books/42", json.RawMessage(`{}`))
	c.Set("authors", json.RawMessage(`[]`))
	c.Set("bookshelves", json.RawMessage(`[]`))

	removed := c.Invalidate("books")

	assert.Equal(t, 4, removed)
	_, ok := c.Get("authors")
	assert.True(t, ok, "other resources must survive")
	_, ok = c.Get("bookshelves")
	assert.True(t, ok, "prefix match must not leak into sibling resource names")
	_, ok = c.Get("books?page=1")
	assert.False(t, ok)
	_, ok = c.Get("books/42")
	assert.False(t, ok)
}

func TestInvalidate_Absent(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Invalidate("books"))
}

func TestConcurrentInvalidate(t *testing.T) {
	c := New()
	c.Set("jobs?page=1", json.RawMessage(`[]`))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Invalidate("jobs")
			c.Set("jobs?page=1", json.RawMessage(`[]`))
			c.Get("jobs?page=1")
		}()
	}
	wg.Wait()
}

func TestGetSet(t *testing.T) {
	c := New()

	_, ok := c.Get("videos")
	assert.False(t, ok)

	c.Set("videos", json.RawMessage(`{"videos":[]}`))
	val, ok := c.Get("videos")
	assert.True(t, ok)
	assert.JSONEq(t, `{"videos":[]}`, string(val))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}
