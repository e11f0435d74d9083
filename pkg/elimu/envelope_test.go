package elimu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"data wrapped", `{"data": {"book": {"id": "book-1", "title": "Kintu"}}}`},
		{"named member", `{"book": {"id": "book-1", "title": "Kintu"}}`},
		{"bare object", `{"id": "book-1", "title": "Kintu"}`},
		{"data wrapped bare", `{"data": {"id": "book-1", "title": "Kintu"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var book Book
			require.NoError(t, decodeObject(json.RawMessage(tt.raw), "book", &book))
			assert.Equal(t, "book-1", book.ID)
			assert.Equal(t, "Kintu", book.Title)
		})
	}
}

func TestDecodeObject_NullMemberFallsBack(t *testing.T) {
	// A null named member means the payload itself is the object
	raw := json.RawMessage(`{"book": null, "id": "book-2"}`)

	var book Book
	require.NoError(t, decodeObject(raw, "book", &book))
	assert.Equal(t, "book-2", book.ID)
}

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantTotal  int
		wantPaging bool
	}{
		{
			name: "bare array",
			raw:  `[{"id": "a-1"}, {"id": "a-2"}]`,
		},
		{
			name: "named member without pagination",
			raw:  `{"authors": [{"id": "a-1"}, {"id": "a-2"}]}`,
		},
		{
			name:       "nested pagination",
			raw:        `{"data": {"authors": [{"id": "a-1"}, {"id": "a-2"}], "pagination": {"page": 2, "limit": 2, "total": 9, "totalPages": 5}}}`,
			wantTotal:  9,
			wantPaging: true,
		},
		{
			name:       "flat pagination",
			raw:        `{"items": [{"id": "a-1"}, {"id": "a-2"}], "page": 1, "limit": 20, "total": 2, "totalPages": 1}`,
			wantTotal:  2,
			wantPaging: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authors []*Author
			pg, err := decodeList(json.RawMessage(tt.raw), "authors", &authors)
			require.NoError(t, err)
			assert.Len(t, authors, 2)
			if tt.wantPaging {
				require.NotNil(t, pg)
				assert.Equal(t, tt.wantTotal, pg.Total)
			} else {
				assert.Nil(t, pg)
			}
		})
	}
}

func TestDecodeList_MissingMember(t *testing.T) {
	var authors []*Author
	_, err := decodeList(json.RawMessage(`{"writers": []}`), "authors", &authors)
	assert.Error(t, err)
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StringList
	}{
		{"array", `["fiction", "classic"]`, StringList{"fiction", "classic"}},
		{"encoded array", `"[\"fiction\", \"classic\"]"`, StringList{"fiction", "classic"}},
		{"plain string", `"fiction"`, StringList{"fiction"}},
		{"empty string", `""`, nil},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &l))
			assert.Equal(t, tt.want, l)
		})
	}
}
