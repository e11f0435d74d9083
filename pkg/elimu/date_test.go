package elimu

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"date only", `"2026-12-31"`, "2026-12-31"},
		{"rfc3339", `"2026-12-31T10:30:00Z"`, "2026-12-31"},
		{"timestamp without zone", `"2026-12-31T10:30:00"`, "2026-12-31"},
		{"null", `null`, ""},
		{"empty", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &d))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"31/12/2026"`), &d))
}

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2026, 12, 31, 15, 4, 5, 0, time.UTC))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-12-31"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDate_Passed(t *testing.T) {
	assert.True(t, NewDate(time.Now().AddDate(0, 0, -2)).Passed())
	assert.False(t, NewDate(time.Now().AddDate(0, 0, 2)).Passed())
	assert.False(t, Date{}.Passed())
}
