package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/filmorate/pkg/date"
)

func TestDate_Parse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		isValid bool
	}{
		{"valid_date", "1895-12-28", "1895-12-28", true},
		{"leap_day", "2020-02-29", "2020-02-29", true},
		{"invalid_format", "28.12.1895", "", false},
		{"not_a_date", "yesterday", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := date.Parse(tt.input)

			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, d.String())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := date.New(1967, time.March, 25)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1967-03-25"`, string(raw))

	var decoded date.Date
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, d.Equal(decoded.Time))
}

func TestDate_JSONNull(t *testing.T) {
	var d date.Date

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	var decoded date.Date
	require.NoError(t, json.Unmarshal([]byte("null"), &decoded))
	assert.True(t, decoded.IsZero())
}

func TestDate_Scan(t *testing.T) {
	var d date.Date

	// DATE columns arrive as time.Time from the driver.
	require.NoError(t, d.Scan(time.Date(2000, time.July, 1, 15, 4, 5, 0, time.Local)))
	assert.Equal(t, "2000-07-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_OfTruncates(t *testing.T) {
	instant := time.Date(2024, time.May, 9, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2024-05-09", date.Of(instant).String())
}
