package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/comitanigiacomo/floor-ceiling-tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Arithmetic(t *testing.T) {
	d := domain.MustParseDate("2024-02-28")

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, 2, d.AddDays(2).DaysSince(d))
	assert.Equal(t, -7, d.AddDays(-7).DaysSince(d))
	assert.Equal(t, time.Wednesday, d.Weekday())

	assert.True(t, d.Within(d, d))
	assert.False(t, d.AddDays(1).Within(d.AddDays(-1), d))
}

func TestParseDate(t *testing.T) {
	t.Run("Error: Not a calendar date", func(t *testing.T) {
		_, err := domain.ParseDate("2024-13-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Timestamp uses the given location", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)

		d, err := domain.ParseDateParam("2024-05-31T23:30:00Z", loc)

		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", d.String())
	})

	t.Run("Plain date ignores the location", func(t *testing.T) {
		d, err := domain.ParseDateParam("2024-05-31", time.UTC)

		require.NoError(t, err)
		assert.Equal(t, "2024-05-31", d.String())
	})
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Day domain.Date `json:"day"`
	}

	data, err := json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":null}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-01-15"}`), &w))
	assert.Equal(t, domain.NewDate(2024, time.January, 15), w.Day)

	assert.Error(t, json.Unmarshal([]byte(`{"day":"yesterday"}`), &w))
}

func TestDate_SQL(t *testing.T) {
	var d domain.Date

	require.NoError(t, d.Scan("2024-03-10"))
	assert.Equal(t, "2024-03-10", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-11T00:00:00Z")))
	assert.Equal(t, "2024-03-11", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-12", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = domain.MustParseDate("2024-03-10").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", v)

	assert.Error(t, d.Scan(42))
}
