package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carscope/internal/analytics"
)

func TestAnalyticsFilter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := analyticsFilter(analyticsQueryRequest{})
		require.NoError(t, err)
		assert.Equal(t, analytics.WindowWeek, f.Window)
		assert.Equal(t, analytics.SortByDate, f.SortBy)
		assert.False(t, f.Ascending)
		assert.Empty(t, f.Query)
		assert.Empty(t, f.EventType)
	})

	t.Run("all fields set", func(t *testing.T) {
		f, err := analyticsFilter(analyticsQueryRequest{
			DateFilter:  "month",
			ModelFilter: "Camry",
			EventType:   "call",
			SortBy:      "model",
			SortOrder:   "asc",
		})
		require.NoError(t, err)
		assert.Equal(t, analytics.WindowMonth, f.Window)
		assert.Equal(t, "Camry", f.Query)
		assert.Equal(t, "call", f.EventType)
		assert.Equal(t, analytics.SortByModel, f.SortBy)
		assert.True(t, f.Ascending)
	})

	t.Run("descending unless asc", func(t *testing.T) {
		f, err := analyticsFilter(analyticsQueryRequest{SortOrder: "desc"})
		require.NoError(t, err)
		assert.False(t, f.Ascending)
	})

	t.Run("invalid date filter", func(t *testing.T) {
		_, err := analyticsFilter(analyticsQueryRequest{DateFilter: "yesterday"})
		assert.Error(t, err)
	})

	t.Run("invalid sort field", func(t *testing.T) {
		_, err := analyticsFilter(analyticsQueryRequest{SortBy: "dealer"})
		assert.Error(t, err)
	})
}
