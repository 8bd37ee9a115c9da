package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carscope/internal/model"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func event(eventType, brand, carModel string, ts time.Time) model.AnalyticsEvent {
	return model.AnalyticsEvent{
		DealerID:  "toyota-1",
		EventType: eventType,
		CarBrand:  brand,
		CarModel:  carModel,
		Timestamp: primitive.NewDateTimeFromTime(ts),
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowWeek, w)

	w, err = ParseWindow("all")
	require.NoError(t, err)
	assert.Equal(t, WindowAll, w)

	_, err = ParseWindow("year")
	assert.Error(t, err)
}

func TestParseSortField(t *testing.T) {
	f, err := ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, SortByDate, f)

	f, err = ParseSortField("type")
	require.NoError(t, err)
	assert.Equal(t, SortByType, f)

	_, err = ParseSortField("dealer")
	assert.Error(t, err)
}

func TestFilterEventsWindows(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeCall, "BMW", "X5", testNow.Add(-2*time.Hour)),
		event(model.EventTypeCall, "BMW", "X5", testNow.AddDate(0, 0, -3)),
		event(model.EventTypeCall, "BMW", "X5", testNow.AddDate(0, 0, -20)),
		event(model.EventTypeCall, "BMW", "X5", testNow.AddDate(0, 0, -40)),
	}
	tests := []struct {
		name     string
		window   Window
		expected int
	}{
		{name: "today", window: WindowToday, expected: 1},
		{name: "week", window: WindowWeek, expected: 2},
		{name: "month", window: WindowMonth, expected: 3},
		{name: "all", window: WindowAll, expected: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEvents(events, Filter{Window: tt.window}, testNow)
			assert.Len(t, got, tt.expected)
		})
	}
}

func TestFilterEventsQuery(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeCall, "Toyota", "Camry", testNow),
		event(model.EventTypeCall, "BMW", "X5", testNow),
		event(model.EventTypeCall, "Mercedes-Benz", "C-Class", testNow),
	}

	got := FilterEvents(events, Filter{Window: WindowAll, Query: "camry"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "Toyota", got[0].CarBrand)

	// Matches brand as well as model.
	got = FilterEvents(events, Filter{Window: WindowAll, Query: "MERC"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "C-Class", got[0].CarModel)

	got = FilterEvents(events, Filter{Window: WindowAll, Query: ""}, testNow)
	assert.Len(t, got, 3)
}

func TestFilterEventsType(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeCall, "BMW", "X5", testNow),
		event(model.EventTypeWebsiteVisit, "BMW", "X5", testNow),
	}

	got := FilterEvents(events, Filter{Window: WindowAll, EventType: model.EventTypeCall}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, model.EventTypeCall, got[0].EventType)

	assert.Len(t, FilterEvents(events, Filter{Window: WindowAll, EventType: "all"}, testNow), 2)
}

func TestFilterEventsSorting(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeWebsiteVisit, "Toyota", "Camry", testNow.Add(-1*time.Hour)),
		event(model.EventTypeCall, "Audi", "A4", testNow.Add(-3*time.Hour)),
		event(model.EventTypeCall, "BMW", "X5", testNow.Add(-2*time.Hour)),
	}

	byDateDesc := FilterEvents(events, Filter{Window: WindowAll}, testNow)
	require.Len(t, byDateDesc, 3)
	assert.Equal(t, "Toyota", byDateDesc[0].CarBrand)
	assert.Equal(t, "Audi", byDateDesc[2].CarBrand)

	byModelAsc := FilterEvents(events, Filter{Window: WindowAll, SortBy: SortByModel, Ascending: true}, testNow)
	assert.Equal(t, "Audi", byModelAsc[0].CarBrand)
	assert.Equal(t, "Toyota", byModelAsc[2].CarBrand)

	byTypeAsc := FilterEvents(events, Filter{Window: WindowAll, SortBy: SortByType, Ascending: true}, testNow)
	assert.Equal(t, model.EventTypeCall, byTypeAsc[0].EventType)
	assert.Equal(t, model.EventTypeWebsiteVisit, byTypeAsc[2].EventType)
}

func TestFilterEventsIdempotent(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeCall, "BMW", "X5", testNow.Add(-2*time.Hour)),
		event(model.EventTypeWebsiteVisit, "Toyota", "Camry", testNow.Add(-1*time.Hour)),
		event(model.EventTypeCall, "Audi", "A4", testNow.Add(-3*time.Hour)),
	}
	f := Filter{Window: WindowAll, EventType: "all"}

	once := FilterEvents(events, f, testNow)
	twice := FilterEvents(once, f, testNow)
	assert.Equal(t, once, twice)
}

func TestFilterEventsLeavesInputIntact(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeCall, "BMW", "X5", testNow.Add(-2*time.Hour)),
		event(model.EventTypeCall, "Audi", "A4", testNow.Add(-1*time.Hour)),
	}
	FilterEvents(events, Filter{Window: WindowAll}, testNow)
	assert.Equal(t, "BMW", events[0].CarBrand)
}

func TestSummarize(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeCall, "Toyota", "Camry", testNow),
		event(model.EventTypeCall, "Toyota", "Camry", testNow),
		event(model.EventTypeWebsiteVisit, "Toyota", "Camry", testNow),
		event(model.EventTypeWebsiteVisit, "BMW", "X5", testNow),
	}

	sum := Summarize(events)
	assert.Equal(t, 4, sum.TotalEvents)
	assert.Equal(t, 2, sum.Calls)
	assert.Equal(t, 2, sum.WebsiteVisits)
	assert.Equal(t, 100, sum.ConversionPercent)

	require.Len(t, sum.ModelStats, 2)
	assert.Equal(t, GroupStat{Key: "Toyota Camry", Calls: 2, WebsiteVisits: 1, Total: 3}, sum.ModelStats[0])
	assert.Equal(t, GroupStat{Key: "BMW X5", WebsiteVisits: 1, Total: 1}, sum.ModelStats[1])

	require.Len(t, sum.TopModels, 2)
	assert.Equal(t, "Toyota Camry", sum.TopModels[0].Key)
}

func TestSummarizeNoCalls(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeWebsiteVisit, "BMW", "X5", testNow),
	}
	sum := Summarize(events)
	assert.Equal(t, 0, sum.Calls)
	assert.Equal(t, 0, sum.ConversionPercent)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Equal(t, 0, sum.TotalEvents)
	assert.Equal(t, 0, sum.ConversionPercent)
	assert.Empty(t, sum.ModelStats)
	assert.Empty(t, sum.TopModels)
}

func TestSummarizeTopModelsTiesKeepFirstSeenOrder(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeCall, "Audi", "A4", testNow),
		event(model.EventTypeCall, "BMW", "X5", testNow),
		event(model.EventTypeCall, "Kia", "Rio", testNow),
		event(model.EventTypeCall, "Toyota", "Camry", testNow),
		event(model.EventTypeCall, "Hyundai", "Solaris", testNow),
		event(model.EventTypeCall, "Volkswagen", "Golf", testNow),
	}
	sum := Summarize(events)
	require.Len(t, sum.TopModels, 5)
	assert.Equal(t, "Audi A4", sum.TopModels[0].Key)
	assert.Equal(t, "Hyundai Solaris", sum.TopModels[4].Key)
}

// Two calls and one website visit for a Camry inside the week window plus
// stale events must reduce to the three recent events with 50% conversion.
func TestWeekWindowCamryScenario(t *testing.T) {
	events := []model.AnalyticsEvent{
		event(model.EventTypeCall, "Toyota", "Camry", testNow.AddDate(0, 0, -1)),
		event(model.EventTypeCall, "Toyota", "Camry", testNow.AddDate(0, 0, -2)),
		event(model.EventTypeWebsiteVisit, "Toyota", "Camry", testNow.AddDate(0, 0, -3)),
	}
	for i := 0; i < 5; i++ {
		events = append(events, event(model.EventTypeCall, "Toyota", "Camry", testNow.AddDate(0, 0, -31-i)))
	}

	filtered := FilterEvents(events, Filter{Window: WindowWeek, Query: "Camry"}, testNow)
	require.Len(t, filtered, 3)

	sum := Summarize(filtered)
	assert.Equal(t, 2, sum.Calls)
	assert.Equal(t, 1, sum.WebsiteVisits)
	assert.Equal(t, 50, sum.ConversionPercent)
}
