// Package analytics filters, sorts and summarizes dealer contact events.
// Every function is a pure view over the event list: the reference time is
// an explicit parameter and no event is ever mutated.
package analytics

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"carscope/internal/misc"
	"carscope/internal/model"
)

type Window int

const (
	WindowWeek Window = iota
	WindowToday
	WindowMonth
	WindowAll
)

type SortField int

const (
	SortByDate SortField = iota
	SortByModel
	SortByType
)

// ParseWindow maps an API value to a date window. An empty value selects
// the default week window.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "", "week":
		return WindowWeek, nil
	case "today":
		return WindowToday, nil
	case "month":
		return WindowMonth, nil
	case "all":
		return WindowAll, nil
	}
	return -1, errors.Errorf("invalid date window: %s", s)
}

// ParseSortField maps an API value to a sort field. An empty value selects
// the default date field.
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "", "date":
		return SortByDate, nil
	case "model":
		return SortByModel, nil
	case "type":
		return SortByType, nil
	}
	return -1, errors.Errorf("invalid sort field: %s", s)
}

type Filter struct {
	Window    Window
	Query     string
	EventType string
	SortBy    SortField
	Ascending bool
}

// FilterEvents applies the date window, free-text and event type filters
// relative to now, then sorts the result. The input slice is left intact.
func FilterEvents(events []model.AnalyticsEvent, f Filter, now time.Time) []model.AnalyticsEvent {
	filtered := make([]model.AnalyticsEvent, 0, len(events))
	for _, e := range events {
		if matchesWindow(e, f.Window, now) && matchesQuery(e, f.Query) && matchesType(e, f.EventType) {
			filtered = append(filtered, e)
		}
	}
	sortEvents(filtered, f.SortBy, f.Ascending)
	return filtered
}

func matchesWindow(e model.AnalyticsEvent, w Window, now time.Time) bool {
	ts := e.Timestamp.Time()
	switch w {
	case WindowToday:
		y1, m1, d1 := ts.In(now.Location()).Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case WindowWeek:
		return !ts.Before(now.AddDate(0, 0, -7))
	case WindowMonth:
		return !ts.Before(now.AddDate(0, 0, -30))
	}
	return true
}

func matchesQuery(e model.AnalyticsEvent, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.CarBrand), q) ||
		strings.Contains(strings.ToLower(e.CarModel), q)
}

func matchesType(e model.AnalyticsEvent, eventType string) bool {
	if eventType == "" || eventType == "all" {
		return true
	}
	return e.EventType == eventType
}

func sortEvents(events []model.AnalyticsEvent, field SortField, ascending bool) {
	less := func(a, b model.AnalyticsEvent) bool {
		switch field {
		case SortByModel:
			return a.CarBrand+" "+a.CarModel < b.CarBrand+" "+b.CarModel
		case SortByType:
			return a.EventType < b.EventType
		}
		return a.Timestamp < b.Timestamp
	}
	slices.SortStableFunc(events, func(a, b model.AnalyticsEvent) bool {
		if ascending {
			return less(a, b)
		}
		return less(b, a)
	})
}

type GroupStat struct {
	Key           string `json:"key"`
	Calls         int    `json:"calls"`
	WebsiteVisits int    `json:"website_visits"`
	Total         int    `json:"total"`
}

type Summary struct {
	TotalEvents       int         `json:"total_events"`
	Calls             int         `json:"calls"`
	WebsiteVisits     int         `json:"website_visits"`
	ConversionPercent int         `json:"conversion_percent"`
	ModelStats        []GroupStat `json:"model_stats"`
	TopModels         []GroupStat `json:"top_models"`
}

// Summarize computes counts, the call-to-visit conversion percentage and
// per-"brand model" group statistics over an already filtered event set.
// Groups keep first-seen order; TopModels holds the five largest groups by
// total with ties left in first-seen order.
func Summarize(events []model.AnalyticsEvent) Summary {
	sum := Summary{TotalEvents: len(events)}

	groupIdx := map[string]int{}
	for _, e := range events {
		key := e.CarBrand + " " + e.CarModel
		i, ok := groupIdx[key]
		if !ok {
			i = len(sum.ModelStats)
			groupIdx[key] = i
			sum.ModelStats = append(sum.ModelStats, GroupStat{Key: key})
		}
		g := &sum.ModelStats[i]
		switch e.EventType {
		case model.EventTypeCall:
			sum.Calls++
			g.Calls++
		case model.EventTypeWebsiteVisit:
			sum.WebsiteVisits++
			g.WebsiteVisits++
		}
		g.Total++
	}

	sum.ConversionPercent = misc.Percent(sum.WebsiteVisits, sum.Calls)

	top := make([]GroupStat, len(sum.ModelStats))
	copy(top, sum.ModelStats)
	slices.SortStableFunc(top, func(a, b GroupStat) bool {
		return a.Total > b.Total
	})
	sum.TopModels = top[:misc.Min(5, len(top))]
	return sum
}
