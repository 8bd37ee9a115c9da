package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"carscope/internal/analytics"
	"carscope/internal/model"
)

func (s Server) analyticsTrack() http.HandlerFunc {
	type request struct {
		DealerID  string `json:"dealer_id"`
		EventType string `json:"event_type"`
		CarBrand  string `json:"car_brand"`
		CarModel  string `json:"car_model"`
		UserID    string `json:"user_id"`
	}
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("analyticsTrack: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if req.DealerID == "" || !model.ValidEventType(req.EventType) {
			s.Logger.Debugf("analyticsTrack: Invalid event, DealerID: %s, EventType: %s", req.DealerID, req.EventType)
			http.Error(w, "dealer_id and a valid event_type are required", http.StatusBadRequest)
			return
		}

		e := model.AnalyticsEvent{
			DealerID:  req.DealerID,
			EventType: req.EventType,
			CarBrand:  req.CarBrand,
			CarModel:  req.CarModel,
			Timestamp: primitive.NewDateTimeFromTime(time.Now()),
			UserID:    req.UserID,
		}
		if err := s.DB.AnalyticsEventInsert(r.Context(), e); err != nil {
			s.Logger.Errorf("analyticsTrack: Error inserting AnalyticsEvent, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusCreated)
	}
}

type analyticsQueryRequest struct {
	DateFilter  string `json:"date_filter"`
	ModelFilter string `json:"model_filter"`
	EventType   string `json:"event_type"`
	SortBy      string `json:"sort_by"`
	SortOrder   string `json:"sort_order"`
}

// analyticsFilter converts API query values to an analytics.Filter.
// Unset values fall back to the defaults: week window, all types, date
// descending.
func analyticsFilter(req analyticsQueryRequest) (analytics.Filter, error) {
	window, err := analytics.ParseWindow(req.DateFilter)
	if err != nil {
		return analytics.Filter{}, err
	}
	sortBy, err := analytics.ParseSortField(req.SortBy)
	if err != nil {
		return analytics.Filter{}, err
	}
	return analytics.Filter{
		Window:    window,
		Query:     req.ModelFilter,
		EventType: req.EventType,
		SortBy:    sortBy,
		Ascending: req.SortOrder == "asc",
	}, nil
}

func (s Server) analyticsQuery() http.HandlerFunc {
	type response struct {
		Events  []model.AnalyticsEvent `json:"events"`
		Summary analytics.Summary      `json:"summary"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("analyticsQuery: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		req := analyticsQueryRequest{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("analyticsQuery: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		filter, err := analyticsFilter(req)
		if err != nil {
			s.Logger.Debugf("analyticsQuery: Invalid filter, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		events, err := s.DB.AnalyticsEventsFindByDealer(r.Context(), uc.user.DealerID)
		if err != nil {
			s.Logger.Errorf("analyticsQuery: Error finding AnalyticsEvents for DealerID: %s, err: %v",
				uc.user.DealerID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		filtered := analytics.FilterEvents(events, filter, time.Now())
		s.writeJsonResponse(w, response{
			Events:  filtered,
			Summary: analytics.Summarize(filtered),
		}, http.StatusOK)
	}
}
