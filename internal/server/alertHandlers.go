package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"carscope/internal/model"
)

func (s Server) alertAdd() http.HandlerFunc {
	type request struct {
		CarBrand       string `json:"car_brand"`
		CarModel       string `json:"car_model"`
		TargetDiscount int    `json:"target_discount"`
	}
	type response struct {
		AlertID string `json:"alert_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("alertAdd: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		req := request{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("alertAdd: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if req.CarBrand == "" || req.CarModel == "" {
			s.Logger.Debug("alertAdd: Missing car_brand or car_model")
			http.Error(w, "car_brand and car_model are required", http.StatusBadRequest)
			return
		}
		if req.TargetDiscount < model.MinTargetDiscount {
			s.Logger.Debugf("alertAdd: target_discount too low: %d", req.TargetDiscount)
			http.Error(w, fmt.Sprintf("target_discount must be at least %d", model.MinTargetDiscount), http.StatusBadRequest)
			return
		}

		id, err := s.DB.AlertInsert(r.Context(), model.DiscountAlert{
			UserID:         uc.user.ID,
			CarBrand:       req.CarBrand,
			CarModel:       req.CarModel,
			TargetDiscount: req.TargetDiscount,
		})
		if err != nil {
			s.Logger.Errorf("alertAdd: Error inserting DiscountAlert, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{AlertID: id}, http.StatusCreated)
	}
}

func (s Server) alertGet(activeOnly bool) http.HandlerFunc {
	type response struct {
		Alerts []model.DiscountAlert `json:"alerts"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("alertGet: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		var alerts []model.DiscountAlert
		if activeOnly {
			alerts, err = s.DB.AlertsFindActiveByUser(r.Context(), uc.user.ID)
		} else {
			alerts, err = s.DB.AlertsFindByUser(r.Context(), uc.user.ID)
		}
		if err != nil {
			s.Logger.Errorf("alertGet: Error finding DiscountAlerts for UserID: %s, err: %v", uc.user.ID.Hex(), err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Alerts: alerts}, http.StatusOK)
	}
}

func (s Server) alertRemove() http.HandlerFunc {
	type request struct {
		AlertID string `json:"alert_id"`
	}
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("alertRemove: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		req := request{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("alertRemove: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		alertID, err := primitive.ObjectIDFromHex(req.AlertID)
		if err != nil {
			s.Logger.Debugf("alertRemove: Bad alert_id: %s, err: %v", req.AlertID, err)
			http.Error(w, "Invalid alert_id", http.StatusBadRequest)
			return
		}

		if err = s.DB.AlertRemove(r.Context(), uc.user.ID, alertID); err != nil {
			s.Logger.Errorf("alertRemove: Error removing DiscountAlert with ID: %s, err: %v", req.AlertID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}
