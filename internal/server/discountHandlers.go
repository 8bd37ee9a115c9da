package server

import (
	"encoding/json"
	"net/http"

	"carscope/internal/model"
)

func (s Server) discountCheck() http.HandlerFunc {
	type request struct {
		CarBrand string `json:"car_brand"`
		CarModel string `json:"car_model"`
	}
	type response struct {
		Offers []model.DealerOffer `json:"offers"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("discountCheck: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if req.CarBrand == "" {
			s.Logger.Debug("discountCheck: Missing car_brand")
			http.Error(w, "car_brand is required", http.StatusBadRequest)
			return
		}

		offers := s.Discounts.DealerOffers(req.CarBrand, req.CarModel)
		s.Logger.Debugf("discountCheck: Found %d offer(s) for brand: %s, model: %s",
			len(offers), req.CarBrand, req.CarModel)
		s.writeJsonResponse(w, response{Offers: offers}, http.StatusOK)
	}
}
