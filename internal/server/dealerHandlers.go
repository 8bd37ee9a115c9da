package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"carscope/internal/database"
	"carscope/internal/model"
)

func (s Server) dealerGetAll() http.HandlerFunc {
	type response struct {
		Dealers []model.Dealer `json:"dealers"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ds, err := s.DB.DealersFindAll(r.Context())
		if err != nil {
			s.Logger.Errorf("dealerGetAll: Error finding Dealers, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Dealers: ds}, http.StatusOK)
	}
}

func (s Server) dealerGetByBrand() http.HandlerFunc {
	type response struct {
		Dealers []model.Dealer `json:"dealers"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		brand := mux.Vars(r)["brand"]
		ds, err := s.DB.DealersFindByBrand(r.Context(), brand)
		if err != nil {
			s.Logger.Errorf("dealerGetByBrand: Error finding Dealers with brand: %s, err: %v", brand, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Dealers: ds}, http.StatusOK)
	}
}

func (s Server) dealerAdd() http.HandlerFunc {
	type request model.Dealer
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("dealerAdd: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		d := model.Dealer(req)
		if d.ID == "" || d.Name == "" || d.Brand == "" {
			s.Logger.Debugf("dealerAdd: Missing required Dealer fields, ID: %s", d.ID)
			http.Error(w, "id, name and brand are required", http.StatusBadRequest)
			return
		}

		if err := s.DB.DealerInsert(r.Context(), d); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				s.Logger.Debugf("dealerAdd: Error duplicate key when inserting Dealer, err: %v", err)
				http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
				return
			}
			s.Logger.Errorf("dealerAdd: Error inserting Dealer, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusCreated)
	}
}

func (s Server) dealerUpdate() http.HandlerFunc {
	type request model.Dealer
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("dealerUpdate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		if err := s.DB.DealerUpdate(r.Context(), model.Dealer(req)); err != nil {
			if errors.Is(err, database.ErrNoDocumentsModified) {
				s.Logger.Debugf("dealerUpdate: Dealer not found, ID: %s", req.ID)
				http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
				return
			}
			s.Logger.Errorf("dealerUpdate: Error updating Dealer, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) dealerRemove() http.HandlerFunc {
	type request struct {
		DealerID string `json:"dealer_id"`
	}
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("dealerRemove: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		if err := s.DB.DealerRemove(r.Context(), req.DealerID); err != nil {
			if errors.Is(err, database.ErrNoDocumentsModified) {
				s.Logger.Debugf("dealerRemove: Dealer not found, ID: %s", req.DealerID)
				http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
				return
			}
			s.Logger.Errorf("dealerRemove: Error removing Dealer, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}
