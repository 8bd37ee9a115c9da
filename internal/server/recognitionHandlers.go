package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carscope/internal/model"
	"carscope/internal/recognition"
)

// decodeImage accepts either plain base64 or a data URL
// ("data:image/jpeg;base64,...").
func decodeImage(s string) ([]byte, error) {
	if i := strings.Index(s, ","); i >= 0 && strings.HasPrefix(s, "data:") {
		s = s[i+1:]
	}
	img, err := base64.StdEncoding.DecodeString(s)
	return img, errors.Wrap(err, "error decoding base64 image")
}

func (s Server) recognitionCheck() http.HandlerFunc {
	type request struct {
		Image string `json:"image"`
	}
	type response model.RecognitionResult
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("recognitionCheck: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		req := request{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("recognitionCheck: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		img, err := decodeImage(req.Image)
		if err != nil {
			s.Logger.Debugf("recognitionCheck: Bad image payload, err: %v", err)
			http.Error(w, "Invalid image", http.StatusBadRequest)
			return
		}

		res, err := s.Recognizer.Recognize(r.Context(), img)
		if err != nil {
			if errors.Is(err, recognition.ErrEmptyImage) {
				s.Logger.Debugf("recognitionCheck: Empty image from UserID: %s", uc.user.ID.Hex())
				http.Error(w, "Invalid image", http.StatusBadRequest)
				return
			}
			s.Logger.Errorf("recognitionCheck: Error recognizing image, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		res.UserID = uc.user.ID
		res.Timestamp = primitive.NewDateTimeFromTime(time.Now())
		id, err := s.DB.RecognitionInsert(r.Context(), res)
		if err != nil {
			s.Logger.Errorf("recognitionCheck: Error inserting RecognitionResult, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		resID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			s.Logger.Errorf("recognitionCheck: Error creating ObjectID from hex: %s, err: %v", id, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		res.ID = resID
		s.writeJsonResponse(w, response(res), http.StatusOK)
	}
}

func (s Server) recognitionHistory() http.HandlerFunc {
	type response struct {
		History []model.RecognitionResult `json:"history"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("recognitionHistory: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		rs, err := s.DB.RecognitionsFindByUser(r.Context(), uc.user.ID)
		if err != nil {
			s.Logger.Errorf("recognitionHistory: Error finding RecognitionResults for UserID: %s, err: %v",
				uc.user.ID.Hex(), err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{History: rs}, http.StatusOK)
	}
}
