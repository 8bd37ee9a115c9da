package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carscope/internal/database"
	"carscope/internal/model"
)

func (s Server) notificationGet() http.HandlerFunc {
	type response struct {
		Notifications []model.Notification `json:"notifications"`
		UnreadCount   int                  `json:"unread_count"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("notificationGet: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ns, err := s.DB.NotificationsFindByUser(r.Context(), uc.user.ID)
		if err != nil {
			s.Logger.Errorf("notificationGet: Error finding Notifications for UserID: %s, err: %v",
				uc.user.ID.Hex(), err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		var unread int
		for _, n := range ns {
			if !n.IsRead {
				unread++
			}
		}
		s.writeJsonResponse(w, response{
			Notifications: ns,
			UnreadCount:   unread,
		}, http.StatusOK)
	}
}

func (s Server) notificationRead() http.HandlerFunc {
	type request struct {
		NotificationID string `json:"notification_id"`
	}
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("notificationRead: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		req := request{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("notificationRead: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		notificationID, err := primitive.ObjectIDFromHex(req.NotificationID)
		if err != nil {
			s.Logger.Debugf("notificationRead: Bad notification_id: %s, err: %v", req.NotificationID, err)
			http.Error(w, "Invalid notification_id", http.StatusBadRequest)
			return
		}

		if err = s.DB.NotificationMarkRead(r.Context(), uc.user.ID, notificationID); err != nil {
			if errors.Is(err, database.ErrNoDocumentsModified) {
				s.Logger.Debugf("notificationRead: Notification not found, ID: %s", req.NotificationID)
				http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
				return
			}
			s.Logger.Errorf("notificationRead: Error marking Notification as read, ID: %s, err: %v",
				req.NotificationID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) notificationClear() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("notificationClear: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if err = s.DB.NotificationsClear(r.Context(), uc.user.ID); err != nil {
			s.Logger.Errorf("notificationClear: Error clearing Notifications for UserID: %s, err: %v",
				uc.user.ID.Hex(), err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}
