package server

import (
	"crypto/sha256"
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"carscope/internal/model"
)

func (s Server) userRegister() http.HandlerFunc {
	type request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type response struct {
		Success    bool   `json:"success"`
		LoginToken string `json:"login_token"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("userRegister: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			s.Logger.Debugf("userRegister: Invalid email, err: %v", err)
			http.Error(w, "Invalid email", http.StatusBadRequest)
			return
		}
		password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.Logger.Errorf("userRegister: Error generating bcrypt from password, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		u := model.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: password,
			Role:     model.RoleUser,
		}
		id, err := s.DB.UserInsert(r.Context(), u)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				s.Logger.Debugf("userRegister: Error duplicate key when inserting User, err: %v", err)
				http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
				return
			}
			s.Logger.Errorf("userRegister: Error inserting User, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		lt, err := s.issueLoginToken(r, id)
		if err != nil {
			s.Logger.Errorf("userRegister: Error issuing login token for User, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{
			Success:    true,
			LoginToken: lt,
		}, http.StatusCreated)
	}
}

func (s Server) userLogin() http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type response struct {
		LoginToken string `json:"login_token"`
		Role       string `json:"role"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("userLogin: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		u, err := s.DB.UserFindByEmail(r.Context(), req.Email)
		if err != nil {
			s.Logger.Debugf("userLogin: Error finding User, err: %v", err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		if err = bcrypt.CompareHashAndPassword(u.Password, []byte(req.Password)); err != nil {
			s.Logger.Debugf("userLogin: Error comparing hash and password for User with email: %s, err: %v", u.Email, err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		lt, err := s.issueLoginToken(r, u.ID.Hex())
		if err != nil {
			s.Logger.Errorf("userLogin: Error issuing login token for User, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{
			LoginToken: lt,
			Role:       u.Role,
		}, http.StatusOK)
	}
}

func (s Server) userLogout() http.HandlerFunc {
	type response struct {
		Success bool `json:"success"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("userLogout: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if err = s.DB.UserRemoveLoginToken(r.Context(), uc.user.ID.Hex(), uc.tokenID); err != nil {
			s.Logger.Errorf("userLogout: Error removing login token, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{Success: true}, http.StatusOK)
	}
}

func (s Server) userInfo() http.HandlerFunc {
	type response struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		DealerID string `json:"dealer_id,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("userInfo: Error getting userContext, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, response{
			Name:     uc.user.Name,
			Email:    uc.user.Email,
			Role:     uc.user.Role,
			DealerID: uc.user.DealerID,
		}, http.StatusOK)
	}
}

// issueLoginToken builds a signed JWT for the user, stores its bcrypt
// hash on the user capped to the 8 newest tokens and returns the JWT.
func (s Server) issueLoginToken(r *http.Request, userID string) (string, error) {
	exp := time.Now().AddDate(0, 0, 90)
	tokenID := uuid.NewString()
	t, err := jwt.NewBuilder().
		Subject(userID).
		Issuer("carscope").
		JwtID(tokenID).
		Expiration(exp).
		Build()
	if err != nil {
		return "", errors.Wrapf(err, "error creating login token for UserID: %s", userID)
	}
	lt, err := jwt.Sign(t, jwt.WithKey(jwa.HS256, s.AuthSecretKey))
	if err != nil {
		return "", errors.Wrapf(err, "error signing login token for UserID: %s", userID)
	}

	tokenHash := sha256.New()
	tokenHash.Write(lt)
	bcryptTokenHash, err := bcrypt.GenerateFromPassword(tokenHash.Sum(nil), bcrypt.DefaultCost-3)
	if err != nil {
		return "", errors.Wrapf(err, "error generating bcrypt from login token hash for UserID: %s", userID)
	}

	if err = s.DB.UserAddLoginToken(r.Context(), userID, model.LoginToken{
		TokenID:    tokenID,
		Token:      bcryptTokenHash,
		Expiration: primitive.NewDateTimeFromTime(exp),
	}); err != nil {
		return "", err
	}
	return string(lt), nil
}
