package server

import (
	"context"
	"crypto/sha256"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"carscope/internal/model"
)

type userContextKey struct{}
type userContext struct {
	user    model.User
	tokenID string
}

type traceContextKey struct{}
type traceContext struct {
	traceID string
}

func setUserContext(ctx context.Context, uc userContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, uc)
}
func getUserContext(ctx context.Context) (userContext, error) {
	uc, ok := ctx.Value(userContextKey{}).(userContext)
	if !ok {
		return uc, errors.New("failed to get UserContext")
	}
	return uc, nil
}

func setTraceContext(ctx context.Context, tc traceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, tc)
}
func getTraceContext(ctx context.Context) traceContext {
	tc, _ := ctx.Value(traceContextKey{}).(traceContext)
	return tc
}

func (s Server) maxBytesMw(next http.Handler) http.Handler {
	return http.MaxBytesHandler(next, 3000)
}

// imageBytesMw allows bigger bodies for base64 image uploads.
func (s Server) imageBytesMw(next http.Handler) http.Handler {
	return http.MaxBytesHandler(next, 8<<20)
}

func (s Server) loggingMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		traceID := uuid.NewString()
		s.Logger.Debugf("loggingMw: New incoming request %s %s from %s, UA: %s, Host: %#v, TraceID: %s",
			r.Method, r.URL.Path, r.RemoteAddr, r.UserAgent(), r.Host, traceID)

		defer func() {
			if re := recover(); re != nil {
				s.Logger.Errorf("loggingMw: Handler crashed, err: %v, TraceID: %s, stack trace:\n%s", re, traceID, debug.Stack())
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		tc := traceContext{traceID: traceID}
		next.ServeHTTP(w, r.WithContext(setTraceContext(r.Context(), tc)))

		s.Logger.Tracef("loggingMw: Incoming request %s %s took %dms, TraceID: %s",
			r.Method, r.URL.Path, time.Since(start).Milliseconds(), traceID)
	})
}

func (s Server) authMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		lt := r.Header.Get("Authorization")
		if strings.HasPrefix(lt, "Bearer ") {
			lt = strings.TrimPrefix(lt, "Bearer ")
			token, err := jwt.Parse([]byte(lt), jwt.WithKey(jwa.HS256, s.AuthSecretKey), jwt.WithValidate(true))
			if err != nil {
				s.Logger.Debugf("authMw: Failed to validate login token, err: %v, TraceID: %s", err, tid)
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			u, err := s.DB.UserFindByID(r.Context(), token.Subject())
			if err != nil {
				s.Logger.Debugf("authMw: Error finding User from login token, err: %v, TraceID: %s", err, tid)
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			tokenHash := sha256.New()
			tokenHash.Write([]byte(lt))
			for _, t := range u.LoginTokens {
				if t.TokenID != token.JwtID() {
					continue
				}
				if t.Expiration.Time().Before(time.Now()) {
					s.Logger.Debugf("authMw: Expired login token for UserID: %s, TokenID: %s, TraceID: %s",
						u.ID.Hex(), t.TokenID, tid)
					break
				}
				if err = bcrypt.CompareHashAndPassword(t.Token, tokenHash.Sum(nil)); err != nil {
					s.Logger.Debugf("authMw: Error comparing LoginToken hashes for UserID: %s, TokenID: %s, err: %v, TraceID: %s",
						u.ID.Hex(), t.TokenID, err, tid)
					break
				}

				s.Logger.Debugf("authMw: UserID: %s, Role: %s, TraceID: %s", u.ID.Hex(), u.Role, tid)
				uc := userContext{
					user:    u,
					tokenID: t.TokenID,
				}
				next.ServeHTTP(w, r.WithContext(setUserContext(r.Context(), uc)))
				return
			}
		}
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})
}

// requireRoleMw gates a subrouter to the given roles. It must run after
// authMw.
func (s Server) requireRoleMw(roles ...string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uc, err := getUserContext(r.Context())
			if err != nil {
				s.Logger.Errorf("requireRoleMw: Error getting userContext, err: %v", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			for _, role := range roles {
				if uc.user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			s.Logger.Debugf("requireRoleMw: UserID: %s with role %s denied, required one of: %v",
				uc.user.ID.Hex(), uc.user.Role, roles)
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
}
