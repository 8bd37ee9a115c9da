package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"carscope/internal/model"
)

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMw)

	api := r.PathPrefix("/api").Subrouter()

	api.Handle("/user/register", s.maxBytesMw(s.userRegister())).Methods(http.MethodPost)
	api.Handle("/user/login", s.maxBytesMw(s.userLogin())).Methods(http.MethodPost)

	api.HandleFunc("/dealer", s.dealerGetAll()).Methods(http.MethodGet)
	api.HandleFunc("/dealer/brand/{brand}", s.dealerGetByBrand()).Methods(http.MethodGet)

	api.Handle("/analytics/track", s.maxBytesMw(s.analyticsTrack())).Methods(http.MethodPost)

	userAPI := api.PathPrefix("/user").Subrouter()
	userAPI.Use(s.authMw)
	userAPI.HandleFunc("/logout", s.userLogout()).Methods(http.MethodPost)
	userAPI.HandleFunc("/info", s.userInfo()).Methods(http.MethodGet)
	userAPI.PathPrefix("").Handler(http.NotFoundHandler())

	discountAPI := api.PathPrefix("/discount").Subrouter()
	discountAPI.Use(s.authMw, s.maxBytesMw)
	discountAPI.HandleFunc("/check", s.discountCheck()).Methods(http.MethodPost)
	discountAPI.PathPrefix("").Handler(http.NotFoundHandler())

	alertAPI := api.PathPrefix("/alert").Subrouter()
	alertAPI.Use(s.authMw, s.maxBytesMw)
	alertAPI.HandleFunc("/add", s.alertAdd()).Methods(http.MethodPost)
	alertAPI.HandleFunc("/get", s.alertGet(false)).Methods(http.MethodGet)
	alertAPI.HandleFunc("/active", s.alertGet(true)).Methods(http.MethodGet)
	alertAPI.HandleFunc("/remove", s.alertRemove()).Methods(http.MethodPost)
	alertAPI.PathPrefix("").Handler(http.NotFoundHandler())

	notificationAPI := api.PathPrefix("/notification").Subrouter()
	notificationAPI.Use(s.authMw, s.maxBytesMw)
	notificationAPI.HandleFunc("/get", s.notificationGet()).Methods(http.MethodGet)
	notificationAPI.HandleFunc("/read", s.notificationRead()).Methods(http.MethodPost)
	notificationAPI.HandleFunc("/clear", s.notificationClear()).Methods(http.MethodPost)
	notificationAPI.PathPrefix("").Handler(http.NotFoundHandler())

	recognitionAPI := api.PathPrefix("/recognition").Subrouter()
	recognitionAPI.Use(s.authMw, s.imageBytesMw)
	recognitionAPI.HandleFunc("/check", s.recognitionCheck()).Methods(http.MethodPost)
	recognitionAPI.HandleFunc("/history", s.recognitionHistory()).Methods(http.MethodGet)
	recognitionAPI.PathPrefix("").Handler(http.NotFoundHandler())

	dealerStatsAPI := api.PathPrefix("/analytics").Subrouter()
	dealerStatsAPI.Use(s.authMw, s.requireRoleMw(model.RoleDealer, model.RoleAdmin), s.maxBytesMw)
	dealerStatsAPI.HandleFunc("/query", s.analyticsQuery()).Methods(http.MethodPost)
	dealerStatsAPI.PathPrefix("").Handler(http.NotFoundHandler())

	adminAPI := api.PathPrefix("/admin/dealer").Subrouter()
	adminAPI.Use(s.authMw, s.requireRoleMw(model.RoleAdmin), s.maxBytesMw)
	adminAPI.HandleFunc("/add", s.dealerAdd()).Methods(http.MethodPost)
	adminAPI.HandleFunc("/update", s.dealerUpdate()).Methods(http.MethodPost)
	adminAPI.HandleFunc("/remove", s.dealerRemove()).Methods(http.MethodPost)
	adminAPI.PathPrefix("").Handler(http.NotFoundHandler())

	return r
}
