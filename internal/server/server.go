package server

import (
	"github.com/lestrrat-go/jwx/v2/jwk"

	"carscope/internal/alert"
	"carscope/internal/database"
	"carscope/internal/discount"
	"carscope/internal/recognition"
)

type Server struct {
	DB            database.Database
	Discounts     discount.Provider
	Recognizer    recognition.Recognizer
	AlertChecker  *alert.Checker
	Logger        logger
	AuthSecretKey jwk.Key
}

type logger interface {
	Trace(v ...any)
	Debug(v ...any)
	Info(v ...any)
	Error(v ...any)
	Tracef(format string, v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}
