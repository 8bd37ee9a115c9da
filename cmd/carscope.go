package main

import (
	"context"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"carscope/internal/alert"
	"carscope/internal/catalog"
	"carscope/internal/configuration"
	"carscope/internal/database"
	"carscope/internal/discount"
	"carscope/internal/logger"
	"carscope/internal/model"
	"carscope/internal/recognition"
	"carscope/internal/server"
)

func main() {
	runApp()
	time.Sleep(10 * time.Second)
	os.Exit(1)
}

func runApp() error {
	appContext := context.Background()
	logOutput := io.Writer(os.Stdout)
	appLogger := logger.NewLogger(logger.LevelInfo, logOutput)

	defer func() {
		if r := recover(); r != nil {
			appLogger.Errorf("APPLICATION CRASHED: %+v", r)
		}
	}()

	config, err := configuration.GetConfig("config.toml")
	if err != nil {
		appLogger.Error("Error getting configuration from config.toml:", err)
		return err
	}

	if config.LogToFile {
		logFile, err := os.OpenFile("carscope_backend.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			appLogger.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				appLogger.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
	}
	appLogger = logger.NewLogger(config.LogLevel, logOutput)

	appLogger.Info("Connecting to DB at", config.DatabaseURI)
	dbConn, err := database.ConnectDB(appContext, config.DatabaseURI)
	if err != nil {
		appLogger.Error("Error connecting to DB:", err)
		return err
	}
	defer func() {
		if err := dbConn.Disconnect(appContext); err != nil {
			appLogger.Error("Error disconnecting from DB:", err)
		}
	}()

	db := database.Database{Database: dbConn.Database(database.Name)}
	if err = db.DealersSeed(appContext, catalog.Dealers()); err != nil {
		appLogger.Error("Error seeding Dealers:", err)
		return err
	}
	if err = seedUsers(appContext, db); err != nil {
		appLogger.Error("Error seeding Users:", err)
		return err
	}

	var offers discount.Provider = discount.NewRandomProvider(rand.New(rand.NewSource(time.Now().UnixNano())))
	if config.RedisAddress != "" {
		appLogger.Info("Using Redis offer cache at", config.RedisAddress)
		offers = discount.CachedProvider{
			Provider: offers,
			Redis:    redis.NewClient(&redis.Options{Addr: config.RedisAddress}),
			TTL:      config.OfferCacheTTL,
			Logger:   appLogger,
		}
	}

	srv := server.Server{
		DB:         db,
		Discounts:  offers,
		Recognizer: recognition.NewMockRecognizer(rand.New(rand.NewSource(time.Now().UnixNano())), config.RecognitionDelay),
		AlertChecker: alert.NewChecker(
			rand.New(rand.NewSource(time.Now().UnixNano())),
			catalog.DealerNames(),
		),
		Logger:        appLogger,
		AuthSecretKey: config.AuthSecretKey,
	}

	appLogger.Info("Starting alert checker with interval:", config.AlertCheckInterval)
	go srv.CheckAlertsInInterval(appContext, time.NewTicker(config.AlertCheckInterval))

	httpSrv := &http.Server{
		Handler:      srv.Router(),
		Addr:         config.ServerAddress,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	appLogger.Info("Serving on", httpSrv.Addr)
	return httpSrv.ListenAndServe()
}

// seedUsers creates the built-in admin and dealer demo accounts. Existing
// accounts with the same email are left untouched.
func seedUsers(ctx context.Context, db database.Database) error {
	seeds := []struct {
		name     string
		email    string
		password string
		role     string
		dealerID string
	}{
		{"Администратор", "admin@carrecognition.ru", "admin123", model.RoleAdmin, ""},
		{"БМВ Авилон", "bmw.avilon@dealer.ru", "dealer123", model.RoleDealer, "bmw-1"},
		{"Мерседес Авилон", "mercedes.avilon@dealer.ru", "dealer123", model.RoleDealer, "mercedes-1"},
		{"Тойота Кунцево", "toyota.kuntsevo@dealer.ru", "dealer123", model.RoleDealer, "toyota-1"},
	}
	now := time.Now()
	for _, s := range seeds {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := model.User{
			Name:      s.name,
			Email:     s.email,
			Password:  hashedPassword,
			Role:      s.role,
			DealerID:  s.dealerID,
			CreatedAt: primitive.NewDateTimeFromTime(now),
			UpdatedAt: primitive.NewDateTimeFromTime(now),
		}
		if err = db.UserSeed(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
