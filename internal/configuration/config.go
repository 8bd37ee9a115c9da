package configuration

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"

	"carscope/internal/logger"
)

type Config struct {
	ServerAddress      string
	DatabaseURI        string
	RedisAddress       string
	AlertCheckInterval time.Duration
	OfferCacheTTL      time.Duration
	RecognitionDelay   time.Duration
	LogLevel           logger.Level
	LogToFile          bool
	AuthSecretKey      jwk.Key
}

type tomlConfig struct {
	ServerAddress      string `toml:"server_address"`
	DatabaseURI        string `toml:"database_uri"`
	RedisAddress       string `toml:"redis_address"`
	AlertCheckInterval string `toml:"alert_check_interval"`
	OfferCacheTTL      string `toml:"offer_cache_ttl"`
	RecognitionDelay   string `toml:"recognition_delay"`
	LogLevel           string `toml:"log_level"`
	LogToFile          bool   `toml:"log_to_file"`
	AuthSecretKey      string `toml:"auth_secret_key"`
}

func GetConfig(path string) (*Config, error) {
	var tc tomlConfig
	_, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}

	if tc.ServerAddress == "" {
		tc.ServerAddress = "localhost:8080"
	}

	if tc.DatabaseURI == "" {
		tc.DatabaseURI = "mongodb://localhost:27017"
	}

	if tc.AlertCheckInterval == "" {
		tc.AlertCheckInterval = "30s"
	}
	alertCheckInterval, err := time.ParseDuration(tc.AlertCheckInterval)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse alert_check_interval: %s", tc.AlertCheckInterval)
	}
	if alertCheckInterval < 5*time.Second {
		return nil, errors.Errorf("alert_check_interval too short (%v), minimum interval: 5s", alertCheckInterval)
	}

	if tc.OfferCacheTTL == "" {
		tc.OfferCacheTTL = "5m"
	}
	offerCacheTTL, err := time.ParseDuration(tc.OfferCacheTTL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse offer_cache_ttl: %s", tc.OfferCacheTTL)
	}

	if tc.RecognitionDelay == "" {
		tc.RecognitionDelay = "2s"
	}
	recognitionDelay, err := time.ParseDuration(tc.RecognitionDelay)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse recognition_delay: %s", tc.RecognitionDelay)
	}

	if tc.LogLevel == "" {
		tc.LogLevel = "info"
	}
	logLevel, err := logger.ParseLevel(tc.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse log_level: %s", tc.LogLevel)
	}

	if tc.AuthSecretKey == "" {
		return nil, errors.New("auth_secret_key is not set")
	}
	authSecretKey, err := jwk.FromRaw([]byte(tc.AuthSecretKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create key from auth_secret_key")
	}

	return &Config{
		ServerAddress:      tc.ServerAddress,
		DatabaseURI:        tc.DatabaseURI,
		RedisAddress:       tc.RedisAddress,
		AlertCheckInterval: alertCheckInterval,
		OfferCacheTTL:      offerCacheTTL,
		RecognitionDelay:   recognitionDelay,
		LogLevel:           logLevel,
		LogToFile:          tc.LogToFile,
		AuthSecretKey:      authSecretKey,
	}, nil
}
