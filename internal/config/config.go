package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rifqialifauzan/football-data-service/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	StoreDriver   string
	MongoURI      string
	MongoDatabase string

	FootballDataBaseURL  string
	FootballDataToken    string
	FootballDataTimeout  time.Duration
	FootballDataMaxTries int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse READ_TIMEOUT: %w", err)
	}

	// Imports are synchronous and can legitimately block through the full
	// upstream retry window, so the server write deadline stays off unless
	// explicitly configured.
	writeTimeout, err := time.ParseDuration(getEnv("WRITE_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WRITE_TIMEOUT: %w", err)
	}

	storeDriver, err := parseStoreDriver(getEnv("STORE_DRIVER", StoreDriverMongo))
	if err != nil {
		return Config{}, err
	}

	mongoURI := strings.TrimSpace(getEnv("MONGO_URI", "mongodb://localhost:27017"))
	if storeDriver == StoreDriverMongo && mongoURI == "" {
		return Config{}, fmt.Errorf("MONGO_URI is required when STORE_DRIVER=%s", StoreDriverMongo)
	}

	mongoDatabase := strings.TrimSpace(getEnv("MONGO_DATABASE", "football"))
	if storeDriver == StoreDriverMongo && mongoDatabase == "" {
		return Config{}, fmt.Errorf("MONGO_DATABASE is required when STORE_DRIVER=%s", StoreDriverMongo)
	}

	footballDataToken := strings.TrimSpace(getEnv("FOOTBALL_DATA_TOKEN", ""))
	if footballDataToken == "" {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_TOKEN is required")
	}

	footballDataTimeout, err := time.ParseDuration(getEnv("FOOTBALL_DATA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_TIMEOUT: %w", err)
	}
	if footballDataTimeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_TIMEOUT must be > 0")
	}

	footballDataMaxTries, err := getEnvAsInt("FOOTBALL_DATA_MAX_TRIES", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_MAX_TRIES: %w", err)
	}
	if footballDataMaxTries <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_MAX_TRIES must be > 0")
	}

	return Config{
		AppEnv:             appEnv,
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),

		StoreDriver:   storeDriver,
		MongoURI:      mongoURI,
		MongoDatabase: mongoDatabase,

		FootballDataBaseURL:  strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org")),
		FootballDataToken:    footballDataToken,
		FootballDataTimeout:  footballDataTimeout,
		FootballDataMaxTries: footballDataMaxTries,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(getEnv(key, strconv.Itoa(fallback)))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	return value, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseStoreDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StoreDriverMongo, StoreDriverMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORE_DRIVER %q: valid values are %s, %s", v, StoreDriverMongo, StoreDriverMemory)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
