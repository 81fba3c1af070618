package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	DBDriver        string
	AutoMigrate     bool
	CORSAllowOrigin []string
	ShutdownTimeout time.Duration
}

// Load reads configuration from an optional YAML file and environment variables.
// Environment variables override file values; file values override defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	file, err := loadFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Printf("config file ignored: %v", err)
	}

	env := normalizeEnv(getEnv("ENV", file.Env, "dev"))
	dbURL := getEnv("DATABASE_URL", file.DatabaseURL, "")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", file.Port, "8080"),
		Env:             env,
		DatabaseURL:     dbURL,
		DBDriver:        normalizeDriver(getEnv("DB_DRIVER", file.DBDriver, "postgres")),
		AutoMigrate:     getBool("AUTO_MIGRATE", file.AutoMigrate, env == "dev"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", strings.Join(file.CORSAllowOrigins, ","), "http://localhost:5173")),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", file.ShutdownTimeout, 10*time.Second),
	}
}

func getEnv(key, fileVal, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if fileVal != "" {
		return fileVal
	}
	return def
}

func getBool(key string, fileVal *bool, def bool) bool {
	if raw := strings.TrimSpace(os.Getenv(key)); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err == nil {
			return val
		}
		log.Printf("config env %s invalid bool: %v", key, err)
	}
	if fileVal != nil {
		return *fileVal
	}
	return def
}

func getDuration(key, fileVal string, def time.Duration) time.Duration {
	for _, raw := range []string{os.Getenv(key), fileVal} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		val, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("config %s invalid duration: %v", key, err)
			continue
		}
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "postgres"
	}
}
