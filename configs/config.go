package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func Config(key string) string {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

type Settings struct {
	Port           string
	DatabaseDriver string
	DatabaseURL    string
	SeedData       bool
	AllowOrigins   string
	AuditSchedule  string
	TimeZone       string
}

func Load() Settings {
	return Settings{
		Port:           withDefault("PORT", "8080"),
		DatabaseDriver: withDefault("DB_DRIVER", "postgres"),
		DatabaseURL:    Config("DATABASE_URL"),
		SeedData:       boolWithDefault("SEED_DATA", true),
		AllowOrigins:   withDefault("CORS_ALLOW_ORIGINS", "*"),
		AuditSchedule:  auditSchedule(),
		TimeZone:       withDefault("APP_TIMEZONE", "UTC"),
	}
}

func withDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

// auditSchedule tells an unset AUDIT_SCHEDULE (use the default) from an
// empty one (job disabled).
func auditSchedule() string {
	Config("AUDIT_SCHEDULE")
	if v, ok := os.LookupEnv("AUDIT_SCHEDULE"); ok {
		return v
	}
	return "@hourly"
}

func boolWithDefault(key string, fallback bool) bool {
	v := Config(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a boolean, using %t", key, v, fallback)
		return fallback
	}
	return b
}
