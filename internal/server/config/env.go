package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. If a dotenv
// file was named with -e/-envfile it is loaded first; existing process
// environment always wins over file contents (godotenv semantics).
//
// Recognized variables:
//
//	ADDRESS              HTTP bind address
//	DATABASE_DSN         PostgreSQL DSN
//	SECRET_KEY           JWT HMAC secret
//	TOKEN_VALIDITY_MIN   token validity, minutes
func parseEnv(config *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		// missing file is not fatal, flags can still supply everything
		_ = godotenv.Load(envFile)
	}

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Addr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY_MIN"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidity = time.Duration(minutes) * time.Minute
		}
	}
}
