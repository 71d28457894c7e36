package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from the environment. A .env file
// in the working directory is loaded first if present; real environment
// variables win over it (godotenv does not override existing values).
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address
//	DATABASE_DSN     PostgreSQL DSN
//	SECRET_KEY       JWT HMAC secret
//	TOKEN_VALIDITY   session token lifetime (time.ParseDuration format)
//	ADMIN_USERNAME   seeded admin username
//	ADMIN_PASSWORD   seeded admin password
//	GIN_MODE         gin mode
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		config.AdminUsername = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		config.AdminPassword = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		config.GinMode = v
	}
}
