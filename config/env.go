package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// LoadENV loads environment variables from a .env file. A missing file is
// not an error; the process environment is used as-is.
func LoadENV() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// BcryptCost returns the password hash cost factor (BCRYPT_COST).
func BcryptCost() int {
	cost := getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// SessionTTL returns the lifetime of a login session (SESSION_TTL_HOURS).
func SessionTTL() time.Duration {
	return time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
