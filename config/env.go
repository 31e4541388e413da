package config

import (
	"github.com/joho/godotenv"
)

// LoadEnv reads .env if present. A missing file is fine; the variables can be
// set by other means.
func LoadEnv() {
	_ = godotenv.Load()
}
