package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = "3000"
		}
		AppConfig = &Config{
			AppName: os.Getenv("APP_NAME"),
			Port:    port,
			Env:     os.Getenv("APP_ENV"),
			Debug:   os.Getenv("DEBUG") == "true",
		}
	})
}
