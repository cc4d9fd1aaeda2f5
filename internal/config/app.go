package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type AppConfig struct {
	Name      string
	Env       string
	Port      string
	BaseURL   string
	UploadDir string
	// RebuildSchedule is a cron spec for rebuilding every job's reports; empty disables it.
	RebuildSchedule string
	LogJSON         bool
	LogDebug        bool
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":8080"
		}
		uploadDir := os.Getenv("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./uploads/resumes"
		}
		appConfig = &AppConfig{
			Name:            os.Getenv("APP_NAME"),
			Env:             env,
			Port:            port,
			BaseURL:         os.Getenv("APP_URL"),
			UploadDir:       uploadDir,
			RebuildSchedule: os.Getenv("REBUILD_SCHEDULE"),
			LogJSON:         envBool("LOG_JSON", env == "production"),
			LogDebug:        envBool("LOG_DEBUG", env != "production"),
		}
	})
	return appConfig
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
