package config

import (
	"os"
	"sync"
)

type DBConfig struct {
	Driver   string // postgres or sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite file
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		driver := os.Getenv("DB_DRIVER")
		if driver == "" {
			driver = "postgres"
		}
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "cv-matcher.db"
		}
		dbConfig = &DBConfig{
			Driver:   driver,
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
			Path:     path,
		}
	})
	return dbConfig
}
