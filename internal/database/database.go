package database

import (
	"fmt"
	"time"

	"github.com/fadilmartias/cv-matcher/internal/config"
	"github.com/fadilmartias/cv-matcher/internal/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the configured database, tunes its pool and migrates the schema.
func Connect(dbConfig *config.DBConfig, appConfig *config.AppConfig, log *zap.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
	if appConfig.LogDebug {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch dbConfig.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dbConfig.Path+"?_foreign_keys=on"), gormConfig)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
			dbConfig.Host,
			dbConfig.User,
			dbConfig.Password,
			dbConfig.Name,
			dbConfig.Port,
			dbConfig.SSLMode,
		)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", dbConfig.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	if appConfig.Env != "production" {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetMaxOpenConns(200)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return nil, fmt.Errorf("enable pgvector: %w", err)
		}
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database ready",
		zap.String("driver", db.Dialector.Name()),
		zap.String("env", appConfig.Env),
	)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Job{}, &model.Resume{}, &model.MatchReport{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
