package db

import (
	"log"

	"askroom/internal/config"
	"askroom/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Init opens the database and migrates the schema. The handle is returned
// rather than held in a package global so handlers receive it explicitly.
// DATABASE_URL selects postgres; the default is a local sqlite file created
// on first start.
func Init(cfg config.Config) *gorm.DB {
	var (
		conn *gorm.DB
		err  error
	)
	if cfg.DatabaseURL != "" {
		conn, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		conn, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	return conn
}

// Migrate creates the Users/Questions/Answers tables if absent.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
	)
}
