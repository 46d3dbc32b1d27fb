package database

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectSQLite opens the local snapshot database.
//
// SNAPSHOT_DB_PATH points at the database file (default: calculadora.db).
// The file is created on first use.
func ConnectSQLite() *gorm.DB {
	path := getenvDefault("SNAPSHOT_DB_PATH", "calculadora.db")

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("[database][sqlite] failed to open %s: %v", path, err)
	}

	log.Printf("[database][sqlite] snapshot database ready path=%s", path)
	return db
}
