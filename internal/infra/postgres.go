package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"

	dbm "pulseboard/internal/models/db_models"
)

// InitPostgresql opens the snapshot database and makes sure the
// history table exists. Only called when HISTORY_DRIVER=postgres.
func InitPostgresql(dsn string) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(&dbm.Snapshot{}); err != nil {
		log.Fatalf("Error migrating snapshot table: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
