package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yeohaeng/internal/models/db_models"
)

// InitPostgresql opens the connection pool and migrates the plan table.
// A missing DSN or a failed connection leaves the store uninitialized (nil)
// so routes that need it can 500 instead of crashing the process.
func InitPostgresql(dsn string) *gorm.DB {
	if dsn == "" {
		log.Println("POSTGRES_URL is not set, plan store disabled")
		return nil
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil
	}

	if err := connectionPool.AutoMigrate(&db_models.PlanRecord{}); err != nil {
		log.Printf("Error migrating plan table: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}
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
