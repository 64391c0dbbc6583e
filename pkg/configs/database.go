// pkg/configs/database.go
package configs

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database เก็บการเชื่อมต่อฐานข้อมูล
type Database struct {
	DB *gorm.DB
}

// NewDatabase สร้างการเชื่อมต่อ PostgreSQL จาก environment
// ใช้ DATABASE_URL ถ้ามี ไม่งั้นประกอบจาก DB_* ทีละตัว
func NewDatabase() (*Database, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			envOrDefault("DB_HOST", "localhost"),
			envOrDefault("DB_PORT", "5432"),
			envOrDefault("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOrDefault("DB_NAME", "tribes"),
			envOrDefault("DB_SSLMODE", "disable"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Println("เชื่อมต่อกับฐานข้อมูลสำเร็จ")
	return &Database{DB: db}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
