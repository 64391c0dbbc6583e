// infrastructure/persistence/database/migration.go
package database

import (
	"log"

	"github.com/reiggrau/tribes-backend/domain/models"
	"gorm.io/gorm"
)

// SetupDatabase ทำการ migrate โมเดลทั้งหมดไปยังฐานข้อมูล
func SetupDatabase(db *gorm.DB) error {
	log.Println("กำลังทำ Auto Migration...")

	// เรียงลำดับจากตารางหลักก่อน แล้วค่อยไปตารางที่มี foreign key
	err := db.AutoMigrate(
		&models.User{},
		&models.FriendRequest{},
		&models.Message{},
		&models.ResetCode{},
	)
	if err != nil {
		log.Printf("Auto Migration ล้มเหลว: %v", err)
		return err
	}

	log.Println("Auto Migration สำเร็จ")
	return nil
}
