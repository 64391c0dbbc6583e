// domain/models/reset_code.go

package models

import "time"

// ResetCode - รหัสยืนยันสำหรับ reset password และลบบัญชี
// รหัสมีอายุ 10 นาทีนับจาก created_at
type ResetCode struct {
	ID        uint      `json:"id" gorm:"primary_key;auto_increment"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null;index"`
	Code      string    `json:"code" gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
}

// TableName - ระบุชื่อตารางใน database
func (ResetCode) TableName() string {
	return "codes"
}
