// domain/apperrors/errors.go
package apperrors

import "errors"

// ข้อผิดพลาดหลักของระบบ ใช้ errors.Is ตรวจสอบจาก handler
var (
	// ErrValidation ข้อมูลที่ส่งมาไม่ถูกต้อง เช่น ขอเป็นเพื่อนกับตัวเอง
	ErrValidation = errors.New("invalid request")

	// ErrDuplicateRequest มีความสัมพันธ์ active (pending/accepted) อยู่แล้ว
	ErrDuplicateRequest = errors.New("friend request already exists")

	// ErrStateConflict ทำ transition ที่ไม่ได้รับอนุญาต เช่น accept คำขอของตัวเอง
	ErrStateConflict = errors.New("friendship state conflict")

	// ErrNotFound ไม่พบข้อมูลที่ต้องการ
	ErrNotFound = errors.New("not found")

	// ErrStoreTimeout การเรียกฐานข้อมูลใช้เวลานานเกินกำหนด
	ErrStoreTimeout = errors.New("store operation timed out")

	// ErrUnauthorized ไม่มีสิทธิ์เข้าถึง
	ErrUnauthorized = errors.New("unauthorized")
)
