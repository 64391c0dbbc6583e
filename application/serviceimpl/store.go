// application/serviceimpl/store.go
package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reiggrau/tribes-backend/domain/apperrors"
)

// storeTimeout กันไม่ให้การเรียกฐานข้อมูลค้างไม่มีกำหนด
// connection task อื่นยังทำงานต่อได้ แต่ task ที่รอเกินนี้จะได้ ErrStoreTimeout
const storeTimeout = 5 * time.Second

// storeCtx ครอบ context ด้วย deadline สำหรับการเรียกฐานข้อมูลหนึ่งครั้ง
func storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

// wrapStoreErr แปลง error จากฐานข้อมูลให้เข้ากับ taxonomy ของระบบ
func wrapStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrStoreTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
