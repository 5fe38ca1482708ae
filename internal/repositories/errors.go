package repositories

import "errors"

// Not-found sentinels, detected via gorm.ErrRecordNotFound on reads and via
// zero rows affected on writes. Services and handlers match them with errors.Is.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAdminNotFound   = errors.New("admin not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)
