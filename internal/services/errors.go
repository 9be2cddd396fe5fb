// internal/services/errors.go
package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrInventoryNotFound  = errors.New("inventory item not found")
	ErrAlreadySeeded      = errors.New("database already contains data")
	ErrInvalidFileType    = errors.New("file type not allowed")
	ErrFileTooLarge       = errors.New("file too large")
	ErrInvalidImage       = errors.New("invalid image file")
)
