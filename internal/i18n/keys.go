// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// Users
	KeyUserNotFound = "user.not_found"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Stores
	KeyStoreCreated  = "store.created"
	KeyStoreUpdated  = "store.updated"
	KeyStoreDeleted  = "store.deleted"
	KeyStoreNotFound = "store.not_found"

	// Inventory
	KeyInventoryCreated         = "inventory.created"
	KeyInventoryUpdated         = "inventory.updated"
	KeyInventoryDeleted         = "inventory.deleted"
	KeyInventoryNotFound        = "inventory.not_found"
	KeyInventoryInvalidDiscount = "inventory.invalid_discount"
	KeyInventoryInvalidQuantity = "inventory.invalid_price_or_quantity"

	// Images
	KeyImageUploaded     = "image.uploaded"
	KeyImageRequired     = "image.required"
	KeyImageInvalidType  = "image.invalid_type"
	KeyImageTooLarge     = "image.too_large"
	KeyImageUploadFailed = "image.upload_failed"

	// Geo
	KeyGeoInvalidCoordinates = "geo.invalid_coordinates"

	// Seeding
	KeySeedCompleted     = "seed.completed"
	KeySeedAlreadyExists = "seed.already_exists"
	KeySeedFailed        = "seed.failed"

	// Status
	KeyStatusDatabaseDown = "status.database_down"

	// Validation
	KeyValidationInvalid = "validation.invalid"
	KeyInvalidID         = "validation.invalid_id"

	// Rate limiting
	KeyRateLimited = "rate_limit.exceeded"
)
