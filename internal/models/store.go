// internal/models/store.go
package models

type Store struct {
	BaseModel
	Name      string   `json:"name" gorm:"size:255;not null"`
	Category  string   `json:"category" gorm:"size:100;not null;index;default:'other'"`
	Address   string   `json:"address" gorm:"size:500;not null"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Phone     *string  `json:"phone" gorm:"size:20"`
	ImageURL  *string  `json:"image_url" gorm:"size:500"`
}

// Coordinates reports the store location; ok is false until both parts are known.
func (s Store) Coordinates() (lat, lon float64, ok bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return 0, 0, false
	}
	return *s.Latitude, *s.Longitude, true
}
