// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name        string         `json:"name" gorm:"size:255;not null;index"`
	Brand       string         `json:"brand" gorm:"size:255;not null;index"`
	Category    string         `json:"category" gorm:"size:100;not null;index"`
	ImageURL    *string        `json:"image_url" gorm:"size:500"`
	Description *string        `json:"description" gorm:"type:text"`
	Unit        *string        `json:"unit" gorm:"size:100"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
}
