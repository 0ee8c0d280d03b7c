package domain

import "time"

// ColorVariant is a catalog color. Its name is always complete in all three
// languages; the translator fills the missing forms at authoring time.
type ColorVariant struct {
	Name  LocalizedText `json:"colorName"`
	Image string        `json:"image"`
}

type TextTranslation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Translations struct {
	En TextTranslation `json:"en"`
	Fr TextTranslation `json:"fr"`
	Ar TextTranslation `json:"ar"`
}

type Product struct {
	ID            string         `json:"id" gorm:"primaryKey;size:36"`
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Translations  Translations   `json:"translations" gorm:"serializer:json"`
	Category      string         `json:"category" gorm:"index"`
	CoverImage    string         `json:"coverImage"`
	Colors        []ColorVariant `json:"colors" gorm:"serializer:json"`
	OldPrice      float64        `json:"oldPrice"`
	NewPrice      float64        `json:"newPrice" gorm:"not null"`
	FinalPrice    float64        `json:"finalPrice"`
	StockQuantity int            `json:"stockQuantity"`
	Trending      bool           `json:"trending" gorm:"default:false;index"`
	CreatedAt     time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}
