package domain

import (
	"errors"
	"time"
)

var (
	ErrItemNotFound         = errors.New("product not found in order")
	ErrInsufficientQuantity = errors.New("cannot remove more than existing quantity")
)

// LineItem is one product+color+quantity entry within an order. Its color is
// always a complete multilingual object once the order is persisted.
type LineItem struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Color     ItemColor `json:"color"`
}

type Order struct {
	ID              string            `json:"id" gorm:"primaryKey;size:36"`
	Name            string            `json:"name" gorm:"not null"`
	Email           string            `json:"email" gorm:"not null;index"`
	Address         string            `json:"address"`
	Phone           string            `json:"phone"`
	Products        []LineItem        `json:"products" gorm:"serializer:json"`
	TotalPrice      float64           `json:"totalPrice" gorm:"not null"`
	IsPaid          bool              `json:"isPaid" gorm:"default:false"`
	IsDelivered     bool              `json:"isDelivered" gorm:"default:false"`
	ProductProgress map[string]string `json:"productProgress" gorm:"serializer:json"`
	Version         uint64            `json:"-" gorm:"not null;default:0"`
	CreatedAt       time.Time         `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time         `json:"updatedAt" gorm:"autoUpdateTime"`
}

// ShortID is the identifier form used in customer-facing messages.
func (o *Order) ShortID() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	return o.ID[:8]
}

// FindLineItem returns the index of the first line item addressed by key.
// Two items can collide when distinct colors translate to the same label in
// different languages; first match in sequence order wins.
func (o *Order) FindLineItem(key ProductKey) (int, bool) {
	for i, item := range o.Products {
		if key.Matches(item) {
			return i, true
		}
	}
	return 0, false
}

// RemoveQuantity returns a new line-item sequence with the item addressed by
// key reduced by qty, dropped entirely when its quantity reaches zero. All
// other items are copied unchanged in their original order. The input slice
// is never modified.
func RemoveQuantity(items []LineItem, key ProductKey, qty int) ([]LineItem, error) {
	found := false
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		if found || !key.Matches(item) {
			out = append(out, item)
			continue
		}
		found = true
		if item.Quantity < qty {
			return nil, ErrInsufficientQuantity
		}
		if remaining := item.Quantity - qty; remaining > 0 {
			item.Quantity = remaining
			out = append(out, item)
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}
	return out, nil
}

// ComputeTotal reprices a line-item sequence against current catalog prices.
// A product missing from prices contributes zero: removal must still complete
// when a referenced product has since left the catalog.
func ComputeTotal(items []LineItem, prices map[string]float64) float64 {
	var total float64
	for _, item := range items {
		total += prices[item.ProductID] * float64(item.Quantity)
	}
	return total
}
