package services

import (
	"boutique-backend/internal/domain"
)

func makeTestColor(en, fr, ar string) domain.ItemColor {
	return domain.ItemColor{
		Name:  domain.ColorName{Text: domain.LocalizedText{En: en, Fr: fr, Ar: ar}},
		Image: "/uploads/red.png",
	}
}

func makeTestOrder(id string, items ...domain.LineItem) *domain.Order {
	return &domain.Order{
		ID:              id,
		Name:            "Test Customer",
		Email:           "customer@example.com",
		Products:        items,
		ProductProgress: map[string]string{},
	}
}

func makeTestProduct(id, title string, price float64) *domain.Product {
	return &domain.Product{
		ID:         id,
		Title:      title,
		NewPrice:   price,
		CoverImage: "/uploads/cover.png",
		Colors: []domain.ColorVariant{
			{Name: domain.LocalizedText{En: "Red", Fr: "Rouge", Ar: "أحمر"}, Image: "/uploads/red.png"},
		},
	}
}

const (
	testProductID  = "11111111-2222-3333-4444-555555555555"
	testOrderID    = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	testOrderShort = "aaaaaaaa"
)
