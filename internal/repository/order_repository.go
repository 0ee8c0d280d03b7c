package repository

import (
	"errors"

	"boutique-backend/internal/domain"
)

// Errors returned by the write paths. Finders keep the nil, nil convention
// for absent rows.
var (
	ErrNotFound        = errors.New("record not found")
	ErrVersionConflict = errors.New("order was modified concurrently")
)

type OrderRepository interface {
	Create(order *domain.Order) error
	FindByID(id string) (*domain.Order, error)
	FindByEmail(email string) ([]domain.Order, error)
	FindAll() ([]domain.Order, error)
	// Replace writes the whole document back atomically, guarded by the
	// order's version token. ErrVersionConflict means another writer got
	// there first and nothing was written.
	Replace(order *domain.Order) error
	Delete(id string) (*domain.Order, error)

	Count() (int64, error)
	TotalSales() (float64, error)
	MonthlySales() ([]domain.MonthlySales, error)
}
