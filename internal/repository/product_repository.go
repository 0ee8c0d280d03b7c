package repository

import "boutique-backend/internal/domain"

type ProductRepository interface {
	Create(product *domain.Product) error
	FindByID(id string) (*domain.Product, error)
	// FindByIDs returns the products that exist; missing ids are simply
	// absent from the result.
	FindByIDs(ids []string) ([]domain.Product, error)
	FindAll() ([]domain.Product, error)
	Update(product *domain.Product) error
	Delete(id string) (*domain.Product, error)

	Count() (int64, error)
	CountTrending() (int64, error)
}
