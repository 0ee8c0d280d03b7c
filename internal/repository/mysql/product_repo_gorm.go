package mysql

import (
	"errors"

	"boutique-backend/internal/domain"
	"boutique-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type productRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProductRepository(db *gorm.DB, logger *zap.Logger) repository.ProductRepository {
	return &productRepo{db: db, logger: logger}
}

func (r *productRepo) Create(product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if err := r.db.Create(product).Error; err != nil {
		r.logger.Error("product create failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *productRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("product lookup failed", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByIDs(ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.Product
	if err := r.db.Where("id IN ?", ids).Find(&out).Error; err != nil {
		r.logger.Error("product batch lookup failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindAll() ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		r.logger.Error("product list failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Update(product *domain.Product) error {
	var count int64
	if err := r.db.Model(&domain.Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	res := r.db.Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"title":          product.Title,
			"description":    product.Description,
			"translations":   product.Translations,
			"category":       product.Category,
			"cover_image":    product.CoverImage,
			"colors":         product.Colors,
			"old_price":      product.OldPrice,
			"new_price":      product.NewPrice,
			"final_price":    product.FinalPrice,
			"stock_quantity": product.StockQuantity,
			"trending":       product.Trending,
		})
	if res.Error != nil {
		r.logger.Error("product update failed", zap.String("product_id", product.ID), zap.Error(res.Error))
		return res.Error
	}
	return nil
}

func (r *productRepo) Delete(id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.Delete(&domain.Product{}, "id = ?", id).Error; err != nil {
		r.logger.Error("product delete failed", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Product{}).Count(&n).Error
	return n, err
}

func (r *productRepo) CountTrending() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Product{}).Where("trending = ?", true).Count(&n).Error
	return n, err
}
