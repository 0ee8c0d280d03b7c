package mysql

import (
	"errors"

	"boutique-backend/internal/domain"
	"boutique-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type orderRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewOrderRepository(db *gorm.DB, logger *zap.Logger) repository.OrderRepository {
	return &orderRepo{db: db, logger: logger}
}

func (r *orderRepo) Create(order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if err := r.db.Create(order).Error; err != nil {
		r.logger.Error("order create failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *orderRepo) FindByID(id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("order lookup failed", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByEmail(email string) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Where("email = ?", email).Order("created_at DESC").Find(&out).Error; err != nil {
		r.logger.Error("order lookup by email failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		r.logger.Error("order list failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

// Replace writes every mutable column in one conditional UPDATE. The version
// guard turns a lost update into a reported conflict instead of a silent
// overwrite.
func (r *orderRepo) Replace(order *domain.Order) error {
	res := r.db.Model(&domain.Order{}).
		Where("id = ? AND version = ?", order.ID, order.Version).
		Updates(map[string]any{
			"name":             order.Name,
			"email":            order.Email,
			"address":          order.Address,
			"phone":            order.Phone,
			"products":         order.Products,
			"total_price":      order.TotalPrice,
			"is_paid":          order.IsPaid,
			"is_delivered":     order.IsDelivered,
			"product_progress": order.ProductProgress,
			"version":          order.Version + 1,
		})
	if res.Error != nil {
		r.logger.Error("order replace failed", zap.String("order_id", order.ID), zap.Error(res.Error))
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&domain.Order{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repository.ErrNotFound
		}
		return repository.ErrVersionConflict
	}
	order.Version++
	return nil
}

func (r *orderRepo) Delete(id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.Delete(&domain.Order{}, "id = ?", id).Error; err != nil {
		r.logger.Error("order delete failed", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Order{}).Count(&n).Error
	return n, err
}

func (r *orderRepo) TotalSales() (float64, error) {
	var total float64
	err := r.db.Model(&domain.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *orderRepo) MonthlySales() ([]domain.MonthlySales, error) {
	var out []domain.MonthlySales
	err := r.db.Model(&domain.Order{}).
		Select("DATE_FORMAT(created_at, '%Y-%m') AS month, SUM(total_price) AS total_sales, COUNT(*) AS total_orders").
		Group("DATE_FORMAT(created_at, '%Y-%m')").
		Order("month ASC").
		Scan(&out).Error
	if err != nil {
		r.logger.Error("monthly sales aggregation failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}
