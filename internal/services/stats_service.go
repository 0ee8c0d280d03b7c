package services

import (
	"context"

	"boutique-backend/internal/domain"
	"boutique-backend/internal/repository"

	"go.uber.org/zap"
)

type StatsService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewStatsService(orders repository.OrderRepository, products repository.ProductRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		orders:   orders,
		products: products,
		logger:   logger,
	}
}

// Summary assembles the admin dashboard aggregates.
func (s *StatsService) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	totalOrders, err := s.orders.Count()
	if err != nil {
		return nil, err
	}
	totalSales, err := s.orders.TotalSales()
	if err != nil {
		return nil, err
	}
	trending, err := s.products.CountTrending()
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count()
	if err != nil {
		return nil, err
	}
	monthly, err := s.orders.MonthlySales()
	if err != nil {
		return nil, err
	}

	s.logger.Debug("admin stats assembled", zap.Int64("orders", totalOrders))
	return &domain.StatsSummary{
		TotalOrders:      totalOrders,
		TotalSales:       totalSales,
		TrendingProducts: trending,
		TotalProducts:    totalProducts,
		MonthlySales:     monthly,
	}, nil
}
