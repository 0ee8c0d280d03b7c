package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"boutique-backend/internal/domain"
	rabbit "boutique-backend/internal/infra/rabbitmq"
	"boutique-backend/internal/repository"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

// DefaultCoverImage backs line items whose product has since left the catalog.
const DefaultCoverImage = "/assets/default-image.png"

type OrderService struct {
	orders      repository.OrderRepository
	products    repository.ProductRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, pub rabbit.PublisherInterface, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		publisher: pub,
		logger:    logger,
	}
}

// SetRedisClient enables the catalog read-through cache. The service works
// without it; tests and degraded deployments skip it.
func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// OrderItemInput is one client-submitted product entry. Its color may be a
// bare string, a partial object, a complete multilingual object, or absent.
type OrderItemInput struct {
	ProductID  string
	Quantity   int
	Color      *domain.ColorInput
	CoverImage string
}

type CreateOrderInput struct {
	Name    string
	Email   string
	Address string
	Phone   string
	Items   []OrderItemInput
}

// CreateOrder normalizes every submitted line item into the canonical
// multilingual shape and persists the order with a total derived from current
// catalog prices. An unknown product id fails the whole order; nothing is
// persisted.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	items := make([]domain.LineItem, 0, len(in.Items))
	prices := make(map[string]float64, len(in.Items))
	for _, entry := range in.Items {
		product, err := s.getProductWithCache(ctx, entry.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, entry.ProductID)
		}
		prices[product.ID] = product.NewPrice

		items = append(items, domain.LineItem{
			ProductID: entry.ProductID,
			Quantity:  entry.Quantity,
			Color:     domain.ResolveColor(entry.Color, entry.CoverImage, product.CoverImage),
		})
	}

	order := &domain.Order{
		Name:            in.Name,
		Email:           in.Email,
		Address:         in.Address,
		Phone:           in.Phone,
		Products:        items,
		TotalPrice:      domain.ComputeTotal(items, prices),
		ProductProgress: map[string]string{},
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Products)),
		zap.Float64("total", order.TotalPrice),
	)
	go s.publishOrderEvent(context.Background(), domain.EventOrderCreated, order)

	return order, nil
}

// RemoveProductQuantity locates the line item addressed by productKey, applies
// the bounded decrement, reprices the order from current catalog prices and
// writes the result back as one version-guarded replace. Any failure after the
// match leaves the order completely unmodified.
func (s *OrderService) RemoveProductQuantity(ctx context.Context, orderID, productKey string, quantityToRemove int) (*domain.Order, error) {
	key, err := domain.ParseProductKey(productKey)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	updated, err := domain.RemoveQuantity(order.Products, key, quantityToRemove)
	if err != nil {
		return nil, err
	}

	prices, err := s.currentPrices(ctx, updated)
	if err != nil {
		return nil, err
	}

	order.Products = updated
	order.TotalPrice = domain.ComputeTotal(updated, prices)

	if err := s.orders.Replace(order); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	s.logger.Info("line item quantity removed",
		zap.String("order_id", order.ID),
		zap.String("product_key", key.String()),
		zap.Int("removed", quantityToRemove),
		zap.Float64("new_total", order.TotalPrice),
	)
	go s.publishOrderEvent(context.Background(), domain.EventOrderItemRemoved, order)

	return order, nil
}

type UpdateOrderInput struct {
	IsPaid          *bool
	IsDelivered     *bool
	ProductProgress map[string]string
}

func (s *OrderService) UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (*domain.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if in.IsPaid != nil {
		order.IsPaid = *in.IsPaid
	}
	if in.IsDelivered != nil {
		order.IsDelivered = *in.IsDelivered
	}
	if in.ProductProgress != nil {
		order.ProductProgress = in.ProductProgress
	} else {
		order.ProductProgress = map[string]string{}
	}

	if err := s.orders.Replace(order); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	go s.publishOrderEvent(context.Background(), domain.EventOrderUpdated, order)
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.Delete(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	s.logger.Info("order deleted", zap.String("order_id", id))
	go s.publishOrderEvent(context.Background(), domain.EventOrderDeleted, order)
	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	orders, err := s.orders.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		return nil, ErrOrderNotFound
	}
	return orders, nil
}

// GetAllOrders returns every order for the admin view, backfilling line-item
// images from the catalog cover when the stored color carries none.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, err
	}

	ids := make(map[string]struct{})
	for _, o := range orders {
		for _, item := range o.Products {
			if item.Color.Image == "" {
				ids[item.ProductID] = struct{}{}
			}
		}
	}
	covers := map[string]string{}
	if len(ids) > 0 {
		distinct := make([]string, 0, len(ids))
		for id := range ids {
			distinct = append(distinct, id)
		}
		products, err := s.products.FindByIDs(distinct)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			covers[p.ID] = p.CoverImage
		}
	}

	for i := range orders {
		for j := range orders[i].Products {
			item := &orders[i].Products[j]
			if item.Color.Image != "" {
				continue
			}
			if cover := covers[item.ProductID]; cover != "" {
				item.Color.Image = cover
			} else {
				item.Color.Image = DefaultCoverImage
			}
		}
	}
	return orders, nil
}

// currentPrices batches one catalog lookup for the distinct product ids still
// referenced by items. Ids missing from the catalog are absent from the map
// and price as zero.
func (s *OrderService) currentPrices(ctx context.Context, items []domain.LineItem) (map[string]float64, error) {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.NewPrice
	}
	return prices, nil
}

func (s *OrderService) getProductWithCache(ctx context.Context, productID string) (*domain.Product, error) {
	cacheKey := "product:" + productID

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && product != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, time.Minute)
		}
	}

	return product, nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, routingKey string, order *domain.Order) {
	evt := domain.NewOrderEvent(order)
	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		s.logger.Error("failed to publish order event",
			zap.String("routing_key", routingKey),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}
}
