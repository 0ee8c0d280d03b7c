package http

import "boutique-backend/internal/domain"

type OrderItemRequest struct {
	ProductID  string             `json:"productId" binding:"required"`
	Quantity   int                `json:"quantity" binding:"required,gt=0"`
	Color      *domain.ColorInput `json:"color"`
	CoverImage string             `json:"coverImage"`
}

type CreateOrderRequest struct {
	Name     string             `json:"name" binding:"required"`
	Email    string             `json:"email" binding:"required,email"`
	Address  string             `json:"address"`
	Phone    string             `json:"phone"`
	Products []OrderItemRequest `json:"products" binding:"required,min=1,dive"`
}

type UpdateOrderRequest struct {
	IsPaid          *bool             `json:"isPaid"`
	IsDelivered     *bool             `json:"isDelivered"`
	ProductProgress map[string]string `json:"productProgress"`
}

type RemoveProductRequest struct {
	OrderID          string `json:"orderId" binding:"required"`
	ProductKey       string `json:"productKey" binding:"required"`
	QuantityToRemove int    `json:"quantityToRemove" binding:"required,gt=0"`
}

type RemoveProductResponse struct {
	Message    string  `json:"message"`
	TotalPrice float64 `json:"totalPrice"`
}

// Email, productKey and progress are validated by the notification service so
// a missing field is reported as such, not as a binding failure.
type SendNotificationRequest struct {
	OrderID      string `json:"orderId" binding:"required"`
	Email        string `json:"email"`
	ProductKey   string `json:"productKey"`
	Progress     *int   `json:"progress" binding:"omitempty,gte=0,lte=100"`
	ArticleIndex int    `json:"articleIndex"`
}

type ColorRequest struct {
	ColorName string `json:"colorName" binding:"required"`
	Image     string `json:"image"`
}

type CreateProductRequest struct {
	Title         string         `json:"title" binding:"required"`
	Description   string         `json:"description" binding:"required"`
	Category      string         `json:"category" binding:"required"`
	NewPrice      float64        `json:"newPrice" binding:"required,gt=0"`
	OldPrice      float64        `json:"oldPrice"`
	StockQuantity int            `json:"stockQuantity"`
	Colors        []ColorRequest `json:"colors" binding:"required,min=1,dive"`
	Trending      bool           `json:"trending"`
}

type UpdateProductRequest struct {
	Title         string                `json:"title" binding:"required"`
	Description   string                `json:"description" binding:"required"`
	Category      string                `json:"category" binding:"required"`
	NewPrice      float64               `json:"newPrice" binding:"required,gt=0"`
	OldPrice      float64               `json:"oldPrice"`
	StockQuantity int                   `json:"stockQuantity"`
	Colors        []domain.ColorVariant `json:"colors" binding:"required,min=1"`
	Trending      bool                  `json:"trending"`
}

type UpdatePriceRequest struct {
	Percentage float64 `json:"percentage" binding:"required,gt=0,lte=100"`
}
