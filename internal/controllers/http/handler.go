package http

import (
	"errors"
	"net/http"

	"boutique-backend/internal/domain"
	"boutique-backend/internal/middleware"
	"boutique-backend/internal/repository"
	"boutique-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	orders        *services.OrderService
	products      *services.ProductService
	notifications *services.NotificationService
	stats         *services.StatsService
	logger        *zap.Logger
}

func NewHandler(
	orders *services.OrderService,
	products *services.ProductService,
	notifications *services.NotificationService,
	stats *services.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		orders:        orders,
		products:      products,
		notifications: notifications,
		stats:         stats,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	orders := api.Group("/orders")
	orders.POST("", h.CreateOrder)
	orders.GET("", h.GetAllOrders)
	orders.GET("/:id", h.GetOrderByID)
	orders.GET("/email/:email", h.GetOrdersByEmail)
	orders.PATCH("/:id", h.UpdateOrder)
	orders.DELETE("/:id", h.DeleteOrder)
	orders.POST("/remove-product", h.RemoveProduct)
	orders.POST("/notify", h.SendNotification)

	products := api.Group("/products")
	products.POST("", h.CreateProduct)
	products.GET("", h.GetAllProducts)
	products.GET("/:id", h.GetProductByID)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)
	products.PATCH("/:id/price", h.UpdateProductPrice)

	api.GET("/admin/stats", h.AdminStats)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	in := services.CreateOrderInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
	}
	for _, item := range req.Products {
		in.Items = append(in.Items, services.OrderItemInput{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Color:      item.Color,
			CoverImage: item.CoverImage,
		})
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.orders.GetAllOrders(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrderByID(c *gin.Context) {
	order, err := h.orders.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrdersByEmail(c *gin.Context) {
	orders, err := h.orders.GetOrdersByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), c.Param("id"), services.UpdateOrderInput{
		IsPaid:          req.IsPaid,
		IsDelivered:     req.IsDelivered,
		ProductProgress: req.ProductProgress,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	order, err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully", "deletedOrder": order})
}

func (h *Handler) RemoveProduct(c *gin.Context) {
	var req RemoveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.orders.RemoveProductQuantity(c.Request.Context(), req.OrderID, req.ProductKey, req.QuantityToRemove)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, RemoveProductResponse{
		Message:    "Product updated successfully",
		TotalPrice: order.TotalPrice,
	})
}

func (h *Handler) SendNotification(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	_, err := h.notifications.SendProgressNotification(c.Request.Context(), services.ProgressNotificationInput{
		OrderID:      req.OrderID,
		Email:        req.Email,
		ProductKey:   req.ProductKey,
		Progress:     req.Progress,
		ArticleIndex: req.ArticleIndex,
	})
	if err != nil {
		middleware.RecordNotificationSent("failed")
		h.writeError(c, err)
		return
	}
	middleware.RecordNotificationSent("sent")
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent successfully in French and Arabic."})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	in := services.CreateProductInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		NewPrice:      req.NewPrice,
		OldPrice:      req.OldPrice,
		StockQuantity: req.StockQuantity,
		Trending:      req.Trending,
	}
	for _, color := range req.Colors {
		in.Colors = append(in.Colors, services.ColorVariantInput{
			ColorName: color.ColorName,
			Image:     color.Image,
		})
	}

	product, err := h.products.CreateProduct(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

func (h *Handler) GetAllProducts(c *gin.Context) {
	products, err := h.products.GetAllProducts(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProductByID(c *gin.Context) {
	product, err := h.products.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), c.Param("id"), services.UpdateProductInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		NewPrice:      req.NewPrice,
		OldPrice:      req.OldPrice,
		StockQuantity: req.StockQuantity,
		Colors:        req.Colors,
		Trending:      req.Trending,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	product, err := h.products.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "product": product})
}

func (h *Handler) UpdateProductPrice(c *gin.Context) {
	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	finalPrice, err := h.products.UpdatePriceByPercentage(c.Request.Context(), c.Param("id"), req.Percentage)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price updated successfully", "finalPrice": finalPrice})
}

func (h *Handler) AdminStats(c *gin.Context) {
	summary, err := h.stats.Summary(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// writeError maps the error taxonomy onto status codes: validation 400,
// not-found 404, state conflicts 409, everything else a dependency fault.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingField), errors.Is(err, domain.ErrMalformedKey):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrInsufficientQuantity),
		errors.Is(err, repository.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrNotificationFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending notification"})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
