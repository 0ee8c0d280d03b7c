package services

import (
	"context"
	"fmt"

	"boutique-backend/internal/domain"
	"boutique-backend/internal/infra"
	"boutique-backend/internal/repository"

	"go.uber.org/zap"
)

const defaultStockQuantity = 10

type ProductService struct {
	repo       repository.ProductRepository
	translator infra.Translator
	logger     *zap.Logger
}

func NewProductService(repo repository.ProductRepository, translator infra.Translator, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:       repo,
		translator: translator,
		logger:     logger,
	}
}

type ColorVariantInput struct {
	ColorName string
	Image     string
}

type CreateProductInput struct {
	Title         string
	Description   string
	Category      string
	NewPrice      float64
	OldPrice      float64
	StockQuantity int
	Colors        []ColorVariantInput
	Trending      bool
}

// CreateProduct authors a product: color names, title and description are
// translated to French and Arabic up front so order-time normalization never
// has to translate anything. Translation failures degrade to the source text.
func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if len(in.Colors) == 0 {
		return nil, fmt.Errorf("%w: at least one color must be provided", ErrMissingField)
	}

	colors := make([]domain.ColorVariant, 0, len(in.Colors))
	for _, c := range in.Colors {
		colors = append(colors, domain.ColorVariant{
			Name: domain.LocalizedText{
				En: c.ColorName,
				Fr: s.translate(ctx, c.ColorName, "fr"),
				Ar: s.translate(ctx, c.ColorName, "ar"),
			},
			Image: c.Image,
		})
	}

	stock := in.StockQuantity
	if stock <= 0 {
		stock = defaultStockQuantity
	}
	finalPrice := in.NewPrice
	if finalPrice == 0 {
		finalPrice = in.OldPrice
	}

	product := &domain.Product{
		Title:         in.Title,
		Description:   in.Description,
		Translations:  s.translateDetails(ctx, in.Title, in.Description),
		Category:      in.Category,
		CoverImage:    in.Colors[0].Image,
		Colors:        colors,
		OldPrice:      in.OldPrice,
		NewPrice:      in.NewPrice,
		FinalPrice:    finalPrice,
		StockQuantity: stock,
		Trending:      in.Trending,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("title", product.Title),
		zap.Int("colors", len(product.Colors)),
	)
	return product, nil
}

type UpdateProductInput struct {
	Title         string
	Description   string
	Category      string
	NewPrice      float64
	OldPrice      float64
	StockQuantity int
	Colors        []domain.ColorVariant
	Trending      bool
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error) {
	if len(in.Colors) == 0 {
		return nil, fmt.Errorf("%w: at least one color must be provided", ErrMissingField)
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	stock := in.StockQuantity
	if stock <= 0 {
		stock = defaultStockQuantity
	}
	finalPrice := in.NewPrice
	if finalPrice == 0 {
		finalPrice = in.OldPrice
	}

	product := &domain.Product{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		Translations:  s.translateDetails(ctx, in.Title, in.Description),
		Category:      in.Category,
		CoverImage:    in.Colors[0].Image,
		Colors:        in.Colors,
		OldPrice:      in.OldPrice,
		NewPrice:      in.NewPrice,
		FinalPrice:    finalPrice,
		StockQuantity: stock,
		Trending:      in.Trending,
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll()
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	s.logger.Info("product deleted", zap.String("product_id", id))
	return product, nil
}

// UpdatePriceByPercentage discounts the final price off the old price.
func (s *ProductService) UpdatePriceByPercentage(ctx context.Context, id string, percentage float64) (float64, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	discount := product.OldPrice * percentage / 100
	product.FinalPrice = product.OldPrice - discount

	if err := s.repo.Update(product); err != nil {
		return 0, err
	}
	return product.FinalPrice, nil
}

func (s *ProductService) translate(ctx context.Context, text, lang string) string {
	out, err := s.translator.Translate(ctx, text, lang)
	if err != nil || out == "" {
		return text
	}
	return out
}

func (s *ProductService) translateDetails(ctx context.Context, title, description string) domain.Translations {
	return domain.Translations{
		En: domain.TextTranslation{Title: title, Description: description},
		Fr: domain.TextTranslation{
			Title:       s.translate(ctx, title, "fr"),
			Description: s.translate(ctx, description, "fr"),
		},
		Ar: domain.TextTranslation{
			Title:       s.translate(ctx, title, "ar"),
			Description: s.translate(ctx, description, "ar"),
		},
	}
}
