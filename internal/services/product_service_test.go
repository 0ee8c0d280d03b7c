package services

import (
	"context"
	"errors"
	"testing"

	"boutique-backend/internal/domain"
	"boutique-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func productFixtures() (*mocks.MockProductRepository, *mocks.MockTranslator, *ProductService) {
	repo := new(mocks.MockProductRepository)
	translator := new(mocks.MockTranslator)
	service := NewProductService(repo, translator, zap.NewNop())
	return repo, translator, service
}

func TestProductService_CreateProduct(t *testing.T) {
	repo, translator, service := productFixtures()

	translator.On("Translate", mock.Anything, "Red", "fr").Return("Rouge", nil)
	translator.On("Translate", mock.Anything, "Red", "ar").Return("أحمر", nil)
	translator.On("Translate", mock.Anything, "Kaftan", "fr").Return("Caftan", nil)
	translator.On("Translate", mock.Anything, "Kaftan", "ar").Return("قفطان", nil)
	translator.On("Translate", mock.Anything, "Handmade kaftan", "fr").Return("Caftan artisanal", nil)
	translator.On("Translate", mock.Anything, "Handmade kaftan", "ar").Return("قفطان يدوي", nil)
	repo.On("Create", mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := service.CreateProduct(context.Background(), CreateProductInput{
		Title:       "Kaftan",
		Description: "Handmade kaftan",
		Category:    "traditional",
		NewPrice:    150,
		OldPrice:    200,
		Colors: []ColorVariantInput{
			{ColorName: "Red", Image: "/uploads/red.png"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.LocalizedText{En: "Red", Fr: "Rouge", Ar: "أحمر"}, product.Colors[0].Name)
	assert.True(t, product.Colors[0].Name.Complete())
	assert.Equal(t, "/uploads/red.png", product.CoverImage, "cover image is the first color's image")
	assert.Equal(t, "Caftan", product.Translations.Fr.Title)
	assert.Equal(t, "قفطان يدوي", product.Translations.Ar.Description)
	assert.Equal(t, defaultStockQuantity, product.StockQuantity)
	assert.Equal(t, float64(150), product.FinalPrice)

	repo.AssertExpectations(t)
	translator.AssertExpectations(t)
}

func TestProductService_CreateProduct_TranslationFallback(t *testing.T) {
	repo, translator, service := productFixtures()

	// translator failures degrade to the source text
	translator.On("Translate", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("service down"))
	repo.On("Create", mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := service.CreateProduct(context.Background(), CreateProductInput{
		Title:       "Kaftan",
		Description: "Handmade",
		Category:    "traditional",
		NewPrice:    150,
		Colors:      []ColorVariantInput{{ColorName: "Red", Image: "/uploads/red.png"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Red", product.Colors[0].Name.Fr)
	assert.Equal(t, "Red", product.Colors[0].Name.Ar)
	assert.Equal(t, "Kaftan", product.Translations.Fr.Title)
}

func TestProductService_CreateProduct_RequiresColors(t *testing.T) {
	repo, _, service := productFixtures()

	_, err := service.CreateProduct(context.Background(), CreateProductInput{
		Title:       "Kaftan",
		Description: "Handmade",
		NewPrice:    150,
	})

	assert.ErrorIs(t, err, ErrMissingField)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_UpdatePriceByPercentage(t *testing.T) {
	repo, _, service := productFixtures()

	product := makeTestProduct(testProductID, "Kaftan", 150)
	product.OldPrice = 200
	repo.On("FindByID", testProductID).Return(product, nil)
	repo.On("FindByID", "missing").Return(nil, nil)
	repo.On("Update", mock.AnythingOfType("*domain.Product")).Return(nil)

	finalPrice, err := service.UpdatePriceByPercentage(context.Background(), testProductID, 25)
	assert.NoError(t, err)
	assert.Equal(t, float64(150), finalPrice) // 200 - 200*25/100

	_, err = service.UpdatePriceByPercentage(context.Background(), "missing", 25)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_GetProductByID(t *testing.T) {
	repo, _, service := productFixtures()

	repo.On("FindByID", testProductID).Return(makeTestProduct(testProductID, "Kaftan", 150), nil)
	repo.On("FindByID", "missing").Return(nil, nil)

	product, err := service.GetProductByID(context.Background(), testProductID)
	assert.NoError(t, err)
	assert.Equal(t, "Kaftan", product.Title)

	_, err = service.GetProductByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Contains(t, err.Error(), "missing")
}
