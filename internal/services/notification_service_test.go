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

func intPtr(v int) *int { return &v }

func notificationFixtures() (*mocks.MockOrderRepository, *mocks.MockProductRepository, *mocks.MockMailer, *NotificationService) {
	orders := new(mocks.MockOrderRepository)
	products := new(mocks.MockProductRepository)
	mailer := new(mocks.MockMailer)
	service := NewNotificationService(orders, products, mailer, zap.NewNop())
	return orders, products, mailer, service
}

func matchedOrder() *domain.Order {
	return makeTestOrder(testOrderID, domain.LineItem{
		ProductID: testProductID,
		Quantity:  2,
		Color:     makeTestColor("Red", "Rouge", "أحمر"),
	})
}

func TestNotificationService_ResolveProgressMessage_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input ProgressNotificationInput
	}{
		{
			name:  "missing email",
			input: ProgressNotificationInput{OrderID: testOrderID, ProductKey: testProductID + "|Rouge", Progress: intPtr(50)},
		},
		{
			name:  "missing product key",
			input: ProgressNotificationInput{OrderID: testOrderID, Email: "a@b.com", Progress: intPtr(50)},
		},
		{
			name:  "missing progress",
			input: ProgressNotificationInput{OrderID: testOrderID, Email: "a@b.com", ProductKey: testProductID + "|Rouge"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, _, _, service := notificationFixtures()

			msg, err := service.ResolveProgressMessage(context.Background(), tt.input)

			assert.ErrorIs(t, err, ErrMissingField)
			assert.Nil(t, msg)
			// validation rejects before any lookup
			orders.AssertNotCalled(t, "FindByID", mock.Anything)
		})
	}
}

func TestNotificationService_ResolveProgressMessage_NotFound(t *testing.T) {
	orders, products, _, service := notificationFixtures()

	orders.On("FindByID", "missing").Return(nil, nil)
	orders.On("FindByID", testOrderID).Return(matchedOrder(), nil)
	products.On("FindByID", mock.Anything).Return(makeTestProduct(testProductID, "Kaftan", 150), nil).Maybe()

	_, err := service.ResolveProgressMessage(context.Background(), ProgressNotificationInput{
		OrderID: "missing", Email: "a@b.com", ProductKey: testProductID + "|Rouge", Progress: intPtr(50),
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = service.ResolveProgressMessage(context.Background(), ProgressNotificationInput{
		OrderID: testOrderID, Email: "a@b.com", ProductKey: testProductID + "|Vert", Progress: intPtr(50),
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestNotificationService_ResolveProgressMessage_Phrasing(t *testing.T) {
	tests := []struct {
		name        string
		progress    int
		colorLabel  string
		contains    []string
		notContains []string
	}{
		{
			name:       "completion phrasing at 100",
			progress:   100,
			colorLabel: "Rouge",
			contains: []string{
				"Votre création est prête",
				"entièrement terminé",
				"جاهزة للتسليم",
			},
			notContains: []string{"Nous vous tiendrons informé"},
		},
		{
			name:       "partial phrasing below 100",
			progress:   40,
			colorLabel: "أحمر",
			contains: []string{
				"terminée à 40%",
				"Nous vous tiendrons informé",
				"سنقوم بإبلاغك",
			},
			notContains: []string{"Bonne nouvelle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, products, mailer, service := notificationFixtures()
			orders.On("FindByID", testOrderID).Return(matchedOrder(), nil)
			products.On("FindByID", testProductID).Return(makeTestProduct(testProductID, "Kaftan", 150), nil)

			msg, err := service.ResolveProgressMessage(context.Background(), ProgressNotificationInput{
				OrderID:    testOrderID,
				Email:      "amira@example.com",
				ProductKey: testProductID + "|" + tt.colorLabel,
				Progress:   intPtr(tt.progress),
			})

			assert.NoError(t, err)
			assert.Equal(t, "amira@example.com", msg.To)
			// the caller's label is echoed back verbatim
			assert.Contains(t, msg.HTML, tt.colorLabel)
			assert.Contains(t, msg.HTML, "Kaftan")
			assert.Contains(t, msg.HTML, testOrderShort)
			for _, s := range tt.contains {
				assert.Contains(t, msg.HTML+msg.Subject, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, msg.HTML, s)
			}
			// resolution is pure; nothing was dispatched
			mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestNotificationService_ResolveProgressMessage_ArticleIndex(t *testing.T) {
	orders, products, _, service := notificationFixtures()
	orders.On("FindByID", testOrderID).Return(matchedOrder(), nil)
	products.On("FindByID", testProductID).Return(makeTestProduct(testProductID, "Kaftan", 150), nil)

	msg, err := service.ResolveProgressMessage(context.Background(), ProgressNotificationInput{
		OrderID:      testOrderID,
		Email:        "amira@example.com",
		ProductKey:   testProductID + "|Rouge",
		Progress:     intPtr(60),
		ArticleIndex: 2,
	})

	assert.NoError(t, err)
	assert.Contains(t, msg.Subject, "(Article #2)")
	assert.Contains(t, msg.HTML, "(المقالة رقم 2)")
}

func TestNotificationService_SendProgressNotification(t *testing.T) {
	t.Run("dispatches the resolved message", func(t *testing.T) {
		orders, products, mailer, service := notificationFixtures()
		orders.On("FindByID", testOrderID).Return(matchedOrder(), nil)
		products.On("FindByID", testProductID).Return(makeTestProduct(testProductID, "Kaftan", 150), nil)
		mailer.On("Send", mock.Anything, "amira@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

		msg, err := service.SendProgressNotification(context.Background(), ProgressNotificationInput{
			OrderID:    testOrderID,
			Email:      "amira@example.com",
			ProductKey: testProductID + "|Rouge",
			Progress:   intPtr(100),
		})

		assert.NoError(t, err)
		assert.NotNil(t, msg)
		mailer.AssertExpectations(t)
	})

	t.Run("transport failure is reported, not retried", func(t *testing.T) {
		orders, products, mailer, service := notificationFixtures()
		orders.On("FindByID", testOrderID).Return(matchedOrder(), nil)
		products.On("FindByID", testProductID).Return(makeTestProduct(testProductID, "Kaftan", 150), nil)
		mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp timeout")).Once()

		msg, err := service.SendProgressNotification(context.Background(), ProgressNotificationInput{
			OrderID:    testOrderID,
			Email:      "amira@example.com",
			ProductKey: testProductID + "|Rouge",
			Progress:   intPtr(50),
		})

		assert.ErrorIs(t, err, ErrNotificationFailed)
		assert.Nil(t, msg)
		mailer.AssertExpectations(t)
	})
}
