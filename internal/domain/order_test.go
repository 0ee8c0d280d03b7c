package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func redItem(productID string, qty int) LineItem {
	return LineItem{
		ProductID: productID,
		Quantity:  qty,
		Color: ItemColor{
			Name:  ColorName{Text: LocalizedText{En: "Red", Fr: "Rouge", Ar: "أحمر"}},
			Image: "/uploads/red.png",
		},
	}
}

func TestRemoveQuantity(t *testing.T) {
	key := ProductKey{ProductID: "P1", ColorLabel: "Rouge"}

	tests := []struct {
		name        string
		items       []LineItem
		key         ProductKey
		qty         int
		expectedErr error
		expectedLen int
		expectedQty int
	}{
		{
			name:        "partial removal decrements",
			items:       []LineItem{redItem("P1", 5)},
			key:         key,
			qty:         2,
			expectedLen: 1,
			expectedQty: 3,
		},
		{
			name:        "full removal drops the item",
			items:       []LineItem{redItem("P1", 5)},
			key:         ProductKey{ProductID: "P1", ColorLabel: "أحمر"},
			qty:         5,
			expectedLen: 0,
		},
		{
			name:        "exceeding quantity fails",
			items:       []LineItem{redItem("P1", 5)},
			key:         key,
			qty:         6,
			expectedErr: ErrInsufficientQuantity,
		},
		{
			name:        "unknown item fails",
			items:       []LineItem{redItem("P1", 5)},
			key:         ProductKey{ProductID: "P9", ColorLabel: "Rouge"},
			qty:         1,
			expectedErr: ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RemoveQuantity(tt.items, tt.key, tt.qty)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, out)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, out, tt.expectedLen)
			if tt.expectedLen > 0 {
				assert.Equal(t, tt.expectedQty, out[0].Quantity)
			}
		})
	}
}

func TestRemoveQuantity_LeavesOtherItemsUntouched(t *testing.T) {
	items := []LineItem{
		redItem("P1", 5),
		{ProductID: "P2", Quantity: 1, Color: ItemColor{Name: ColorName{Raw: "Bleu"}}},
		redItem("P3", 2),
	}

	out, err := RemoveQuantity(items, ProductKey{ProductID: "P2", ColorLabel: "Bleu"}, 1)
	assert.NoError(t, err)
	assert.Equal(t, []LineItem{items[0], items[2]}, out)

	// input slice is unchanged
	assert.Len(t, items, 3)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestComputeTotal(t *testing.T) {
	items := []LineItem{redItem("P1", 3), redItem("P2", 2)}
	prices := map[string]float64{"P1": 120, "P2": 45.5}

	assert.Equal(t, 3*120+2*45.5, ComputeTotal(items, prices))

	// a product missing from the catalog contributes zero
	assert.Equal(t, float64(3*120), ComputeTotal(items, map[string]float64{"P1": 120}))
	assert.Equal(t, float64(0), ComputeTotal(nil, prices))
}

func TestOrder_ShortID(t *testing.T) {
	o := &Order{ID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}
	assert.Equal(t, "aaaaaaaa", o.ShortID())

	o = &Order{ID: "short"}
	assert.Equal(t, "short", o.ShortID())
}
