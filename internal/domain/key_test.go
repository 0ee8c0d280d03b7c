package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProductKey(t *testing.T) {
	key, err := ParseProductKey("P1|Rouge")
	assert.NoError(t, err)
	assert.Equal(t, "P1", key.ProductID)
	assert.Equal(t, "Rouge", key.ColorLabel)
	assert.Equal(t, "P1|Rouge", key.String())

	for _, bad := range []string{"", "P1", "P1|", "|Rouge"} {
		_, err := ParseProductKey(bad)
		assert.ErrorIs(t, err, ErrMalformedKey, "input %q", bad)
	}
}

func TestProductKey_Matches_LanguageInvariant(t *testing.T) {
	item := LineItem{
		ProductID: "P1",
		Quantity:  5,
		Color: ItemColor{
			Name: ColorName{Text: LocalizedText{En: "Red", Fr: "Rouge", Ar: "أحمر"}},
		},
	}

	for _, label := range []string{"Red", "Rouge", "أحمر"} {
		key := ProductKey{ProductID: "P1", ColorLabel: label}
		assert.True(t, key.Matches(item), "label %q", label)
	}

	assert.False(t, ProductKey{ProductID: "P2", ColorLabel: "Red"}.Matches(item))
	assert.False(t, ProductKey{ProductID: "P1", ColorLabel: "Blue"}.Matches(item))
}

func TestOrder_FindLineItem_FirstMatchWins(t *testing.T) {
	// Two items can collide when distinct colors share a label; the first in
	// sequence order is the addressed one.
	order := &Order{Products: []LineItem{
		{ProductID: "P1", Quantity: 1, Color: ItemColor{Name: ColorName{Text: LocalizedText{En: "Gold", Fr: "Or", Ar: "ذهبي"}}}},
		{ProductID: "P1", Quantity: 2, Color: ItemColor{Name: ColorName{Text: LocalizedText{En: "Or", Fr: "Doré", Ar: "ذهبي فاتح"}}}},
	}}

	idx, ok := order.FindLineItem(ProductKey{ProductID: "P1", ColorLabel: "Or"})
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = order.FindLineItem(ProductKey{ProductID: "P1", ColorLabel: "Silver"})
	assert.False(t, ok)
}
