package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedKey = errors.New("malformed product key")

// ProductKey addresses a specific line item inside an order. The color label
// is opaque: it may be the English, French or Arabic form of the color name,
// whichever locale the operator happened to view the order in. Keys are
// recomputed from caller input on every request, never stored.
type ProductKey struct {
	ProductID  string
	ColorLabel string
}

// ParseProductKey splits the wire form "productId|colorLabel".
func ParseProductKey(s string) (ProductKey, error) {
	id, label, ok := strings.Cut(s, "|")
	if !ok || id == "" || label == "" {
		return ProductKey{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}
	return ProductKey{ProductID: id, ColorLabel: label}, nil
}

func (k ProductKey) String() string {
	return k.ProductID + "|" + k.ColorLabel
}

// Matches reports whether item is the one this key addresses, regardless of
// which language the label was submitted in.
func (k ProductKey) Matches(item LineItem) bool {
	return item.ProductID == k.ProductID && item.Color.Name.MatchesLabel(k.ColorLabel)
}
