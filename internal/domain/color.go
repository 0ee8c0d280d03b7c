package domain

import "encoding/json"

// Fallback labels used when a submitted color carries no usable name.
// The Arabic fallback is fixed: Arabic text is only ever produced at
// product-authoring time, never derived from a raw order-time value.
const (
	FallbackColorLatin  = "Original"
	FallbackColorArabic = "أصلي"
)

// LocalizedText is a label carried in the three storefront languages.
type LocalizedText struct {
	En string `json:"en"`
	Fr string `json:"fr"`
	Ar string `json:"ar"`
}

// Complete reports whether all three language forms are present.
func (t LocalizedText) Complete() bool {
	return t.En != "" && t.Fr != "" && t.Ar != ""
}

// Matches reports whether label equals any language form, checked en, fr, ar.
func (t LocalizedText) Matches(label string) bool {
	return label == t.En || label == t.Fr || label == t.Ar
}

// ColorName accepts both shapes clients submit: the canonical multilingual
// object, or a bare string. A bare string survives round-trips unchanged so
// documents written before normalization existed still match.
type ColorName struct {
	Raw  string
	Text LocalizedText
}

func (c *ColorName) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &c.Raw)
	}
	return json.Unmarshal(b, &c.Text)
}

func (c ColorName) MarshalJSON() ([]byte, error) {
	if c.Raw != "" {
		return json.Marshal(c.Raw)
	}
	return json.Marshal(c.Text)
}

// MatchesLabel matches a caller-submitted label against this name: a bare
// string compares directly, a multilingual name matches any of its forms.
func (c ColorName) MatchesLabel(label string) bool {
	if c.Raw != "" {
		return c.Raw == label
	}
	return c.Text.Matches(label)
}

// ItemColor is the color choice persisted on a line item.
type ItemColor struct {
	Name  ColorName `json:"colorName"`
	Image string    `json:"image"`
}

// ColorInput is the order-time color payload before normalization. It may be
// absent, a bare string, or a partial or complete multilingual object.
type ColorInput struct {
	Name  ColorName `json:"colorName"`
	Image string    `json:"image"`
}

// ResolveColor normalizes a submitted color into the canonical shape.
// A complete multilingual name passes through unchanged. Anything else gets
// En and Fr from the raw string when present, FallbackColorLatin otherwise,
// and always the fixed Arabic fallback. The image resolves explicit color
// image, then the order-level cover hint, then the catalog cover.
func ResolveColor(in *ColorInput, coverHint, catalogCover string) ItemColor {
	var name ColorName
	var image string
	if in != nil {
		image = in.Image
		name = in.Name
	}
	if image == "" {
		image = coverHint
	}
	if image == "" {
		image = catalogCover
	}

	if name.Raw == "" && name.Text.Complete() {
		return ItemColor{Name: name, Image: image}
	}

	latin := func(form string) string {
		if form != "" {
			return form
		}
		if name.Raw != "" {
			return name.Raw
		}
		return FallbackColorLatin
	}
	ar := name.Text.Ar
	if ar == "" {
		ar = FallbackColorArabic
	}

	return ItemColor{
		Name: ColorName{Text: LocalizedText{
			En: latin(name.Text.En),
			Fr: latin(name.Text.Fr),
			Ar: ar,
		}},
		Image: image,
	}
}
