package cart

import "time"

// Customization captures how a cake or loaf is personalised. Every field is
// optional: a partially customised item simply leaves fields empty.
type Customization struct {
	Size        string
	Cream       string
	Container   string
	Decorations []string
	Notes       string
	ImageURLs   []string
}

type CartItem struct {
	ProductUID       string
	Name             string
	UnitPriceInCents int
	Quantity         int
	Customization    Customization
}

func (i CartItem) TotalPriceInCents() int {
	return i.UnitPriceInCents * i.Quantity
}

// CustomLoafItem is a made-to-order loaf priced as a whole.
type CustomLoafItem struct {
	UID           string
	Name          string
	PriceInCents  int
	Customization Customization
}

type Cart struct {
	UID                string
	Items              []CartItem
	CustomLoafItems    []CustomLoafItem
	DeliveryFeeInCents int
	CreatedAt          time.Time
	LastModified       *time.Time
}

func (c Cart) SubtotalInCents() int {
	subtotal := 0
	for _, item := range c.Items {
		subtotal += item.TotalPriceInCents()
	}
	for _, loaf := range c.CustomLoafItems {
		subtotal += loaf.PriceInCents
	}
	return subtotal
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0 && len(c.CustomLoafItems) == 0
}
