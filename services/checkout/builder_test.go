package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goldencrumb/bakerybackend/services/cart"
	"github.com/goldencrumb/bakerybackend/services/delivery"
)

func TestBuildOrderRequest(t *testing.T) {

	t.Run("Splits payment fifty-fifty", func(t *testing.T) {
		// given
		crt := exampleCart()
		form := exampleForm()
		zone := exampleZone()

		// when
		req := BuildOrderRequest(crt, form, zone, "txn-123", DefaultUpfrontRatio)

		// then: subtotal 4000 and fee 300 split into 2000 upfront and 2300 on delivery
		assert.Equal(t, 4000, req.SubtotalInCents)
		assert.Equal(t, 300, req.DeliveryFeeInCents)
		assert.Equal(t, 2000, req.Payment.AmountPaidInCents)
		assert.Equal(t, 2300, req.Payment.AmountRemainingInCents)
		assert.Equal(t, "txn-123", req.Payment.TransactionUID)
	})

	t.Run("Payment split stays within a cent of the total", func(t *testing.T) {
		crt := exampleCart()
		crt.Items[0].UnitPriceInCents = 4001

		req := BuildOrderRequest(crt, exampleForm(), exampleZone(), "txn-123", DefaultUpfrontRatio)

		total := req.SubtotalInCents + req.DeliveryFeeInCents
		split := req.Payment.AmountPaidInCents + req.Payment.AmountRemainingInCents
		assert.InDelta(t, total, split, 1)
	})

	t.Run("Maps cart items and custom loaves", func(t *testing.T) {
		// given
		crt := exampleCart()
		crt.CustomLoafItems = []cart.CustomLoafItem{
			{UID: "loaf-1", Name: "Sourdough special", PriceInCents: 1500, Customization: cart.Customization{Size: "large"}},
		}

		// when
		req := BuildOrderRequest(crt, exampleForm(), exampleZone(), "txn-123", DefaultUpfrontRatio)

		// then
		assert.Len(t, req.Items, 2)
		assert.Equal(t, "Chocolate cake", req.Items[0].Name)
		assert.False(t, req.Items[0].IsCustomLoaf)
		assert.Equal(t, "vanilla", req.Items[0].Customization.Cream)

		assert.Equal(t, "Sourdough special", req.Items[1].Name)
		assert.True(t, req.Items[1].IsCustomLoaf)
		assert.Equal(t, 1, req.Items[1].Quantity)
		assert.Equal(t, 1500, req.Items[1].TotalPriceInCents)
		assert.Equal(t, "large", req.Items[1].Customization.Size)
		assert.Equal(t, 5500, req.SubtotalInCents)
	})

	t.Run("Tolerates partial customization", func(t *testing.T) {
		crt := exampleCart()
		crt.Items[0].Customization = cart.Customization{}

		req := BuildOrderRequest(crt, exampleForm(), exampleZone(), "txn-123", DefaultUpfrontRatio)

		assert.Equal(t, "", req.Items[0].Customization.Cream)
		assert.Empty(t, req.Items[0].Customization.Decorations)
	})

	t.Run("Absent form fields degrade to empty strings", func(t *testing.T) {
		req := BuildOrderRequest(exampleCart(), CheckoutForm{}, exampleZone(), "txn-123", DefaultUpfrontRatio)

		assert.Equal(t, "", req.Customer.Name)
		assert.Equal(t, "", req.Customer.PhoneNumber)
		assert.Equal(t, "", req.Delivery.AddressStreet)
		assert.Nil(t, req.Delivery.DeliveryDate)
	})

	t.Run("Parses the delivery date", func(t *testing.T) {
		req := BuildOrderRequest(exampleCart(), exampleForm(), exampleZone(), "txn-123", DefaultUpfrontRatio)

		assert.Equal(t, time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC), *req.Delivery.DeliveryDate)
		assert.Equal(t, req.Delivery.DeliveryDate, req.DueDate)
	})

	t.Run("Drops a malformed delivery date", func(t *testing.T) {
		form := exampleForm()
		form.DeliveryDate = "soon"

		req := BuildOrderRequest(exampleCart(), form, exampleZone(), "txn-123", DefaultUpfrontRatio)

		assert.Nil(t, req.Delivery.DeliveryDate)
	})

	t.Run("Does not mutate the cart", func(t *testing.T) {
		crt := exampleCart()
		before := crt.SubtotalInCents()

		_ = BuildOrderRequest(crt, exampleForm(), exampleZone(), "txn-123", DefaultUpfrontRatio)

		assert.Equal(t, before, crt.SubtotalInCents())
		assert.Len(t, crt.Items, 1)
	})
}

func exampleCart() cart.Cart {
	return cart.Cart{
		UID: cartUID,
		Items: []cart.CartItem{
			{
				ProductUID:       "prod_cake",
				Name:             "Chocolate cake",
				UnitPriceInCents: 4000,
				Quantity:         1,
				Customization: cart.Customization{
					Cream:       "vanilla",
					Decorations: []string{"strawberries"},
				},
			},
		},
	}
}

func exampleForm() CheckoutForm {
	return CheckoutForm{
		CustomerName:  "Amina Okello",
		PhoneNumber:   "0712345678",
		ZoneUID:       "zone_north",
		AddressStreet: "12 Acacia Avenue",
		DeliveryDate:  "2026-03-20",
		PaymentMethod: "mobile_money",
	}
}

func exampleZone() delivery.Zone {
	return delivery.Zone{UID: "zone_north", Name: "Northern suburbs", DeliveryFeeInCents: 300}
}
