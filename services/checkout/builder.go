package checkout

import (
	"math"
	"time"

	"github.com/goldencrumb/bakerybackend/services/cart"
	"github.com/goldencrumb/bakerybackend/services/delivery"
	"github.com/goldencrumb/bakerybackend/services/order"
)

// DefaultUpfrontRatio is the portion of the subtotal charged at order
// placement. The remainder plus the delivery fee is collected on delivery.
const DefaultUpfrontRatio = 0.5

// UpfrontAmountInCents rounds half away from zero so the builder and the
// payment call arrive at the same charged amount.
func UpfrontAmountInCents(subtotalInCents int, upfrontRatio float64) int {
	return int(math.Round(float64(subtotalInCents) * upfrontRatio))
}

// BuildOrderRequest maps a cart and the filled-in checkout form onto an
// order-creation request. It never fails: absent form fields degrade to
// empty strings and a malformed delivery date is dropped, leaving it to the
// order store to flag what is really missing.
func BuildOrderRequest(crt cart.Cart, form CheckoutForm, zone delivery.Zone, transactionUID string, upfrontRatio float64) order.CreateOrderRequest {
	subtotal := crt.SubtotalInCents()
	amountPaid := UpfrontAmountInCents(subtotal, upfrontRatio)

	items := make([]order.OrderItem, 0, len(crt.Items)+len(crt.CustomLoafItems))
	for _, item := range crt.Items {
		items = append(items, order.OrderItem{
			ProductUID:        item.ProductUID,
			Name:              item.Name,
			Quantity:          item.Quantity,
			UnitPriceInCents:  item.UnitPriceInCents,
			TotalPriceInCents: item.TotalPriceInCents(),
			Customization:     mapCustomization(item.Customization),
		})
	}
	for _, loaf := range crt.CustomLoafItems {
		items = append(items, order.OrderItem{
			ProductUID:        loaf.UID,
			Name:              loaf.Name,
			Quantity:          1,
			UnitPriceInCents:  loaf.PriceInCents,
			TotalPriceInCents: loaf.PriceInCents,
			IsCustomLoaf:      true,
			Customization:     mapCustomization(loaf.Customization),
		})
	}

	deliveryDate := parseDate(form.DeliveryDate)

	return order.CreateOrderRequest{
		Customer: order.CustomerInfo{
			Name:        form.CustomerName,
			PhoneNumber: form.PhoneNumber,
			Email:       form.Email,
		},
		Delivery: order.DeliveryInfo{
			ZoneUID:             zone.UID,
			ZoneName:            zone.Name,
			AddressStreet:       form.AddressStreet,
			AddressCity:         form.AddressCity,
			DeliveryDate:        deliveryDate,
			TimeSlot:            form.TimeSlot,
			SpecialInstructions: form.SpecialInstructions,
		},
		Payment: order.PaymentInfo{
			Method:                 form.PaymentMethod,
			AmountPaidInCents:      amountPaid,
			AmountRemainingInCents: amountPaid + zone.DeliveryFeeInCents,
			Status:                 order.PaymentStatusPending,
			TransactionUID:         transactionUID,
		},
		Items:              items,
		SubtotalInCents:    subtotal,
		DeliveryFeeInCents: zone.DeliveryFeeInCents,
		Notes:              form.Notes,
		DueDate:            deliveryDate,
	}
}

func mapCustomization(custom cart.Customization) order.ItemCustomization {
	return order.ItemCustomization{
		Size:        custom.Size,
		Cream:       custom.Cream,
		Container:   custom.Container,
		Decorations: custom.Decorations,
		Notes:       custom.Notes,
		ImageURLs:   custom.ImageURLs,
	}
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}
