package checkout

import "time"

type CheckoutStep string

const (
	StepDelivery     CheckoutStep = "delivery"
	StepPayment      CheckoutStep = "payment"
	StepReview       CheckoutStep = "review"
	StepConfirmation CheckoutStep = "confirmation"
)

var stepOrder = map[CheckoutStep]int{
	StepDelivery:     0,
	StepPayment:      1,
	StepReview:       2,
	StepConfirmation: 3,
}

func (s CheckoutStep) IsValid() bool {
	_, found := stepOrder[s]
	return found
}

// CheckoutForm carries what the shopper types in along the way. Fields stay
// empty strings when not (yet) filled in.
type CheckoutForm struct {
	CustomerName        string `form:"customerName"`
	PhoneNumber         string `form:"phoneNumber"`
	Email               string `form:"email"`
	ZoneUID             string `form:"zoneUid"`
	AddressStreet       string `form:"addressStreet"`
	AddressCity         string `form:"addressCity"`
	DeliveryDate        string `form:"deliveryDate"`
	TimeSlot            string `form:"timeSlot"`
	SpecialInstructions string `form:"specialInstructions"`
	PaymentMethod       string `form:"paymentMethod"`
	Notes               string `form:"notes"`
}

// CheckoutSession is the transient multi-step state of one shopper walking
// from delivery details to confirmation. It is keyed on the cart uid.
type CheckoutSession struct {
	CartUID     string
	Form        CheckoutForm
	CurrentStep CheckoutStep
	Submitting  bool
	OrderUID    string
	StartedAt   time.Time
	LastUpdated *time.Time
}
