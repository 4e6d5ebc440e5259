package booking

// Step indexes the five wizard screens. Transitions only ever move one step
// forward except for the cash branch, which jumps from payment-type selection
// straight to confirmation.
type Step int

const (
	StepDetails      Step = 1
	StepPaymentType  Step = 2
	StepReview       Step = 3
	StepPayment      Step = 4
	StepConfirmation Step = 5
)

func (s Step) IsValid() bool {
	return s >= StepDetails && s <= StepConfirmation
}

func (s Step) IsTerminal() bool {
	return s == StepConfirmation
}

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepPaymentType:
		return "payment_type"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

type PaymentType string

const (
	PaymentTypeInstant        PaymentType = "instant"
	PaymentTypeCashOnDelivery PaymentType = "cash_on_delivery"
)

func (p PaymentType) String() string {
	return string(p)
}

func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeInstant, PaymentTypeCashOnDelivery:
		return true
	default:
		return false
	}
}

// DerivedPaymentStatus is what the confirmation screen shows: an instant
// booking is paid by the time it confirms, cash stays pending until delivery.
func (p PaymentType) DerivedPaymentStatus() string {
	if p == PaymentTypeInstant {
		return "paid"
	}
	return "pending"
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
