package booking

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// FieldErrors is the field-keyed error map the wizard shows inline. A
// non-empty map blocks the transition; no remote call is made.
type FieldErrors map[string]string

func (e FieldErrors) Any() bool {
	return len(e) > 0
}

const (
	minNameLen    = 3
	minAddressLen = 10
	phoneDigits   = 10
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateStep is the single guard shared by step transitions and the
// pre-submission check in booking creation. Both call sites see the same
// rules, so a draft that passed its step guard cannot fail submission
// validation (and vice versa).
func ValidateStep(d *Draft, step Step) FieldErrors {
	errs := FieldErrors{}

	switch step {
	case StepDetails:
		validateSchedule(d, errs)
		validateCustomer(d, errs)
	case StepPaymentType:
		if !d.PaymentType.IsValid() {
			errs["paymentType"] = "select a payment method"
		}
	case StepReview:
		// Review advances unconditionally.
	case StepPayment:
		// Card details never touch the draft; Card.Validate guards step 4.
	case StepConfirmation:
		// Terminal.
	}

	return errs
}

func validateSchedule(d *Draft, errs FieldErrors) {
	if d.ProviderID == uuid.Nil {
		errs["providerId"] = "provider is required"
	}
	if d.ScheduledDate == "" {
		errs["scheduledDate"] = "pick a date"
	}
	switch {
	case d.ScheduledTime == "":
		errs["scheduledTime"] = "pick a time slot"
	case !d.Slots.Contains(d.ScheduledDate, d.ScheduledTime):
		// Covers the implicit invalidation case: a date change refreshed the
		// slot list and the previously chosen time is no longer in it.
		errs["scheduledTime"] = "selected time is no longer available"
	}
}

func validateCustomer(d *Draft, errs FieldErrors) {
	c := d.Customer

	if !c.Prefilled {
		if len(strings.TrimSpace(c.Name)) < minNameLen {
			errs["customerName"] = "name must be at least 3 characters"
		}
		if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
			errs["customerEmail"] = "enter a valid email address"
		}
		if !isValidPhone(c.Phone) {
			errs["customerPhone"] = "phone must be exactly 10 digits"
		}
	}

	// Address is required even when the profile pre-filled everything else.
	if len(strings.TrimSpace(c.Address)) < minAddressLen {
		errs["customerAddress"] = "address must be at least 10 characters"
	}
}

func isValidPhone(phone string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return len(stripped) == phoneDigits && digitsPattern.MatchString(stripped)
}
