package booking

import (
	"regexp"
	"strings"
)

// Card holds the step-4 payment form. It is validated locally and reduced to
// a masked last-4 reference; the full number, expiry, and CVV are never
// persisted or sent to any endpoint.
type Card struct {
	Number string
	Holder string
	Expiry string // MM/YY
	CVV    string
}

var (
	cardDigits    = regexp.MustCompile(`^[0-9]{16}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern    = regexp.MustCompile(`^[0-9]{3,4}$`)
)

func (c Card) Validate() FieldErrors {
	errs := FieldErrors{}

	if !cardDigits.MatchString(c.strippedNumber()) {
		errs["cardNumber"] = "card number must be 16 digits"
	}
	if len(strings.TrimSpace(c.Holder)) < minNameLen {
		errs["cardholderName"] = "cardholder name must be at least 3 characters"
	}
	if !expiryPattern.MatchString(c.Expiry) {
		errs["expiryDate"] = "expiry must be MM/YY"
	}
	if !cvvPattern.MatchString(c.CVV) {
		errs["cvv"] = "CVV must be 3 or 4 digits"
	}

	return errs
}

// Last4 is the only part of the card that leaves the process.
func (c Card) Last4() string {
	n := c.strippedNumber()
	if len(n) < 4 {
		return ""
	}
	return n[len(n)-4:]
}

func (c Card) MaskedReference() string {
	last4 := c.Last4()
	if last4 == "" {
		return ""
	}
	return "card_****" + last4
}

func (c Card) strippedNumber() string {
	return strings.ReplaceAll(c.Number, " ", "")
}
