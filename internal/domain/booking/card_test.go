//go:build unit

package booking_test

import (
	"testing"

	"marketplace-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func validCard() booking.Card {
	return booking.Card{
		Number: "4242 4242 4242 4242",
		Holder: "Jordan Smith",
		Expiry: "12/28",
		CVV:    "123",
	}
}

func TestCardValidate(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*booking.Card)
		wantField string
	}{
		{name: "valid card passes", mutate: func(*booking.Card) {}},
		{name: "spaces in the number are ignored", mutate: func(c *booking.Card) { c.Number = "4242424242424242" }},
		{name: "short number", mutate: func(c *booking.Card) { c.Number = "4242" }, wantField: "cardNumber"},
		{name: "letters in the number", mutate: func(c *booking.Card) { c.Number = "4242 4242 4242 424x" }, wantField: "cardNumber"},
		{name: "short holder name", mutate: func(c *booking.Card) { c.Holder = "JS" }, wantField: "cardholderName"},
		{name: "expiry month 13", mutate: func(c *booking.Card) { c.Expiry = "13/28" }, wantField: "expiryDate"},
		{name: "expiry without slash", mutate: func(c *booking.Card) { c.Expiry = "1228" }, wantField: "expiryDate"},
		{name: "two digit cvv", mutate: func(c *booking.Card) { c.CVV = "12" }, wantField: "cvv"},
		{name: "four digit cvv passes", mutate: func(c *booking.Card) { c.CVV = "1234" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			card := validCard()
			c.mutate(&card)

			errs := card.Validate()

			if c.wantField == "" {
				assert.False(t, errs.Any(), "unexpected errors: %v", errs)
			} else {
				assert.Contains(t, errs, c.wantField)
			}
		})
	}
}

func TestCardMaskedReference(t *testing.T) {
	t.Run("keeps only the last four digits", func(t *testing.T) {
		card := validCard()

		assert.Equal(t, "4242", card.Last4())
		assert.Equal(t, "card_****4242", card.MaskedReference())
	})

	t.Run("empty number yields no reference", func(t *testing.T) {
		card := booking.Card{}

		assert.Empty(t, card.Last4())
		assert.Empty(t, card.MaskedReference())
	})
}
