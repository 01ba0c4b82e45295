package contract

import (
	"errors"
	"fmt"
)

// ErrTokenMismatch is returned when amounts of different tokens (currency or
// currency issuer differ) are combined.
var ErrTokenMismatch = errors.New("amounts are denominated in different tokens")

// Amount is an immutable quantity of a currency issued by a specific party.
// Two amounts are only comparable when quantity, currency code and currency
// issuer all line up.
type Amount struct {
	Quantity int64
	Currency string
	Issuer   PartyAndReference
}

// NewAmount is a factory method for Amount.
func NewAmount(quantity int64, currency string, issuer PartyAndReference) Amount {
	return Amount{
		Quantity: quantity,
		Currency: currency,
		Issuer:   issuer,
	}
}

// SameToken reports whether both amounts are denominated in the same currency
// issued by the same party.
func (a Amount) SameToken(other Amount) bool {
	return a.Currency == other.Currency && a.Issuer == other.Issuer
}

// Add returns the sum of both amounts.
// Returns ErrTokenMismatch if the amounts are not denominated in the same token.
func (a Amount) Add(other Amount) (Amount, error) {
	if !a.SameToken(other) {
		return Amount{}, ErrTokenMismatch
	}

	sum := a
	sum.Quantity += other.Quantity

	return sum, nil
}

// Equal reports whether quantity, currency and currency issuer are all identical.
func (a Amount) Equal(other Amount) bool {
	return a == other
}

func (a Amount) String() string {
	return fmt.Sprintf("%d %s issued by %s", a.Quantity, a.Currency, a.Issuer)
}
