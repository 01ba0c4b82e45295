package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixtureIssuer(name string) PartyAndReference {
	return PartyAndReference{Party: fixtureParty(name), Reference: "series-1"}
}

func Test_Amount_Add(t *testing.T) {
	bank := fixtureIssuer("bank")

	sum, err := NewAmount(40, "USD", bank).Add(NewAmount(60, "USD", bank))

	assert.NoError(t, err)
	assert.Equal(t, NewAmount(100, "USD", bank), sum)
}

func Test_Amount_Add_TokenMismatch(t *testing.T) {
	bank := fixtureIssuer("bank")

	tests := []struct {
		name  string
		other Amount
	}{
		{
			name:  "different currency",
			other: NewAmount(60, "EUR", bank),
		},
		{
			name:  "different issuer",
			other: NewAmount(60, "USD", fixtureIssuer("other-bank")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAmount(40, "USD", bank).Add(tt.other)
			assert.ErrorIs(t, err, ErrTokenMismatch)
		})
	}
}

func Test_Amount_Equal(t *testing.T) {
	bank := fixtureIssuer("bank")
	amount := NewAmount(100, "USD", bank)

	assert.True(t, amount.Equal(NewAmount(100, "USD", bank)))
	assert.False(t, amount.Equal(NewAmount(99, "USD", bank)))
	assert.False(t, amount.Equal(NewAmount(100, "EUR", bank)))
	assert.False(t, amount.Equal(NewAmount(100, "USD", fixtureIssuer("other-bank"))))
}
