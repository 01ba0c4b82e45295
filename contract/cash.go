package contract

// CashState is a cash obligation owned by a party, produced as a transaction
// output to pay for a redemption. It is the minimal cash shape this package
// needs; a full cash contract lives outside this module.
type CashState struct {
	Amount Amount
	Owner  Party
}

// Participants returns the current owner of the cash.
func (c CashState) Participants() []Party {
	return []Party{c.Owner}
}

// CashLookup computes the total amount of cash paid to owner by the given
// transaction output states. Implementations must be pure: same outputs and
// owner, same result.
type CashLookup func(outputs []ContractState, owner Party) (Amount, error)

// SumCashReceived is the default CashLookup. It sums all cash outputs owned
// by the given party's owning key, ignoring paper states and cash paid to
// anyone else.
//
// Returns ErrTokenMismatch if the matching cash outputs are denominated in
// more than one token, since such a sum can never equal a single face value.
// If no cash was paid to the owner, the zero Amount is returned.
func SumCashReceived(outputs []ContractState, owner Party) (Amount, error) {
	var total Amount
	found := false

	for _, output := range outputs {
		cash, ok := output.(CashState)
		if !ok {
			continue
		}

		if cash.Owner.OwningKey != owner.OwningKey {
			continue
		}

		if !found {
			total = cash.Amount
			found = true

			continue
		}

		sum, err := total.Add(cash.Amount)
		if err != nil {
			return Amount{}, err
		}

		total = sum
	}

	return total, nil
}
