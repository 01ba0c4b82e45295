// Package testutil provides deterministic fixtures for commercial paper
// tests: parties, amounts, paper states and ready-made ledger transactions.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/paperledger/commercial-paper-go/contract"
)

// Fixed parties used across the test suite.
var (
	MegaCorp    = contract.Party{Name: "MegaCorp", OwningKey: "mega-corp-key"}
	CentralBank = contract.Party{Name: "CentralBank", OwningKey: "central-bank-key"}
	Alice       = contract.Party{Name: "Alice", OwningKey: "alice-key"}
	Bob         = contract.Party{Name: "Bob", OwningKey: "bob-key"}
)

// DollarIssuer is the fixed currency issuer for all fixture amounts.
var DollarIssuer = contract.PartyAndReference{Party: CentralBank, Reference: "usd-series-1"}

// Dollars builds an amount of fixture dollars.
func Dollars(quantity int64) contract.Amount {
	return contract.NewAmount(quantity, "USD", DollarIssuer)
}

// PaperIssuedBy builds a paper state issued and initially owned by the issuer,
// with a fixed issuance reference so fixtures group together predictably.
func PaperIssuedBy(issuer contract.Party, faceValue contract.Amount, maturity time.Time) contract.PaperState {
	return contract.PaperState{
		Issuance:     contract.PartyAndReference{Party: issuer, Reference: "series-A"},
		Owner:        issuer,
		FaceValue:    faceValue,
		MaturityDate: maturity,
	}
}

// PaperWithRandomRef builds a paper state with a unique issuance reference,
// for tests that need states landing in separate groups.
func PaperWithRandomRef(issuer contract.Party, faceValue contract.Amount, maturity time.Time) contract.PaperState {
	paper := PaperIssuedBy(issuer, faceValue, maturity)
	paper.Issuance.Reference = contract.Reference(uuid.NewString())

	return paper
}

// IssueTransaction assembles a well-formed issuance of the given paper,
// signed by its issuer, valid until the given bound.
func IssueTransaction(paper contract.PaperState, until time.Time) contract.LedgerTransaction {
	return contract.LedgerTransaction{
		Outputs: []contract.ContractState{paper},
		Commands: []contract.CommandData{
			{Kind: contract.CommandIssue, Signers: []contract.PublicKey{paper.Issuance.Party.OwningKey}},
		},
		TimeWindow: contract.TimeWindowUntil(until),
	}
}

// MoveTransaction assembles a well-formed transfer of the paper to newOwner,
// signed by the current owner.
func MoveTransaction(paper contract.PaperState, newOwner contract.Party) contract.LedgerTransaction {
	return contract.LedgerTransaction{
		Inputs:  []contract.ContractState{paper},
		Outputs: []contract.ContractState{paper.WithOwner(newOwner)},
		Commands: []contract.CommandData{
			{Kind: contract.CommandMove, Signers: []contract.PublicKey{paper.Owner.OwningKey}},
		},
	}
}

// RedeemTransaction assembles a well-formed redemption of the paper: the
// paper is consumed, cash equal to its face value is paid to the owner, and
// the window starts at the given bound.
func RedeemTransaction(paper contract.PaperState, from time.Time) contract.LedgerTransaction {
	return contract.LedgerTransaction{
		Inputs: []contract.ContractState{paper},
		Outputs: []contract.ContractState{
			contract.CashState{Amount: paper.FaceValue, Owner: paper.Owner},
		},
		Commands: []contract.CommandData{
			{Kind: contract.CommandRedeem, Signers: []contract.PublicKey{paper.Owner.OwningKey}},
		},
		TimeWindow: contract.TimeWindowFrom(from),
	}
}
