package contract

import (
	"fmt"
	"time"
)

// ContractState is the minimal shape every ledger state in a transaction
// exposes. The owner is the sole participant with rights over a state.
type ContractState interface {
	Participants() []Party
}

// PaperState is one unit of commercial paper outstanding: who issued it, who
// currently holds it, the amount repayable at maturity, and when redemption
// becomes valid.
//
// A PaperState is an immutable value; any change produces a new state via the
// With* methods (copy-on-write).
type PaperState struct {
	Issuance     PartyAndReference
	Owner        Party
	FaceValue    Amount
	MaturityDate time.Time
}

// Participants returns the current owner, the only party with rights over the paper.
func (s PaperState) Participants() []Party {
	return []Party{s.Owner}
}

// WithOwner returns a copy of the state held by newOwner. All other fields are
// carried over unchanged.
func (s PaperState) WithOwner(newOwner Party) PaperState {
	next := s
	next.Owner = newOwner

	return next
}

// WithFaceValue returns a copy of the state with a different face value.
func (s PaperState) WithFaceValue(faceValue Amount) PaperState {
	next := s
	next.FaceValue = faceValue

	return next
}

// WithoutOwner returns the ownerless projection of the state: the same fields
// with the owner replaced by NilParty. It serves purely as the grouping key
// for transition validation and must never be persisted as real ledger data.
//
// The maturity timestamp is normalized (UTC, monotonic reading stripped) so
// structurally equal states always produce identical keys.
func (s PaperState) WithoutOwner() PaperState {
	key := s
	key.Owner = NilParty
	key.MaturityDate = s.MaturityDate.UTC().Round(0)

	return key
}

func (s PaperState) String() string {
	return fmt.Sprintf("CommercialPaper(of %s redeemable on %s by %s, owned by %s)",
		s.FaceValue, s.MaturityDate.Format(time.RFC3339), s.Issuance, s.Owner)
}
