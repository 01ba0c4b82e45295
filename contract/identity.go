package contract

import (
	"fmt"

	"github.com/google/uuid"
)

// PublicKey is the fingerprint of a party's owning key. The ledger engine has
// already verified signatures; this package only compares fingerprints.
type PublicKey string

// Party identifies a participant on the ledger by name and owning key.
type Party struct {
	Name      string
	OwningKey PublicKey
}

// NilParty is the fixed no-op identity substituted for the owner when a state
// is projected to its ownerless grouping key. It is never valid ledger data.
var NilParty = Party{}

// IsNil reports whether the party is the no-op identity.
func (p Party) IsNil() bool {
	return p == NilParty
}

func (p Party) String() string {
	if p.IsNil() {
		return "<nil party>"
	}

	return fmt.Sprintf("%s(%s)", p.Name, p.OwningKey)
}

// Reference is an opaque byte string distinguishing issuances (or issued
// tokens) created by the same party. Uniqueness is the issuer's concern and
// is not enforced here.
type Reference string

// NewReference generates a fresh opaque reference.
func NewReference() Reference {
	return Reference(uuid.NewString())
}

// PartyAndReference pairs a party with an opaque reference, identifying one
// issuing act of that party.
type PartyAndReference struct {
	Party     Party
	Reference Reference
}

func (pr PartyAndReference) String() string {
	return fmt.Sprintf("%s[%s]", pr.Party, pr.Reference)
}
