package contract

import (
	"fmt"
	"slices"
	"strings"
)

// StateGroup is the unit of independent validation within one transaction:
// all paper inputs and outputs sharing the same ownerless key. Within a
// group, states are identical except possibly for ownership - any change to
// the financial terms lands the state in a different group by construction.
type StateGroup struct {
	Inputs  []PaperState
	Outputs []PaperState
	Key     PaperState
}

// GroupStates partitions all commercial paper states touched by the
// transaction into groups keyed by their ownerless projection. Non-paper
// states (e.g. cash outputs paying for a redemption) are not grouped.
//
// The returned group order is deterministic and independent of the order of
// the transaction's inputs and outputs.
func GroupStates(tx LedgerTransaction) []StateGroup {
	buckets := make(map[PaperState]*StateGroup)

	for _, input := range tx.Inputs {
		paper, ok := input.(PaperState)
		if !ok {
			continue
		}

		group := bucketFor(buckets, paper)
		group.Inputs = append(group.Inputs, paper)
	}

	for _, output := range tx.Outputs {
		paper, ok := output.(PaperState)
		if !ok {
			continue
		}

		group := bucketFor(buckets, paper)
		group.Outputs = append(group.Outputs, paper)
	}

	groups := make([]StateGroup, 0, len(buckets))
	for _, group := range buckets {
		groups = append(groups, *group)
	}

	slices.SortFunc(groups, func(a, b StateGroup) int {
		return strings.Compare(renderKey(a.Key), renderKey(b.Key))
	})

	return groups
}

func bucketFor(buckets map[PaperState]*StateGroup, paper PaperState) *StateGroup {
	key := paper.WithoutOwner()

	group, exists := buckets[key]
	if !exists {
		group = &StateGroup{Key: key}
		buckets[key] = group
	}

	return group
}

// renderKey flattens a grouping key into a sortable string.
func renderKey(key PaperState) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s|%d",
		key.Issuance.Party.OwningKey,
		key.Issuance.Reference,
		key.FaceValue.Quantity,
		key.FaceValue.Currency,
		key.FaceValue.Issuer.Party.OwningKey,
		key.MaturityDate.UnixNano(),
	)
}
