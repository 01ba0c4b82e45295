package contract

import (
	"errors"
	"fmt"
)

// requirement is one entry of an ordered precondition list: if failed is
// true, verification aborts with the paired rejection.
type requirement struct {
	failed    bool
	rejection error
}

// requireAll evaluates requirements in order and surfaces the first failure.
func requireAll(requirements []requirement) error {
	for _, req := range requirements {
		if req.failed {
			return req.rejection
		}
	}

	return nil
}

// VerifyTransaction decides whether the transaction is a legal evolution of
// the commercial paper lifecycle, using SumCashReceived to compute redemption
// payments. It returns nil on acceptance or a rejection joining a kind
// sentinel with the violated rule.
//
// Verification is total, deterministic and side-effect-free: the transaction
// is never mutated and re-verifying the identical transaction always yields
// the identical verdict.
func VerifyTransaction(tx LedgerTransaction) error {
	return verifyTransaction(tx, SumCashReceived)
}

func verifyTransaction(tx LedgerTransaction, sumCash CashLookup) error {
	command, extractErr := ExtractSingleCommand(tx.Commands)
	if extractErr != nil {
		return extractErr
	}

	if err := recognizedCommand(command.Kind); err != nil {
		return err
	}

	// Each group is an independent state machine; any unmet precondition
	// aborts the whole transaction, not just the offending group.
	for _, group := range GroupStates(tx) {
		if err := verifyGroup(group, command, tx, sumCash); err != nil {
			return err
		}
	}

	return nil
}

func recognizedCommand(kind CommandKind) error {
	switch kind {
	case CommandIssue, CommandMove, CommandRedeem:
		return nil
	default:
		return reject(ErrUnrecognizedCommand, fmt.Errorf("command kind %d is not one of Issue, Move or Redeem", kind))
	}
}

func verifyGroup(group StateGroup, command CommandData, tx LedgerTransaction, sumCash CashLookup) error {
	switch command.Kind {
	case CommandIssue:
		return verifyIssue(group, command, tx.TimeWindow)
	case CommandMove:
		return verifyMove(group, command)
	case CommandRedeem:
		return verifyRedeem(group, command, tx, sumCash)
	default:
		return reject(ErrUnrecognizedCommand, fmt.Errorf("command kind %d is not one of Issue, Move or Redeem", command.Kind))
	}
}

// verifyIssue checks that a group represents a valid issuance: new paper with
// a positive face value, self-issued, within a bounded validity window that
// ends before maturity.
func verifyIssue(group StateGroup, command CommandData, window TimeWindow) error {
	if len(group.Outputs) != 1 {
		return reject(ErrStructural, ErrSingleOutputRequired)
	}

	output := group.Outputs[0]
	until, hasUntil := window.UntilTime()

	return requireAll([]requirement{
		{
			failed:    len(group.Inputs) != 0,
			rejection: reject(ErrStructural, ErrIssueConsumesInputs),
		},
		{
			failed:    !command.SignedBy(output.Issuance.Party.OwningKey),
			rejection: reject(ErrSigner, ErrIssuerMustSign),
		},
		{
			failed:    output.FaceValue.Quantity <= 0,
			rejection: reject(ErrValue, ErrNonPositiveFaceValue),
		},
		{
			failed:    !hasUntil,
			rejection: reject(ErrTimeWindow, ErrMissingUntilBound),
		},
		{
			failed:    hasUntil && !until.Before(output.MaturityDate),
			rejection: reject(ErrTemporal, ErrMaturityNotAfterWindow),
		},
	})
}

// verifyMove checks that a group represents a valid transfer: one input, one
// output, authorized by the current owner. Grouping already guarantees the
// output's non-owner fields equal the input's.
func verifyMove(group StateGroup, command CommandData) error {
	if len(group.Inputs) != 1 {
		return reject(ErrStructural, ErrSingleInputRequired)
	}

	input := group.Inputs[0]

	return requireAll([]requirement{
		{
			failed:    !command.SignedBy(input.Owner.OwningKey),
			rejection: reject(ErrSigner, ErrOwnerMustSign),
		},
		{
			failed:    len(group.Outputs) != 1,
			rejection: reject(ErrStructural, ErrPaperNotPropagated),
		},
	})
}

// verifyRedeem checks that a group represents a valid redemption: one input
// destroyed at or after maturity against cash exactly equal to its face
// value, authorized by the owner. Partial redemption is not supported.
func verifyRedeem(group StateGroup, command CommandData, tx LedgerTransaction, sumCash CashLookup) error {
	if len(group.Inputs) != 1 {
		return reject(ErrStructural, ErrSingleInputRequired)
	}

	input := group.Inputs[0]

	received, sumErr := sumCash(tx.Outputs, input.Owner)
	if sumErr != nil {
		if errors.Is(sumErr, ErrTokenMismatch) {
			return reject(ErrValue, sumErr)
		}

		return sumErr
	}

	from, hasFrom := tx.TimeWindow.FromTime()

	return requireAll([]requirement{
		{
			failed:    !received.Equal(input.FaceValue),
			rejection: reject(ErrValue, ErrRedeemedAmountMismatch),
		},
		{
			failed:    !hasFrom,
			rejection: reject(ErrTimeWindow, ErrMissingFromBound),
		},
		{
			failed:    hasFrom && from.Before(input.MaturityDate),
			rejection: reject(ErrTemporal, ErrRedeemedBeforeMaturity),
		},
		{
			failed:    len(group.Outputs) != 0,
			rejection: reject(ErrStructural, ErrRedeemedPaperPersists),
		},
		{
			failed:    !command.SignedBy(input.Owner.OwningKey),
			rejection: reject(ErrSigner, ErrOwnerMustSign),
		},
	})
}
