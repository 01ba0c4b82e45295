package contract

import "slices"

// CommandKind selects which rule set governs a transaction. The vocabulary is
// closed: Issue, Move and Redeem are the only recognized values, and any other
// value is rejected as unrecognized during verification.
type CommandKind uint8

const (
	// CommandIssue creates new paper with no predecessor state.
	CommandIssue CommandKind = iota + 1

	// CommandMove transfers ownership of existing paper.
	CommandMove

	// CommandRedeem destroys paper against a cash payment at maturity.
	CommandRedeem
)

// String provides a string representation of CommandKind for rejection
// reasons, logging and metric labels.
func (k CommandKind) String() string {
	switch k {
	case CommandIssue:
		return "Issue"
	case CommandMove:
		return "Move"
	case CommandRedeem:
		return "Redeem"
	default:
		return "Unrecognized"
	}
}

// CommandData pairs a command with the set of keys the ledger engine has
// verified to have signed the transaction for it. The command itself carries
// no payload.
type CommandData struct {
	Kind    CommandKind
	Signers []PublicKey
}

// SignedBy reports whether the given key is a member of the command's
// verified signer set.
func (c CommandData) SignedBy(key PublicKey) bool {
	return slices.Contains(c.Signers, key)
}

// ExtractSingleCommand finds the one command governing the transaction.
//
// A transaction's commands must reduce to a single unambiguous action:
// zero commands fail with ErrNoCommand, more than one with
// ErrMultipleCommands (both of kind ErrStructural).
func ExtractSingleCommand(commands []CommandData) (CommandData, error) {
	switch len(commands) {
	case 0:
		return CommandData{}, reject(ErrStructural, ErrNoCommand)
	case 1:
		return commands[0], nil
	default:
		return CommandData{}, reject(ErrStructural, ErrMultipleCommands)
	}
}
