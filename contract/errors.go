package contract

import "errors"

// Kind sentinels classify every rejection so downstream tooling can assert on
// which class of rule failed with errors.Is. Each rejection joins one kind
// with one specific reason below.
var (
	// ErrStructural covers wrong command cardinality and wrong input/output
	// cardinality for the selected command.
	ErrStructural = errors.New("structural violation")

	// ErrSigner is a required key missing from a command's verified signer set.
	ErrSigner = errors.New("required signer missing")

	// ErrTimeWindow is a missing required time window bound.
	ErrTimeWindow = errors.New("time window violation")

	// ErrTemporal is a time window bound on the wrong side of the maturity date.
	ErrTemporal = errors.New("temporal violation")

	// ErrValue covers non-positive face values and cash payments that do not
	// exactly match a face value.
	ErrValue = errors.New("value violation")

	// ErrUnrecognizedCommand is a command value outside the known vocabulary.
	ErrUnrecognizedCommand = errors.New("unrecognized commercial paper command")

	// ErrSchema is a request for an unsupported persistence schema.
	ErrSchema = errors.New("schema violation")
)

// Reason sentinels name the violated rule. Every message is distinct so a
// rejection is assertable down to the exact rule that failed.
var (
	ErrNoCommand        = errors.New("transaction carries no commercial paper command")
	ErrMultipleCommands = errors.New("transaction carries more than one commercial paper command")

	ErrIssueConsumesInputs    = errors.New("an issuance must not consume existing paper of the same terms")
	ErrIssuerMustSign         = errors.New("the issuing party must be a signer of the Issue command")
	ErrNonPositiveFaceValue   = errors.New("issued face value must be greater than zero")
	ErrMissingUntilBound      = errors.New("issuances must have a time window with an until bound")
	ErrMaturityNotAfterWindow = errors.New("maturity date must be after the time window until bound")

	ErrSingleInputRequired  = errors.New("exactly one commercial paper input is required")
	ErrSingleOutputRequired = errors.New("exactly one commercial paper output is required")
	ErrOwnerMustSign        = errors.New("the current owner must be a signer of the command")
	ErrPaperNotPropagated   = errors.New("a transfer must produce exactly one output state")

	ErrRedeemedAmountMismatch = errors.New("cash received must exactly equal the face value of the redeemed paper")
	ErrMissingFromBound       = errors.New("redemptions must have a time window with a from bound")
	ErrRedeemedBeforeMaturity = errors.New("paper must not be redeemed before its maturity date")
	ErrRedeemedPaperPersists  = errors.New("redeemed paper must not be reissued in the same group")

	ErrUnrecognizedSchema = errors.New("requested persistence schema is not supported")
)

// reject composes a rejection from its taxonomy kind and the specific
// violated rule; both remain individually matchable with errors.Is.
func reject(kind error, reason error) error {
	return errors.Join(kind, reason)
}
