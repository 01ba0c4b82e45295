// Package contract implements the state model and transition validation for
// commercial paper: a discounted, maturity-dated bearer obligation recorded as
// immutable ledger states.
//
// The core entry point is VerifyTransaction (or the configurable Verifier),
// which decides deterministically whether a proposed transaction - consumed
// inputs, produced outputs, signed commands and an optional time window - is a
// legal evolution of the paper's lifecycle:
//
//	Issue  creates new paper (no predecessor state)
//	Move   transfers ownership (one input, one otherwise identical output)
//	Redeem destroys paper against an exact cash payment at or after maturity
//
// Verification is a pure function: it never mutates the transaction, performs
// no I/O, and the same transaction always yields the same verdict with the
// same rejection reason. Cryptographic signature checking is the ledger
// engine's job; this package only checks membership of required keys in the
// already-verified signer set of a command.
package contract
