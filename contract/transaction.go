package contract

// LedgerTransaction is the boundary DTO supplied by the external ledger
// engine: the consumed inputs, the produced outputs, the attached commands
// with their verified signer sets, and the optional validity time window.
//
// The verifier treats a LedgerTransaction as read-only and retains nothing
// between invocations.
type LedgerTransaction struct {
	Inputs     []ContractState
	Outputs    []ContractState
	Commands   []CommandData
	TimeWindow TimeWindow
}
