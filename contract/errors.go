package contract

import "errors"

// Call-aborting failure taxonomy. Every mutating operation validates against
// these before touching state, so a failed call commits nothing. The export
// layer turns any of them into a host abort; tests match with errors.Is.
var (
	// Caller lacks the required role (owner-only actions, ledger-only callbacks).
	ErrForbidden = errors.New("forbidden")

	// Unknown proposal or bounty id.
	ErrNotFound = errors.New("not found")

	// Contract lifecycle.
	ErrAlreadyInitialized = errors.New("contract already initialized")
	ErrNotInitialized     = errors.New("contract not initialized")

	// Invalid input family.
	ErrInvalidDuration   = errors.New("duration below minimum")
	ErrInvalidOption     = errors.New("invalid option id")
	ErrMalformedPayload  = errors.New("malformed transfer payload")
	ErrAmountMismatch    = errors.New("claimer allotments do not sum to attached amount")
	ErrWrongAmount       = errors.New("wrong attached deposit")
	ErrWrongProposalKind = errors.New("proposal is not donation kind")
	ErrNotVotable        = errors.New("vote is not available for this proposal")

	// Window violations.
	ErrProposalExpired = errors.New("proposal voting window closed")
	ErrBountyExpired   = errors.New("bounty claim window closed")
	ErrNotYetExpired   = errors.New("bounty claim window still open")

	// Balance violations.
	ErrInsufficientDelegation = errors.New("insufficient delegation")
	ErrNoDelegation           = errors.New("caller has no delegation entry")
	ErrNoAllotment            = errors.New("caller has no bounty allotment")

	// A stored record failed to decode. Indicates schema drift, not bad input.
	ErrCorruptRecord = errors.New("corrupt stored record")
)
