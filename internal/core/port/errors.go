package port

import "errors"

// Sentinel errors surfaced by the presale ledger. The texts are part of
// the public contract: callers match on them, so they must not change.
var (
	// Shape errors. A batched creation call is rejected whole; no
	// campaign from the batch is recorded.
	ErrLengthMismatch = errors.New("Length mismatch.")
	ErrEndBeforeStart = errors.New("End time < start time.")
	ErrZeroAmount     = errors.New("Amount must be > 0.")
	ErrInvalidPrice   = errors.New("Invalid unit price.")

	// Lookup errors.
	ErrInvalidID = errors.New("Invalid presale ID.")

	// Temporal errors.
	ErrSaleNotStarted = errors.New("presale has not started.")
	ErrSaleEnded      = errors.New("presale has already ended.")
	ErrNotEnded       = errors.New("Presale has not ended.")
	ErrAlreadyClosed  = errors.New("Presale has already ended.")
	ErrNotClosed      = errors.New("Presale has not been closed.")
	ErrNothingLeft    = errors.New("No tokens left to withdraw.")

	// Sufficiency errors.
	ErrNotEnoughEther  = errors.New("Not enough ether")
	ErrNotEnoughTokens = errors.New("Not enough tokens in the reserve")

	// Authorization errors.
	ErrNotAdmin = errors.New("Caller is not an admin")
	ErrNotOwner = errors.New("Caller is not the owner")

	// ErrReentrancy is returned when a port callback re-enters a
	// campaign whose mutation is still in flight.
	ErrReentrancy = errors.New("reentrant call into campaign")
)
