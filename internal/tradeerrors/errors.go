package tradeerrors

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one category, so
// callers can match either the precise failure or the class of failure with
// errors.Is.
var (
	// ErrPrecondition marks bad caller input; the operation is rejected with
	// no state change.
	ErrPrecondition = errors.New("precondition violation")

	// ErrStateConflict marks bad timing or ordering (duplicate bid, listing
	// already active, instant sale already taken); rejected, no state change.
	ErrStateConflict = errors.New("state conflict")

	// ErrInvariant marks a broken internal invariant. The enclosing operation
	// must abort entirely; partial recovery is never attempted.
	ErrInvariant = errors.New("invariant broken")
)

// Precondition violations
var (
	ErrPriceOutOfRange     = fmt.Errorf("%w: price out of range", ErrPrecondition)
	ErrExpiryOutOfRange    = fmt.Errorf("%w: expiry out of range", ErrPrecondition)
	ErrRoyaltyOutOfRange   = fmt.Errorf("%w: royalty fraction must be below one", ErrPrecondition)
	ErrNotOwner            = fmt.Errorf("%w: caller does not own item", ErrPrecondition)
	ErrOwnBid              = fmt.Errorf("%w: cannot bid on own item", ErrPrecondition)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient spendable balance", ErrPrecondition)
	ErrBidTooLow           = fmt.Errorf("%w: bid does not exceed current highest price", ErrPrecondition)
	ErrListingExpired      = fmt.Errorf("%w: listing already expired", ErrPrecondition)
	ErrListingNotEnded     = fmt.Errorf("%w: listing has not ended yet", ErrPrecondition)
	ErrIdentityMismatch    = fmt.Errorf("%w: item identity does not match", ErrPrecondition)
)

// State conflicts
var (
	ErrDuplicateBid      = fmt.Errorf("%w: duplicate bid", ErrStateConflict)
	ErrAlreadyActive     = fmt.Errorf("%w: item already has an active listing", ErrStateConflict)
	ErrAlreadySold       = fmt.Errorf("%w: instant sale already has a qualifying bid", ErrStateConflict)
	ErrNotActive         = fmt.Errorf("%w: no matching active listing", ErrStateConflict)
	ErrBidNotFound       = fmt.Errorf("%w: bid not found", ErrStateConflict)
	ErrAlreadyOnboarded  = fmt.Errorf("%w: item already onboarded", ErrStateConflict)
	ErrNotOnboarded      = fmt.Errorf("%w: item not onboarded", ErrStateConflict)
	ErrOwnershipMismatch = fmt.Errorf("%w: transfer source is not the current owner", ErrStateConflict)
)

// Invariant breaks
var (
	ErrAmountMismatch = fmt.Errorf("%w: escrowed amount differs from bid price", ErrInvariant)
	ErrEmptyAmount    = fmt.Errorf("%w: escrowed amount is zero", ErrInvariant)
	ErrEmptyProceeds  = fmt.Errorf("%w: settlement produced no proceeds", ErrInvariant)
)
