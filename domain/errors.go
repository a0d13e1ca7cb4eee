package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists or raced another writer
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidToken     = errors.New("Invalid token")

	// access control
	ErrUnauthorized = errors.New("Unauthorized")

	// listing preconditions
	ErrNotOwner    = errors.New("You don't own this token")
	ErrNotApproved = errors.New("Contract not approved")

	// purchase
	ErrAlreadySold              = errors.New("Already sold")
	ErrInsufficientPayment      = errors.New("Insufficient payment")
	ErrFullOwnershipUnavailable = errors.New("Full ownership not available")
	ErrLockNotAcquired          = errors.New("listing is locked by another purchase")

	// royalty table
	ErrInvalidRoyaltyTotal = errors.New("Total royalty exceeds 100%")

	// ledger
	ErrInsufficientFunds = errors.New("Insufficient funds")
)
