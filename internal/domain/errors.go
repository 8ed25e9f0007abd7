package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Payload errors
	ErrMsgInvalidPayload   = "invalid payload"
	ErrMsgUnknownOperation = "unknown operation"

	// Lookup errors
	ErrMsgItemNotFound       = "item not found"
	ErrMsgProfileNotFound    = "profile not found"
	ErrMsgExpeditionNotFound = "expedition not found"
	ErrMsgLoadoutNotFound    = "loadout not found"
	ErrMsgOfferNotFound      = "offer not found"

	// State errors
	ErrMsgExpeditionAlreadyStarted = "expedition already started"
	ErrMsgExpeditionNotStarted     = "expedition not started"
	ErrMsgExpeditionStillRunning   = "expedition still running"
	ErrMsgAlreadyUnlocked          = "node already unlocked"
	ErrMsgNoTransformOptions       = "item has no transform options"

	// Resource errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgMaxLevelReached      = "max level reached"

	// Conflict errors
	ErrMsgAlreadyOwned  = "item already owned"
	ErrMsgPriceMismatch = "price mismatch"

	// Persistence errors
	ErrMsgStoreUnavailable = "profile store unavailable"
	ErrMsgPartialCommit    = "operation partially committed"
)

// Common domain errors
// These errors should be used consistently across all layers of the engine.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Payload errors
	ErrInvalidPayload   = errors.New(ErrMsgInvalidPayload)
	ErrUnknownOperation = errors.New(ErrMsgUnknownOperation)

	// Lookup errors
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrProfileNotFound    = errors.New(ErrMsgProfileNotFound)
	ErrExpeditionNotFound = errors.New(ErrMsgExpeditionNotFound)
	ErrLoadoutNotFound    = errors.New(ErrMsgLoadoutNotFound)
	ErrOfferNotFound      = errors.New(ErrMsgOfferNotFound)

	// State errors
	ErrExpeditionAlreadyStarted = errors.New(ErrMsgExpeditionAlreadyStarted)
	ErrExpeditionNotStarted     = errors.New(ErrMsgExpeditionNotStarted)
	ErrExpeditionStillRunning   = errors.New(ErrMsgExpeditionStillRunning)
	ErrAlreadyUnlocked          = errors.New(ErrMsgAlreadyUnlocked)
	ErrNoTransformOptions       = errors.New(ErrMsgNoTransformOptions)

	// Resource errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrMaxLevelReached      = errors.New(ErrMsgMaxLevelReached)

	// Conflict errors
	ErrAlreadyOwned  = errors.New(ErrMsgAlreadyOwned)
	ErrPriceMismatch = errors.New(ErrMsgPriceMismatch)

	// Persistence errors
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
	ErrPartialCommit    = errors.New(ErrMsgPartialCommit)
)
