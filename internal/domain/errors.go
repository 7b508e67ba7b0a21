package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User/session errors
	ErrMsgUserNotFound = "user not found"
	ErrMsgNotLoggedIn  = "not logged in"

	// Item/inventory errors
	ErrMsgItemNotFound       = "item not found"
	ErrMsgStackNotFound      = "inventory stack not found"
	ErrMsgNoApplicableEffect = "no applicable effect"

	// Pet errors
	ErrMsgPetNotFound = "pet not found"

	// Store/economy errors
	ErrMsgStoreNotFound     = "store not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgRequirementUnmet  = "requirement not met"

	// Ship errors
	ErrMsgShipNotFound     = "ship not found"
	ErrMsgShipAlreadyOwned = "ship already owned"
	ErrMsgShipNotOwned     = "ship not owned"

	// Redeem code errors
	ErrMsgCodeNotFound    = "code not found or inactive"
	ErrMsgCodeAlreadyUsed = "code already used"
	ErrMsgCodeMaxUses     = "code usage limit reached"
	ErrMsgCodeExpired     = "code expired"

	// Check-in errors
	ErrMsgAlreadyCheckedIn = "already checked in today"

	// Exploration errors
	ErrMsgPointNotFound = "exploration point not found"

	// Fishing errors
	ErrMsgFishNotFound = "fish not found"

	// External collaborator errors
	ErrMsgExternalFailure = "external service failure"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User/session errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)
	ErrNotLoggedIn  = errors.New(ErrMsgNotLoggedIn)

	// Item/inventory errors
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrStackNotFound      = errors.New(ErrMsgStackNotFound)
	ErrNoApplicableEffect = errors.New(ErrMsgNoApplicableEffect)

	// Pet errors
	ErrPetNotFound = errors.New(ErrMsgPetNotFound)

	// Store/economy errors
	ErrStoreNotFound     = errors.New(ErrMsgStoreNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrRequirementUnmet  = errors.New(ErrMsgRequirementUnmet)

	// Ship errors
	ErrShipNotFound     = errors.New(ErrMsgShipNotFound)
	ErrShipAlreadyOwned = errors.New(ErrMsgShipAlreadyOwned)
	ErrShipNotOwned     = errors.New(ErrMsgShipNotOwned)

	// Redeem code errors
	ErrCodeNotFound    = errors.New(ErrMsgCodeNotFound)
	ErrCodeAlreadyUsed = errors.New(ErrMsgCodeAlreadyUsed)
	ErrCodeMaxUses     = errors.New(ErrMsgCodeMaxUses)
	ErrCodeExpired     = errors.New(ErrMsgCodeExpired)

	// Check-in errors
	ErrAlreadyCheckedIn = errors.New(ErrMsgAlreadyCheckedIn)

	// Exploration errors
	ErrPointNotFound = errors.New(ErrMsgPointNotFound)

	// Fishing errors
	ErrFishNotFound = errors.New(ErrMsgFishNotFound)

	// External collaborator errors
	ErrExternalFailure = errors.New(ErrMsgExternalFailure)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
