package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Session error messages
	ErrMsgLoginFailed       = "Failed to start session"
	ErrMsgLoadUserFailed    = "Failed to load user data"
	ErrMsgRestoreFailed     = "Failed to restore session"
	ErrMsgSaveFailed        = "Failed to save session"
	ErrMsgNotLoggedInHTTP   = "No active session"
	ErrMsgRegisterNewFailed = "Failed to initialize user"

	// Wallet error messages
	ErrMsgUpdateCurrencyFailed = "Failed to update currency"
	ErrMsgNotEnoughMoneyError  = "Not enough funds"

	// Store error messages
	ErrMsgPurchaseFailed      = "Failed to complete purchase"
	ErrMsgStoreNotFoundError  = "Store not found or closed"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgOutOfStockError     = "Not enough stock"
	ErrMsgRequirementError    = "Purchase requirements not met"

	// Inventory error messages
	ErrMsgAddItemFailed    = "Failed to add item"
	ErrMsgRemoveItemFailed = "Failed to remove item"
	ErrMsgUseItemFailed    = "Failed to use item"
	ErrMsgStackNotFoundErr = "You don't have that item"
	ErrMsgNoEffectError    = "That item has no effect on this pet"

	// Redeem code error messages
	ErrMsgRedeemFailed       = "Failed to redeem code"
	ErrMsgCodeNotFoundError  = "Code not found or inactive"
	ErrMsgCodeUsedError      = "You already redeemed this code"
	ErrMsgCodeExhaustedError = "This code reached its usage limit"
	ErrMsgCodeExpiredError   = "This code has expired"

	// Ship error messages
	ErrMsgShipNotFoundError = "Ship not found"
	ErrMsgShipOwnedError    = "You already own this ship"
	ErrMsgShipNotOwnedError = "You don't own this ship"

	// Pet error messages
	ErrMsgPetNotFoundError  = "Pet not found"
	ErrMsgCreatePetFailed   = "Failed to create pet"
	ErrMsgUpdateStatsFailed = "Failed to update pet stats"

	// Check-in error messages
	ErrMsgCheckinFailed       = "Failed to check in"
	ErrMsgAlreadyCheckedInErr = "You already checked in today"

	// Player search error messages
	ErrMsgSearchFailed     = "Failed to search players"
	ErrMsgGetProfileFailed = "Failed to load player profile"

	// Exploration error messages
	ErrMsgGetPointsFailed    = "Failed to load exploration points"
	ErrMsgPointNotFoundError = "Exploration point not found"

	// Fishing error messages
	ErrMsgCatchFailed       = "Failed to catch fish"
	ErrMsgFishNotFoundError = "That fish is gone"

	// External service error messages
	ErrMsgUpstreamError = "Game server is unavailable. Please try again."

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// Success messages for API responses
const (
	MsgSessionStarted     = "Session started"
	MsgSessionEnded       = "Session ended"
	MsgUserInitialized    = "User initialized"
	MsgUserDataLoaded     = "User data loaded"
	MsgSnapshotSaved      = "Session saved"
	MsgItemAddedSuccess   = "Item added successfully"
	MsgItemRemovedSuccess = "Item removed successfully"
	MsgItemUsedSuccess    = "Item used successfully"
	MsgShipPurchased      = "Ship purchased"
	MsgShipActivated      = "Ship activated"
	MsgPetActivated       = "Pet activated"
	MsgHatchingCleared    = "Hatching cleared"
	MsgCodeCreated        = "Code created"
	MsgCodeDeactivated    = "Code deactivated"
	MsgCollectibleAdded   = "Collectible added to your collection"
)
