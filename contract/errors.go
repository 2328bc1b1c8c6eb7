package main

// Abort messages. Kept as constants so tests can match them.
const (
	errAlreadyInitialized      = "contract already initialized"
	errOwnerMandatory          = "owner is mandatory"
	errInsufficientDeposit     = "deposit must be at least the rent per sale"
	errMissingSecurityDeposit  = "requires an attached deposit of exactly 1 unit"
	errApproveNotCrossContract = "list_on_approve should only be called via cross-contract call"
	errOwnerMismatch           = "list_on_approve should only be called by the owner of the item"
	errMalformedListingArgs    = "failed to deserialize listing args"
	errInsufficientStorageRent = "insufficient storage rent deposit"
	errSaleNotFound            = "no sale found"
	errOnlySellerCanCancel     = "only the seller can cancel a sale"
	errOnlySellerCanUpdate     = "only the seller can update the price of a sale"
	errDepositZero             = "deposit must be greater than zero"
	errSelfPurchase            = "cannot offer on your own sale"
	errPriceNotMet             = "deposit must cover the current price"
	errResolveNotSelf          = "resolve may only be called by the contract itself"
)

// Settlement validation failures never abort: the callback runs after
// the external transfer already happened, so they are logged and drive
// the refund path instead.
const (
	logTransferFailed  = "transfer call failed, refunding buyer"
	logMalformedPayout = "payout error: result is not a valid payout object"
	logPayoutTooLarge  = "payout error: account count out of range"
	logPayoutRemainder = "payout error, remainder is not 0 or 1"
)
