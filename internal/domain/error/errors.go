package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidInput      = 4001
	CodeLockAlreadyExists = 4002
	CodeUnauthorized      = 4003
	CodeNotYetExpired     = 4004
	CodeIneligibleAsset   = 4005
	CodeFeeAboveCeiling   = 4006
	CodeLockNotFound      = 4040
	CodePaused            = 4230
	CodeReentrancy        = 4290

	// 5xxx - Server errors
	CodeTransferFailed  = 5001
	CodeFeeChargeFailed = 5002
	CodeInternalServer  = 5000
)

// Base error types
var (
	// ErrInvalidInput is the umbrella for null/zero/out-of-range arguments
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAssetType is returned when the asset type identifier is empty
	ErrInvalidAssetType = errors.New("asset type must be a non-empty identifier")

	// ErrInvalidUnitID is returned when the unit ID is not positive
	ErrInvalidUnitID = errors.New("unit ID must be positive")

	// ErrInvalidAccountID is returned when an account identifier is the zero account
	ErrInvalidAccountID = errors.New("account ID must be a non-zero account")

	// ErrInvalidBeneficiary is returned when the beneficiary account is invalid
	ErrInvalidBeneficiary = errors.New("beneficiary must be a non-zero account")

	// ErrDurationTooShort is returned when the lock duration does not exceed the minimum floor
	ErrDurationTooShort = errors.New("lock duration must exceed the minimum floor")

	// ErrDurationTooLong is returned when the lock duration would exceed the fixed cap
	ErrDurationTooLong = errors.New("lock duration exceeds the maximum cap")

	// ErrInvalidExtension is returned when the extension amount is not positive
	ErrInvalidExtension = errors.New("extension duration must be positive")

	// ErrFeeAboveCeiling is returned when a configured fee exceeds the fixed ceiling
	ErrFeeAboveCeiling = errors.New("fee amount exceeds the fixed ceiling")

	// ErrLockNotFound is returned when no live lock exists for the asset unit
	ErrLockNotFound = errors.New("lock not found")

	// ErrLockAlreadyExists is returned when a live lock already holds the asset unit
	ErrLockAlreadyExists = errors.New("lock already exists for this asset unit")

	// ErrUnauthorized is returned when the caller lacks the right to perform the operation
	ErrUnauthorized = errors.New("caller is not authorized for this operation")

	// ErrNotYetExpired is returned when withdrawal is attempted before the release threshold
	ErrNotYetExpired = errors.New("lock has not yet expired")

	// ErrIneligibleAsset is returned when the asset is not a unique-unit kind
	// or carries a royalty/fallback fee schedule
	ErrIneligibleAsset = errors.New("asset is not eligible for locking")

	// ErrTransferFailed is returned when the asset transfer port reports failure
	ErrTransferFailed = errors.New("asset transfer failed")

	// ErrFeeChargeFailed is returned when the fee port reports failure
	ErrFeeChargeFailed = errors.New("fee charge failed")

	// ErrReentrancyRejected is returned when a nested call re-enters a held lock key
	ErrReentrancyRejected = errors.New("re-entrant call rejected")

	// ErrPaused is returned when a mutating operation is attempted while the system is paused
	ErrPaused = errors.New("system is paused")

	// ErrDatabaseConnection is returned when there's a problem reaching the lock store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// invalidInputKinds all match ErrInvalidInput through errors.Is so that
// callers can treat the whole family uniformly.
var invalidInputKinds = []error{
	ErrInvalidAssetType,
	ErrInvalidUnitID,
	ErrInvalidAccountID,
	ErrInvalidBeneficiary,
	ErrDurationTooShort,
	ErrDurationTooLong,
	ErrInvalidExtension,
	ErrFeeAboveCeiling,
}

// IsInvalidInput checks if the error belongs to the invalid-input family
func IsInvalidInput(err error) bool {
	if errors.Is(err, ErrInvalidInput) {
		return true
	}
	for _, kind := range invalidInputKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrFeeAboveCeiling):
		return CodeFeeAboveCeiling
	case IsInvalidInput(err):
		return CodeInvalidInput
	case errors.Is(err, ErrLockNotFound):
		return CodeLockNotFound
	case errors.Is(err, ErrLockAlreadyExists):
		return CodeLockAlreadyExists
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrNotYetExpired):
		return CodeNotYetExpired
	case errors.Is(err, ErrIneligibleAsset):
		return CodeIneligibleAsset
	case errors.Is(err, ErrReentrancyRejected):
		return CodeReentrancy
	case errors.Is(err, ErrPaused):
		return CodePaused
	case errors.Is(err, ErrTransferFailed):
		return CodeTransferFailed
	case errors.Is(err, ErrFeeChargeFailed):
		return CodeFeeChargeFailed
	default:
		return CodeInternalServer
	}
}

// LockError represents an error tied to a specific lock operation
type LockError struct {
	AssetType string
	UnitID    int64
	Operation string
	Err       error
}

// Error implements the error interface for LockError
func (e *LockError) Error() string {
	return fmt.Sprintf("lock %s failed for %s/%d: %v",
		e.Operation, e.AssetType, e.UnitID, e.Err)
}

// Unwrap returns the underlying error
func (e *LockError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LockError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "lock_error",
		"asset_type": e.AssetType,
		"unit_id":    e.UnitID,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLockError creates a detailed lock operation error
func NewLockError(assetType string, unitID int64, operation string, err error) error {
	return &LockError{
		AssetType: assetType,
		UnitID:    unitID,
		Operation: operation,
		Err:       err,
	}
}

// NotYetExpiredError carries the release threshold alongside the failure
type NotYetExpiredError struct {
	AssetType string
	UnitID    int64
	ReleaseAt int64 // unix seconds
	Now       int64 // unix seconds
}

// Error implements the error interface
func (e *NotYetExpiredError) Error() string {
	return fmt.Sprintf("lock on %s/%d not yet expired: releasable at %d, now %d",
		e.AssetType, e.UnitID, e.ReleaseAt, e.Now)
}

// Is checks if the target error is an ErrNotYetExpired
func (e *NotYetExpiredError) Is(target error) bool {
	return target == ErrNotYetExpired
}

// LogFields returns a map of fields for structured logging
func (e *NotYetExpiredError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "not_yet_expired",
		"asset_type": e.AssetType,
		"unit_id":    e.UnitID,
		"release_at": e.ReleaseAt,
		"now":        e.Now,
		"error_code": CodeNotYetExpired,
	}
}

// NewNotYetExpiredError creates a detailed premature-withdrawal error
func NewNotYetExpiredError(assetType string, unitID int64, releaseAt, now int64) error {
	return &NotYetExpiredError{
		AssetType: assetType,
		UnitID:    unitID,
		ReleaseAt: releaseAt,
		Now:       now,
	}
}

// IsLockNotFoundError checks if the error is a lock not found error
func IsLockNotFoundError(err error) bool {
	return errors.Is(err, ErrLockNotFound)
}

// IsUnauthorizedError checks if the error is an authorization failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsPausedError checks if the error is due to the system being paused
func IsPausedError(err error) bool {
	return errors.Is(err, ErrPaused)
}

// IsIneligibleAssetError checks if the error is an asset eligibility rejection
func IsIneligibleAssetError(err error) bool {
	return errors.Is(err, ErrIneligibleAsset)
}
