package entity

import (
	"strings"
	"time"

	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
)

// MinLockDurationSecs is the floor a new lock's duration must exceed.
// A floor strictly greater than zero prevents degenerate instant-unlock locks.
const MinLockDurationSecs int64 = 60

// MaxLockDurationSecs caps the total duration of a lock at 100 years.
// The cap keeps Start + DurationSecs representable as a time.Duration,
// so the release threshold can never wrap into the past.
const MaxLockDurationSecs int64 = 100 * 365 * 24 * 60 * 60

// MaxFeeAmount is the ceiling for the creation and extension fees,
// enforced when the fee configuration is changed, not per call.
const MaxFeeAmount int64 = 1_000_000

// AccountID identifies an account. Zero is reserved as "no account".
type AccountID uint64

// IsValid reports whether the account ID refers to a real account.
func (a AccountID) IsValid() bool {
	return a != 0
}

// AssetType identifies an asset collection.
type AssetType string

// IsValid reports whether the asset type is a usable identifier.
func (t AssetType) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// UnitID identifies one unit within an asset collection.
// Zero and negative values are reserved as "no lock".
type UnitID int64

// IsValid reports whether the unit ID refers to a real unit.
func (u UnitID) IsValid() bool {
	return u > 0
}

// Lock represents one asset unit held in custody for a beneficiary.
// The pair (AssetType, UnitID) maps to at most one live Lock at any time;
// a lock with DurationSecs == 0 is defined as "does not exist".
type Lock struct {
	AssetType    AssetType
	UnitID       UnitID
	Creator      AccountID
	Beneficiary  AccountID
	Start        time.Time // set once at creation, immutable
	DurationSecs int64     // seconds from Start until eligible for release; only grows
}

// NewLock creates a lock record starting at the given instant. It validates
// every field so that a lock, once constructed, always satisfies the
// data-model invariants.
func NewLock(
	assetType AssetType,
	unitID UnitID,
	creator AccountID,
	beneficiary AccountID,
	durationSecs int64,
	now time.Time,
) (*Lock, error) {
	if !assetType.IsValid() {
		return nil, errs.ErrInvalidAssetType
	}
	if !unitID.IsValid() {
		return nil, errs.ErrInvalidUnitID
	}
	if !creator.IsValid() {
		return nil, errs.ErrInvalidAccountID
	}
	if !beneficiary.IsValid() {
		return nil, errs.ErrInvalidBeneficiary
	}
	if durationSecs <= MinLockDurationSecs {
		return nil, errs.ErrDurationTooShort
	}
	if durationSecs > MaxLockDurationSecs {
		return nil, errs.ErrDurationTooLong
	}

	return &Lock{
		AssetType:    assetType,
		UnitID:       unitID,
		Creator:      creator,
		Beneficiary:  beneficiary,
		Start:        now,
		DurationSecs: durationSecs,
	}, nil
}

// Exists reports whether the record describes a live lock.
func (l *Lock) Exists() bool {
	return l != nil && l.DurationSecs > 0
}

// ReleaseAt returns the instant from which withdrawal becomes legal.
func (l *Lock) ReleaseAt() time.Time {
	return l.Start.Add(time.Duration(l.DurationSecs) * time.Second)
}

// IsReleasable reports whether the lock may be withdrawn at the given time.
func (l *Lock) IsReleasable(now time.Time) bool {
	return !now.Before(l.ReleaseAt())
}

// Extend grows the lock's duration. Duration only ever increases through
// this path; there is no shrinking operation. The total stays under
// MaxLockDurationSecs, which also rules out int64 wraparound.
func (l *Lock) Extend(extraSecs int64) error {
	if extraSecs <= 0 {
		return errs.ErrInvalidExtension
	}
	if extraSecs > MaxLockDurationSecs-l.DurationSecs {
		return errs.ErrDurationTooLong
	}
	l.DurationSecs += extraSecs
	return nil
}
