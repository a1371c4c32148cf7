package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLock(t *testing.T) {
	fixedTime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful lock creation", func(t *testing.T) {
		lock, err := NewLock("art.collection", 42, 100, 200, 3600, fixedTime)

		require.NoError(t, err)
		require.NotNil(t, lock)
		assert.Equal(t, AssetType("art.collection"), lock.AssetType)
		assert.Equal(t, UnitID(42), lock.UnitID)
		assert.Equal(t, AccountID(100), lock.Creator)
		assert.Equal(t, AccountID(200), lock.Beneficiary)
		assert.Equal(t, fixedTime, lock.Start)
		assert.Equal(t, int64(3600), lock.DurationSecs)
	})

	t.Run("Empty asset type", func(t *testing.T) {
		lock, err := NewLock("", 42, 100, 200, 3600, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrInvalidAssetType, err)
	})

	t.Run("Whitespace asset type", func(t *testing.T) {
		lock, err := NewLock("   ", 42, 100, 200, 3600, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrInvalidAssetType, err)
	})

	t.Run("Zero unit ID", func(t *testing.T) {
		lock, err := NewLock("art.collection", 0, 100, 200, 3600, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrInvalidUnitID, err)
	})

	t.Run("Negative unit ID", func(t *testing.T) {
		lock, err := NewLock("art.collection", -1, 100, 200, 3600, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrInvalidUnitID, err)
	})

	t.Run("Zero creator account", func(t *testing.T) {
		lock, err := NewLock("art.collection", 42, 0, 200, 3600, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrInvalidAccountID, err)
	})

	t.Run("Zero beneficiary account", func(t *testing.T) {
		lock, err := NewLock("art.collection", 42, 100, 0, 3600, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrInvalidBeneficiary, err)
	})

	t.Run("Duration exactly at the floor is rejected", func(t *testing.T) {
		lock, err := NewLock("art.collection", 42, 100, 200, MinLockDurationSecs, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrDurationTooShort, err)
	})

	t.Run("Duration one above the floor is accepted", func(t *testing.T) {
		lock, err := NewLock("art.collection", 42, 100, 200, MinLockDurationSecs+1, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, MinLockDurationSecs+1, lock.DurationSecs)
	})

	t.Run("Zero duration", func(t *testing.T) {
		lock, err := NewLock("art.collection", 42, 100, 200, 0, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrDurationTooShort, err)
	})

	t.Run("Duration exactly at the cap is accepted", func(t *testing.T) {
		lock, err := NewLock("art.collection", 42, 100, 200, MaxLockDurationSecs, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, MaxLockDurationSecs, lock.DurationSecs)
	})

	t.Run("Duration above the cap is rejected", func(t *testing.T) {
		lock, err := NewLock("art.collection", 42, 100, 200, MaxLockDurationSecs+1, fixedTime)

		assert.Nil(t, lock)
		assert.Equal(t, errs.ErrDurationTooLong, err)
	})
}

func TestLockExists(t *testing.T) {
	t.Run("Nil lock does not exist", func(t *testing.T) {
		var lock *Lock
		assert.False(t, lock.Exists())
	})

	t.Run("Zero duration lock does not exist", func(t *testing.T) {
		lock := &Lock{AssetType: "art.collection", UnitID: 42}
		assert.False(t, lock.Exists())
	})

	t.Run("Positive duration lock exists", func(t *testing.T) {
		lock := &Lock{AssetType: "art.collection", UnitID: 42, DurationSecs: 3600}
		assert.True(t, lock.Exists())
	})
}

func TestLockReleaseAt(t *testing.T) {
	start := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("One hour after start", func(t *testing.T) {
		lock := &Lock{
			AssetType:    "art.collection",
			UnitID:       42,
			Start:        start,
			DurationSecs: 3600,
		}

		assert.Equal(t, start.Add(time.Hour), lock.ReleaseAt())
	})

	t.Run("Century-long lock releases in the future", func(t *testing.T) {
		lock := &Lock{
			AssetType:    "art.collection",
			UnitID:       42,
			Start:        start,
			DurationSecs: MaxLockDurationSecs,
		}

		assert.True(t, lock.ReleaseAt().After(start))
		assert.Equal(t, 2123, lock.ReleaseAt().Year())
	})
}

func TestLockIsReleasable(t *testing.T) {
	start := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	lock := &Lock{
		AssetType:    "art.collection",
		UnitID:       42,
		Start:        start,
		DurationSecs: 3600,
	}

	t.Run("Before the release instant", func(t *testing.T) {
		assert.False(t, lock.IsReleasable(start.Add(59*time.Minute)))
	})

	t.Run("Exactly at the release instant", func(t *testing.T) {
		assert.True(t, lock.IsReleasable(start.Add(time.Hour)))
	})

	t.Run("After the release instant", func(t *testing.T) {
		assert.True(t, lock.IsReleasable(start.Add(2*time.Hour)))
	})

	t.Run("Century-long lock is not releasable early", func(t *testing.T) {
		longLock := &Lock{
			AssetType:    "art.collection",
			UnitID:       42,
			Start:        start,
			DurationSecs: MaxLockDurationSecs,
		}

		assert.False(t, longLock.IsReleasable(start.Add(time.Second)))
		assert.False(t, longLock.IsReleasable(start.AddDate(50, 0, 0)))
	})
}

func TestLockExtend(t *testing.T) {
	t.Run("Positive extension grows the duration", func(t *testing.T) {
		lock := &Lock{DurationSecs: 3600}

		err := lock.Extend(500)

		require.NoError(t, err)
		assert.Equal(t, int64(4100), lock.DurationSecs)
	})

	t.Run("Extension moves the release instant forward", func(t *testing.T) {
		start := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
		lock := &Lock{Start: start, DurationSecs: 3600}

		require.NoError(t, lock.Extend(600))

		assert.Equal(t, start.Add(70*time.Minute), lock.ReleaseAt())
	})

	t.Run("Zero extension is rejected", func(t *testing.T) {
		lock := &Lock{DurationSecs: 3600}

		err := lock.Extend(0)

		assert.Equal(t, errs.ErrInvalidExtension, err)
		assert.Equal(t, int64(3600), lock.DurationSecs)
	})

	t.Run("Negative extension is rejected", func(t *testing.T) {
		lock := &Lock{DurationSecs: 3600}

		err := lock.Extend(-100)

		assert.Equal(t, errs.ErrInvalidExtension, err)
		assert.Equal(t, int64(3600), lock.DurationSecs)
	})

	t.Run("Extension up to the cap is accepted", func(t *testing.T) {
		lock := &Lock{DurationSecs: 3600}

		err := lock.Extend(MaxLockDurationSecs - 3600)

		require.NoError(t, err)
		assert.Equal(t, MaxLockDurationSecs, lock.DurationSecs)
	})

	t.Run("Extension past the cap is rejected", func(t *testing.T) {
		lock := &Lock{DurationSecs: 3600}

		err := lock.Extend(MaxLockDurationSecs - 3600 + 1)

		assert.Equal(t, errs.ErrDurationTooLong, err)
		assert.Equal(t, int64(3600), lock.DurationSecs)
	})

	t.Run("Extension that would wrap the duration is rejected", func(t *testing.T) {
		lock := &Lock{DurationSecs: 3600}

		err := lock.Extend(math.MaxInt64)

		assert.Equal(t, errs.ErrDurationTooLong, err)
		assert.Equal(t, int64(3600), lock.DurationSecs)
	})
}

func TestIdentifierValidity(t *testing.T) {
	t.Run("AccountID", func(t *testing.T) {
		assert.False(t, AccountID(0).IsValid())
		assert.True(t, AccountID(1).IsValid())
	})

	t.Run("AssetType", func(t *testing.T) {
		assert.False(t, AssetType("").IsValid())
		assert.False(t, AssetType("  ").IsValid())
		assert.True(t, AssetType("art.collection").IsValid())
	})

	t.Run("UnitID", func(t *testing.T) {
		assert.False(t, UnitID(0).IsValid())
		assert.False(t, UnitID(-5).IsValid())
		assert.True(t, UnitID(1).IsValid())
	})
}
