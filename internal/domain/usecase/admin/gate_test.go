package admin

import (
	"testing"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	coremocks "github.com/sina-mohseni/nftvault/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminAccount entity.AccountID = 2
	plainAccount entity.AccountID = 50
)

func newTestGate(t *testing.T) *Gate {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	gate, err := NewGate(adminAccount, 100, 50, nil, mockLogger)
	require.NoError(t, err)
	return gate
}

func TestNewGate(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)

	t.Run("Valid configuration", func(t *testing.T) {
		gate, err := NewGate(adminAccount, 100, 50, []entity.AccountID{7, 8}, mockLogger)

		require.NoError(t, err)
		assert.Equal(t, int64(100), gate.CreationFee())
		assert.Equal(t, int64(50), gate.ExtensionFee())
		assert.True(t, gate.IsExempt(7))
		assert.True(t, gate.IsExempt(8))
		assert.False(t, gate.IsExempt(9))
		assert.False(t, gate.IsPaused())
	})

	t.Run("Zero admin account", func(t *testing.T) {
		gate, err := NewGate(0, 100, 50, nil, mockLogger)

		assert.Nil(t, gate)
		assert.Equal(t, errs.ErrInvalidAccountID, err)
	})

	t.Run("Negative creation fee", func(t *testing.T) {
		gate, err := NewGate(adminAccount, -1, 50, nil, mockLogger)

		assert.Nil(t, gate)
		assert.Equal(t, errs.ErrInvalidInput, err)
	})

	t.Run("Creation fee above the ceiling", func(t *testing.T) {
		gate, err := NewGate(adminAccount, entity.MaxFeeAmount+1, 50, nil, mockLogger)

		assert.Nil(t, gate)
		assert.Equal(t, errs.ErrFeeAboveCeiling, err)
	})

	t.Run("Extension fee above the ceiling", func(t *testing.T) {
		gate, err := NewGate(adminAccount, 100, entity.MaxFeeAmount+1, nil, mockLogger)

		assert.Nil(t, gate)
		assert.Equal(t, errs.ErrFeeAboveCeiling, err)
	})

	t.Run("Fee exactly at the ceiling is allowed", func(t *testing.T) {
		gate, err := NewGate(adminAccount, entity.MaxFeeAmount, entity.MaxFeeAmount, nil, mockLogger)

		require.NoError(t, err)
		assert.Equal(t, entity.MaxFeeAmount, gate.CreationFee())
	})

	t.Run("Invalid exemption entries are dropped", func(t *testing.T) {
		gate, err := NewGate(adminAccount, 100, 50, []entity.AccountID{0, 7}, mockLogger)

		require.NoError(t, err)
		assert.True(t, gate.IsExempt(7))
		assert.False(t, gate.IsExempt(0))
	})
}

func TestGatePause(t *testing.T) {
	t.Run("Admin pauses and unpauses", func(t *testing.T) {
		gate := newTestGate(t)

		require.NoError(t, gate.Pause(adminAccount))
		assert.True(t, gate.IsPaused())

		require.NoError(t, gate.Unpause(adminAccount))
		assert.False(t, gate.IsPaused())
	})

	t.Run("Non-admin cannot pause", func(t *testing.T) {
		gate := newTestGate(t)

		err := gate.Pause(plainAccount)

		assert.Equal(t, errs.ErrUnauthorized, err)
		assert.False(t, gate.IsPaused())
	})

	t.Run("Non-admin cannot unpause", func(t *testing.T) {
		gate := newTestGate(t)
		require.NoError(t, gate.Pause(adminAccount))

		err := gate.Unpause(plainAccount)

		assert.Equal(t, errs.ErrUnauthorized, err)
		assert.True(t, gate.IsPaused())
	})
}

func TestGateSetFees(t *testing.T) {
	t.Run("Admin updates both fees", func(t *testing.T) {
		gate := newTestGate(t)

		require.NoError(t, gate.SetFees(adminAccount, 200, 75))

		assert.Equal(t, int64(200), gate.CreationFee())
		assert.Equal(t, int64(75), gate.ExtensionFee())
	})

	t.Run("Zero fees disable charging", func(t *testing.T) {
		gate := newTestGate(t)

		require.NoError(t, gate.SetFees(adminAccount, 0, 0))

		assert.Equal(t, int64(0), gate.CreationFee())
		assert.Equal(t, int64(0), gate.ExtensionFee())
	})

	t.Run("Non-admin cannot set fees", func(t *testing.T) {
		gate := newTestGate(t)

		err := gate.SetFees(plainAccount, 200, 75)

		assert.Equal(t, errs.ErrUnauthorized, err)
		assert.Equal(t, int64(100), gate.CreationFee())
	})

	t.Run("Fee above the ceiling is rejected without partial update", func(t *testing.T) {
		gate := newTestGate(t)

		err := gate.SetFees(adminAccount, 200, entity.MaxFeeAmount+1)

		assert.Equal(t, errs.ErrFeeAboveCeiling, err)
		assert.Equal(t, int64(100), gate.CreationFee())
		assert.Equal(t, int64(50), gate.ExtensionFee())
	})

	t.Run("Negative fee is rejected", func(t *testing.T) {
		gate := newTestGate(t)

		err := gate.SetFees(adminAccount, -5, 50)

		assert.Equal(t, errs.ErrInvalidInput, err)
	})
}

func TestGateFeeExemptions(t *testing.T) {
	t.Run("Admin adds and removes an exemption", func(t *testing.T) {
		gate := newTestGate(t)

		require.NoError(t, gate.AddFeeExemption(adminAccount, plainAccount))
		assert.True(t, gate.IsExempt(plainAccount))

		require.NoError(t, gate.RemoveFeeExemption(adminAccount, plainAccount))
		assert.False(t, gate.IsExempt(plainAccount))
	})

	t.Run("Non-admin cannot add an exemption", func(t *testing.T) {
		gate := newTestGate(t)

		err := gate.AddFeeExemption(plainAccount, plainAccount)

		assert.Equal(t, errs.ErrUnauthorized, err)
		assert.False(t, gate.IsExempt(plainAccount))
	})

	t.Run("Zero account cannot be exempted", func(t *testing.T) {
		gate := newTestGate(t)

		err := gate.AddFeeExemption(adminAccount, 0)

		assert.Equal(t, errs.ErrInvalidAccountID, err)
	})

	t.Run("Removing a non-exempt account is a no-op", func(t *testing.T) {
		gate := newTestGate(t)

		require.NoError(t, gate.RemoveFeeExemption(adminAccount, plainAccount))
	})
}
