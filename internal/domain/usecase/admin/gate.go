package admin

import (
	"sync"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
)

// Gate holds the process-wide custody configuration: the pause switch, the
// fixed fee amounts, and the fee-exemption set. All mutation is gated on
// the designated administrator identity; reads are safe from any goroutine.
//
// Gate implements both usecase.AdminUseCase and custody.FeePolicy.
type Gate struct {
	admin  entity.AccountID
	logger coreport.Logger

	mu           sync.RWMutex
	paused       bool
	creationFee  int64
	extensionFee int64
	exempt       map[entity.AccountID]struct{}
}

// NewGate creates a gate with the given administrator identity and initial
// fee configuration. Initial fees are checked against the ceiling the same
// way later SetFees calls are.
func NewGate(
	admin entity.AccountID,
	creationFee, extensionFee int64,
	exemptions []entity.AccountID,
	logger coreport.Logger,
) (*Gate, error) {
	if !admin.IsValid() {
		return nil, errs.ErrInvalidAccountID
	}
	if err := validateFee(creationFee); err != nil {
		return nil, err
	}
	if err := validateFee(extensionFee); err != nil {
		return nil, err
	}

	exempt := make(map[entity.AccountID]struct{}, len(exemptions))
	for _, account := range exemptions {
		if account.IsValid() {
			exempt[account] = struct{}{}
		}
	}

	return &Gate{
		admin:        admin,
		logger:       logger,
		creationFee:  creationFee,
		extensionFee: extensionFee,
		exempt:       exempt,
	}, nil
}

func validateFee(amount int64) error {
	if amount < 0 {
		return errs.ErrInvalidInput
	}
	if amount > entity.MaxFeeAmount {
		return errs.ErrFeeAboveCeiling
	}
	return nil
}

// requireAdmin rejects any caller other than the configured administrator
func (g *Gate) requireAdmin(caller entity.AccountID) error {
	if caller != g.admin {
		g.logger.Warn("Non-admin caller attempted admin operation", map[string]any{
			"caller": uint64(caller),
		})
		return errs.ErrUnauthorized
	}
	return nil
}

// Pause blocks association and creation. Extension and withdrawal remain
// available so an emergency pause never traps an existing beneficiary.
func (g *Gate) Pause(caller entity.AccountID) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	g.mu.Lock()
	g.paused = true
	g.mu.Unlock()

	g.logger.Info("Custody service paused", map[string]any{
		"admin": uint64(caller),
	})
	return nil
}

// Unpause lifts the pause switch
func (g *Gate) Unpause(caller entity.AccountID) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	g.mu.Lock()
	g.paused = false
	g.mu.Unlock()

	g.logger.Info("Custody service unpaused", map[string]any{
		"admin": uint64(caller),
	})
	return nil
}

// IsPaused reports the current pause state
func (g *Gate) IsPaused() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.paused
}

// SetFees replaces the fixed fee amounts. The ceiling is enforced here,
// at configuration time, never per call.
func (g *Gate) SetFees(caller entity.AccountID, creationFee, extensionFee int64) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}
	if err := validateFee(creationFee); err != nil {
		return err
	}
	if err := validateFee(extensionFee); err != nil {
		return err
	}

	g.mu.Lock()
	g.creationFee = creationFee
	g.extensionFee = extensionFee
	g.mu.Unlock()

	g.logger.Info("Custody fees updated", map[string]any{
		"creation_fee":  creationFee,
		"extension_fee": extensionFee,
	})
	return nil
}

// AddFeeExemption adds an account to the fee-exemption set
func (g *Gate) AddFeeExemption(caller, account entity.AccountID) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}
	if !account.IsValid() {
		return errs.ErrInvalidAccountID
	}

	g.mu.Lock()
	g.exempt[account] = struct{}{}
	g.mu.Unlock()

	g.logger.Info("Fee exemption added", map[string]any{
		"account": uint64(account),
	})
	return nil
}

// RemoveFeeExemption removes an account from the fee-exemption set
func (g *Gate) RemoveFeeExemption(caller, account entity.AccountID) error {
	if err := g.requireAdmin(caller); err != nil {
		return err
	}

	g.mu.Lock()
	delete(g.exempt, account)
	g.mu.Unlock()

	g.logger.Info("Fee exemption removed", map[string]any{
		"account": uint64(account),
	})
	return nil
}

// CreationFee returns the fixed fee charged on lock creation
func (g *Gate) CreationFee() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.creationFee
}

// ExtensionFee returns the fixed fee charged on lock extension
func (g *Gate) ExtensionFee() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.extensionFee
}

// IsExempt reports whether the account bypasses fee charges
func (g *Gate) IsExempt(account entity.AccountID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.exempt[account]
	return ok
}
