package repository

import (
	"context"
	"fmt"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/domain/port/custody"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// FeeLedger implements the FeePort against the in-process accounts table.
// The fee policy (amounts and exemption set) is consulted on every charge.
type FeeLedger struct {
	db     *gorm.DB
	policy custody.FeePolicy
	logger coreport.Logger
}

// NewFeeLedger creates a new FeeLedger instance
func NewFeeLedger(db *gorm.DB, policy custody.FeePolicy, logger coreport.Logger) *FeeLedger {
	return &FeeLedger{
		db:     db,
		policy: policy,
		logger: logger,
	}
}

// Charge deducts amount fee-units from the payer. Exempt payers are charged
// zero. The guarded UPDATE only fires when the balance covers the amount,
// so a charge can never drive a balance negative.
func (l *FeeLedger) Charge(ctx context.Context, payer entity.AccountID, amount int64) error {
	if amount == 0 {
		return nil
	}
	if l.policy.IsExempt(payer) {
		l.logger.Debug("Fee skipped for exempt payer", map[string]any{
			"payer":  uint64(payer),
			"amount": amount,
		})
		return nil
	}

	result := l.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ? AND fee_balance >= ?", uint64(payer), amount).
		Update("fee_balance", gorm.Expr("fee_balance - ?", amount))
	if result.Error != nil {
		l.logger.Error("Database error during fee charge", map[string]any{
			"payer":  uint64(payer),
			"amount": amount,
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		l.logger.Warn("Fee charge rejected", map[string]any{
			"payer":  uint64(payer),
			"amount": amount,
		})
		return errs.ErrFeeChargeFailed
	}

	l.logger.Debug("Fee charged", map[string]any{
		"payer":  uint64(payer),
		"amount": amount,
	})
	return nil
}
