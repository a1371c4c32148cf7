package lifecycle

import (
	"testing"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	"github.com/sina-mohseni/nftvault/internal/domain/usecase/eligibility"
	coremocks "github.com/sina-mohseni/nftvault/mocks/port/core"
	custodymocks "github.com/sina-mohseni/nftvault/mocks/port/custody"
	notificationmocks "github.com/sina-mohseni/nftvault/mocks/port/notification"
	persistencemocks "github.com/sina-mohseni/nftvault/mocks/port/persistence"
	"github.com/stretchr/testify/mock"
)

// Test account identities shared by the lifecycle tests.
const (
	custodyAccount entity.AccountID = 999
	creatorAccount entity.AccountID = 100
	beneficiaryAcc entity.AccountID = 200
)

// stubGate is a fixed-value stand-in for the admin gate.
type stubGate struct {
	paused       bool
	creationFee  int64
	extensionFee int64
	exempt       map[entity.AccountID]struct{}
}

func (g *stubGate) IsPaused() bool      { return g.paused }
func (g *stubGate) CreationFee() int64  { return g.creationFee }
func (g *stubGate) ExtensionFee() int64 { return g.extensionFee }

func (g *stubGate) IsExempt(account entity.AccountID) bool {
	_, ok := g.exempt[account]
	return ok
}

// serviceMocks bundles every collaborator a lifecycle test may need.
type serviceMocks struct {
	uow       *persistencemocks.MockUnitOfWork
	repo      *persistencemocks.MockLockRepository
	transfer  *custodymocks.MockAssetTransferPort
	fees      *custodymocks.MockFeePort
	inspector *custodymocks.MockAssetInspector
	timePr    *coremocks.MockTimeProvider
	events    *notificationmocks.MockEventSink
	logger    *coremocks.MockLogger
	gate      *stubGate
}

// newTestService wires a Service against fresh mocks. Logging is allowed
// but never required; everything else is asserted per test.
func newTestService(t *testing.T) (*Service, *serviceMocks) {
	m := &serviceMocks{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		repo:      persistencemocks.NewMockLockRepository(t),
		transfer:  custodymocks.NewMockAssetTransferPort(t),
		fees:      custodymocks.NewMockFeePort(t),
		inspector: custodymocks.NewMockAssetInspector(t),
		timePr:    coremocks.NewMockTimeProvider(t),
		events:    notificationmocks.NewMockEventSink(t),
		logger:    coremocks.NewMockLogger(t),
		gate:      &stubGate{creationFee: 100, extensionFee: 50},
	}

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	svc := NewService(
		m.uow,
		eligibility.NewGuard(m.inspector, m.logger),
		m.gate,
		custodyAccount,
		m.timePr,
		m.events,
		m.logger,
	)
	return svc, m
}

// uniqueAssetInfo returns metadata that passes the eligibility screen.
func uniqueAssetInfo(assetType entity.AssetType) *entity.AssetInfo {
	return &entity.AssetInfo{Type: assetType, Kind: entity.AssetKindUnique}
}
