package lifecycle

import (
	"fmt"
	"sync"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	errs "github.com/sina-mohseni/nftvault/internal/domain/error"
)

// callGuard is the call-scoped mutual-exclusion guard around every
// state-mutating entry point. A nested call on a key that is already held
// is rejected immediately with ErrReentrancyRejected instead of queueing;
// the key is released unconditionally on every exit path via defer.
type callGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func newCallGuard() *callGuard {
	return &callGuard{
		held: make(map[string]struct{}),
	}
}

// acquire takes exclusive logical access to the key for the duration of
// the enclosing call
func (g *callGuard) acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.held[key]; ok {
		return errs.ErrReentrancyRejected
	}
	g.held[key] = struct{}{}
	return nil
}

// release gives the key back. Safe to call for keys that are not held.
func (g *callGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
}

// lockKey identifies the logical resource a mutating call holds: one
// (assetType, unitID) pair, so unrelated records never contend.
func lockKey(assetType entity.AssetType, unitID entity.UnitID) string {
	return fmt.Sprintf("%s/%d", assetType, unitID)
}

// assetKey identifies the whole asset type, used by association which has
// no unit-level resource.
func assetKey(assetType entity.AssetType) string {
	return fmt.Sprintf("%s/*", assetType)
}
