package services

import (
	"time"

	"github.com/IfedayoAwe/webhook-callback-service/models"
	goCache "github.com/patrickmn/go-cache"
)

// LedgerService is the in-memory set of transaction ids that completed the
// success path. Ids are never removed and nothing survives a restart.
type LedgerService interface {
	Contains(id models.TransactionID) bool
	// Record inserts id if it is absent and reports whether this call did
	// the insert. Concurrent calls for the same id see exactly one true.
	Record(id models.TransactionID) bool
	Size() int
}

type ledgerService struct {
	entries *goCache.Cache
}

func NewLedgerService() LedgerService {
	return &ledgerService{
		// no expiration and no janitor: entries live for the process lifetime
		entries: goCache.New(goCache.NoExpiration, 0),
	}
}

func (ls *ledgerService) Contains(id models.TransactionID) bool {
	_, found := ls.entries.Get(id.String())
	return found
}

func (ls *ledgerService) Record(id models.TransactionID) bool {
	// Add fails when the key already exists; the check and the set happen
	// under the cache's own lock.
	return ls.entries.Add(id.String(), time.Now().UTC(), goCache.NoExpiration) == nil
}

func (ls *ledgerService) Size() int {
	return ls.entries.ItemCount()
}
