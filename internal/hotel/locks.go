package hotel

import "sync"

// tenantLocks hands out one writer lock per tenant. Every mutating desk
// operation holds its tenant's lock for the whole read-mutate-write cycle,
// which is the only defense against lost updates the full-overwrite store
// contract allows.
type tenantLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newTenantLocks() *tenantLocks {
	return &tenantLocks{locks: make(map[string]*sync.Mutex)}
}

// Get returns the lock for a tenant, creating it on first use.
func (t *tenantLocks) Get(tenantID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[tenantID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[tenantID] = l
	}
	return l
}
