package handlers

import "sync"

// physicianLocks serializes "check overlap + write application + write block"
// per physician. Without it two near-simultaneous submissions could both pass
// the overlap check before either row lands.
type physicianLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPhysicianLocks() *physicianLocks {
	return &physicianLocks{locks: make(map[string]*sync.Mutex)}
}

// Acquire locks the physician's mutex and returns the unlock func.
func (p *physicianLocks) Acquire(physicianID string) func() {
	p.mu.Lock()
	lock, ok := p.locks[physicianID]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[physicianID] = lock
	}
	p.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
