package core

import "sync"

// planLocks serializes work on a plan within this process.
type planLocks struct {
	mu   sync.Mutex
	held map[uint]struct{}
}

func newPlanLocks() *planLocks {
	return &planLocks{held: make(map[uint]struct{})}
}

func (l *planLocks) tryLock(id uint) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.held[id]; busy {
		return false
	}
	l.held[id] = struct{}{}
	return true
}

func (l *planLocks) unlock(id uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, id)
}
