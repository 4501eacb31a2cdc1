package services

import "sync"

// userLocks serializes invariant-bearing multi-write sequences per user:
// the default-address swap and checkout. Single-row cart writes do not
// take a lock; last-write-wins is accepted there.
//
// Entries are refcounted and removed once the last holder unlocks, so
// the map stays bounded by the number of in-flight requests rather than
// the number of users ever seen.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*userLock)}
}

func (u *userLocks) lock(userId string) {
	u.mu.Lock()
	entry, ok := u.locks[userId]
	if !ok {
		entry = &userLock{}
		u.locks[userId] = entry
	}
	entry.refs++
	u.mu.Unlock()

	entry.mu.Lock()
}

func (u *userLocks) unlock(userId string) {
	u.mu.Lock()
	entry := u.locks[userId]
	entry.refs--
	if entry.refs == 0 {
		delete(u.locks, userId)
	}
	u.mu.Unlock()

	entry.mu.Unlock()
}
