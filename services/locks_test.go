package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLocksEvictedAfterUse(t *testing.T) {
	locks := newUserLocks()

	locks.lock("user1")
	locks.unlock("user1")

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks)
}

func (u *userLocks) refsFor(userId string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	entry, ok := u.locks[userId]
	if !ok {
		return 0
	}
	return entry.refs
}

func TestUserLocksEntrySurvivesWhileHeld(t *testing.T) {
	locks := newUserLocks()
	locks.lock("user1")

	released := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		locks.lock("user1")
		<-released
		locks.unlock("user1")
	}()

	for locks.refsFor("user1") != 2 {
		time.Sleep(time.Millisecond)
	}

	// First unlock hands over to the waiting holder without evicting.
	locks.unlock("user1")
	require.Equal(t, 1, locks.refsFor("user1"))

	close(released)
	wg.Wait()

	locks.mu.Lock()
	assert.Empty(t, locks.locks)
	locks.mu.Unlock()
}

func TestUserLocksIndependentUsersDoNotBlock(t *testing.T) {
	locks := newUserLocks()
	locks.lock("user1")
	defer locks.unlock("user1")

	done := make(chan struct{})
	go func() {
		locks.lock("user2")
		locks.unlock("user2")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second user blocked on an unrelated lock")
	}
}
