package game

import "sync"

// playerLocks serializes commands per player. Entries are dropped once no
// command holds or waits on them.
type playerLocks struct {
	mu    sync.Mutex
	locks map[string]*playerLock
}

type playerLock struct {
	mu   sync.Mutex
	refs int
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{locks: make(map[string]*playerLock)}
}

// lock blocks until playerID is free and returns the unlock func
func (l *playerLocks) lock(playerID string) func() {
	l.mu.Lock()
	pl, ok := l.locks[playerID]
	if !ok {
		pl = &playerLock{}
		l.locks[playerID] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.mu.Lock()

	return func() {
		pl.mu.Unlock()

		l.mu.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(l.locks, playerID)
		}
		l.mu.Unlock()
	}
}

func (l *playerLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
