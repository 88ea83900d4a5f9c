package social

import "sync"

// pairLocks serializes mutations per unordered user pair so that two
// concurrent requests for the same pair cannot both pass the conflict check
// before either commits. Entries are reference-counted and removed when the
// last holder unlocks, so the map only holds pairs with an operation in
// flight.
type pairLocks struct {
	mu    sync.Mutex
	locks map[string]*pairLock
}

type pairLock struct {
	sync.Mutex
	refs int
}

func newPairLocks() *pairLocks {
	return &pairLocks{locks: make(map[string]*pairLock)}
}

// lock acquires the mutex for the unordered pair {a, b} and returns its
// unlock function.
func (p *pairLocks) lock(a, b string) func() {
	key := a + "\x00" + b
	if b < a {
		key = b + "\x00" + a
	}

	p.mu.Lock()
	l, ok := p.locks[key]
	if !ok {
		l = &pairLock{}
		p.locks[key] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, key)
		}
		p.mu.Unlock()
	}
}
