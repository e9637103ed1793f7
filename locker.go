package libee

import "sync"

// rwLocker is the subset of sync.RWMutex the emitter relies on. Shared
// emitters use real mutexes, local ones use noopLocker.
type rwLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

type lockerFactory func() rwLocker

func newMutex() rwLocker {
	return &sync.RWMutex{}
}
