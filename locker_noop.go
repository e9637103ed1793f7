package libee

type noopLocker struct{}

func (noopLocker) Lock() {}

func (noopLocker) Unlock() {}

func (noopLocker) RLock() {}

func (noopLocker) RUnlock() {}

func newNoopLocker() rwLocker {
	return noopLocker{}
}
