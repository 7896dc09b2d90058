package locksmith

// Unlocker releases a lock acquired through FileSystem.Lock.
type Unlocker interface {
	Unlock() error
}
