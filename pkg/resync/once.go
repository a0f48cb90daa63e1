package resync

import "sync"

// Once behaves like sync.Once but can be reset, which is convenient
// to reload lazy-loaded singletons between tests.
type Once struct {
	m    sync.Mutex
	done bool
}

// Do calls the function f only once until Reset is called.
func (o *Once) Do(f func()) {
	o.m.Lock()
	defer o.m.Unlock()
	if o.done {
		return
	}
	f()
	o.done = true
}

// Reset makes the next call to Do execute its function again.
func (o *Once) Reset() {
	o.m.Lock()
	defer o.m.Unlock()
	o.done = false
}
