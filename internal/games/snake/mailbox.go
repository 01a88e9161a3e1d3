package snake

import "sync/atomic"

// Mailbox holds the latest published Snapshot.
//
// Publish replaces the slot with a single atomic store and Load reads it with
// a single atomic load, so a reader sees either the previous snapshot or the
// new one in full. Snapshots must be completely built before Publish and are
// never written afterwards. Old snapshots stay valid for whoever still holds
// them; the garbage collector reclaims them once the last reader lets go.
type Mailbox struct {
	current   atomic.Pointer[Snapshot]
	published atomic.Uint64
}

// Publish makes s the current snapshot.
func (m *Mailbox) Publish(s *Snapshot) {
	m.current.Store(s)
	m.published.Add(1)
}

// Load returns the current snapshot, or nil if nothing was published yet.
func (m *Mailbox) Load() *Snapshot {
	return m.current.Load()
}

// Published returns how many snapshots went through the mailbox.
// Readers that poll slower than the publisher skip the intermediate ones.
func (m *Mailbox) Published() uint64 {
	return m.published.Load()
}
