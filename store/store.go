// Package store implements the cost-bounded payload cache of the file store.
// Payloads are addressed by opaque handles; every entry carries a non-owning
// locator back to the tree node that references it, so eviction can excise
// the node through the registered handler.
//
// The store performs no locking of its own; the manager that owns it
// serializes every call, eviction notifications included.
package store

import (
	"github.com/tidwall/btree"

	"github.com/jormungand/CoconutKit/data"
	"github.com/jormungand/CoconutKit/tree"
)

// EvictionHandler receives every entry the store drops to get back inside
// its cost budget. It runs synchronously on the goroutine performing the
// triggering mutation, with whatever lock that goroutine holds still held;
// it MUST NOT re-acquire that lock.
type EvictionHandler func(handle string, cost int64, owner tree.Locator)

type cacheEntry struct {
	data  []byte
	owner tree.Locator
	cost  int64
	seq   uint64
}

// DataStore maps handles to byte payloads and keeps the resident cost total
// inside a configurable budget by evicting the least recently used entries.
// Cost is payload length in bytes; a zero limit disables the budget.
type DataStore struct {
	entries map[string]*cacheEntry
	recency *btree.Map[uint64, string]

	seq   uint64
	total int64
	limit int64

	onEvicted EvictionHandler
}

// NewDataStore returns an empty store with the given cost limit. onEvicted
// may be nil when no tree excision is wired up.
func NewDataStore(limit int64, onEvicted EvictionHandler) *DataStore {
	return &DataStore{
		entries:   make(map[string]*cacheEntry),
		recency:   btree.NewMap[uint64, string](0),
		limit:     limit,
		onEvicted: onEvicted,
	}
}

// Put installs payload under handle as the most recently used entry, owned
// by owner, then evicts until the budget holds again. The payload bytes are
// copied in. Re-using a resident handle replaces its entry in place without
// notification. Eviction may claim the entry just installed; its node has to
// be in the tree before Put is called, or the notification cannot excise it.
func (s *DataStore) Put(handle string, payload []byte, owner tree.Locator) {
	if prev, ok := s.entries[handle]; ok {
		s.recency.Delete(prev.seq)
		s.total -= prev.cost
		delete(s.entries, handle)
	}

	buf := make([]byte, len(payload))
	copy(buf, payload)

	s.seq++
	entry := &cacheEntry{
		data:  buf,
		owner: owner,
		cost:  int64(len(buf)),
		seq:   s.seq,
	}

	s.entries[handle] = entry
	s.recency.Set(entry.seq, handle)
	s.total += entry.cost

	s.evict()
}

// Get returns a copy of the payload for handle and marks the entry most
// recently used. The copy keeps callers from mutating resident bytes.
func (s *DataStore) Get(handle string) ([]byte, bool) {
	entry, ok := s.entries[handle]
	if !ok {
		return nil, false
	}

	s.recency.Delete(entry.seq)
	s.seq++
	entry.seq = s.seq
	s.recency.Set(entry.seq, handle)

	buf := make([]byte, len(entry.data))
	copy(buf, entry.data)

	return buf, true
}

// Contains reports whether handle is resident without touching recency.
func (s *DataStore) Contains(handle string) bool {
	_, ok := s.entries[handle]
	return ok
}

// Remove releases handle without firing the eviction notification; removal
// initiated from the tree side is already consistent.
// Returns ErrNotExist if the handle is not resident.
func (s *DataStore) Remove(handle string) error {
	entry, ok := s.entries[handle]
	if !ok {
		return data.ErrNotExist
	}

	s.recency.Delete(entry.seq)
	s.total -= entry.cost
	delete(s.entries, handle)

	return nil
}

// SetTotalCostLimit replaces the budget and evicts immediately if the new
// limit is already exceeded. Zero disables the budget.
// Returns ErrInvalid for negative limits.
func (s *DataStore) SetTotalCostLimit(limit int64) error {
	if limit < 0 {
		return data.ErrInvalid
	}

	s.limit = limit
	s.evict()

	return nil
}

// TotalCostLimit returns the configured budget, zero meaning unlimited.
func (s *DataStore) TotalCostLimit() int64 {
	return s.limit
}

// TotalCost returns the resident cost total.
func (s *DataStore) TotalCost() int64 {
	return s.total
}

// Len returns the number of resident entries.
func (s *DataStore) Len() int {
	return len(s.entries)
}

// Clear drops every entry without notification.
func (s *DataStore) Clear() {
	s.entries = make(map[string]*cacheEntry)
	s.recency = btree.NewMap[uint64, string](0)
	s.total = 0
}

// evict pops least recently used entries until the resident total fits the
// budget, notifying the handler for each one. Every pop removes an entry,
// so the loop terminates even when zero-cost entries free nothing.
func (s *DataStore) evict() {
	if s.limit <= 0 {
		return
	}

	for s.total > s.limit {
		seq, handle, ok := s.recency.Min()
		if !ok {
			return
		}
		s.recency.Delete(seq)

		entry, ok := s.entries[handle]
		if !ok {
			continue
		}

		delete(s.entries, handle)
		s.total -= entry.cost

		if s.onEvicted != nil {
			s.onEvicted(handle, entry.cost, entry.owner)
		}
	}
}
