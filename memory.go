package coconutkit

import (
	"context"
	"fmt"
	"sync"

	"github.com/jormungand/CoconutKit/data"
	"github.com/jormungand/CoconutKit/log"
	"github.com/jormungand/CoconutKit/store"
	"github.com/jormungand/CoconutKit/tree"
)

// InMemoryFileManager keeps a directory tree and a cost-bounded payload cache
// behind a single lock. Every operation, including reads, goes through that
// lock; reads take it in write mode because they refresh cache recency.
type InMemoryFileManager struct {
	mu sync.RWMutex

	tree  *tree.PathTree
	store *store.DataStore
	log   *log.Logger
}

// NewInMemoryFileManager creates an empty file manager.
// Returns an error when an option rejects its value.
func NewInMemoryFileManager(opts ...Option) (*InMemoryFileManager, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	logger := options.Logger
	if logger == nil {
		logger = log.NewLogger("coconutkit", options.LogLevel, options.LogFile, options.NoTerminalLog)
	}

	m := &InMemoryFileManager{
		tree: tree.NewPathTree(),
		log:  logger,
	}
	m.store = store.NewDataStore(options.TotalCostLimit, m.handleEviction)

	m.log.Debug("Created in-memory file manager with total cost limit '%d'", options.TotalCostLimit)

	return m, nil
}

// handleEviction runs synchronously inside store mutations while m.mu is
// already held. It must not touch m.mu or call back into the store.
func (m *InMemoryFileManager) handleEviction(handle string, cost int64, owner tree.Locator) {
	if owner.Excise(handle) {
		m.log.Debug("Evicted '%s' under '%s' releasing '%d' bytes", handle, owner.Name, cost)
		return
	}

	m.log.Debug("Evicted unbound handle '%s' releasing '%d' bytes", handle, cost)
}

// SetTotalCostLimit replaces the payload budget at runtime. Lowering it below
// the resident total evicts before this call returns.
// Returns ErrInvalid for negative limits.
func (m *InMemoryFileManager) SetTotalCostLimit(limit int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SetTotalCostLimit(limit); err != nil {
		return fmt.Errorf("failed to set total cost limit to '%d': %w", limit, err)
	}

	m.log.Debug("Total cost limit set to '%d'", limit)
	return nil
}

// TotalCostLimit returns the current payload budget; zero means unlimited.
func (m *InMemoryFileManager) TotalCostLimit() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.store.TotalCostLimit()
}

// TotalCost returns the summed cost of every resident payload.
func (m *InMemoryFileManager) TotalCost() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.store.TotalCost()
}

// Len returns the number of resident payloads.
func (m *InMemoryFileManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.store.Len()
}

// Shutdown empties the namespace and drops every payload. Failures are
// collected so one bad entry does not leave its siblings behind. The manager
// stays usable afterwards, just empty.
func (m *InMemoryFileManager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := &data.Errors{}

	root := m.tree.Root()
	for _, name := range root.Names() {
		if err := m.tree.RemoveNamed(root, name, nil); err != nil {
			m.log.Warn("Failed to remove '%s' during shutdown: %v", name, err)
			errs.Add(fmt.Errorf("failed to remove '%s': %w", name, err))
		}
	}
	m.store.Clear()

	m.log.Info("In-memory file manager shut down")
	return errs.Errors()
}
