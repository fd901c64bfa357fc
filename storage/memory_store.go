package storage

import (
	"sort"
	"sync"

	"holiday-planner/models"
)

// MemoryStore is an in-memory Repository and ReceiptWriter with the same
// ordering rules as FileStore.
type MemoryStore struct {
	mu       sync.Mutex
	index    []string
	log      []string
	receipts map[string]string
}

// NewMemoryStore returns a store seeded with raw index lines.
func NewMemoryStore(indexLines ...string) *MemoryStore {
	m := &MemoryStore{
		index:    append([]string(nil), indexLines...),
		receipts: make(map[string]string),
	}
	sort.Strings(m.index)
	return m
}

// ListTransactions returns the parsed index entries in sorted order,
// skipping lines that do not parse.
func (m *MemoryStore) ListTransactions() ([]models.IndexEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]models.IndexEntry, 0, len(m.index))
	for _, line := range m.index {
		if e, ok := models.ParseIndexEntry(line); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// AppendTransaction adds entry to the index and re-sorts it.
func (m *MemoryStore) AppendTransaction(entry models.IndexEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.index = append(m.index, entry.String())
	sort.Strings(m.index)
	return nil
}

// AppendLogEntry appends line to the activity log.
func (m *MemoryStore) AppendLogEntry(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log = append(m.log, line)
	return nil
}

// SaveReceipt stores content under name, replacing any earlier receipt.
func (m *MemoryStore) SaveReceipt(name, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.receipts[name] = content
	return nil
}

// IndexLines returns a copy of the raw index lines.
func (m *MemoryStore) IndexLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.index...)
}

// LogLines returns a copy of the activity log.
func (m *MemoryStore) LogLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.log...)
}

// Receipt returns the saved receipt content, if any.
func (m *MemoryStore) Receipt(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.receipts[name]
	return content, ok
}

// Receipts reports how many receipts were saved.
func (m *MemoryStore) Receipts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.receipts)
}
