package storage

import "holiday-planner/models"

// Repository is the shared booking record: the sorted customer transaction
// index and the append-only activity log.
type Repository interface {
	// ListTransactions returns every well-formed index entry.
	ListTransactions() ([]models.IndexEntry, error)
	// AppendTransaction adds entry and leaves the index sorted.
	AppendTransaction(entry models.IndexEntry) error
	// AppendLogEntry appends one line to the activity log.
	AppendLogEntry(line string) error
}

// ReceiptWriter persists the per-traveller receipt, replacing any earlier one.
type ReceiptWriter interface {
	SaveReceipt(name, content string) error
}
