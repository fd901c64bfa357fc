package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"holiday-planner/models"
)

const (
	TransactionFile = "customer_transactions.txt"
	LogFile         = "log.txt"
)

// FileStore keeps bookings as flat text files under one directory. The
// directory is created on first write, never on read.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir is the store's root directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *FileStore) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("store: create data dir %q: %w", s.dir, err)
	}
	return nil
}

// readLines returns the index file's lines; a missing file is empty.
func (s *FileStore) readLines(name string) ([]string, error) {
	f, err := os.Open(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", name, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("store: read %q: %w", name, err)
	}
	return lines, nil
}

// ListTransactions parses the index, skipping malformed lines.
func (s *FileStore) ListTransactions() ([]models.IndexEntry, error) {
	lines, err := s.readLines(TransactionFile)
	if err != nil {
		return nil, err
	}

	entries := make([]models.IndexEntry, 0, len(lines))
	for _, line := range lines {
		if e, ok := models.ParseIndexEntry(line); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// AppendTransaction adds entry and rewrites the whole index sorted. Malformed
// lines already in the file are kept and sorted along with the rest.
func (s *FileStore) AppendTransaction(entry models.IndexEntry) error {
	lines, err := s.readLines(TransactionFile)
	if err != nil {
		return err
	}
	lines = append(lines, entry.String())
	sort.Strings(lines)

	if err := s.ensureDir(); err != nil {
		return err
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(s.path(TransactionFile), []byte(content), 0644); err != nil {
		return fmt.Errorf("store: write %q: %w", TransactionFile, err)
	}
	return nil
}

// AppendLogEntry appends line plus a newline to the activity log.
func (s *FileStore) AppendLogEntry(line string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path(LogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("store: open %q: %w", LogFile, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: append %q: %w", LogFile, err)
	}
	return f.Close()
}

// SaveReceipt creates or truncates the named receipt file.
func (s *FileStore) SaveReceipt(name, content string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), []byte(content), 0644); err != nil {
		return fmt.Errorf("store: write receipt %q: %w", name, err)
	}
	return nil
}
