package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/safwanpaleri/roundtable/logger"
)

// Record is one persisted evaluation result.
type Record struct {
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Scores            Scores    `json:"scores"`
	Participants      []string  `json:"participants"`
	AvgLatencySeconds []float64 `json:"avg_latency_seconds"`
}

type recordFile struct {
	Records []Record `json:"records"`
}

// Store persists evaluation records to a single JSON file. Every append
// reads the existing file, adds the record, and rewrites the whole
// file. Safe for concurrent use within one process.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append adds one record to the store.
func (s *Store) Append(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}
	file.Records = append(file.Records, record)

	if err := s.write(file); err != nil {
		return err
	}

	logger.Info("evaluation record saved", "path", s.path, "total", len(file.Records))
	return nil
}

// List returns all records, newest first.
func (s *Store) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(file.Records))
	for i := len(file.Records) - 1; i >= 0; i-- {
		out = append(out, file.Records[i])
	}
	return out, nil
}

// DeleteAll removes every stored record.
func (s *Store) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}

func (s *Store) read() (recordFile, error) {
	var file recordFile

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return file, nil
	}
	if err != nil {
		return file, fmt.Errorf("failed to read records: %w", err)
	}

	if err := json.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("failed to parse records file %s: %w", s.path, err)
	}
	return file, nil
}

func (s *Store) write(file recordFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create records directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
