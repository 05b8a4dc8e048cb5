package memory

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Filename used for the JSONL store within the runtime home directory.
const jsonlFilename = "memory.jsonl"

// JSONLStore is an append-only JSONL file store for summaries. Records
// are owner-readable only. Writers within a process are serialized by
// a mutex; O_APPEND keeps concurrent process writers line-atomic for
// records of this size.
type JSONLStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONLStore creates a store under the given home directory
// (e.g. ~/.agent).
func NewJSONLStore(home string) *JSONLStore {
	return &JSONLStore{path: filepath.Join(home, jsonlFilename)}
}

// Append implements Store.
func (s *JSONLStore) Append(repoKey string, sessionID uuid.UUID, title, text string, msgIDs []string) error {
	record := newRecord(repoKey, sessionID, title, text, msgIDs)
	line, err := json.Marshal(record)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return err
	}
	return f.Sync()
}

// Recent implements Store. A missing file yields an empty result, not
// an error. Unparseable lines are skipped.
func (s *JSONLStore) Recent(repoKey string, limit int) ([]StoredSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []StoredSummary
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var record StoredSummary
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			continue
		}
		if record.RepoKey == repoKey {
			entries = append(entries, record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TS > entries[j].TS
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
