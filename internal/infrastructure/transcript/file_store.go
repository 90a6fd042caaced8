// Package transcript persists translated-command records across sessions.
// The sqlite store is the default; the jsonl file store is the fallback for
// environments where the database cannot be opened.
package transcript

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/pkg/filesystem"
	"github.com/doeshing/uniterm/internal/ports"
)

// FileStore appends transcript records to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ ports.TranscriptRepository = (*FileStore)(nil)

// NewFileStore creates a store under ~/.uniterm/transcript/transcript.jsonl.
func NewFileStore() *FileStore {
	return NewFileStoreAt(filepath.Join(filesystem.UserHomeDir(), ".uniterm", "transcript", "transcript.jsonl"))
}

// NewFileStoreAt creates a store backed by an explicit file path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Save implements ports.TranscriptRepository.
func (f *FileStore) Save(record domain.TranscriptRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Records loads entries newest-first, filtered and limited like the sqlite
// store.
func (f *FileStore) Records(limit int, search string) ([]domain.TranscriptRecord, error) {
	all, err := f.load()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	var records []domain.TranscriptRecord
	for i := len(all) - 1; i >= 0; i-- {
		rec := all[i]
		if needle != "" &&
			!strings.Contains(strings.ToLower(rec.Raw), needle) &&
			!strings.Contains(strings.ToLower(rec.Command), needle) {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records, nil
}

// Clear removes the transcript file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ExportJSON writes every record to a jsonl file at dest.
func (f *FileStore) ExportJSON(dest string) error {
	records, err := f.load()
	if err != nil {
		return err
	}
	return writeJSONL(dest, records)
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() ([]domain.TranscriptRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.TranscriptRecord
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rec domain.TranscriptRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

func writeJSONL(dest string, records []domain.TranscriptRecord) error {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

