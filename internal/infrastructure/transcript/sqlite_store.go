package transcript

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/pkg/filesystem"
	"github.com/doeshing/uniterm/internal/ports"
)

// SQLiteStore persists transcript records in a local sqlite database. When the
// database cannot be opened it degrades to the jsonl file store next to it so
// the terminal keeps working without persistence-related failures.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

var _ ports.TranscriptRepository = (*SQLiteStore)(nil)

// NewSQLiteStore opens ~/.uniterm/transcript/transcript.db, creating the
// schema on first use.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(filepath.Join(filesystem.UserHomeDir(), ".uniterm", "transcript", "transcript.db"))
}

// NewSQLiteStoreAt opens a database at an explicit path.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	fallback := NewFileStoreAt(jsonlSibling(path))

	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return &SQLiteStore{path: path, fallback: fallback}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, fallback: fallback}
	}
	store := &SQLiteStore{db: db, path: path, fallback: fallback}
	if err := store.init(); err != nil {
		db.Close()
		return &SQLiteStore{path: path, fallback: fallback}
	}
	return store
}

func jsonlSibling(dbPath string) string {
	base := strings.TrimSuffix(filepath.Base(dbPath), filepath.Ext(dbPath))
	return filepath.Join(filepath.Dir(dbPath), base+".jsonl")
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS transcript (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		session_id TEXT NOT NULL,
		source_dialect TEXT NOT NULL,
		host_dialect TEXT NOT NULL,
		raw TEXT NOT NULL,
		command TEXT NOT NULL,
		executed INTEGER NOT NULL,
		success INTEGER NOT NULL,
		exit_code INTEGER NOT NULL,
		risk_level TEXT NOT NULL,
		execution_time_ms INTEGER NOT NULL
	)`)
	return err
}

// Save implements ports.TranscriptRepository.
func (s *SQLiteStore) Save(record domain.TranscriptRecord) error {
	if s.db == nil {
		return s.fallback.Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO transcript (timestamp, session_id, source_dialect, host_dialect,
			raw, command, executed, success, exit_code, risk_level, execution_time_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(domain.TimestampFormat),
		record.SessionID,
		string(record.SourceDialect),
		string(record.HostDialect),
		record.Raw,
		record.Command,
		boolToInt(record.Executed),
		boolToInt(record.Success),
		record.ExitCode,
		string(record.RiskLevel),
		record.ExecutionTimeMS,
	)
	return err
}

// Records returns up to limit entries newest-first. A non-empty search matches
// against the raw line and the translated command.
func (s *SQLiteStore) Records(limit int, search string) ([]domain.TranscriptRecord, error) {
	if s.db == nil {
		return s.fallback.Records(limit, search)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT timestamp, session_id, source_dialect, host_dialect,
		raw, command, executed, success, exit_code, risk_level, execution_time_ms
	FROM transcript`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE raw LIKE ? OR command LIKE ?`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.TranscriptRecord
	for rows.Next() {
		var rec domain.TranscriptRecord
		var stamp, source, host, risk string
		var executed, success int
		if err := rows.Scan(&stamp, &rec.SessionID, &source, &host,
			&rec.Raw, &rec.Command, &executed, &success,
			&rec.ExitCode, &risk, &rec.ExecutionTimeMS); err != nil {
			return nil, err
		}
		rec.Timestamp, _ = time.Parse(domain.TimestampFormat, stamp)
		rec.SourceDialect = domain.Dialect(source)
		rec.HostDialect = domain.Dialect(host)
		rec.Executed = executed != 0
		rec.Success = success != 0
		rec.RiskLevel = domain.RiskLevel(risk)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear removes every stored record.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM transcript`)
	return err
}

// ExportJSON writes every record to a jsonl file at dest.
func (s *SQLiteStore) ExportJSON(dest string) error {
	if s.db == nil {
		return s.fallback.ExportJSON(dest)
	}
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	return writeJSONL(dest, records)
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
