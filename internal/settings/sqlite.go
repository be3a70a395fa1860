package settings

import (
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SecureTable is the table holding secure settings, one row per (user, name).
const SecureTable = "secure"

// SQLite is a Source backed by a settings database opened read-only. Rows are loaded into memory
// by OpenSQLite and Reload, so Float never touches the database.
type SQLite struct {
	db     *sql.DB
	mu     sync.RWMutex
	values map[int]map[string]string
}

// OpenSQLite opens the settings database at path in read-only mode and loads its rows.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open settings database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open settings database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.Reload(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection. Loaded values stay readable.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Reload re-reads every row of the secure table. On failure the previously loaded values are kept.
func (s *SQLite) Reload() error {
	rows, err := s.db.Query(`SELECT user, name, value FROM ` + SecureTable)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()

	values := make(map[int]map[string]string)
	for rows.Next() {
		var (
			user int
			name string
			raw  sql.NullString
		)
		if err := rows.Scan(&user, &name, &raw); err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		if !raw.Valid {
			continue
		}
		if values[user] == nil {
			values[user] = make(map[string]string)
		}
		values[user][name] = raw.String
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()

	return nil
}

// Float implements Source. Values are stored as text, the way the settings provider writes them.
func (s *SQLite) Float(key string, user int) (float64, error) {
	s.mu.RLock()
	raw, ok := s.values[user][key]
	s.mu.RUnlock()

	if !ok {
		return 0, fmt.Errorf("%w: %s for user %d", ErrSettingNotFound, key, user)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, key, raw)
	}
	return value, nil
}
