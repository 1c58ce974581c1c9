package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zurustar/sorbitol/internal/parser"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT    NOT NULL,
	received_at TEXT    NOT NULL,
	raw         TEXT    NOT NULL,
	command     TEXT    NOT NULL,
	source      TEXT    NOT NULL,
	tag_count   INTEGER NOT NULL,
	param_count INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_command ON messages(command);
CREATE INDEX IF NOT EXISTS idx_messages_run_id ON messages(run_id);
`

// Store implements the MessageRecorder interface on a SQLite database
type Store struct {
	db *sql.DB
}

// Open creates or opens the archive database at the given path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize archive schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save records one parsed message together with its raw wire line
func (s *Store) Save(runID, raw string, msg *parser.Message) error {
	_, err := s.db.Exec(
		`INSERT INTO messages (run_id, received_at, raw, command, source, tag_count, param_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID,
		time.Now().UTC().Format(time.RFC3339),
		raw,
		msg.Command,
		msg.Source,
		len(msg.Tags),
		len(msg.Params),
	)
	if err != nil {
		return fmt.Errorf("failed to archive message: %w", err)
	}
	return nil
}

// Count returns the number of archived messages
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count archived messages: %w", err)
	}
	return count, nil
}

// CountByCommand returns the number of archived messages per command
func (s *Store) CountByCommand() (map[string]int, error) {
	rows, err := s.db.Query("SELECT command, COUNT(*) FROM messages GROUP BY command")
	if err != nil {
		return nil, fmt.Errorf("failed to count messages by command: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var command string
		var count int
		if err := rows.Scan(&command, &count); err != nil {
			return nil, fmt.Errorf("failed to scan command count: %w", err)
		}
		counts[command] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read command counts: %w", err)
	}

	return counts, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
