package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one interactive play session.
type Session struct {
	SessionID  string
	ScrambleID *string
	Size       int
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
	Solved     bool
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a session and returns its ID. scrambleID may be empty.
func (r *SessionRepository) Create(size int, scrambleID string) (string, error) {
	id := uuid.New().String()

	var scramblePtr *string
	if scrambleID != "" {
		scramblePtr = &scrambleID
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, scramble_id, size, started_at)
		VALUES (?, ?, ?, ?)
	`, id, scramblePtr, size, formatTime(time.Now()))

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	r.db.logger.Debug("started session", "id", id, "size", size)
	return id, nil
}

// End marks a session as complete.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	endedAt := time.Now()

	// Get start time to calculate duration
	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	durationMs := endedAt.Sub(parseTime(startedAtStr)).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, solved = ?
		WHERE session_id = ?
	`, formatTime(endedAt), durationMs, solved, sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	r.db.logger.Debug("ended session", "id", sessionID, "solved", solved, "duration_ms", durationMs)
	return nil
}

const sessionColumns = `session_id, scramble_id, size, started_at, ended_at, duration_ms, solved`

func scanSession(row rowScanner) (Session, error) {
	var s Session
	var scrambleID, endedAt sql.NullString
	var duration sql.NullInt64
	var startedAt string

	if err := row.Scan(&s.SessionID, &scrambleID, &s.Size, &startedAt, &endedAt, &duration, &s.Solved); err != nil {
		return Session{}, err
	}

	s.StartedAt = parseTime(startedAt)
	if scrambleID.Valid {
		v := scrambleID.String
		s.ScrambleID = &v
	}
	if endedAt.Valid {
		t := parseTime(endedAt.String)
		s.EndedAt = &t
	}
	if duration.Valid {
		v := duration.Int64
		s.DurationMs = &v
	}
	return s, nil
}

// Get retrieves a session by ID. It returns nil when no session matches.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE session_id = ?
	`, sessionID))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its turns and orientations (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Count returns the number of sessions and how many of them were solved.
func (r *SessionRepository) Count() (total, solved int, err error) {
	err = r.db.QueryRow("SELECT COUNT(*), COALESCE(SUM(solved), 0) FROM sessions").Scan(&total, &solved)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return total, solved, nil
}
