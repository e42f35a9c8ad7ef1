package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/cube"
)

// TurnRecord is one applied turn in a session.
type TurnRecord struct {
	TurnID    int64
	SessionID string
	TurnIndex int
	TsMs      int64
	Notation  string
}

// TurnRepository provides CRUD operations for turns.
type TurnRepository struct {
	db *DB
}

// NewTurnRepository creates a new turn repository.
func NewTurnRepository(db *DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// CreateBatch stores history entries in a single transaction, numbering
// them from startIndex.
func (r *TurnRepository) CreateBatch(sessionID string, entries []cube.HistoryEntry, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO turns (session_id, turn_index, ts_ms, notation)
				VALUES (?, ?, ?, ?)
			`, sessionID, startIndex+i, e.Time.UnixMilli(), e.Turn.Notation())
			if err != nil {
				return fmt.Errorf("failed to create turn %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all turns for a session in order.
func (r *TurnRepository) GetBySession(sessionID string) ([]TurnRecord, error) {
	rows, err := r.db.Query(`
		SELECT turn_id, session_id, turn_index, ts_ms, notation
		FROM turns
		WHERE session_id = ?
		ORDER BY turn_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get turns: %w", err)
	}
	defer rows.Close()

	var turns []TurnRecord
	for rows.Next() {
		var t TurnRecord
		if err := rows.Scan(&t.TurnID, &t.SessionID, &t.TurnIndex, &t.TsMs, &t.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}

	return turns, rows.Err()
}

// GetNextIndex returns the next turn index for a session.
func (r *TurnRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(turn_index), -1) FROM turns WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max turn index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of turns for a session.
func (r *TurnRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM turns WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count turns: %w", err)
	}
	return count, nil
}

// ToHistory converts stored turns back into history entries.
func ToHistory(records []TurnRecord) ([]cube.HistoryEntry, error) {
	entries := make([]cube.HistoryEntry, len(records))
	for i, r := range records {
		t, err := cube.ParseTurn(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("turn %d of session %s: %w", r.TurnIndex, r.SessionID, err)
		}
		entries[i] = cube.HistoryEntry{Turn: t, Time: time.UnixMilli(r.TsMs)}
	}
	return entries, nil
}
