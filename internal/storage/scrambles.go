package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScrambleRecord is a saved scramble.
type ScrambleRecord struct {
	ScrambleID string
	CreatedAt  time.Time
	Size       int
	Length     int
	Notation   string
	Seed       *int64
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create stores a scramble and returns its ID. seed may be nil when the
// scramble came from an unseeded source.
func (r *ScrambleRepository) Create(size, length int, notation string, seed *int64) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, size, length, notation, seed)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, formatTime(time.Now()), size, length, notation, seed)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	r.db.logger.Debug("saved scramble", "id", id, "size", size, "length", length)
	return id, nil
}

const scrambleColumns = `scramble_id, created_at, size, length, notation, seed`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (ScrambleRecord, error) {
	var s ScrambleRecord
	var createdAt string
	var seed sql.NullInt64
	if err := row.Scan(&s.ScrambleID, &createdAt, &s.Size, &s.Length, &s.Notation, &seed); err != nil {
		return ScrambleRecord{}, err
	}
	s.CreatedAt = parseTime(createdAt)
	if seed.Valid {
		v := seed.Int64
		s.Seed = &v
	}
	return s, nil
}

// Get retrieves a scramble by ID. It returns nil when no scramble matches.
func (r *ScrambleRepository) Get(scrambleID string) (*ScrambleRecord, error) {
	s, err := scanScramble(r.db.QueryRow(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}
	return &s, nil
}

// GetLast retrieves the most recent scramble.
func (r *ScrambleRepository) GetLast() (*ScrambleRecord, error) {
	s, err := scanScramble(r.db.QueryRow(`
		SELECT ` + scrambleColumns + `
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}
	return &s, nil
}

// List retrieves recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]ScrambleRecord, error) {
	rows, err := r.db.Query(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []ScrambleRecord
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, s)
	}

	return scrambles, rows.Err()
}

// Delete deletes a scramble. Sessions that used it keep their turns.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}

// Count returns the number of saved scrambles.
func (r *ScrambleRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM scrambles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return count, nil
}
