package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/cube"
)

// OrientationRecord represents an orientation state in the database.
type OrientationRecord struct {
	OrientationID int64
	SessionID     string
	TsMs          int64
	UpFace        string
	FrontFace     string
}

// OrientationRepository provides CRUD operations for orientations.
type OrientationRepository struct {
	db *DB
}

// NewOrientationRepository creates a new orientation repository.
func NewOrientationRepository(db *DB) *OrientationRepository {
	return &OrientationRepository{db: db}
}

// Create records an orientation change and returns its ID.
func (r *OrientationRepository) Create(sessionID string, tsMs int64, o cube.Orientation) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO orientations (session_id, ts_ms, up_face, front_face)
		VALUES (?, ?, ?, ?)
	`, sessionID, tsMs, o.Up.String(), o.Front.String())

	if err != nil {
		return 0, fmt.Errorf("failed to create orientation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get orientation ID: %w", err)
	}

	return id, nil
}

// GetBySession retrieves all orientation records for a session.
func (r *OrientationRepository) GetBySession(sessionID string) ([]OrientationRecord, error) {
	rows, err := r.db.Query(`
		SELECT orientation_id, session_id, ts_ms, up_face, front_face
		FROM orientations
		WHERE session_id = ?
		ORDER BY ts_ms, orientation_id
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get orientations: %w", err)
	}
	defer rows.Close()

	var orientations []OrientationRecord
	for rows.Next() {
		var o OrientationRecord
		if err := rows.Scan(&o.OrientationID, &o.SessionID, &o.TsMs, &o.UpFace, &o.FrontFace); err != nil {
			return nil, fmt.Errorf("failed to scan orientation: %w", err)
		}
		orientations = append(orientations, o)
	}

	return orientations, rows.Err()
}

// GetLast returns the most recent orientation for a session, or nil.
func (r *OrientationRepository) GetLast(sessionID string) (*OrientationRecord, error) {
	row := r.db.QueryRow(`
		SELECT orientation_id, session_id, ts_ms, up_face, front_face
		FROM orientations
		WHERE session_id = ?
		ORDER BY ts_ms DESC, orientation_id DESC
		LIMIT 1
	`, sessionID)

	var o OrientationRecord
	err := row.Scan(&o.OrientationID, &o.SessionID, &o.TsMs, &o.UpFace, &o.FrontFace)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last orientation: %w", err)
	}

	return &o, nil
}
