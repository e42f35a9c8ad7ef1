package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/cube"
	"github.com/SeamusWaldron/cube/internal/storage"
)

// sessionRecorder persists a play session: its scramble, every turn and
// every change of orientation.
type sessionRecorder struct {
	db           *storage.DB
	scrambles    *storage.ScrambleRepository
	sessions     *storage.SessionRepository
	turns        *storage.TurnRepository
	orientations *storage.OrientationRepository
	logger       *log.Logger

	size        int
	sessionID   string
	startedAt   time.Time
	nextIndex   int
	orientation cube.Orientation
}

func newSessionRecorder(db *storage.DB, size int, logger *log.Logger) *sessionRecorder {
	return &sessionRecorder{
		db:           db,
		scrambles:    storage.NewScrambleRepository(db),
		sessions:     storage.NewSessionRepository(db),
		turns:        storage.NewTurnRepository(db),
		orientations: storage.NewOrientationRepository(db),
		logger:       logger,
		size:         size,
	}
}

// start opens a new session, ending any previous one unsolved. A non-empty
// scramble is saved and linked to the session.
func (r *sessionRecorder) start(scramble []cube.Turn, seed *int64, o cube.Orientation) error {
	if err := r.end(false); err != nil {
		return err
	}

	var scrambleID string
	if len(scramble) > 0 {
		id, err := r.scrambles.Create(r.size, len(scramble), cube.FormatTurns(scramble), seed)
		if err != nil {
			return err
		}
		scrambleID = id
	}

	id, err := r.sessions.Create(r.size, scrambleID)
	if err != nil {
		return err
	}

	r.sessionID = id
	r.startedAt = time.Now()
	r.nextIndex = 0
	r.orientation = o

	if _, err := r.orientations.Create(id, 0, o); err != nil {
		return err
	}

	r.logger.Debug("session started", "id", id, "scramble", scrambleID)
	return nil
}

// record stores one turn, and the new orientation if the turn changed it.
// Turning after a solve opens a fresh session.
func (r *sessionRecorder) record(t cube.Turn, o cube.Orientation) error {
	if r.sessionID == "" {
		if err := r.start(nil, nil, r.orientation); err != nil {
			return err
		}
	}

	now := time.Now()
	entry := cube.HistoryEntry{Turn: t, Time: now}
	if err := r.turns.CreateBatch(r.sessionID, []cube.HistoryEntry{entry}, r.nextIndex); err != nil {
		return err
	}
	r.nextIndex++

	if o != r.orientation {
		if _, err := r.orientations.Create(r.sessionID, now.Sub(r.startedAt).Milliseconds(), o); err != nil {
			return err
		}
		r.orientation = o
	}
	return nil
}

// end closes the active session, if there is one.
func (r *sessionRecorder) end(solved bool) error {
	if r.sessionID == "" {
		return nil
	}
	id := r.sessionID
	r.sessionID = ""

	if err := r.sessions.End(id, solved); err != nil {
		return err
	}
	r.logger.Debug("session ended", "id", id, "solved", solved, "turns", r.nextIndex)
	return nil
}

// Close ends the active session and closes the database.
func (r *sessionRecorder) Close(solved bool) error {
	endErr := r.end(solved)
	closeErr := r.db.Close()
	if endErr != nil {
		return endErr
	}
	return closeErr
}
