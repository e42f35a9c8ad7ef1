package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SeamusWaldron/cube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenCreatesFileAndMigrates(t *testing.T) {
	db := openTestDB(t)

	if _, err := os.Stat(db.Path()); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() failed: %v", err)
	}
	if version != LatestVersion() {
		t.Errorf("CurrentVersion() = %d, want %d", version, LatestVersion())
	}

	// Running migrations again is a no-op.
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp() failed: %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	db, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := NewScrambleRepository(db).Create(3, 2, "R U", nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	db.Close()

	db, err = Open(dbPath, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	got, err := NewScrambleRepository(db).Get(id)
	if err != nil || got == nil {
		t.Fatalf("Get() after reopen = %v, %v", got, err)
	}
}

func TestScrambleRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	seed := int64(42)
	firstID, err := repo.Create(3, 4, "R U R- U-", &seed)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	secondID, err := repo.Create(4, 2, "Rw 2U", nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	got, err := repo.Get(firstID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil")
	}
	if got.Size != 3 || got.Length != 4 || got.Notation != "R U R- U-" {
		t.Errorf("Get() = %+v", got)
	}
	if got.Seed == nil || *got.Seed != 42 {
		t.Errorf("Seed = %v, want 42", got.Seed)
	}
	if time.Since(got.CreatedAt) > time.Minute {
		t.Errorf("CreatedAt = %v, want recent", got.CreatedAt)
	}

	last, err := repo.GetLast()
	if err != nil {
		t.Fatalf("GetLast() failed: %v", err)
	}
	if last == nil || last.ScrambleID != secondID || last.Seed != nil {
		t.Errorf("GetLast() = %+v, want %s without seed", last, secondID)
	}

	list, err := repo.List(10)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(list) != 2 || list[0].ScrambleID != secondID || list[1].ScrambleID != firstID {
		t.Errorf("List() order wrong: %+v", list)
	}

	limited, err := repo.List(1)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("List(1) returned %d records", len(limited))
	}

	if err := repo.Delete(firstID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}

	missing, err := repo.Get(firstID)
	if err != nil || missing != nil {
		t.Errorf("Get() of deleted scramble = %v, %v; want nil, nil", missing, err)
	}
}

func TestScrambleRepositoryEmpty(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	last, err := repo.GetLast()
	if err != nil || last != nil {
		t.Errorf("GetLast() on empty db = %v, %v; want nil, nil", last, err)
	}
	list, err := repo.List(5)
	if err != nil || len(list) != 0 {
		t.Errorf("List() on empty db = %v, %v", list, err)
	}
}

func TestSessionTurnsAndOrientations(t *testing.T) {
	db := openTestDB(t)

	scrambleID, err := NewScrambleRepository(db).Create(3, 1, "R", nil)
	if err != nil {
		t.Fatalf("Create scramble failed: %v", err)
	}

	sessions := NewSessionRepository(db)
	sessionID, err := sessions.Create(3, scrambleID)
	if err != nil {
		t.Fatalf("Create session failed: %v", err)
	}

	c, _ := cube.New(3)
	if err := c.Turn("R- X 3Uw2"); err != nil {
		t.Fatalf("Turn: %v", err)
	}

	turns := NewTurnRepository(db)
	if err := turns.CreateBatch(sessionID, c.History(), 0); err != nil {
		t.Fatalf("CreateBatch() failed: %v", err)
	}
	next, err := turns.GetNextIndex(sessionID)
	if err != nil || next != 3 {
		t.Errorf("GetNextIndex() = %d, %v; want 3", next, err)
	}

	records, err := turns.GetBySession(sessionID)
	if err != nil {
		t.Fatalf("GetBySession() failed: %v", err)
	}
	history, err := ToHistory(records)
	if err != nil {
		t.Fatalf("ToHistory() failed: %v", err)
	}
	if len(history) != 3 || history[2].Turn.String() != "3Uw2" {
		t.Errorf("ToHistory() = %+v", history)
	}

	orientations := NewOrientationRepository(db)
	if _, err := orientations.Create(sessionID, 10, c.Orientation()); err != nil {
		t.Fatalf("Create orientation failed: %v", err)
	}
	lastOrientation, err := orientations.GetLast(sessionID)
	if err != nil || lastOrientation == nil {
		t.Fatalf("GetLast() = %v, %v", lastOrientation, err)
	}
	if lastOrientation.UpFace != "F" || lastOrientation.FrontFace != "D" {
		t.Errorf("orientation = %s/%s, want F/D", lastOrientation.UpFace, lastOrientation.FrontFace)
	}

	if err := sessions.End(sessionID, true); err != nil {
		t.Fatalf("End() failed: %v", err)
	}
	s, err := sessions.Get(sessionID)
	if err != nil || s == nil {
		t.Fatalf("Get() = %v, %v", s, err)
	}
	if !s.Solved || s.EndedAt == nil || s.DurationMs == nil {
		t.Errorf("ended session = %+v", s)
	}
	if total, solved, err := sessions.Count(); err != nil || total != 1 || solved != 1 {
		t.Errorf("Count() = %d, %d, %v; want 1, 1", total, solved, err)
	}
	if s.ScrambleID == nil || *s.ScrambleID != scrambleID {
		t.Errorf("ScrambleID = %v, want %s", s.ScrambleID, scrambleID)
	}

	list, err := sessions.List(5)
	if err != nil || len(list) != 1 {
		t.Errorf("List() = %v, %v", list, err)
	}

	// Deleting the session removes its turns and orientations.
	if err := sessions.Delete(sessionID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	count, err := turns.Count(sessionID)
	if err != nil || count != 0 {
		t.Errorf("Count() after delete = %d, %v; want 0", count, err)
	}
	remaining, err := orientations.GetBySession(sessionID)
	if err != nil || len(remaining) != 0 {
		t.Errorf("GetBySession() after delete = %v, %v", remaining, err)
	}
}

func TestSessionWithoutScramble(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create(2, "")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	s, err := sessions.Get(id)
	if err != nil || s == nil {
		t.Fatalf("Get() = %v, %v", s, err)
	}
	if s.ScrambleID != nil || s.Solved || s.EndedAt != nil {
		t.Errorf("new session = %+v", s)
	}

	if err := sessions.End("no-such-session", false); err == nil {
		t.Error("End() of an unknown session should fail")
	}
}

func TestTurnBatchRollsBack(t *testing.T) {
	db := openTestDB(t)
	turns := NewTurnRepository(db)

	// No such session: the foreign key rejects the first insert.
	entries := []cube.HistoryEntry{{Turn: cube.R, Time: time.Now()}}
	if err := turns.CreateBatch("missing", entries, 0); err == nil {
		t.Fatal("CreateBatch() should fail without a session")
	}
	count, err := turns.Count("missing")
	if err != nil || count != 0 {
		t.Errorf("Count() = %d, %v; want 0", count, err)
	}
}
