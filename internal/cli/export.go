package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube"
	"github.com/SeamusWaldron/cube/internal/analysis"
	"github.com/SeamusWaldron/cube/internal/storage"
)

// sessionExport is the JSON form of an exported session.
type sessionExport struct {
	SessionID    string              `json:"session_id"`
	Size         int                 `json:"size"`
	StartedAt    time.Time           `json:"started_at"`
	EndedAt      *time.Time          `json:"ended_at,omitempty"`
	Solved       bool                `json:"solved"`
	Scramble     string              `json:"scramble,omitempty"`
	Summary      analysis.Summary    `json:"summary"`
	Turns        []turnExport        `json:"turns"`
	Orientations []orientationExport `json:"orientations"`
}

type turnExport struct {
	TurnIndex int    `json:"turn_index"`
	TsMs      int64  `json:"ts_ms"`
	Notation  string `json:"notation"`
}

type orientationExport struct {
	TsMs  int64  `json:"ts_ms"`
	Up    string `json:"up"`
	Front string `json:"front"`
}

func newSessionsExportCmd(a *app) *cobra.Command {
	var (
		last   bool
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Export a session's turns",
		Long: `Export the turn sequence of a session as text or JSON.

The text format is the turn sequence in notation, ready for 'cube turn'.
The JSON format adds timestamps, orientation changes and statistics.`,
		Example: `  cube sessions export --last
  cube sessions export <session_id> --format json
  cube sessions export <session_id> -o turns.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			session, err := findSession(db, args, last)
			if err != nil {
				return err
			}

			records, err := storage.NewTurnRepository(db).GetBySession(session.SessionID)
			if err != nil {
				return err
			}

			var data string
			switch strings.ToLower(format) {
			case "txt":
				notations := make([]string, len(records))
				for i, r := range records {
					notations[i] = r.Notation
				}
				data = strings.Join(notations, " ")

			case "json":
				export, err := buildSessionExport(db, session, records)
				if err != nil {
					return err
				}
				encoded, err := json.MarshalIndent(export, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				data = string(encoded)

			default:
				return fmt.Errorf("unknown format: %s (use txt or json)", format)
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), data)
				return nil
			}

			if dir := filepath.Dir(output); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if err := os.WriteFile(output, []byte(data+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			a.logger.Info("exported session", "turns", len(records), "path", output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "Export the most recent session")
	cmd.Flags().StringVar(&format, "format", "txt", "Export format (txt, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func buildSessionExport(db *storage.DB, s *storage.Session, records []storage.TurnRecord) (*sessionExport, error) {
	history, err := storage.ToHistory(records)
	if err != nil {
		return nil, err
	}
	orientations, err := storage.NewOrientationRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return nil, err
	}

	var duration int64
	if s.DurationMs != nil {
		duration = *s.DurationMs
	}

	export := &sessionExport{
		SessionID:    s.SessionID,
		Size:         s.Size,
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
		Solved:       s.Solved,
		Summary:      analysis.Summarize(history, duration),
		Turns:        make([]turnExport, len(records)),
		Orientations: make([]orientationExport, len(orientations)),
	}

	if s.ScrambleID != nil {
		scramble, err := storage.NewScrambleRepository(db).Get(*s.ScrambleID)
		if err != nil {
			return nil, err
		}
		if scramble != nil {
			export.Scramble = scramble.Notation
		}
	}

	start := s.StartedAt.UnixMilli()
	for i, r := range records {
		export.Turns[i] = turnExport{TurnIndex: r.TurnIndex, TsMs: r.TsMs - start, Notation: r.Notation}
	}
	for i, o := range orientations {
		export.Orientations[i] = orientationExport{TsMs: o.TsMs, Up: o.UpFace, Front: o.FrontFace}
	}

	return export, nil
}

// findSession resolves a session from an ID argument or --last.
func findSession(db *storage.DB, args []string, last bool) (*storage.Session, error) {
	if last == (len(args) == 1) {
		return nil, fmt.Errorf("give either a session ID or --last")
	}

	repo := storage.NewSessionRepository(db)
	if last {
		recent, err := repo.List(1)
		if err != nil {
			return nil, err
		}
		if len(recent) == 0 {
			return nil, fmt.Errorf("no sessions recorded")
		}
		return &recent[0], nil
	}

	session, err := repo.Get(args[0])
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session not found: %s", args[0])
	}
	return session, nil
}

// replaySession rebuilds the cube a session ended with.
func replaySession(a *app, db *storage.DB, s *storage.Session, records []storage.TurnRecord) (*cube.Cube, error) {
	c, err := a.newCube(s.Size, cube.WithHistory(false))
	if err != nil {
		return nil, err
	}
	if s.ScrambleID != nil {
		scramble, err := storage.NewScrambleRepository(db).Get(*s.ScrambleID)
		if err != nil {
			return nil, err
		}
		if scramble != nil {
			if err := c.Turn(scramble.Notation); err != nil {
				return nil, fmt.Errorf("stored scramble %s is invalid: %w", scramble.ScrambleID, err)
			}
		}
	}
	for _, r := range records {
		if err := c.Turn(r.Notation); err != nil {
			return nil, fmt.Errorf("stored turn %d is invalid: %w", r.TurnIndex, err)
		}
	}
	return c, nil
}
