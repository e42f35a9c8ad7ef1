package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube/internal/analysis"
	"github.com/SeamusWaldron/cube/internal/render"
	"github.com/SeamusWaldron/cube/internal/storage"
)

func newSessionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Browse recorded play sessions",
		Long:  `Browse sessions recorded by 'cube play'.`,
	}

	cmd.AddCommand(newSessionsListCmd(a), newSessionsShowCmd(a), newSessionsExportCmd(a))
	return cmd
}

func newSessionsListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List play sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			sessions, err := storage.NewSessionRepository(db).List(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions recorded. Start one with: cube play")
				return nil
			}

			turns := storage.NewTurnRepository(db)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTARTED\tSIZE\tTURNS\tDURATION\tSOLVED")
			for _, s := range sessions {
				count, err := turns.Count(s.SessionID)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n",
					s.SessionID, s.StartedAt.Local().Format(time.DateTime), s.Size, count,
					durationLabel(s.DurationMs), solvedLabel(s))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of sessions to list")
	return cmd
}

func newSessionsShowCmd(a *app) *cobra.Command {
	var (
		last bool
		topK int
	)

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a session's turns and statistics",
		Args:  cobra.MaximumNArgs(1),
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

			return a.showSession(cmd.OutOrStdout(), db, session, topK)
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "Show the most recent session")
	cmd.Flags().IntVar(&topK, "patterns", 3, "Repeated sequences to list per length")
	return cmd
}

func (a *app) showSession(out io.Writer, db *storage.DB, s *storage.Session, topK int) error {
	records, err := storage.NewTurnRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}
	history, err := storage.ToHistory(records)
	if err != nil {
		return err
	}
	orientations, err := storage.NewOrientationRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Session: %s\n", s.SessionID)
	fmt.Fprintf(out, "Started: %s\n", s.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Size:    %d\n", s.Size)
	fmt.Fprintf(out, "Solved:  %s\n", solvedLabel(*s))

	if s.ScrambleID != nil {
		scramble, err := storage.NewScrambleRepository(db).Get(*s.ScrambleID)
		if err != nil {
			return err
		}
		if scramble != nil {
			fmt.Fprintf(out, "Scramble: %s\n", scramble.Notation)
		}
	}
	fmt.Fprintln(out)

	var duration int64
	if s.DurationMs != nil {
		duration = *s.DurationMs
	}
	sum := analysis.Summarize(history, duration)

	fmt.Fprintf(out, "Turns:         %d (%d face, %d slice, %d wide, %d rotations)\n",
		sum.TotalTurns, sum.FaceTurns, sum.SliceTurns, sum.WideTurns, sum.Rotations)
	fmt.Fprintf(out, "Quarter turns: %d\n", sum.QuarterTurns)
	fmt.Fprintf(out, "Duration:      %s\n", formatElapsed(time.Duration(sum.DurationMs)*time.Millisecond))
	fmt.Fprintf(out, "TPS:           %.2f\n", sum.TPSOverall)
	fmt.Fprintf(out, "Longest pause: %s (%d over %.1fs)\n",
		formatElapsed(time.Duration(sum.LongestPauseMs)*time.Millisecond),
		sum.PauseCountOver1500, float64(analysis.PauseThresholdMs)/1000)

	if len(history) > 0 {
		profile := analysis.AnalyzeTargets(history)
		fmt.Fprintf(out, "Most turned:   %s (%d)\n", profile.MostUsed, profile.Counts[profile.MostUsed])
	}

	if len(orientations) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Orientation changes:")
		for _, o := range orientations[1:] {
			fmt.Fprintf(out, "  %6.1fs  up=%s front=%s\n", float64(o.TsMs)/1000, o.UpFace, o.FrontFace)
		}
	}

	report := analysis.MineNGrams(history, 2, 6, topK)
	if len(report.TopNGrams) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Repeated sequences:")
		for n := 6; n >= 2; n-- {
			for _, g := range report.TopNGrams[n] {
				fmt.Fprintf(out, "  %dx  %s\n", g.Count, g)
			}
		}
	}

	if len(history) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Turns:")
		turns := make([]string, len(history))
		for i, e := range history {
			turns[i] = e.Turn.String()
		}
		fmt.Fprintf(out, "  %s\n", joinWrapped(turns, 20))
	}

	c, err := replaySession(a, db, s, records)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.New(a.cfg.Colors).Cube(c))
	return nil
}

func durationLabel(ms *int64) string {
	if ms == nil {
		return "-"
	}
	return formatElapsed(time.Duration(*ms) * time.Millisecond)
}

func solvedLabel(s storage.Session) string {
	switch {
	case s.EndedAt == nil:
		return "in progress"
	case s.Solved:
		return "yes"
	default:
		return "no"
	}
}

// joinWrapped joins tokens with spaces, breaking the line every perLine tokens.
func joinWrapped(tokens []string, perLine int) string {
	var out string
	for i, t := range tokens {
		switch {
		case i == 0:
		case i%perLine == 0:
			out += "\n  "
		default:
			out += " "
		}
		out += t
	}
	return out
}
