package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube/internal/render"
	"github.com/SeamusWaldron/cube/internal/storage"
)

func newScramblesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrambles",
		Short: "Browse saved scrambles",
		Long:  `Browse scrambles stored with 'cube scramble --save'.`,
	}

	cmd.AddCommand(newScramblesListCmd(a), newScramblesShowCmd(a))
	return cmd
}

func newScramblesListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved scrambles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := storage.NewScrambleRepository(db).List(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No saved scrambles. Save one with: cube scramble --save")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tSIZE\tLENGTH\tNOTATION")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
					r.ScrambleID, r.CreatedAt.Local().Format(time.DateTime), r.Size, r.Length, abbreviate(r.Notation, 40))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of scrambles to list")
	return cmd
}

func newScramblesShowCmd(a *app) *cobra.Command {
	var last bool

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a saved scramble and the cube it produces",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if last == (len(args) == 1) {
				return fmt.Errorf("give either a scramble ID or --last")
			}

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			repo := storage.NewScrambleRepository(db)
			var record *storage.ScrambleRecord
			if last {
				record, err = repo.GetLast()
			} else {
				record, err = repo.Get(args[0])
			}
			if err != nil {
				return err
			}
			if record == nil {
				if last {
					return fmt.Errorf("no saved scrambles")
				}
				return fmt.Errorf("scramble not found: %s", args[0])
			}

			c, err := a.newCube(record.Size)
			if err != nil {
				return err
			}
			if err := c.Turn(record.Notation); err != nil {
				return fmt.Errorf("stored scramble %s is invalid: %w", record.ScrambleID, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scramble: %s\n", record.ScrambleID)
			fmt.Fprintf(out, "Created:  %s\n", record.CreatedAt.Local().Format(time.RFC3339))
			fmt.Fprintf(out, "Size:     %d\n", record.Size)
			if record.Seed != nil {
				fmt.Fprintf(out, "Seed:     %d\n", *record.Seed)
			}
			fmt.Fprintf(out, "Turns:    %s\n\n", record.Notation)
			fmt.Fprintln(out, render.New(a.cfg.Colors).Cube(c))
			return nil
		},
	}

	cmd.Flags().BoolVar(&last, "last", false, "Show the most recently saved scramble")
	return cmd
}

// abbreviate shortens s to at most n runes, marking the cut with "...".
func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
