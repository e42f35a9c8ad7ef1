package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube/internal/storage"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and saved data",
		Long:  `Display the configuration in effect and a summary of the scramble database.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Cube Status")
			fmt.Fprintln(out, "===========")
			fmt.Fprintln(out)

			fmt.Fprintf(out, "Default size:    %d\n", a.cfg.DefaultSize)
			fmt.Fprintf(out, "Scramble length: %s\n", scrambleLengthLabel(a.cfg.Scramble.Length))
			fmt.Fprintf(out, "Labeled output:  %t\n", a.cfg.Labeled)
			if seed := a.seedValue(); seed != nil {
				fmt.Fprintf(out, "Seed:            %d\n", *seed)
			}
			fmt.Fprintln(out)

			dbPath, err := a.resolveDBPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Database: %s\n", dbPath)

			db, err := storage.Open(dbPath, a.logger)
			if err != nil {
				fmt.Fprintf(out, "  unavailable: %v\n", err)
				return nil
			}
			defer db.Close()

			version, err := db.CurrentVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Schema version: %d\n", version)

			scrambles := storage.NewScrambleRepository(db)
			count, err := scrambles.Count()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved scrambles: %d\n", count)

			last, err := scrambles.GetLast()
			if err != nil {
				return err
			}
			if last != nil {
				fmt.Fprintf(out, "Last scramble: %s (%s)\n", last.ScrambleID, last.CreatedAt.Local().Format(time.RFC3339))
			}

			total, solved, err := storage.NewSessionRepository(db).Count()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Play sessions: %d (%d solved)\n", total, solved)
			return nil
		},
	}
}

func scrambleLengthLabel(n int) string {
	if n <= 0 {
		return "size³"
	}
	return fmt.Sprint(n)
}
