package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube"
	"github.com/SeamusWaldron/cube/internal/storage"
)

func newScrambleCmd(a *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "scramble [size] [length]",
		Short: "Generate a random scramble",
		Long: `Print a random scramble in canonical notation.

Consecutive turns never share an axis, so no turn cancels the one before
it. Cubes larger than 3×3 also get inner-layer and wide turns.

The length defaults to the config value, or size³ when that is 0.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, rest, err := a.splitSize(args)
			if err != nil {
				return err
			}

			length := a.cfg.Scramble.Length
			if len(rest) > 0 {
				length, err = strconv.Atoi(rest[0])
				if err != nil || length < 0 {
					return fmt.Errorf("invalid scramble length %q", rest[0])
				}
			}

			c, err := a.newCube(size)
			if err != nil {
				return err
			}
			turns := c.GenerateScramble(length)
			notation := cube.FormatTurns(turns)

			if save {
				db, err := a.openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				id, err := storage.NewScrambleRepository(db).Create(size, len(turns), notation, a.seedValue())
				if err != nil {
					return err
				}
				a.logger.Info("saved scramble", "id", id)
			}

			fmt.Fprintln(cmd.OutOrStdout(), notation)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the scramble in the database")
	return cmd
}
