package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube"
	"github.com/SeamusWaldron/cube/internal/render"
)

func newTurnCmd(a *app) *cobra.Command {
	var (
		labeled bool
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "turn [size] [turns...]",
		Short: "Apply turns to a solved cube and print the result",
		Long: `Apply a turn sequence to a solved cube and print its state as JSON:

  {"U":[...],"L":[...],"F":[...],"R":[...],"B":[...],"D":[...]}

Each array holds size² sticker values in row-major order. With --labeled
every sticker is written as {"index":n,"value":v}, where index is the
sticker's starting position on its face.

Nothing is printed unless every turn is valid.`,
		Example: `  cube turn 3 "R U R- U-"
  cube turn 4 Rw 2U2 X
  cube turn --pretty 5 3Fw-`,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, rest, err := a.splitSize(args)
			if err != nil {
				return err
			}

			var extra []cube.Option
			if labeled {
				extra = append(extra, cube.WithLabeledStickers(true))
			}
			c, err := a.newCube(size, extra...)
			if err != nil {
				return err
			}

			if err := c.Turn(strings.Join(rest, " ")); err != nil {
				return err
			}

			if pretty {
				fmt.Fprintln(cmd.OutOrStdout(), render.New(a.cfg.Colors).Cube(c))
				return nil
			}

			data, err := json.Marshal(c)
			if err != nil {
				return fmt.Errorf("failed to encode state: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&labeled, "labeled", false, "Write {index, value} sticker records")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Draw a coloured net instead of JSON")
	return cmd
}
