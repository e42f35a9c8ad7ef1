package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube"
)

func newTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test [size] [state] [turns...]",
		Short: "Report whether a state is solved",
		Long: `Load a JSON state, apply any turns, and print 1 if the cube is solved
or 0 if it is not. Pass - as the state to read it from stdin. Without a
state the cube starts solved.`,
		Example: `  cube test 2 '{"U":[0,0,0,0],"L":[1,1,1,1],"F":[2,2,2,2],"R":[3,3,3,3],"B":[4,4,4,4],"D":[5,5,5,5]}' R R-
  cube turn 3 R | cube test 3 - R-`,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, rest, err := a.splitSize(args)
			if err != nil {
				return err
			}

			c, err := a.newCube(size)
			if err != nil {
				return err
			}

			if len(rest) > 0 && isState(rest[0]) {
				data := []byte(rest[0])
				if rest[0] == "-" {
					data, err = io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("failed to read state: %w", err)
					}
				}

				state, err := cube.ParseState(data, size)
				if err != nil {
					return err
				}
				if err := c.SetState(state); err != nil {
					return err
				}
				rest = rest[1:]
			}

			if err := c.Turn(strings.Join(rest, " ")); err != nil {
				return err
			}

			result := "0"
			if c.IsSolved() {
				result = "1"
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

// isState reports whether an argument holds a state rather than a turn.
func isState(arg string) bool {
	arg = strings.TrimSpace(arg)
	return arg == "-" || strings.HasPrefix(arg, "{")
}
