// Cube - CLI for turning, checking and scrambling N×N×N cubes.
package main

import (
	"github.com/SeamusWaldron/cube/internal/cli"
)

func main() {
	cli.Execute()
}
