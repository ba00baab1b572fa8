// Command tessellate solves edge-matching square-tile puzzles.
package main

import "github.com/eternity/tessellate/cmd"

func main() {
	cmd.Execute()
}
