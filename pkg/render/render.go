// Package render draws a Board as ASCII/ANSI text, highlighting border
// edges and mismatched west edges in color.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/eternity/tessellate/pkg/model"
)

// Options controls the renderer's output.
type Options struct {
	// Color enables ANSI coloring. When false, output is plain text
	// regardless of terminal capability.
	Color bool
}

var (
	borderColor    = color.New(color.FgCyan)
	mismatchColor  = color.New(color.FgRed, color.Bold)
	matchColor     = color.New(color.FgGreen)
	emptyCellColor = color.New(color.FgHiBlack)
)

// Board writes a cell-grid rendering of b to w. Each cell is drawn as its
// tile id and rotation, with the top and bottom border edges in cyan. A
// cell's label is red when its west edge mismatches: the west neighbor's
// east edge in the interior, or the border color in the first column.
func Board(w io.Writer, b *model.Board) {
	for r := 0; r < b.Rows; r++ {
		writeTopEdges(w, b, r)
		writeMiddleRow(w, b, r)
		if r == b.Rows-1 {
			writeBottomEdges(w, b, r)
		}
	}
}

func writeTopEdges(w io.Writer, b *model.Board, r int) {
	for c := 0; c < b.Cols; c++ {
		p := b.GetPlacement(r, c)
		fmt.Fprint(w, "+")
		writeEdgeCell(w, p, model.North, r == 0)
	}
	fmt.Fprintln(w, "+")
}

func writeBottomEdges(w io.Writer, b *model.Board, r int) {
	for c := 0; c < b.Cols; c++ {
		p := b.GetPlacement(r, c)
		fmt.Fprint(w, "+")
		writeEdgeCell(w, p, model.South, true)
	}
	fmt.Fprintln(w, "+")
}

func writeMiddleRow(w io.Writer, b *model.Board, r int) {
	for c := 0; c < b.Cols; c++ {
		p := b.GetPlacement(r, c)
		fmt.Fprint(w, "|")
		westMismatch := false
		if p != nil {
			if c == 0 {
				westMismatch = p.Edges[model.West] != model.Border
			} else if left := b.GetPlacement(r, c-1); left != nil {
				westMismatch = left.Edges[model.East] != p.Edges[model.West]
			}
		}
		writeCellBody(w, p, westMismatch)
	}
	fmt.Fprintln(w, "|")
}

func writeEdgeCell(w io.Writer, p *model.Placement, side model.Side, isBorder bool) {
	label := "----"
	if p != nil {
		label = fmt.Sprintf(" %2d ", int(p.Edges[side]))
	}
	if isBorder {
		borderColor.Fprint(w, label)
	} else {
		fmt.Fprint(w, label)
	}
}

func writeCellBody(w io.Writer, p *model.Placement, westMismatch bool) {
	if p == nil {
		emptyCellColor.Fprint(w, " .. ")
		return
	}
	label := fmt.Sprintf("%2d/%d", int(p.TileID), p.Rotation)
	if westMismatch {
		mismatchColor.Fprint(w, label)
	} else {
		matchColor.Fprint(w, label)
	}
}

// Summary formats a one-line board status: fill count and score.
func Summary(b *model.Board) string {
	matched, max := b.CalculateScore()
	return fmt.Sprintf("%d/%d cells filled, score %d/%d", b.FilledCount(), b.Rows*b.Cols, matched, max)
}

// DisableColorIfNeeded turns color output on or off globally by setting
// fatih/color's NoColor from enabled. It does no terminal detection itself,
// so passing true also enables color when writing to a file.
func DisableColorIfNeeded(enabled bool) {
	color.NoColor = !enabled
}

// Divider writes a horizontal rule of width characters, used to separate
// multiple rendered boards in one output stream.
func Divider(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("-", width))
}
