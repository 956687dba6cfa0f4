package entity

import (
	"fmt"
	"io"
	"strings"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = " "

	BoardSize = 9
)

const rowSeparator = "-----------"

// Board - a 3x3 game board. The cell array is owned by the instance for its
// whole lifetime; callers read it through the query methods below.
type Board struct {
	cells [BoardSize]string
}

// NewBoard - creates a board with all nine cells empty.
func NewBoard() *Board {
	board := &Board{}
	for i := range board.cells {
		board.cells[i] = EmptyCell
	}

	return board
}

// NewBoardWith - creates a board from externally supplied cells.
func NewBoardWith(cells [BoardSize]string) *Board {
	return &Board{cells: cells}
}

// TurnCount - returns how many marks have been placed so far.
func (that *Board) TurnCount() int {
	count := 0
	for _, cell := range that.cells {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}

// CurrentPlayer - X moves on even turn counts, O on odd ones.
func (that *Board) CurrentPlayer() string {
	if that.TurnCount()%2 == 0 {
		return PlayerX
	}

	return PlayerO
}

// Render - returns the board as three pipe-delimited rows separated by dashed
// lines.
func (that *Board) Render() string {
	var builder strings.Builder

	for row := 0; row < 3; row++ {
		offset := row * 3
		fmt.Fprintf(&builder, " %s | %s | %s ", that.cells[offset], that.cells[offset+1], that.cells[offset+2])

		if row < 2 {
			builder.WriteString("\n" + rowSeparator + "\n")
		}
	}

	return builder.String()
}

// Display - writes the rendered board to w.
func (that *Board) Display(w io.Writer) {
	fmt.Fprintln(w, that.Render())
}

// Cells - returns a copy of the underlying cells.
func (that *Board) Cells() [BoardSize]string {
	return that.cells
}
