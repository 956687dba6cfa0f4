// Package boardops holds the free-function counterpart of entity.Board: the
// same three queries, with the cell array passed explicitly on every call.
package boardops

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/ticboard-backend/internal/apperror"
	"github.com/rocketscienceinc/ticboard-backend/internal/entity"
)

const rowSeparator = "-----------"

// TurnCount - returns how many marks have been placed on the given cells.
func TurnCount(cells [entity.BoardSize]string) int {
	count := 0
	for _, cell := range cells {
		if cell != entity.EmptyCell {
			count++
		}
	}

	return count
}

// CurrentPlayer - X moves on even turn counts, O on odd ones.
func CurrentPlayer(cells [entity.BoardSize]string) string {
	if TurnCount(cells)%2 == 0 {
		return entity.PlayerX
	}

	return entity.PlayerO
}

// Render - returns the cells as three pipe-delimited rows separated by dashed
// lines.
func Render(cells [entity.BoardSize]string) string {
	var builder strings.Builder

	for row := 0; row < 3; row++ {
		offset := row * 3
		fmt.Fprintf(&builder, " %s | %s | %s ", cells[offset], cells[offset+1], cells[offset+2])

		if row < 2 {
			builder.WriteString("\n" + rowSeparator + "\n")
		}
	}

	return builder.String()
}

// Display - writes the rendered cells to w.
func Display(w io.Writer, cells [entity.BoardSize]string) {
	fmt.Fprintln(w, Render(cells))
}

// Validate - checks externally supplied cells before they enter the system.
// The query functions above stay unchecked; callers validate once at the
// boundary.
func Validate(cells [entity.BoardSize]string) error {
	for i, cell := range cells {
		switch cell {
		case entity.PlayerX, entity.PlayerO, entity.EmptyCell:
		default:
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidCellValue, i, cell)
		}
	}

	return nil
}
