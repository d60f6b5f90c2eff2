package domain

import (
	"fmt"
	"strings"
)

// Render returns the board as printable rows, top row first, followed by
// a column-index footer. Display only; nothing in the engine reads it.
func Render(board [][]Cell, playerSym, botSym string) []string {
	lines := make([]string, 0, Rows+1)
	for r := 0; r < Rows; r++ {
		var b strings.Builder
		for c := 0; c < Columns; c++ {
			b.WriteString("|")
			switch board[r][c] {
			case Player:
				b.WriteString(playerSym)
			case Opponent:
				b.WriteString(botSym)
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("|")
		lines = append(lines, b.String())
	}

	var footer strings.Builder
	for c := 0; c < Columns; c++ {
		footer.WriteString(fmt.Sprintf(" %d", c))
	}
	lines = append(lines, footer.String())
	return lines
}
