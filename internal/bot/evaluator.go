package bot

import "connect4/internal/domain"

const (
	THREE_IN_ROW_WEIGHT = 100
	TWO_IN_ROW_WEIGHT   = 10
	ONE_IN_ROW_WEIGHT   = 5
)

var windowDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// EvaluateBoard calculates a heuristic score for the board, oriented so
// positive favors the bot. Every occupied cell anchors a four-cell
// window in each direction; windows that would leave the board are
// skipped whole. Overlapping windows anchored at different cells
// double-count on purpose: threats working in several directions score
// more than the sum of their parts suggests they should.
func EvaluateBoard(board [][]domain.Cell) int {
	score := 0

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			if board[row][col] == domain.Empty {
				continue
			}
			for _, dir := range windowDirections {
				score += windowScore(board, row, col, dir[0], dir[1])
			}
		}
	}

	return score
}

// windowScore classifies the four cells starting at (row, col) by side
// counts. Windows holding both sides are dead and score zero.
func windowScore(board [][]domain.Cell, row, col, dRow, dCol int) int {
	endRow := row + dRow*(domain.ToWin-1)
	endCol := col + dCol*(domain.ToWin-1)
	if endRow < 0 || endRow >= domain.Rows || endCol < 0 || endCol >= domain.Columns {
		return 0
	}

	botCount, humanCount := 0, 0
	for i := 0; i < domain.ToWin; i++ {
		switch board[row+dRow*i][col+dCol*i] {
		case domain.Opponent:
			botCount++
		case domain.Player:
			humanCount++
		}
	}

	if botCount > 0 && humanCount > 0 {
		return 0
	}
	emptyCount := domain.ToWin - botCount - humanCount

	switch {
	case botCount == 3 && emptyCount == 1:
		return THREE_IN_ROW_WEIGHT
	case botCount == 2 && emptyCount == 2:
		return TWO_IN_ROW_WEIGHT
	case botCount == 1 && emptyCount == 3:
		return ONE_IN_ROW_WEIGHT
	case humanCount == 3 && emptyCount == 1:
		return -THREE_IN_ROW_WEIGHT
	case humanCount == 2 && emptyCount == 2:
		return -TWO_IN_ROW_WEIGHT
	case humanCount == 1 && emptyCount == 3:
		return -ONE_IN_ROW_WEIGHT
	}

	return 0
}
