package domain

// east, south, south-east, south-west; every four-in-a-row has one end
// that anchors it under one of these.
var lineDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Winner scans the board row-major and reports the first side found
// holding a four-in-a-row, or Empty when neither side has one. A fresh
// board always reports Empty.
func Winner(board [][]Cell) Cell {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			side := board[row][col]
			if side == Empty {
				continue
			}
			for _, dir := range lineDirections {
				if lineFrom(board, row, col, dir[0], dir[1], side) {
					return side
				}
			}
		}
	}
	return Empty
}

// lineFrom reports whether the ToWin cells starting at (row, col) in the
// given direction all belong to side. Lines leaving the board never win.
func lineFrom(board [][]Cell, row, col, dRow, dCol int, side Cell) bool {
	endRow := row + dRow*(ToWin-1)
	endCol := col + dCol*(ToWin-1)
	if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Columns {
		return false
	}
	for i := 1; i < ToWin; i++ {
		if board[row+dRow*i][col+dCol*i] != side {
			return false
		}
	}
	return true
}
