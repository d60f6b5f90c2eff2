package domain

import "strings"

func NewBoard() [][]Cell {
	board := make([][]Cell, Rows)
	for i := range board {
		board[i] = make([]Cell, Columns)
	}
	return board
}

func IsValidMove(board [][]Cell, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// board[0] is the top row (0 -> top, 5 -> bottom)
	if board[0][column] != Empty {
		return false
	}

	return true
}

// DropDisk places a disk in the lowest empty cell of the column. The
// gravity invariant holds because this is the only way a cell is filled.
func DropDisk(board [][]Cell, column int, side Cell) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidMove
	}

	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			board[row][column] = side
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// UndoDrop clears the topmost disk of the column. Callers must reverse
// the most recent drop on the board before mutating it any other way.
func UndoDrop(board [][]Cell, column int) {
	for row := 0; row < Rows; row++ {
		if board[row][column] != Empty {
			board[row][column] = Empty
			return
		}
	}
}

func IsBoardFull(board [][]Cell) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}

	return true
}

// this creates a deep copy of the board
func CopyBoard(board [][]Cell) [][]Cell {
	newBoard := make([][]Cell, len(board))
	for i := range board {
		newBoard[i] = make([]Cell, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

// GetValidMoves lists the playable columns in ascending order. Both
// searches rely on this ordering for their tie behavior.
func GetValidMoves(board [][]Cell) []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if board[0][col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// SimulateMove plays a move on a copy and hands the result to the caller
func SimulateMove(board [][]Cell, column int, side Cell) ([][]Cell, int, error) {
	newBoard := CopyBoard(board)
	row, err := DropDisk(newBoard, column, side)
	if err != nil {
		return nil, -1, err
	}
	return newBoard, row, nil
}

func BoardsEqual(a, b [][]Cell) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}

// BoardKey encodes the full board content as a string so boards can be
// used as set members.
func BoardKey(board [][]Cell) string {
	var b strings.Builder
	b.Grow(Rows * Columns)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			b.WriteByte(byte('0' + board[r][c]))
		}
	}
	return b.String()
}
