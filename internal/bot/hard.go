package bot

import (
	"math"

	"connect4/internal/domain"
)

const MINIMAX_DEPTH = 4

// CalculateBestMoveMinimax implements hard difficulty using minimax with
// alpha-beta pruning at a fixed depth. Only strictly better scores
// replace the running best, so ties go to the lowest column. Moves are
// tried in place and undone immediately after each recursive call: the
// board handed back to the caller is unchanged.
func CalculateBestMoveMinimax(board [][]domain.Cell) int {
	bestCol := -1
	bestScore := math.MinInt32

	for _, col := range domain.GetValidMoves(board) {
		domain.DropDisk(board, col, domain.Opponent)
		score := minimax(board, MINIMAX_DEPTH, math.MinInt32, math.MaxInt32, false)
		domain.UndoDrop(board, col)

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	return bestCol
}

// minimax recurses until the depth runs out, a side has won, or the
// board is full, then scores the position with the static evaluator.
// The undo directly follows each recursive call, so a pruning break can
// never leave a trial disk behind.
func minimax(board [][]domain.Cell, depth, alpha, beta int, isMaximizing bool) int {
	if depth == 0 || domain.Winner(board) != domain.Empty || domain.IsBoardFull(board) {
		return EvaluateBoard(board)
	}

	if isMaximizing {
		maxEval := math.MinInt32
		for _, col := range domain.GetValidMoves(board) {
			domain.DropDisk(board, col, domain.Opponent)
			eval := minimax(board, depth-1, alpha, beta, false)
			domain.UndoDrop(board, col)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt32
	for _, col := range domain.GetValidMoves(board) {
		domain.DropDisk(board, col, domain.Player)
		eval := minimax(board, depth-1, alpha, beta, true)
		domain.UndoDrop(board, col)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}
