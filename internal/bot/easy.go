package bot

import (
	"math/rand"

	"connect4/internal/domain"
)

// searchNode is one explored board in the easy bot's best-first search.
// Nodes are snapshots: each holds its own board copy and is never
// mutated after creation.
type searchNode struct {
	board      [][]domain.Cell
	lastMove   int
	parent     *searchNode
	costSoFar  int
	heuristic  int
	totalScore int // costSoFar + heuristic
}

// CalculateBestMoveEasy implements easy difficulty. It looks for a board
// the bot can reach by stacking only its own disks (the human never
// answers in this model) on which it has already won, and plays the
// first column of that path. When the search exhausts without finding a
// win, it falls back to a uniformly random legal column.
func CalculateBestMoveEasy(board [][]domain.Cell, rng *rand.Rand) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return -1
	}

	if col, ok := searchWin(board); ok {
		return col
	}

	return validColumns[rng.Intn(len(validColumns))]
}

// searchWin runs the best-first search. The root is scored with the
// positional evaluator; successors are scored by path cost alone, so
// past the first ply the search degrades to uniform-cost. Pops take the
// minimum total score, earliest inserted first; boards already expanded
// are never revisited (compared by full content).
func searchWin(board [][]domain.Cell) (int, bool) {
	root := &searchNode{
		board:     domain.CopyBoard(board),
		lastMove:  -1,
		heuristic: EvaluateBoard(board),
	}
	root.totalScore = root.costSoFar + root.heuristic

	open := []*searchNode{root}
	openScores := map[string]int{domain.BoardKey(root.board): root.totalScore}
	closed := map[string]bool{}

	for len(open) > 0 {
		idx := 0
		for i := 1; i < len(open); i++ {
			if open[i].totalScore < open[idx].totalScore {
				idx = i
			}
		}
		node := open[idx]
		open = append(open[:idx], open[idx+1:]...)

		key := domain.BoardKey(node.board)
		delete(openScores, key)
		closed[key] = true

		if domain.Winner(node.board) == domain.Opponent {
			if col := firstPly(node); col >= 0 {
				return col, true
			}
			return -1, false
		}

		for _, col := range domain.GetValidMoves(node.board) {
			succBoard, _, err := domain.SimulateMove(node.board, col, domain.Opponent)
			if err != nil {
				return -1, false // unreachable: col came from GetValidMoves
			}

			succKey := domain.BoardKey(succBoard)
			if closed[succKey] {
				continue
			}

			cost := node.costSoFar + 1
			// equal boards always carry equal cost here (cost is the
			// number of disks added since the root), so this only ever
			// skips duplicates; a cheaper path to an open board cannot
			// exist
			if best, ok := openScores[succKey]; ok && best <= cost {
				continue
			}

			// heuristic stays zero past the root: successors rank by
			// path cost alone
			open = append(open, &searchNode{
				board:      succBoard,
				lastMove:   col,
				parent:     node,
				costSoFar:  cost,
				totalScore: cost,
			})
			openScores[succKey] = cost
		}
	}

	return -1, false
}

// firstPly walks back to the node one step below the root and returns
// the column played there.
func firstPly(node *searchNode) int {
	for node.parent != nil && node.parent.parent != nil {
		node = node.parent
	}
	return node.lastMove
}
