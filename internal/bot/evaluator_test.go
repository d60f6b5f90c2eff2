package bot

import (
	"math/rand"
	"testing"

	"connect4/internal/domain"
)

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	if score := EvaluateBoard(domain.NewBoard()); score != 0 {
		t.Fatalf("empty board scored %d, want 0", score)
	}
}

func TestSingleDiskWindowScores(t *testing.T) {
	// a lone bot disk in the corner anchors exactly one in-bounds
	// window: the horizontal one, with three empties
	board := domain.NewBoard()
	board[domain.Rows-1][0] = domain.Opponent
	if score := EvaluateBoard(board); score != ONE_IN_ROW_WEIGHT {
		t.Fatalf("lone bot disk scored %d, want %d", score, ONE_IN_ROW_WEIGHT)
	}

	board = domain.NewBoard()
	board[domain.Rows-1][0] = domain.Player
	if score := EvaluateBoard(board); score != -ONE_IN_ROW_WEIGHT {
		t.Fatalf("lone human disk scored %d, want %d", score, -ONE_IN_ROW_WEIGHT)
	}
}

func TestAdjacentDisksSumWindowScores(t *testing.T) {
	// (5,0) anchors a 2-bot window (+10), (5,1) a 1-bot window (+5)
	board := domain.NewBoard()
	board[domain.Rows-1][0] = domain.Opponent
	board[domain.Rows-1][1] = domain.Opponent
	if score := EvaluateBoard(board); score != TWO_IN_ROW_WEIGHT+ONE_IN_ROW_WEIGHT {
		t.Fatalf("bot pair scored %d, want %d", score, TWO_IN_ROW_WEIGHT+ONE_IN_ROW_WEIGHT)
	}
}

func TestMixedWindowIsDead(t *testing.T) {
	// (5,0)'s window holds both sides and scores nothing; (5,1)'s
	// window is a lone human disk
	board := domain.NewBoard()
	board[domain.Rows-1][0] = domain.Opponent
	board[domain.Rows-1][1] = domain.Player
	if score := EvaluateBoard(board); score != -ONE_IN_ROW_WEIGHT {
		t.Fatalf("mixed corner scored %d, want %d", score, -ONE_IN_ROW_WEIGHT)
	}
}

func TestCompletedLineScoresOnlySurroundingWindows(t *testing.T) {
	// a finished four-in-a-row matches no row of the scoring table, so
	// a won board is worth just the live windows around the line:
	// (2,2) anchors E and SE one-disk windows, (3,2), (4,2) and (5,2)
	// anchor an E one-disk window each
	board := domain.NewBoard()
	for r := 2; r < domain.Rows; r++ {
		board[r][2] = domain.Opponent
	}
	if w := domain.Winner(board); w != domain.Opponent {
		t.Fatalf("fixture is not a won board: winner %v", w)
	}
	if score := EvaluateBoard(board); score != 5*ONE_IN_ROW_WEIGHT {
		t.Fatalf("won board scored %d, want %d", score, 5*ONE_IN_ROW_WEIGHT)
	}
}

func swapSides(board [][]domain.Cell) [][]domain.Cell {
	swapped := domain.NewBoard()
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Columns; c++ {
			switch board[r][c] {
			case domain.Player:
				swapped[r][c] = domain.Opponent
			case domain.Opponent:
				swapped[r][c] = domain.Player
			}
		}
	}
	return swapped
}

func TestEvaluatorAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		board := domain.NewBoard()
		side := domain.Player
		for i := 0; i < 20; i++ {
			valid := domain.GetValidMoves(board)
			if len(valid) == 0 {
				break
			}
			domain.DropDisk(board, valid[rng.Intn(len(valid))], side)
			side = domain.Other(side)
		}

		got := EvaluateBoard(swapSides(board))
		want := -EvaluateBoard(board)
		if got != want {
			t.Fatalf("trial %d: swapped board scored %d, want %d\nkey: %s",
				trial, got, want, domain.BoardKey(board))
		}
	}
}
