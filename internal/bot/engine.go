package bot

import (
	"fmt"
	"math/rand"

	"connect4/internal/domain"
)

type Difficulty string

const (
	Easy Difficulty = "easy"
	Hard Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Hard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Engine picks the bot's moves for one difficulty tier. The rng feeds
// the easy tier's random fallback; seeding it pins a whole game.
type Engine struct {
	difficulty Difficulty
	rng        *rand.Rand
}

func NewEngine(difficulty Difficulty, rng *rand.Rand) *Engine {
	return &Engine{difficulty: difficulty, rng: rng}
}

// ComputeMove returns a legal column for the bot on the given board.
// The board must have at least one playable column.
func (e *Engine) ComputeMove(board [][]domain.Cell) int {
	switch e.difficulty {
	case Easy:
		return CalculateBestMoveEasy(board, e.rng)
	default:
		return CalculateBestMoveMinimax(board)
	}
}

// Name returns the bot's display name for the shell.
func (e *Engine) Name() string {
	return domain.GetBotName(string(e.difficulty))
}
