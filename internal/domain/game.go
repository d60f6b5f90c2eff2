package domain

import "github.com/google/uuid"

// Game is the full engine-level state for one session. Terminal
// outcomes are absorbing: once Outcome leaves InProgress no further
// moves are accepted.
type Game struct {
	ID        string
	Board     [][]Cell
	Turn      Cell
	Outcome   Outcome
	MoveCount int
}

func NewGame() *Game {
	return &Game{
		ID:      uuid.NewString(),
		Board:   NewBoard(),
		Turn:    Player,
		Outcome: InProgress,
	}
}

// SubmitPlayerMove validates and applies the human's move. An
// out-of-range or full column returns ErrInvalidMove with the state
// untouched, so the shell can re-prompt.
func (g *Game) SubmitPlayerMove(column int) error {
	if g.Outcome != InProgress || g.Turn != Player {
		return ErrInvalidMove
	}

	if !IsValidMove(g.Board, column) {
		return ErrInvalidMove
	}

	return g.apply(column, Player)
}

// ApplyAIMove applies a column chosen by the bot. The bot only returns
// legal columns, so a drop failure here is a broken contract rather than
// a retryable input; the error is handed up for the shell to treat as
// fatal.
func (g *Game) ApplyAIMove(column int) error {
	if g.Outcome != InProgress || g.Turn != Opponent {
		return ErrInvalidMove
	}

	return g.apply(column, Opponent)
}

func (g *Game) apply(column int, side Cell) error {
	if _, err := DropDisk(g.Board, column, side); err != nil {
		return err
	}

	g.MoveCount++

	// win check precedes the full-board check: a final disk that
	// completes a line wins, it does not draw
	if Winner(g.Board) == side {
		if side == Player {
			g.Outcome = PlayerWin
		} else {
			g.Outcome = OpponentWin
		}
		return nil
	}

	if IsBoardFull(g.Board) {
		g.Outcome = Draw
		return nil
	}

	g.Turn = Other(side)
	return nil
}

func (g *Game) IsFinished() bool {
	return g.Outcome != InProgress
}
