package domain

// Cell is the content of one board cell. The same type names the side
// making a move, so Empty is only meaningful as a cell value.
type Cell int

const (
	Empty    Cell = 0
	Player   Cell = 1 // the human
	Opponent Cell = 2 // the bot
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Other returns the opposing side.
func Other(side Cell) Cell {
	if side == Player {
		return Opponent
	}
	return Player
}

// Outcome represents the game result as seen by the engine.
type Outcome string

const (
	InProgress  Outcome = "in_progress"
	PlayerWin   Outcome = "player_win"
	OpponentWin Outcome = "opponent_win"
	Draw        Outcome = "draw"
)

var BotNames = map[string]string{
	"easy": "Alice",
	"hard": "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove Error = "invalid move"
	ErrColumnFull  Error = "column is full"
)
