package main

import (
	"bufio"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"connect4/internal/bot"
	"connect4/internal/config"
	"connect4/internal/domain"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	difficulty, err := bot.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		log.Fatalf("Invalid DIFFICULTY: %v", err)
	}

	seed := int64(cfg.RandSeed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := bot.NewEngine(difficulty, rand.New(rand.NewSource(seed)))

	game := domain.NewGame()
	log.Printf("Game %s started: you play %s, %s plays %s (difficulty: %s)",
		game.ID, cfg.PlayerSymbol, engine.Name(), cfg.BotSymbol, difficulty)

	reader := bufio.NewReader(os.Stdin)
	printBoard(game.Board, cfg)

	for game.Outcome == domain.InProgress {
		col := promptColumn(reader)
		if err := game.SubmitPlayerMove(col); err != nil {
			fmt.Printf("Column %d is not playable, try again.\n", col)
			continue
		}
		printBoard(game.Board, cfg)
		if game.IsFinished() {
			break
		}

		aiCol := engine.ComputeMove(game.Board)
		if err := game.ApplyAIMove(aiCol); err != nil {
			log.Fatalf("Game %s: bot chose unplayable column %d: %v", game.ID, aiCol, err)
		}
		fmt.Printf("%s plays column %d\n", engine.Name(), aiCol)
		printBoard(game.Board, cfg)
	}

	switch game.Outcome {
	case domain.PlayerWin:
		fmt.Println("You win!")
	case domain.OpponentWin:
		fmt.Printf("%s wins!\n", engine.Name())
	default:
		fmt.Println("It's a draw.")
	}
	log.Printf("Game %s finished after %d moves: %s", game.ID, game.MoveCount, game.Outcome)
}

// promptColumn keeps asking until the input parses as an integer.
// Range and column-full checks belong to the engine; a rejected move
// just comes back through the same prompt.
func promptColumn(reader *bufio.Reader) int {
	for {
		fmt.Printf("Enter a column [0-%d]: ", domain.Columns-1)
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("That is not a number.")
			continue
		}
		return col
	}
}

func printBoard(board [][]domain.Cell, cfg *config.Config) {
	for _, line := range domain.Render(board, cfg.PlayerSymbol, cfg.BotSymbol) {
		fmt.Println(line)
	}
	fmt.Println()
}
