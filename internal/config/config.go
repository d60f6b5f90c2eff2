package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Difficulty   string
	PlayerSymbol string
	BotSymbol    string
	RandSeed     int
}

func Load() *Config {
	cfg := &Config{
		Difficulty:   GetEnv("DIFFICULTY", "hard"),
		PlayerSymbol: GetEnv("PLAYER_SYMBOL", "X"),
		BotSymbol:    GetEnv("BOT_SYMBOL", "O"),
		// 0 means seed from the clock
		RandSeed: GetEnvAsInt("RAND_SEED", 0),
	}

	log.Printf("Config loaded: Difficulty=%s, PlayerSymbol=%s, BotSymbol=%s, RandSeed=%d",
		cfg.Difficulty, cfg.PlayerSymbol, cfg.BotSymbol, cfg.RandSeed)

	return cfg
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
