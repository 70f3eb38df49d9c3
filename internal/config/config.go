package config

import (
	"os"
	"strconv"
	"strings"
)

// Default banned-term list, overridable via BANNED_WORDS (comma separated).
var defaultBannedWords = []string{"trash", "idiot", "hate", "stupid", "nonsense"}

type Config struct {
	Port        string
	DatabaseURL string // postgres DSN; empty means sqlite file
	SQLitePath  string
	BannedWords []string
	AIBaseURL   string
	AIModel     string
	AITimeout   int // seconds
	WebDir      string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	timeout, err := strconv.Atoi(getenv("AI_TIMEOUT_SECONDS", "60"))
	if err != nil || timeout <= 0 {
		timeout = 60
	}

	banned := defaultBannedWords
	if raw := os.Getenv("BANNED_WORDS"); raw != "" {
		banned = nil
		for _, w := range strings.Split(raw, ",") {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				banned = append(banned, w)
			}
		}
	}

	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenv("SQLITE_PATH", "classroom.db"),
		BannedWords: banned,
		AIBaseURL:   getenv("AI_GENERATE_URL", "http://localhost:11434/api/generate"),
		AIModel:     getenv("AI_MODEL", "mistral"),
		AITimeout:   timeout,
		WebDir:      getenv("WEB_DIR", "./web"),
	}
}
