package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string
	// APITokens is the bearer-token allow-list for the auth gate; empty
	// means authentication is disabled.
	APITokens []string
	// AllowedAuthors is the comment author allow-list.
	AllowedAuthors []string
	// DefaultUserID is the identity used for unread derivation when a
	// request carries none.
	DefaultUserID string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "board"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "board"),
		DbName:         getEnv("MYSQL_DATABASE", "board"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),
		APITokens:      parseList(os.Getenv("API_TOKENS")),
		AllowedAuthors: parseListDefault(os.Getenv("COMMENT_AUTHORS"), []string{"ash", "jarvis"}),
		DefaultUserID:  getEnv("DEFAULT_USER_ID", "ash"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}

func parseListDefault(value string, fallback []string) []string {
	if items := parseList(value); items != nil {
		return items
	}
	return fallback
}
