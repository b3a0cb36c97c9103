package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port    string
	BaseURL string // external base URL used to build the OAuth callback

	GithubClientID string
	GithubSecret   string
	// GithubAPIURL overrides the GitHub REST endpoint. Empty means the real
	// api.github.com; tests point it at a local server.
	GithubAPIURL string

	SessionSecret []byte
	SessionTTL    time.Duration

	GistTimeout    time.Duration
	GistMaxRetries uint64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:8080"),
		SessionTTL: 24 * time.Hour,
	}

	clientID, exist := os.LookupEnv("GITHUB_CLIENT_ID")
	if !exist {
		return nil, fmt.Errorf("GITHUB_CLIENT_ID environment variable not set")
	}
	cfg.GithubClientID = clientID

	secret, exist := os.LookupEnv("GITHUB_SECRET")
	if !exist {
		return nil, fmt.Errorf("GITHUB_SECRET environment variable not set")
	}
	cfg.GithubSecret = secret

	cfg.SessionSecret = []byte(getEnv("SESSION_SECRET", "change-this-in-production"))
	cfg.GithubAPIURL = os.Getenv("GITHUB_API_URL")

	timeoutSec, err := strconv.Atoi(getEnv("GIST_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid GIST_TIMEOUT_SECONDS: %w", err)
	}
	cfg.GistTimeout = time.Duration(timeoutSec) * time.Second

	retries, err := strconv.ParseUint(getEnv("GIST_MAX_RETRIES", "3"), 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid GIST_MAX_RETRIES: %w", err)
	}
	cfg.GistMaxRetries = retries

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
