package util

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/passrank/passrank-api/pkg/strength"
)

func InitConfig() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "passrank.db"
	}

	thresholds := strength.DefaultThresholds
	thresholds.Weak = envFloat("WEAK_BITS", thresholds.Weak)
	thresholds.Strong = envFloat("STRONG_BITS", thresholds.Strong)
	thresholds.VeryStrong = envFloat("VERY_STRONG_BITS", thresholds.VeryStrong)
	if !thresholds.Valid() {
		slog.Warn("threshold overrides not increasing, using defaults")
		thresholds = strength.DefaultThresholds
	}

	Config = config{
		StartTime:  time.Now().Unix(),
		Version:    "1.0.0",
		Port:       port,
		DBPath:     dbPath,
		RedisURL:   os.Getenv("REDIS_URL"),
		Thresholds: thresholds,
		RateLimit:  envInt("RATE_LIMIT", 30),
		RateWindow: time.Duration(envInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring invalid env var", "key", key, "value", v)
		return fallback
	}
	return f
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid env var", "key", key, "value", v)
		return fallback
	}
	return n
}

var Config config

type config struct {
	StartTime  int64
	Version    string
	Port       string
	DBPath     string
	RedisURL   string
	Thresholds strength.Thresholds
	RateLimit  int
	RateWindow time.Duration
}
