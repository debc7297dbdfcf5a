package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"homestead/internal/domain/economy"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type config struct {
	Addr           string
	DSN            string
	MigrationsDir  string
	CatalogPath    string
	JournalDir     string
	RandSeed       uint64
	StartResources economy.Amounts
	DemoPlayer     string
	LogLevel       hlog.Level
}

func loadConfig() (config, error) {
	cfg := config{
		Addr:          stringEnv("HOMESTEAD_ADDR", ":8080"),
		DSN:           stringEnv("HOMESTEAD_DB_DSN", ""),
		MigrationsDir: stringEnv("HOMESTEAD_MIGRATIONS_DIR", "./migrations"),
		CatalogPath:   stringEnv("HOMESTEAD_CATALOG", ""),
		JournalDir:    stringEnv("HOMESTEAD_JOURNAL_DIR", ""),
		RandSeed:      uint64(intEnv("HOMESTEAD_RAND_SEED", 0)),
		DemoPlayer:    stringEnv("HOMESTEAD_DEMO_PLAYER", "demo-player"),
		LogLevel:      logLevel(stringEnv("HOMESTEAD_LOG_LEVEL", "info")),
	}
	if raw := resourcesEnv("HOMESTEAD_START_RESOURCES"); len(raw) > 0 {
		overrides, err := economy.ParseAmounts(raw)
		if err != nil {
			return config{}, fmt.Errorf("HOMESTEAD_START_RESOURCES: %w", err)
		}
		start := economy.DefaultStartingResources()
		for r, n := range overrides {
			start[r] = n
		}
		cfg.StartResources = start
	}
	return cfg, nil
}

func logLevel(raw string) hlog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return hlog.LevelDebug
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func resourcesEnv(key string) map[string]int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	out := map[string]int{}
	for _, pair := range strings.Split(raw, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) != 2 {
			continue
		}
		name := strings.TrimSpace(kv[0])
		if name == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			continue
		}
		out[name] = n
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
