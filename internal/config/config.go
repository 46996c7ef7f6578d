package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL           string `yaml:"base_url" validate:"omitempty,url"`
		APIKey            string `yaml:"api_key"`
		CSVDir            string `yaml:"csv_dir"`
		RequestsPerMinute int    `yaml:"requests_per_minute" validate:"gte=1"`
	} `yaml:"data_source"`
	Watchlist struct {
		Symbols []string `yaml:"symbols" validate:"min=1,dive,required"`
		Period  string   `yaml:"period" validate:"oneof=1mo 3mo 6mo 6m 1y 2y 5y 10y ytd max"`
	} `yaml:"watchlist"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron" validate:"required"`
		Workers  int    `yaml:"workers" validate:"gte=1,lte=64"`
	} `yaml:"schedule"`
	State struct {
		File string `yaml:"file" validate:"required"`
	} `yaml:"state"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
	} `yaml:"metrics"`
	Log struct {
		Level       string `yaml:"level" validate:"oneof=debug info warn error"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy" validate:"omitempty,url"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// .env is optional; real environment variables take precedence over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = id
	}
	if v := os.Getenv("BARS_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("CSV_DIR"); v != "" {
		cfg.DataSource.CSVDir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("ANALYSIS_PERIOD"); v != "" {
		cfg.Watchlist.Period = v
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Watchlist.Symbols) == 0 {
		cfg.Watchlist.Symbols = []string{"AAPL"}
	}
	if cfg.Watchlist.Period == "" {
		cfg.Watchlist.Period = "1y"
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 30 22 * * 1-5"
	}
	if cfg.Schedule.Workers == 0 {
		cfg.Schedule.Workers = 4
	}
	if cfg.DataSource.RequestsPerMinute == 0 {
		cfg.DataSource.RequestsPerMinute = 60
	}
	if cfg.State.File == "" {
		cfg.State.File = "data/watch_state.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/tech_sentinel.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate checks field constraints and the settings the daemon cannot run without.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required")
	}
	return nil
}

func splitSymbols(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
