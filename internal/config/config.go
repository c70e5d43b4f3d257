package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"FinanceHub/internal/model"
)

// Data source providers.
const (
	ProviderYahoo = "yahoo"
	ProviderREST  = "rest"
	ProviderMock  = "mock"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		CORSOrigins    []string `yaml:"cors_origins"`
		RequestTimeout int      `yaml:"request_timeout_seconds"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		Provider          string `yaml:"provider"`
		BaseURL           string `yaml:"base_url"`
		APIKey            string `yaml:"api_key"`
		RequestsPerSecond int    `yaml:"requests_per_second"`
	} `yaml:"data_source"`
	Fetch struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
		Retries        int `yaml:"retries"`
		Concurrency    int `yaml:"concurrency"`
	} `yaml:"fetch"`
	Banks     []model.Entity `yaml:"banks"`
	Watchlist []string       `yaml:"watchlist"`
	Advisor   struct {
		GeminiAPIKey string   `yaml:"gemini_api_key"`
		Model        string   `yaml:"model"`
		Keywords     []string `yaml:"keywords"`
	} `yaml:"advisor"`
	Schedule struct {
		SectorCron string `yaml:"sector_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Kafka struct {
		Brokers []string `yaml:"brokers"`
		Topic   string   `yaml:"topic"`
	} `yaml:"kafka"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file and a .env file, then applies
// environment variable overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	// Zero is a valid retry count, so the default is set before decoding.
	cfg.Fetch.Retries = 1

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setInt("PORT", &c.Server.Port)
	setString("LOG_LEVEL", &c.Log.Level)
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		c.Log.Pretty, _ = strconv.ParseBool(v)
	}
	setString("TELEGRAM_BOT_TOKEN", &c.Telegram.BotToken)
	setString("TELEGRAM_CHAT_ID", &c.Telegram.ChatID)
	setString("DATA_SOURCE_PROVIDER", &c.DataSource.Provider)
	setString("DATA_SOURCE_BASE_URL", &c.DataSource.BaseURL)
	setString("DATA_SOURCE_API_KEY", &c.DataSource.APIKey)
	setInt("FETCH_TIMEOUT_SECONDS", &c.Fetch.TimeoutSeconds)
	setInt("FETCH_CONCURRENCY", &c.Fetch.Concurrency)
	setString("Google_API", &c.Advisor.GeminiAPIKey)
	setString("GOOGLE_API_KEY", &c.Advisor.GeminiAPIKey)
	setString("GEMINI_MODEL", &c.Advisor.Model)
	setString("CRON_SECTOR", &c.Schedule.SectorCron)
	setString("SQLITE_PATH", &c.Database.SQLitePath)
	setString("KAFKA_TOPIC", &c.Kafka.Topic)
	setString("HTTPS_PROXY", &c.Proxy)
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("FETCH_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Fetch.Retries = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 60
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = ProviderYahoo
	}
	if c.DataSource.RequestsPerSecond == 0 {
		c.DataSource.RequestsPerSecond = 2
	}
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = 10
	}
	if c.Fetch.Concurrency == 0 {
		c.Fetch.Concurrency = 4
	}
	if len(c.Banks) == 0 {
		c.Banks = DefaultBanks()
	}
	if len(c.Watchlist) == 0 {
		c.Watchlist = DefaultWatchlist()
	}
	if c.Advisor.Model == "" {
		c.Advisor.Model = "gemini-2.0-flash"
	}
	if len(c.Advisor.Keywords) == 0 {
		c.Advisor.Keywords = DefaultFinanceKeywords()
	}
	if c.Schedule.SectorCron == "" {
		c.Schedule.SectorCron = "0 0 16 * * 1-5"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/financehub.db"
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "financehub.sector"
	}
}

// FetchTimeout returns the per-attempt supplier timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// RequestTimeout returns the HTTP handler timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeout) * time.Second
}

// TelegramEnabled reports whether notifications can be sent.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// KafkaEnabled reports whether sector events are published.
func (c *Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.DataSource.Provider {
	case ProviderYahoo, ProviderMock:
	case ProviderREST:
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not one of yahoo, rest, mock", c.DataSource.Provider)
	}
	if c.Fetch.Retries < 0 {
		return fmt.Errorf("fetch.retries must not be negative")
	}
	if c.Fetch.TimeoutSeconds < 0 || c.Fetch.Concurrency < 0 {
		return fmt.Errorf("fetch.timeout_seconds and fetch.concurrency must not be negative")
	}
	seen := make(map[string]bool, len(c.Banks))
	for i, b := range c.Banks {
		if b.Name == "" || b.Symbol == "" {
			return fmt.Errorf("banks[%d]: name and symbol are required", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("banks[%d]: duplicate name %q", i, b.Name)
		}
		seen[b.Name] = true
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if _, err := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow).Parse(c.Schedule.SectorCron); err != nil {
		return fmt.Errorf("schedule.sector_cron: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
