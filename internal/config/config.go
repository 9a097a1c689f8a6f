// config предоставляет структуру конфигурации reddit-archive-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env          string        `yaml:"env"     env:"ENV" env-default:"local"`
	HTTP         HTTPConfig    `yaml:"http"`
	DB           DBConfig      `yaml:"db"`
	Mongo        MongoConfig   `yaml:"mongo"`
	Reddit       RedditConfig  `yaml:"reddit"`
	LimitsConfig LimitsConfig  `yaml:"limits"`
	Timeouts     TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"5s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50083"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к PostgreSQL (посты и проходы архивации).
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// MongoConfig — настройки подключения к MongoDB (цепочки комментариев).
type MongoConfig struct {
	URL string `yaml:"url" env:"MONGO_URL" env-required:"true"`
}

// RedditConfig — параметры обхода источника.
type RedditConfig struct {
	// BaseURL публичного listing-API. Переопределяется в тестах.
	BaseURL string `yaml:"base_url" env:"REDDIT_BASE_URL" env-default:"https://www.reddit.com"`
	// Username — автор, чью активность архивируем (без префикса u/).
	Username string `yaml:"username" env:"REDDIT_USERNAME" env-required:"true"`
	// Subreddit — сообщество, в котором ищем посты автора (без префикса r/).
	Subreddit string `yaml:"subreddit" env:"REDDIT_SUBREDDIT" env-required:"true"`
	// UserAgent обязателен для публичного API reddit.
	UserAgent string `yaml:"user_agent" env:"REDDIT_USER_AGENT" env-default:"script:reddit-archive:v1.0"`
	// Interval — период повторной архивации.
	Interval time.Duration `yaml:"interval" env:"ARCHIVE_INTERVAL" env-default:"1h"`
	// PageLimit — размер страницы listing-API (верхняя граница у источника — 100).
	PageLimit int `yaml:"page_limit" env:"REDDIT_PAGE_LIMIT" env-default:"100"`
	// MaxPages — предохранитель от бесконечного листания по курсору after.
	MaxPages int `yaml:"max_pages" env:"REDDIT_MAX_PAGES" env-default:"40"`
}

// LimitsConfig — серверные лимиты на выдачу.
type LimitsConfig struct {
	// Применяется при запросе с limit=0.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	// Верхняя граница для limit.
	Max int32 `yaml:"max" env:"MAX_LIMIT" env-default:"300"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Mongo.URL == "" {
		return fmt.Errorf("mongo.url is required")
	}
	if c.Reddit.Username == "" {
		return fmt.Errorf("reddit.username is required")
	}
	if c.Reddit.Subreddit == "" {
		return fmt.Errorf("reddit.subreddit is required")
	}
	if c.Reddit.Interval < time.Minute {
		return fmt.Errorf("reddit.interval must be at least 1m")
	}
	if c.Reddit.PageLimit <= 0 || c.Reddit.PageLimit > 100 {
		return fmt.Errorf("reddit.page_limit must be in (0, 100]")
	}
	if c.Reddit.MaxPages <= 0 {
		return fmt.Errorf("reddit.max_pages must be > 0")
	}
	if c.LimitsConfig.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.LimitsConfig.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.LimitsConfig.Default > c.LimitsConfig.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	return nil
}
