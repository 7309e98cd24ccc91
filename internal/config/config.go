package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort     = 5000
	defaultCacheTTL = 5 * time.Minute
	defaultModel    = "llama-3.3-70b-versatile"
)

type Config struct {
	Server ServerConfig
	Notion NotionConfig
	Groq   GroqConfig
	Quiz   QuizConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NotionConfig carries the note source credential and the collection to read.
type NotionConfig struct {
	Token      string
	DatabaseID string
}

// GroqConfig carries the model provider credential and model identifier.
type GroqConfig struct {
	APIKey string
	Model  string
}

type QuizConfig struct {
	CacheTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LoadConfig reads configuration from the environment. NOTION_TOKEN,
// NOTION_DATABASE_ID and GROQ_API_KEY are required; everything else has a
// default.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", defaultPort)
	v.SetDefault("SERVER_READ_TIMEOUT", "20s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "20s")
	v.SetDefault("QUIZ_CACHE_TTL", defaultCacheTTL.String())
	v.SetDefault("GROQ_MODEL", defaultModel)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENV", "development")

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("SERVER_PORT"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
		},
		Notion: NotionConfig{
			Token:      v.GetString("NOTION_TOKEN"),
			DatabaseID: v.GetString("NOTION_DATABASE_ID"),
		},
		Groq: GroqConfig{
			APIKey: v.GetString("GROQ_API_KEY"),
			Model:  v.GetString("GROQ_MODEL"),
		},
		Quiz: QuizConfig{
			CacheTTL: v.GetDuration("QUIZ_CACHE_TTL"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("LOG_LEVEL"),
			Env:   v.GetString("ENV"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Notion.Token == "" {
		return fmt.Errorf("NOTION_TOKEN is required")
	}
	if c.Notion.DatabaseID == "" {
		return fmt.Errorf("NOTION_DATABASE_ID is required")
	}
	if c.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if c.Quiz.CacheTTL <= 0 {
		return fmt.Errorf("QUIZ_CACHE_TTL must be positive, got %s", c.Quiz.CacheTTL)
	}
	return nil
}
