package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool   `env:"DEBUG" envDefault:"false"`
	Port  string `env:"PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	Bot BotConfig
}

// BotConfig настройки AI-бота; триггер из чата выключен по умолчанию
type BotConfig struct {
	Enabled    bool          `env:"BOT_ENABLED" envDefault:"false"`
	APIURL     string        `env:"BOT_API_URL" envDefault:"https://ai.gateway.lovable.dev/v1/chat/completions"`
	APIKey     string        `env:"BOT_API_KEY" envDefault:""`
	Model      string        `env:"BOT_MODEL" envDefault:"google/gemini-2.5-flash"`
	ReplyDelay time.Duration `env:"BOT_REPLY_DELAY" envDefault:"1s"`
	History    int           `env:"BOT_HISTORY" envDefault:"10"`
}

// Load читает .env.local, затем .env, затем переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(".env.local"); err != nil {
		// .env файл опционален
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
