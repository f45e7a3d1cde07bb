package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DatabaseURL string

	CORSOrigins []string

	RedisAddr    string
	RedisDB      int
	IdempTTLSecs int

	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OpenAIModel    string
	LLMTimeoutSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	c := &Config{
		AppPort:     getenv("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  getenv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:    getenv("OPENAI_MODEL", "gpt-4o-mini"),
		LLMTimeoutSecs: getenvInt("LLM_TIMEOUT_SECONDS", 60),
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.CORSOrigins = append(c.CORSOrigins, o)
			}
		}
	} else {
		c.CORSOrigins = []string{"http://localhost:5173"}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.DatabaseURL == "" {
		return errors.New("missing DATABASE_URL")
	}
	if c.OpenAIAPIKey == "" {
		return errors.New("missing OPENAI_API_KEY")
	}
	return nil
}
