package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	ViaCEPBaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	ServerPort    string
	Environment   string

	// Cooldown entre reenvios do código de verificação.
	ResendCooldown time.Duration
}

func Load() *Config {
	// .env é conveniência de desenvolvimento; em produção as variáveis
	// vêm do ambiente.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:3333"),
		ViaCEPBaseURL:  getEnv("VIACEP_BASE_URL", "https://viacep.com.br"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		SessionSecret:  getEnv("SESSION_SECRET", "changeme"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("APP_ENV", "development"),
		ResendCooldown: time.Duration(getEnvInt("RESEND_COOLDOWN_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}
