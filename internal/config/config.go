package config

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress        string        `env:"RUN_ADDRESS" envDefault:"localhost:8085"`
	APIBaseURL        string        `env:"API_BASE_URL" envDefault:"https://banshi-fe4m.onrender.com"`
	APITimeout        time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	SecretKey         string        `env:"KEY" envDefault:""`
	AdminLogin        string        `env:"ADMIN_LOGIN" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH" envDefault:""`
	DatabaseURI       string        `env:"DATABASE_URI" envDefault:""`
	RedisAddr         string        `env:"REDIS_ADDR" envDefault:""`
	RedisPassword     string        `env:"REDIS_PASSWORD" envDefault:""`
	CacheTTL          time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	RateLimit         float64       `env:"RATE_LIMIT" envDefault:"10"`
	RateBurst         int           `env:"RATE_BURST" envDefault:"20"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads an optional .env file from the working directory and then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) ParseFlags() {
	cfg.parseFlags(flag.CommandLine, os.Args[1:])
}

func (cfg *Config) parseFlags(flags *flag.FlagSet, args []string) {
	var (
		runAddress string
		baseURL    string
		timeout    time.Duration
		secretKey  string
		dbURI      string
		redisAddr  string
		logLevel   string
	)

	flags.StringVar(&runAddress, "a", "", "console address host:port")
	flags.StringVar(&baseURL, "u", "", "admin API base URL")
	flags.DurationVar(&timeout, "t", 0, "admin API request timeout")
	flags.StringVar(&secretKey, "k", "", "secret key to sign console tokens")
	flags.StringVar(&dbURI, "d", "", "journal database DSN")
	flags.StringVar(&redisAddr, "r", "", "redis address for the shared cache")
	flags.StringVar(&logLevel, "l", "", "log level")

	_ = flags.Parse(args)

	if runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if baseURL != "" {
		cfg.APIBaseURL = baseURL
	}

	if timeout > 0 {
		cfg.APITimeout = timeout
	}

	if secretKey != "" {
		cfg.SecretKey = secretKey
	}

	if dbURI != "" {
		cfg.DatabaseURI = dbURI
	}

	if redisAddr != "" {
		cfg.RedisAddr = redisAddr
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}
