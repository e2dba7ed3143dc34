package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Log         struct {
		Level slog.Level `env:"LEVEL" envDefault:"INFO"`
	} `envPrefix:"LOG_"`
	Database struct {
		Driver             string `env:"DRIVER" envDefault:"pgx"` // pgx | sqlite
		DSN                string `env:"DSN,required"`
		ConnectTimeout     int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout       int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		TransactionTimeout int    `env:"TRANSACTION_TIMEOUT" envDefault:"20"`
		AutoMigrate        bool   `env:"AUTO_MIGRATE" envDefault:"true"`
	} `envPrefix:"DATABASE_"`
	InitialAdmin struct {
		Username string `env:"USERNAME" envDefault:"admin"`
		Password string `env:"PASSWORD,required"`
		FullName string `env:"FULL_NAME" envDefault:"Administrator"`
	} `envPrefix:"INITIAL_ADMIN_"`
	Password struct {
		Algorithm  string `env:"ALGORITHM" envDefault:"bcrypt"` // bcrypt | argon2id
		BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
	} `envPrefix:"PASSWORD_"`
	Seed struct {
		User struct {
			Password string `env:"PASSWORD"`
		} `envPrefix:"USER_"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	// .env bersifat opsional, variabel lingkungan yang sudah ada tidak ditimpa
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// hanya kembalikan error pertama agar log lebih jelas
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
