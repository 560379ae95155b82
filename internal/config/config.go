package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	RedisAddr     string `env:"REDIS_ADDRESS"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	LockWaitTimeout  time.Duration `env:"LOCK_WAIT_TIMEOUT"`
	LockLeaseTimeout time.Duration `env:"LOCK_LEASE_TIMEOUT"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.RedisAddr == "" {
		return nil, errors.New("redis address is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.RedisAddr, "r", "localhost:6379", "Redis address in format host:port")
	flag.StringVar(&flagConfig.RedisPassword, "rp", "", "Redis password")
	flag.IntVar(&flagConfig.RedisDB, "rdb", 0, "Redis database number")
	flag.DurationVar(&flagConfig.LockWaitTimeout, "lw", 0, "Account lock wait timeout")
	flag.DurationVar(&flagConfig.LockLeaseTimeout, "ll", 0, "Account lock lease timeout")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:       defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:      defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:    defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		RedisAddr:        defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		RedisPassword:    defaultIfBlank(envConfig.RedisPassword, flagsConfig.RedisPassword),
		RedisDB:          defaultIfZero(envConfig.RedisDB, flagsConfig.RedisDB),
		LockWaitTimeout:  defaultIfZero(envConfig.LockWaitTimeout, flagsConfig.LockWaitTimeout),
		LockLeaseTimeout: defaultIfZero(envConfig.LockLeaseTimeout, flagsConfig.LockLeaseTimeout),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
