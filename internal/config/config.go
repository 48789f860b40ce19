package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN string
}

type AuthConfig struct {
	AccessSecret string
}

type GenerateConfig struct {
	Seed         int64
	AsOf         time.Time
	OutputDir    string
	ProjectsFile string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Generate    GenerateConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN: v.GetString("DB_DSN"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Generate: GenerateConfig{
			Seed:         v.GetInt64("SEED"),
			OutputDir:    v.GetString("OUTPUT_DIR"),
			ProjectsFile: v.GetString("PROJECTS_FILE"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Generate.Seed == 0 {
		cfg.Generate.Seed = 42
	}
	if cfg.Generate.OutputDir == "" {
		cfg.Generate.OutputDir = "./dataset"
	}

	// AS_OF pins the change-order staleness reference so reruns reproduce
	// the same statuses. Unset, it falls back to the current date.
	if raw := v.GetString("AS_OF"); raw != "" {
		asOf, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("AS_OF must be YYYY-MM-DD: %w", err)
		}
		cfg.Generate.AsOf = asOf
	} else {
		cfg.Generate.AsOf = time.Now().UTC().Truncate(24 * time.Hour)
	}

	return cfg, nil
}
