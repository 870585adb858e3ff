package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ORDERGEN"

// Config captures the knobs of a dataset generation run.
type Config struct {
	Orders    int    `mapstructure:"orders"`
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`
	// Output is the CSV destination; empty means the default datasets directory.
	Output   string `mapstructure:"output"`
	Summary  bool   `mapstructure:"summary"`
	LogLevel string `mapstructure:"log_level"`
}

// Defaults generates October 2024.
func Defaults() Config {
	return Config{
		Orders:    10000,
		StartDate: "2024-10-01",
		EndDate:   "2024-10-31",
		LogLevel:  "info",
	}
}

// FromEnv loads an optional .env file and applies ORDERGEN_* environment
// overrides on top of Defaults.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	def := Defaults()
	v.SetDefault("orders", def.Orders)
	v.SetDefault("start_date", def.StartDate)
	v.SetDefault("end_date", def.EndDate)
	v.SetDefault("output", def.Output)
	v.SetDefault("summary", def.Summary)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
