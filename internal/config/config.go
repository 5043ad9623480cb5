package config

import (
	"os"

	"seotda-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Seotda server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
		MinBet        int `yaml:"minBet" envconfig:"min_bet"`
		MaxBet        int `yaml:"maxBet" envconfig:"max_bet"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; env vars and defaults still apply
func Load() error {
	configFile := util.Getenv("SEOTDA_CONFIG_FILE", "config.yaml")

	config = Config{}

	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("seotda", &config); err != nil {
		return err
	}

	setDefaults(&config)

	config.loaded = true
	return nil
}

func setDefaults(c *Config) {
	if c.MigrationsPath == "" {
		c.MigrationsPath = "./sql"
	}

	if c.Game.StartingChips == 0 {
		c.Game.StartingChips = 5000
	}

	if c.Game.MinBet == 0 {
		c.Game.MinBet = 100
	}

	if c.Game.MaxBet == 0 {
		c.Game.MaxBet = 10000
	}
}
