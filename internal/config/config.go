package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "24h" decode directly
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds the deployment's settings. Load reads them from a YAML file
// and then applies environment overrides for values that vary per deployment.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Market struct {
		SettlementWindow Duration `yaml:"settlement_window"`
		MinListingLead   Duration `yaml:"min_listing_lead"`
		MaxListingLead   Duration `yaml:"max_listing_lead"`
		MaxPrice         uint64   `yaml:"max_price"`
	} `yaml:"market"`

	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
	} `yaml:"logging"`
}

// Default returns the configuration used when no file overrides it
func Default() Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Market.SettlementWindow = Duration(24 * time.Hour)
	cfg.Market.MinListingLead = Duration(time.Minute)
	cfg.Market.MaxListingLead = Duration(30 * 24 * time.Hour)
	cfg.Storage.Path = "data/settlement.db"
	cfg.Logging.Level = "info"
	return cfg
}

// Load reads the configuration file at path, merged over defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Market.SettlementWindow <= 0 {
		return fmt.Errorf("settlement window must be positive")
	}
	if c.Market.MinListingLead <= 0 {
		return fmt.Errorf("min listing lead must be positive")
	}
	if c.Market.MaxListingLead < c.Market.MinListingLead {
		return fmt.Errorf("max listing lead must not be below min listing lead")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}
	return nil
}

// overrideWithEnv applies environment variables over the loaded file
func overrideWithEnv(cfg *Config) {
	if port := os.Getenv("SETTLEMENT_PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil {
			cfg.Server.Port = p
		}
	}
	if path := os.Getenv("SETTLEMENT_DB_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if level := os.Getenv("SETTLEMENT_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
