package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Export ExportConfig
	Lookup LookupConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Path string
}

type ExportConfig struct {
	Dir string
}

// LookupConfig configures the optional USDA FoodData Central lookup.
// An empty APIKey disables the lookup; the key must come from the
// environment or .env and is never committed.
type LookupConfig struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine as long as the environment provides the values.
	_ = viper.ReadInConfig()

	lookupTimeout, err := time.ParseDuration(viper.GetString("FDC_TIMEOUT"))
	if err != nil {
		lookupTimeout = 5 * time.Second
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("LOOKUP_CACHE_TTL"))
	if err != nil {
		cacheTTL = 1 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Path: viper.GetString("DB_PATH"),
		},
		Export: ExportConfig{
			Dir: viper.GetString("EXPORT_DIR"),
		},
		Lookup: LookupConfig{
			APIKey:   viper.GetString("FDC_API_KEY"),
			BaseURL:  viper.GetString("FDC_BASE_URL"),
			Timeout:  lookupTimeout,
			CacheTTL: cacheTTL,
		},
	}

	if config.App.Port == "" {
		config.App.Port = "8080"
	}
	if config.DB.Path == "" {
		config.DB.Path = "nutritional_planner.db"
	}
	if config.Export.Dir == "" {
		config.Export.Dir = "exports"
	}
	if config.Lookup.BaseURL == "" {
		config.Lookup.BaseURL = "https://api.nal.usda.gov/fdc/v1"
	}

	return config, nil
}
