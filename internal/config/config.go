// Package config loads application configuration from a YAML file,
// environment variables, and defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Dashboard DashboardConfig
	Retrieval RetrievalConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	DataDir string
}

// DashboardConfig holds settings for the terminal dashboard.
type DashboardConfig struct {
	// APIBaseURL is the raglab server the dashboard reads from.
	APIBaseURL string
}

// RetrievalConfig holds retrieval and ingestion settings.
type RetrievalConfig struct {
	TopK         int
	WeakScore    float64
	StrongScore  float64
	ChunkSize    int
	ChunkOverlap int
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

// Load reads configuration from config.yaml (working directory, ./config,
// or ~/.raglab), RAGLAB_-prefixed env vars, and defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.raglab")

	v.SetEnvPrefix("RAGLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.bodyLimit", 10485760)

	v.SetDefault("storage.dataDir", "")

	v.SetDefault("dashboard.apiBaseURL", "http://localhost:8080")

	v.SetDefault("retrieval.topK", 5)
	v.SetDefault("retrieval.weakScore", 0.1)
	v.SetDefault("retrieval.strongScore", 0.75)
	v.SetDefault("retrieval.chunkSize", 1000)
	v.SetDefault("retrieval.chunkOverlap", 200)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputPath", "stdout")
}
