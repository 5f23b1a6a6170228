package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileName is looked up in the config directory passed to Load.
const ConfigFileName = "goalviz.cfg.json"

// FileConfig holds file storage backend settings
type FileConfig struct {
	OutputDir      string `json:"outputDir" mapstructure:"outputDir"`
	CompressOutput bool   `json:"compressOutput" mapstructure:"compressOutput"`
	ExportScene    bool   `json:"exportScene" mapstructure:"exportScene"`
}

// StorageConfig selects where rendered diagrams go
type StorageConfig struct {
	Type string     `json:"type" mapstructure:"type"`
	File FileConfig `json:"file" mapstructure:"file"`
}

// RenderConfig holds presentation settings
type RenderConfig struct {
	// Width is the presentation width in pixels; height scales with it.
	Width int `json:"width" mapstructure:"width"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName  string        `json:"serviceName" mapstructure:"serviceName"`
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. Defaults stay in
// effect when the file cannot be read.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./goalvizlogs")

	viper.SetDefault("render.width", 404)

	viper.SetDefault("storage.type", "file")
	viper.SetDefault("storage.file.outputDir", "./renders")
	viper.SetDefault("storage.file.compressOutput", false)
	viper.SetDefault("storage.file.exportScene", true)

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "goalviz")
	viper.SetDefault("otel.batchTimeout", 2*time.Second)

	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetStorageConfig returns the storage settings.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		File: FileConfig{
			OutputDir:      viper.GetString("storage.file.outputDir"),
			CompressOutput: viper.GetBool("storage.file.compressOutput"),
			ExportScene:    viper.GetBool("storage.file.exportScene"),
		},
	}
}

// GetRenderConfig returns the presentation settings.
func GetRenderConfig() RenderConfig {
	return RenderConfig{Width: viper.GetInt("render.width")}
}

// GetOTelConfig returns the OpenTelemetry settings.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}
