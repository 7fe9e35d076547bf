package config

import (
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings of the catalog console.
type Config struct {
	DataDir        string
	SnapshotFile   string
	CSVFile        string
	SeedSampleData bool
	Logger         LoggerConfig
}

type LoggerConfig struct {
	Level    string
	Encoding string
	// File is relative to DataDir unless absolute.
	File   string
	Stderr bool
}

// LogPath resolves the log file location.
func (c Config) LogPath() string {
	if filepath.IsAbs(c.Logger.File) {
		return c.Logger.File
	}
	return filepath.Join(c.DataDir, c.Logger.File)
}

// New returns a viper instance with every default set and environment
// variables bound under the CATALOG_ prefix (CATALOG_DATA_DIR, CATALOG_LOG_LEVEL, ...).
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("SNAPSHOT_FILE", "products.db")
	v.SetDefault("CSV_FILE", "products.csv")
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "json")
	v.SetDefault("LOG_FILE", filepath.Join("logs", "catalog.log"))
	v.SetDefault("LOG_STDERR", false)

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // Load environment variables
	return v
}

// Load reads an optional .env file, then the environment, into a Config.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...) // Load .env file if it exists
	return FromViper(New())
}

// FromViper converts a configured viper instance into a Config.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		DataDir:        v.GetString("DATA_DIR"),
		SnapshotFile:   v.GetString("SNAPSHOT_FILE"),
		CSVFile:        v.GetString("CSV_FILE"),
		SeedSampleData: v.GetBool("SEED_SAMPLE_DATA"),
		Logger: LoggerConfig{
			Level:    v.GetString("LOG_LEVEL"),
			Encoding: v.GetString("LOG_ENCODING"),
			File:     v.GetString("LOG_FILE"),
			Stderr:   v.GetBool("LOG_STDERR"),
		},
	}
}
