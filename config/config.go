// Package config holds the run settings of paacman. Settings are unmarshalled
// from Viper, which merges flags (see /cmd), PAACMAN_* environment variables
// and an optional paacman.yaml file.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Output formats
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// FileName is the settings file looked up in the corpus folder
const FileName = "paacman"

// Settings is the resolved configuration of one analyze run
type Settings struct {
	// folder of .txt FASTA files
	Dir string `mapstructure:"dir"`

	// where reports are written; defaults to the corpus folder
	Out string `mapstructure:"out"`

	// xlsx or csv
	Format string `mapstructure:"format"`

	// worker count, 0 means one per CPU
	Threads int `mapstructure:"threads"`

	// also write SVG figures
	Plot bool `mapstructure:"plot"`

	LogLevel  string `mapstructure:"log-level"`
	Verbose   bool   `mapstructure:"verbose"`
	Benchmark bool   `mapstructure:"benchmark"`

	// explicit settings file, overrides the paacman.yaml lookup
	Config string `mapstructure:"config"`
}

// New returns a Viper instance with paacman's defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("dir", "")
	v.SetDefault("out", "")
	v.SetDefault("format", FormatXLSX)
	v.SetDefault("threads", 0)
	v.SetDefault("plot", false)
	v.SetDefault("log-level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("benchmark", false)
	v.SetDefault("config", "")

	v.SetEnvPrefix("PAACMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the settings file, if any, and decodes v into Settings
func Load(v *viper.Viper) (Settings, error) {
	if err := readFile(v); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	s.Format = strings.ToLower(s.Format)
	if s.Out == "" {
		s.Out = s.Dir
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func readFile(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read settings %s: %w", path, err)
		}
		return nil
	}

	dir := v.GetString("dir")
	if dir == "" {
		return nil
	}
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read settings in %s: %w", dir, err)
	}
	return nil
}

// Validate rejects settings an analyze run cannot use
func (s Settings) Validate() error {
	if s.Dir == "" {
		return errors.New("no input folder given")
	}
	if s.Format != FormatXLSX && s.Format != FormatCSV {
		return fmt.Errorf("unknown output format %q, want %s or %s", s.Format, FormatXLSX, FormatCSV)
	}
	if s.Threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", s.Threads)
	}
	return nil
}

// Workers resolves Threads to a worker count
func (s Settings) Workers() int {
	if s.Threads <= 0 {
		return runtime.NumCPU()
	}
	return s.Threads
}
