package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/FarisHijazi/csv-profiler/internal/profile"
)

// Global configuration structure.
type Global struct {
	// TopK bounds the frequency list kept for text columns.
	TopK int `mapstructure:"top_k" yaml:"top_k"`
	// Strict rejects rows whose keys fall outside the header.
	Strict bool `mapstructure:"strict" yaml:"strict"`
	// OutDir is the default report output directory for the CLI;
	// empty means print to stdout.
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`

	// Web front end
	WebAddr        string `mapstructure:"web_addr" yaml:"web_addr"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Default returns the built-in configuration. Load seeds its defaults from
// here, and callers that cannot load a config fall back to it, so the two
// cannot drift.
func Default() *Global {
	return &Global{
		TopK:           profile.DefaultTopK,
		Strict:         false,
		OutDir:         "",
		WebAddr:        ":8080",
		MaxUploadBytes: 32 << 20,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.csv-profiler/config.yaml, creating the directory
// if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".csv-profiler")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CSVPROF")
	v.AutomaticEnv()

	// Defaults
	d := Default()
	v.SetDefault("top_k", d.TopK)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("out_dir", d.OutDir)
	v.SetDefault("web_addr", d.WebAddr)
	v.SetDefault("max_upload_bytes", d.MaxUploadBytes)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".csv-profiler")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
