package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/FarisHijazi/csv-profiler/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set CSV Profiler configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("top_k: %d\n", cfg.TopK)
		fmt.Printf("strict: %t\n", cfg.Strict)
		if cfg.OutDir != "" {
			fmt.Printf("out_dir: %s\n", cfg.OutDir)
		}
		fmt.Printf("web_addr: %s\n", cfg.WebAddr)
		fmt.Printf("max_upload_bytes: %d\n", cfg.MaxUploadBytes)
		fmt.Printf("log_level: %s\n", cfg.LogLevel)
		fmt.Printf("log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "top_k":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("top_k must be a positive integer, got %q", val)
			}
			cfg.TopK = n
		case "strict":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("strict must be a boolean, got %q", val)
			}
			cfg.Strict = b
		case "out_dir":
			cfg.OutDir = val
		case "web_addr":
			cfg.WebAddr = val
		case "max_upload_bytes":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil || n <= 0 {
				return fmt.Errorf("max_upload_bytes must be a positive integer, got %q", val)
			}
			cfg.MaxUploadBytes = n
		case "log_level":
			cfg.LogLevel = val
		case "log_format":
			cfg.LogFormat = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
