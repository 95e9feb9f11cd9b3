package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FarisHijazi/csv-profiler/internal/profile"
	"github.com/FarisHijazi/csv-profiler/internal/reader"
	"github.com/FarisHijazi/csv-profiler/internal/render"
	"github.com/FarisHijazi/csv-profiler/internal/utils"
)

var (
	profOutDir string
	profFormat string
	profTopK   int
	profStrict bool
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Profile a CSV file and generate statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		format := strings.ToLower(strings.TrimSpace(profFormat))
		switch format {
		case "json", "markdown", "md", "both", "table":
		default:
			return fmt.Errorf("unsupported --format: %s (use json|markdown|both|table)", profFormat)
		}

		header, rows, err := reader.ReadFile(path)
		if err != nil {
			return err
		}

		opts := profile.Options{Header: header, TopK: cfg.TopK, Strict: cfg.Strict}
		if cmd.Flags().Changed("top-k") {
			opts.TopK = profTopK
		}
		if cmd.Flags().Changed("strict") {
			opts.Strict = profStrict
		}

		result, err := profile.Build(rows, opts)
		if err != nil {
			return err
		}

		if format == "table" {
			fmt.Printf("Profiled %d rows, %d columns\n\n", result.NRows, result.NCols)
			fmt.Println(render.Table(result))
			return nil
		}

		outDir := profOutDir
		if outDir == "" && !cmd.Flags().Changed("out-dir") {
			outDir = cfg.OutDir
		}
		if outDir != "" {
			if err := utils.EnsureDir(outDir); err != nil {
				return err
			}
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		if format == "json" || format == "both" {
			out, err := render.JSON(result)
			if err != nil {
				return err
			}
			if outDir != "" {
				dst := filepath.Join(outDir, stem+"_profile.json")
				if err := utils.SafeWriteFile(dst, []byte(out)); err != nil {
					return err
				}
				fmt.Printf("✓ JSON report saved to: %s\n", dst)
			} else {
				fmt.Println(out)
			}
		}

		if format == "markdown" || format == "md" || format == "both" {
			out := render.Markdown(result)
			if outDir != "" {
				dst := filepath.Join(outDir, stem+"_profile.md")
				if err := utils.SafeWriteFile(dst, []byte(out)); err != nil {
					return err
				}
				fmt.Printf("✓ Markdown report saved to: %s\n", dst)
			} else {
				fmt.Println(out)
			}
		}

		if outDir != "" {
			fmt.Printf("\nProfiled %d rows, %d columns\n", result.NRows, result.NCols)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&profOutDir, "out-dir", "o", "", "output directory for reports (default: print to stdout)")
	profileCmd.Flags().StringVarP(&profFormat, "format", "f", "json", "output format: json | markdown | both | table")
	profileCmd.Flags().IntVar(&profTopK, "top-k", profile.DefaultTopK, "how many top values to keep per text column")
	profileCmd.Flags().BoolVar(&profStrict, "strict", false, "fail on rows with columns outside the header")
}
