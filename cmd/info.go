package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FarisHijazi/csv-profiler/internal/reader"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show basic info about a CSV file without full profiling",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		header, rows, err := reader.ReadFile(path)
		if err != nil {
			return err
		}
		if len(header) == 0 {
			fmt.Println("Empty CSV file")
			return nil
		}
		fmt.Printf("File: %s\n", path)
		fmt.Printf("Rows: %d\n", len(rows))
		fmt.Printf("Columns: %d\n", len(header))
		fmt.Printf("Column names: %s\n", strings.Join(header, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
