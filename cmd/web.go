package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/FarisHijazi/csv-profiler/internal/web"
)

var webAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the upload web interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Pick up CSVPROF_* overrides from a local .env, if present.
		// Config is re-read so the new environment wins.
		if err := godotenv.Load(); err == nil {
			slog.Info("loaded .env file")
			loadConfig()
		}

		if cmd.Flags().Changed("addr") {
			cfg.WebAddr = webAddr
		}

		srv := web.NewServer(cfg)
		slog.Info("serving upload interface",
			"addr", cfg.WebAddr,
			"max_upload_bytes", cfg.MaxUploadBytes,
		)
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(webCmd)
	webCmd.Flags().StringVar(&webAddr, "addr", ":8080", "listen address for the web interface")
}
