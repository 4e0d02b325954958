package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.1.0"

	// Global flags
	archiveDir string
	logLevel   string
	logFile    string

	// Set up by the root command before any subcommand runs
	cfg    EnvConfig
	logger = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already printed the error, just exit
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "archive-html",
	Short: "Static HTML pages from an account archive",
	Long: `A CLI tool that turns an exported account archive into paginated,
self-contained HTML timeline pages that reference locally cached media.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadEnvConfig()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("dir") {
			cfg.Dir = archiveDir
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if flags.Changed("log-file") {
			cfg.LogFile = logFile
		}

		logger, err = NewLogger(cfg.LogLevel, cfg.LogFile)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&archiveDir, "dir", ".", "Directory holding the archive file and media (env ARCHIVE_DIR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error (env ARCHIVE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also log to this rotating file (env ARCHIVE_LOG_FILE)")

	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(showCmd)
}
