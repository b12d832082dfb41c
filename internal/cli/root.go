// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shinohara-jil/recipe-app/internal/config"
	"github.com/shinohara-jil/recipe-app/internal/logging"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile        string
	port           int
	logLevel       string
	dbPath         string
	storageBackend string
	maxUpload      string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "recipehub",
	Short: "RecipeHub API",
	Long:  `A REST API for keeping a personal recipe collection: recipes, categories, photos and the today's-menu pick.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the configuration file. (Env: RECIPEHUB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: RECIPEHUB_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. Empty serves the fixture dataset read-only. (Env: RECIPEHUB_DATABASE_PATH)")

	// Server-specific flags
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: RECIPEHUB_PORT)")
	RootCmd.Flags().StringVar(&storageBackend, "storage-backend", "", "Image storage backend: local, s3 or cloudinary. (Env: RECIPEHUB_STORAGE_BACKEND)")
	RootCmd.Flags().StringVar(&maxUpload, "max-upload", "", "Max size for image uploads (e.g. '5MB'). (Env: RECIPEHUB_MAX_UPLOAD)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig() error {
	// Local development convenience; a missing .env is not an error.
	godotenv.Load()

	if envPath := os.Getenv("RECIPEHUB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Rely on defaults/flags if there is no config file.
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level)
	return nil
}

func applyOverrides(c *config.Config) {
	// --- 1. Environment variables ---
	if v := os.Getenv("RECIPEHUB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("RECIPEHUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RECIPEHUB_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("RECIPEHUB_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("RECIPEHUB_STORAGE_ROOT"); v != "" {
		c.Storage.LocalRoot = v
	}
	if v := os.Getenv("RECIPEHUB_S3_BUCKET"); v != "" {
		c.Storage.S3Bucket = v
	}
	if v := os.Getenv("RECIPEHUB_S3_REGION"); v != "" {
		c.Storage.S3Region = v
	}
	if v := os.Getenv("CLOUDINARY_URL"); v != "" && c.Storage.CloudinaryURL == "" {
		c.Storage.CloudinaryURL = v
	}
	if v := os.Getenv("RECIPEHUB_MAX_UPLOAD"); v != "" {
		c.Server.MaxUploadSize = v
	}

	// --- 2. CLI flags (take precedence) ---
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if storageBackend != "" {
		c.Storage.Backend = storageBackend
	}
	if maxUpload != "" {
		c.Server.MaxUploadSize = maxUpload
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
