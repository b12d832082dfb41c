// filepath: internal/config/config.go
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Storage  StorageConfig  `toml:"storage"`
	Logging  LoggingConfig  `toml:"logging"`

	MaxUploadSizeBytes int64 `toml:"-"` // Runtime computed value
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	MaxUploadSize string `toml:"max_upload_size"` // e.g. "5MB", "512KB"
}

// DatabaseConfig holds the database configuration.
//
// An empty Path means "no database configured": read endpoints serve the
// built-in fixture dataset and write endpoints answer 503.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// StorageConfig selects and configures the image blob store.
type StorageConfig struct {
	Backend string `toml:"backend"` // "local", "s3" or "cloudinary"; empty disables uploads

	LocalRoot     string `toml:"local_root"`
	PublicBaseURL string `toml:"public_base_url"`

	S3Bucket  string `toml:"s3_bucket"`
	S3Region  string `toml:"s3_region"`
	S3BaseURL string `toml:"s3_base_url"` // optional CDN front, e.g. CloudFront

	CloudinaryURL string `toml:"cloudinary_url"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// DatabaseConfigured reports whether a relational store is available.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.Path != ""
}

// StorageConfigured reports whether an image blob store is available.
func (c *Config) StorageConfigured() bool {
	return c.Storage.Backend != ""
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable sizes.
func (c *Config) ParseAndValidate() error {
	// Default MaxUploadSize to 5MB if not specified, matching the upload
	// contract of the API.
	if c.Server.MaxUploadSize == "" {
		c.Server.MaxUploadSize = "5MB"
	}

	sizeBytes, err := parseSize(c.Server.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	c.MaxUploadSizeBytes = sizeBytes

	switch c.Storage.Backend {
	case "", "local", "s3", "cloudinary":
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}

	return nil
}

// parseSize parses a size string (e.g., "100G", "500MB") into bytes.
func parseSize(sizeStr string) (int64, error) {
	re := regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G|T)?B?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(sizeStr))

	if len(matches) < 2 {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	unit := ""
	if len(matches) > 2 {
		unit = strings.ToUpper(matches[2])
	}

	switch unit {
	case "T":
		return value * (1 << 40), nil
	case "G":
		return value * (1 << 30), nil
	case "M":
		return value * (1 << 20), nil
	case "K":
		return value * (1 << 10), nil
	default:
		return value, nil
	}
}
