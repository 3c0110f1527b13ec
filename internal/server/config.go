package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/plutus-labs/finadvisor/internal/config"
	"github.com/plutus-labs/finadvisor/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address          string               `yaml:"address"`
	MaxRequestSize   string               `yaml:"maxRequestSize"`
	Logging          config.LoggingConfig `yaml:"logging"`
	requestSizeBytes int64
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:          constants.DefaultServerAddress,
		MaxRequestSize:   fmt.Sprintf("%d", constants.DefaultMaxRequestSizeBytes),
		Logging:          config.LoggingConfig{},
		requestSizeBytes: constants.DefaultMaxRequestSizeBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if strings.TrimSpace(cfg.Address) == "" {
		cfg.Address = constants.DefaultServerAddress
	}

	size, err := parseSize(cfg.MaxRequestSize)
	if err != nil {
		return nil, fmt.Errorf("invalid maxRequestSize: %w", err)
	}
	cfg.requestSizeBytes = size

	return cfg, nil
}

// RequestSizeBytes returns the parsed maximum request body size.
func (c *Config) RequestSizeBytes() int64 {
	if c.requestSizeBytes <= 0 {
		return constants.DefaultMaxRequestSizeBytes
	}
	return c.requestSizeBytes
}

// parseSize accepts a plain byte count or a value with a KB/MB suffix.
func parseSize(raw string) (int64, error) {
	value := strings.TrimSpace(strings.ToUpper(raw))
	if value == "" {
		return constants.DefaultMaxRequestSizeBytes, nil
	}

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(value, "MB"):
		multiplier = 1024 * 1024
		value = strings.TrimSpace(strings.TrimSuffix(value, "MB"))
	case strings.HasSuffix(value, "KB"):
		multiplier = 1024
		value = strings.TrimSpace(strings.TrimSuffix(value, "KB"))
	case strings.HasSuffix(value, "B"):
		value = strings.TrimSpace(strings.TrimSuffix(value, "B"))
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse size %q", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("size must be positive, got %q", raw)
	}
	return n * multiplier, nil
}
