package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/loan-calculator/internal/config"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address      string               `yaml:"address"`
	ReadTimeout  string               `yaml:"readTimeout"`
	WriteTimeout string               `yaml:"writeTimeout"`
	MaxBodySize  string               `yaml:"maxBodySize"`
	Logging      config.LoggingConfig `yaml:"logging"`

	readTimeout  time.Duration
	writeTimeout time.Duration
	bodySize     int64
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:      constants.DefaultServerAddress,
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
		MaxBodySize:  fmt.Sprintf("%d", constants.DefaultMaxBodyBytes),
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read server config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadTimeoutDuration returns the parsed read timeout.
func (c *Config) ReadTimeoutDuration() time.Duration {
	return c.readTimeout
}

// WriteTimeoutDuration returns the parsed write timeout.
func (c *Config) WriteTimeoutDuration() time.Duration {
	return c.writeTimeout
}

// BodySizeBytes returns the maximum accepted request body size in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySize
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	var err error
	if c.readTimeout, err = parseTimeout("readTimeout", c.ReadTimeout, constants.DefaultReadTimeout); err != nil {
		return err
	}
	if c.writeTimeout, err = parseTimeout("writeTimeout", c.WriteTimeout, constants.DefaultWriteTimeout); err != nil {
		return err
	}

	bytes, err := ParseSize(c.MaxBodySize)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxBodyBytes
	}
	c.bodySize = bytes
	return nil
}

func parseTimeout(name, value, fallback string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = fallback
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", name, value)
	}
	return d, nil
}

// ParseSize converts a human-friendly byte string (e.g., "16K", "1M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodyBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
