package config

import (
	"fmt"
	"time"
)

type HTTPConfig struct {
	Port           int `koanf:"port"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readHeader"`
	} `koanf:"timeout"`
}

func (c *HTTPConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.Port)
	}
	if c.Timeout.Read <= 0 {
		return fmt.Errorf("invalid HTTP server read timeout: %v", c.Timeout.Read)
	}
	if c.Timeout.Write <= 0 {
		return fmt.Errorf("invalid HTTP server write timeout: %v", c.Timeout.Write)
	}
	if c.Timeout.Idle <= 0 {
		return fmt.Errorf("invalid HTTP server idle timeout: %v", c.Timeout.Idle)
	}
	if c.Timeout.ReadHeader <= 0 {
		return fmt.Errorf("invalid HTTP server read header timeout: %v", c.Timeout.ReadHeader)
	}
	return nil
}

// StoreConfig holds the location of the embedded database file.
type StoreConfig struct {
	Path    string        `koanf:"path"`
	Timeout time.Duration `koanf:"timeout"`
}

func (c *StoreConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("store path is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid store open timeout: %v", c.Timeout)
	}
	return nil
}

type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *LogConfig) Validate() error {
	return nil
}

type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

func (c *PProfConfig) Validate() error {
	if c.Enabled && c.Addr == "" {
		return fmt.Errorf("pprof is enabled but address is not configured")
	}
	return nil
}

type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout is not configured")
	}
	return nil
}

// ShopConfig carries the shop identity printed on receipts.
type ShopConfig struct {
	Name      string `koanf:"name"`
	Tagline   string `koanf:"tagline"`
	VATNumber string `koanf:"vatNumber"`
	Currency  string `koanf:"currency"`
}

func (c *ShopConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("shop name is not configured")
	}
	return nil
}

// InsightConfig points at the optional business-insight collaborator.
// An empty URL disables the remote call; the static fallback tip is used.
type InsightConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

func (c *InsightConfig) Validate() error {
	if c.URL != "" && c.Timeout <= 0 {
		return fmt.Errorf("insight endpoint configured without a timeout")
	}
	return nil
}
