// Package config handles configuration persistence for the eipserve device.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the complete device configuration.
type Config struct {
	Listen      string         `yaml:"listen"`                 // TCP listen address, default ":44818"
	Identity    IdentityConfig `yaml:"identity"`
	DebugLog    string         `yaml:"debug_log,omitempty"`    // protocol debug log path, empty disables
	DebugFilter string         `yaml:"debug_filter,omitempty"` // comma-separated protocol filter
	EventLog    string         `yaml:"event_log,omitempty"`    // connection event log path, empty disables
}

// IdentityConfig holds the values served from the Identity object.
type IdentityConfig struct {
	VendorID      uint16 `yaml:"vendor_id"`
	DeviceType    uint16 `yaml:"device_type"`
	ProductCode   uint16 `yaml:"product_code"`
	RevisionMajor uint8  `yaml:"revision_major"`
	RevisionMinor uint8  `yaml:"revision_minor"`
	SerialNumber  uint32 `yaml:"serial_number"`
	ProductName   string `yaml:"product_name"`
}

// Revision packs major and minor into the wire form of Identity attribute 4
// (major in the low byte).
func (i IdentityConfig) Revision() uint16 {
	return uint16(i.RevisionMajor) | uint16(i.RevisionMinor)<<8
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "eipserve.yaml"
	}
	return filepath.Join(home, ".config", "eipserve", "config.yaml")
}

// Default returns a configuration with usable defaults: the standard
// EtherNet/IP port and a generic identity.
func Default() *Config {
	return &Config{
		Listen: ":44818",
		Identity: IdentityConfig{
			VendorID:      1,
			DeviceType:    0x0c, // communications adapter
			ProductCode:   1,
			RevisionMajor: 1,
			RevisionMinor: 0,
			SerialNumber:  1,
			ProductName:   "eipserve",
		},
	}
}

// Load reads the configuration from path.  A missing file returns the
// defaults rather than an error so first runs work unconfigured.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("Load: failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("Load: failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("Save: failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("Save: failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("Save: failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":44818"
	}
	if c.Identity.ProductName == "" {
		c.Identity.ProductName = "eipserve"
	}
}
