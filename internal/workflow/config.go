package workflow

import (
	"os"
	"strconv"
)

// Config holds approval workflow policy settings.
type Config struct {
	// RequireNewVersion, when true, blocks re-submitting a rejected
	// document until a new version has been added.
	RequireNewVersion bool `toml:"require_new_version"`
}

// ConfigEnv maps environment variable names for workflow configuration.
type ConfigEnv struct {
	RequireNewVersion string
}

// Finalize applies environment variable overrides. All policy values have
// usable zero defaults, so there is nothing to validate.
func (c *Config) Finalize(env *ConfigEnv) error {
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge applies set values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.RequireNewVersion {
		c.RequireNewVersion = overlay.RequireNewVersion
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.RequireNewVersion != "" {
		if v := os.Getenv(env.RequireNewVersion); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.RequireNewVersion = b
			}
		}
	}
}
