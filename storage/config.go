package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
)

// envOverrides are applied on top of the loaded file so a unit can be
// repointed (e.g. at a different TV) without editing config.json.
// Variables: GAMEBOX_ROKU_ADDRESS, GAMEBOX_ROKU_ENABLED,
// GAMEBOX_FULLSCREEN, GAMEBOX_ARTWORK_DIR.
type envOverrides struct {
	RokuAddress string `envconfig:"ROKU_ADDRESS"`
	RokuEnabled *bool  `envconfig:"ROKU_ENABLED"`
	Fullscreen  *bool  `envconfig:"FULLSCREEN"`
	ArtworkDir  string `envconfig:"ARTWORK_DIR"`
}

// LoadConfig loads configuration from path on fs.
// A missing file yields defaults. A corrupted file yields defaults and an
// error so the caller can log it; the kiosk must still come up.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	config := DefaultConfig()

	data, err := afero.ReadFile(fs, path)
	switch {
	case os.IsNotExist(err):
		// First boot: run with defaults.
	case err != nil:
		return applyEnv(config), fmt.Errorf("read config: %w", err)
	default:
		loaded := &Config{}
		if uerr := json.Unmarshal(data, loaded); uerr != nil {
			return applyEnv(config), fmt.Errorf("parse config: %w", uerr)
		}
		config = migrateConfig(loaded)
	}

	return applyEnv(config), nil
}

// SaveConfig writes the configuration atomically: write to a temp file in
// the same directory, then rename over the target.
func SaveConfig(fs afero.Fs, path string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		fs.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// CreateConfigIfMissing writes a default config.json so the file is there
// to edit after first boot.
func CreateConfigIfMissing(fs afero.Fs, path string) error {
	if _, err := fs.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return SaveConfig(fs, path, DefaultConfig())
}

func applyEnv(config *Config) *Config {
	var env envOverrides
	if err := envconfig.Process("gamebox", &env); err != nil {
		return config
	}
	if env.RokuAddress != "" {
		config.Roku.Address = env.RokuAddress
	}
	if env.RokuEnabled != nil {
		config.Roku.Enabled = *env.RokuEnabled
	}
	if env.Fullscreen != nil {
		config.Window.Fullscreen = *env.Fullscreen
	}
	if env.ArtworkDir != "" {
		config.Artwork = env.ArtworkDir
	}
	return config
}
