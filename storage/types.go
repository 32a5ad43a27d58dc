package storage

// Config is the kiosk configuration stored in config.json.
type Config struct {
	Version int          `json:"version"`
	Roku    RokuConfig   `json:"roku"`
	Window  WindowConfig `json:"window"`
	Round   RoundConfig  `json:"round"`
	Artwork string       `json:"artworkDir"` // directory of show artwork PNGs
}

// RokuConfig points the remote panel and the show launcher at the TV.
type RokuConfig struct {
	Address   string `json:"address"` // host:port of the Roku ECP endpoint
	Enabled   bool   `json:"enabled"` // false = no network calls at all
	TimeoutMS int    `json:"timeoutMs"`
}

// WindowConfig contains display settings. The target panel is a
// HyperPixel 4.0 Square, hence the 720x720 default.
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// RoundConfig contains timed mini-game tunables.
type RoundConfig struct {
	DurationSec int `json:"durationSec"`
	MaxCritters int `json:"maxCritters"`
}

// DefaultConfig returns the configuration used when config.json is missing.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Roku: RokuConfig{
			Address:   "10.0.0.60:8060",
			Enabled:   false,
			TimeoutMS: 3000,
		},
		Window: WindowConfig{
			Width:      720,
			Height:     720,
			Fullscreen: true,
		},
		Round: RoundConfig{
			DurationSec: 45,
			MaxCritters: 3,
		},
		Artwork: "artwork",
	}
}

// migrateConfig fills fields missing from older config files.
func migrateConfig(config *Config) *Config {
	if config.Version == 0 {
		config.Version = 1
	}
	if config.Roku.Address == "" {
		config.Roku.Address = "10.0.0.60:8060"
	}
	if config.Roku.TimeoutMS == 0 {
		config.Roku.TimeoutMS = 3000
	}
	if config.Window.Width == 0 {
		config.Window.Width = 720
	}
	if config.Window.Height == 0 {
		config.Window.Height = 720
	}
	if config.Round.DurationSec == 0 {
		config.Round.DurationSec = 45
	}
	if config.Round.MaxCritters == 0 {
		config.Round.MaxCritters = 3
	}
	if config.Artwork == "" {
		config.Artwork = "artwork"
	}
	return config
}
