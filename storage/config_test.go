package storage

import (
	"testing"

	"github.com/spf13/afero"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != 1 {
		t.Errorf("expected version 1, got %d", config.Version)
	}
	if config.Window.Width != 720 || config.Window.Height != 720 {
		t.Errorf("expected 720x720 window, got %dx%d", config.Window.Width, config.Window.Height)
	}
	if config.Roku.Enabled {
		t.Error("roku must be disabled by default")
	}
	if config.Roku.TimeoutMS != 3000 {
		t.Errorf("expected 3000ms roku timeout, got %d", config.Roku.TimeoutMS)
	}
	if config.Round.DurationSec != 45 {
		t.Errorf("expected 45s round, got %d", config.Round.DurationSec)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	config, err := LoadConfig(fs, "config.json")
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if config.Window.Width != 720 {
		t.Errorf("expected default width 720, got %d", config.Window.Width)
	}
}

func TestLoadConfigCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "config.json", []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(fs, "config.json")
	if err == nil {
		t.Error("expected a parse error for corrupt config")
	}
	if config == nil {
		t.Fatal("corrupt config must still yield usable defaults")
	}
	if config.Round.DurationSec != 45 {
		t.Errorf("expected default round duration, got %d", config.Round.DurationSec)
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()

	config := DefaultConfig()
	config.Roku.Address = "192.168.1.50:8060"
	config.Roku.Enabled = true

	if err := SaveConfig(fs, "etc/config.json", config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	// Temp file must not survive the rename.
	if ok, _ := afero.Exists(fs, "etc/config.json.tmp"); ok {
		t.Error("temp file left behind after save")
	}

	loaded, err := LoadConfig(fs, "etc/config.json")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Roku.Address != "192.168.1.50:8060" {
		t.Errorf("address not round-tripped, got %q", loaded.Roku.Address)
	}
	if !loaded.Roku.Enabled {
		t.Error("enabled flag not round-tripped")
	}
}

func TestMigrateFillsMissingFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	// Old config with only an address set.
	if err := afero.WriteFile(fs, "config.json",
		[]byte(`{"roku":{"address":"10.1.1.1:8060"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(fs, "config.json")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Roku.Address != "10.1.1.1:8060" {
		t.Errorf("explicit field lost in migration: %q", config.Roku.Address)
	}
	if config.Window.Width != 720 || config.Round.DurationSec != 45 || config.Version != 1 {
		t.Errorf("migration did not fill defaults: %+v", config)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GAMEBOX_ROKU_ADDRESS", "10.9.9.9:8060")
	t.Setenv("GAMEBOX_ROKU_ENABLED", "true")

	fs := afero.NewMemMapFs()
	config, err := LoadConfig(fs, "config.json")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Roku.Address != "10.9.9.9:8060" {
		t.Errorf("env address override not applied, got %q", config.Roku.Address)
	}
	if !config.Roku.Enabled {
		t.Error("env enabled override not applied")
	}
}

func TestCreateConfigIfMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := CreateConfigIfMissing(fs, "config.json"); err != nil {
		t.Fatalf("CreateConfigIfMissing failed: %v", err)
	}
	if ok, _ := afero.Exists(fs, "config.json"); !ok {
		t.Fatal("config.json not created")
	}

	// Second call must not clobber edits.
	config, _ := LoadConfig(fs, "config.json")
	config.Roku.Address = "edited:8060"
	if err := SaveConfig(fs, "config.json", config); err != nil {
		t.Fatal(err)
	}
	if err := CreateConfigIfMissing(fs, "config.json"); err != nil {
		t.Fatal(err)
	}
	reloaded, _ := LoadConfig(fs, "config.json")
	if reloaded.Roku.Address != "edited:8060" {
		t.Error("CreateConfigIfMissing overwrote an existing file")
	}
}
