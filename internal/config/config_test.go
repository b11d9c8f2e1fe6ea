package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grandmall.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
seed: 1234
tick_interval_ms: 250
db_path: /tmp/mall.db
api_addr: ":9090"
admin_token: hunter2
autosave: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 1234 || cfg.TickIntervalMS != 250 || cfg.DBPath != "/tmp/mall.db" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.APIAddr != ":9090" || cfg.AdminToken != "hunter2" {
		t.Errorf("api fields not applied: %+v", cfg)
	}
	if cfg.Autosave {
		t.Error("autosave override ignored")
	}
	if !cfg.SnapshotHistory {
		t.Error("absent field should keep its default")
	}
}

func TestLoadRejectsBadTickInterval(t *testing.T) {
	path := writeConfig(t, "tick_interval_ms: -5\n")
	if _, err := Load(path); err == nil {
		t.Fatal("negative tick interval accepted")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "tick_interval_ms: [what\n")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestTickInterval(t *testing.T) {
	c := Config{TickIntervalMS: 250}
	if got := c.TickInterval(); got != 250*time.Millisecond {
		t.Errorf("TickInterval = %v", got)
	}
}
