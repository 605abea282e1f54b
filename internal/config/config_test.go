package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Generation.Simplify {
		t.Error("expected simplify to be false by default")
	}
	if !cfg.Generation.Parallel {
		t.Error("expected parallel to be true by default")
	}

	if cfg.Export.OutputDir != "." {
		t.Errorf("expected output dir '.', got %s", cfg.Export.OutputDir)
	}
	if !cfg.Export.Normals || !cfg.Export.UVs || !cfg.Export.Colors {
		t.Errorf("expected all export attributes enabled, got %+v", cfg.Export)
	}
	if cfg.Export.Altitudes || cfg.Export.WaterLevel != nil {
		t.Errorf("expected altitude export disabled, got %+v", cfg.Export)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terrainctl.yaml")

	yamlContent := `
generation:
  simplify: true
  parallel: false

export:
  output_dir: "meshes"
  normals: false

logging:
  level: "debug"
  log_file: "terrain.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !cfg.Generation.Simplify {
		t.Error("expected simplify to be true")
	}
	if cfg.Generation.Parallel {
		t.Error("expected parallel to be false")
	}
	if cfg.Export.OutputDir != "meshes" {
		t.Errorf("expected output dir 'meshes', got %s", cfg.Export.OutputDir)
	}
	if cfg.Export.Normals {
		t.Error("expected normals to be false")
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Export.UVs {
		t.Error("expected uvs to keep default true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("expected log file 'terrain.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
generation:
  simplify: not a bool
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("generation:\n  simplfy: true\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for unknown key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load cleanly: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected defaults to survive, got level %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/terrainctl.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "terrainctl.yaml")
	if err := os.WriteFile(configPath, []byte("generation:\n  simplify: true\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find terrainctl.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "simplify flag",
			setup: func() {
				*flagSimplify = true
			},
			verify: func(cfg *Config) {
				if !cfg.Generation.Simplify {
					t.Error("expected simplify to be enabled")
				}
			},
			teardown: func() {
				*flagSimplify = false
			},
		},
		{
			name: "no-parallel flag",
			setup: func() {
				*flagNoParallel = true
			},
			verify: func(cfg *Config) {
				if cfg.Generation.Parallel {
					t.Error("expected parallel to be disabled")
				}
			},
			teardown: func() {
				*flagNoParallel = false
			},
		},
		{
			name: "gat flag",
			setup: func() {
				*flagAltitudes = true
			},
			verify: func(cfg *Config) {
				if !cfg.Export.Altitudes {
					t.Error("expected altitude export to be enabled")
				}
			},
			teardown: func() {
				*flagAltitudes = false
			},
		},
		{
			name: "output and log file flags",
			setup: func() {
				*flagOutputDir = "/tmp/meshes"
				*flagLogFile = "/tmp/terrain.log"
			},
			verify: func(cfg *Config) {
				if cfg.Export.OutputDir != "/tmp/meshes" {
					t.Errorf("expected output dir /tmp/meshes, got %s", cfg.Export.OutputDir)
				}
				if cfg.Logging.LogFile != "/tmp/terrain.log" {
					t.Errorf("expected log file /tmp/terrain.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagOutputDir = ""
				*flagLogFile = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terrainctl.yaml")

	yamlContent := `
generation:
  simplify: false
export:
  output_dir: "from-file"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagSimplify = true
	defer func() {
		*flagConfig = ""
		*flagSimplify = false
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Simplify comes from the flag, output dir from the file.
	if !cfg.Generation.Simplify {
		t.Error("expected simplify from flag")
	}
	if cfg.Export.OutputDir != "from-file" {
		t.Errorf("expected output dir from file, got %s", cfg.Export.OutputDir)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "terrainctl.yaml")

	cfg := Default()
	cfg.Generation.Simplify = true
	cfg.Logging.Level = "warn"
	water := float32(-1.5)
	cfg.Export.WaterLevel = &water
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), fileHeader) {
		t.Errorf("expected saved file to start with header, got %q", data)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Export.WaterLevel == nil || *loaded.Export.WaterLevel != water {
		t.Errorf("expected water level %v, got %v", water, loaded.Export.WaterLevel)
	}
	if !loaded.Generation.Simplify || loaded.Logging.Level != "warn" {
		t.Errorf("saved config did not round trip: %+v", loaded)
	}
}
