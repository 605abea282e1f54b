// Package config handles terrain tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Export     ExportConfig     `yaml:"export"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GenerationConfig holds mesh generation settings.
type GenerationConfig struct {
	Simplify bool `yaml:"simplify"` // Merge flat quads after generation
	Parallel bool `yaml:"parallel"` // Parallel per-vertex pass
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Normals   bool   `yaml:"normals"`
	UVs       bool   `yaml:"uvs"`
	Colors    bool   `yaml:"colors"`

	// Altitude table (.gat) written next to the mesh
	Altitudes  bool     `yaml:"altitudes"`
	WaterLevel *float32 `yaml:"water_level,omitempty"`
	MaxStep    float32  `yaml:"max_step"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Simplify: false,
			Parallel: true,
		},
		Export: ExportConfig{
			OutputDir: ".",
			Normals:   true,
			UVs:       true,
			Colors:    true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
