package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSimplify   = flag.Bool("simplify", false, "Merge flat quads after generation")
	flagNoParallel = flag.Bool("no-parallel", false, "Run the per-vertex pass on one goroutine")
	flagOutputDir  = flag.String("out", "", "Output directory for exported meshes")
	flagLogFile    = flag.String("log-file", "", "Also write logs to this file")
	flagAltitudes  = flag.Bool("gat", false, "Also export a .gat altitude table")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments (subcommand and its arguments).
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSimplify {
		cfg.Generation.Simplify = true
	}
	if *flagNoParallel {
		cfg.Generation.Parallel = false
	}
	if *flagOutputDir != "" {
		cfg.Export.OutputDir = *flagOutputDir
	}
	if *flagAltitudes {
		cfg.Export.Altitudes = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
