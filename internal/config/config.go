package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Input    InputConfig    `toml:"input"`
	Analyzer AnalyzerConfig `toml:"analyzer"`
	Globals  GlobalsConfig  `toml:"globals"`
	Output   OutputConfig   `toml:"output"`
	Logging  LoggingConfig  `toml:"logging"`
}

type InputConfig struct {
	Path    string `toml:"path"`    // default transcript when none is given on the command line
	Charset string `toml:"charset"` // "utf-8", "ms950", "windows-1252", ...
}

// Where messages, dialogs and send-packets go once the player has moved and
// no first-enable sequence is open.
const (
	IdleTargetClean = "clean"
	IdleTargetMove  = "move"
)

type AnalyzerConfig struct {
	Heuristics        string `toml:"heuristics"`          // YAML override file, "" = embedded table
	ScriptsDir        string `toml:"scripts_dir"`         // Lua classification hooks
	WalksBeforeMoving int    `toml:"walks_before_moving"` // walk packets after map entry that end discovery
	IdleEventTarget   string `toml:"idle_event_target"`   // "clean" or "move"
	RequireLethalHit  bool   `toml:"require_lethal_hit"`  // only count player hits that leave the target dead
}

type GlobalsConfig struct {
	Lives      int   `toml:"lives"`
	Gold       int64 `toml:"gold"`
	Reputation int   `toml:"reputation"`
}

type OutputConfig struct {
	Path   string `toml:"path"`
	Indent string `toml:"indent"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults. A missing file at the default
// location is not an error when optional is true.
func Load(path string, optional bool) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Analyzer.IdleEventTarget {
	case IdleTargetClean, IdleTargetMove:
	default:
		return fmt.Errorf("analyzer.idle_event_target must be %q or %q, got %q",
			IdleTargetClean, IdleTargetMove, c.Analyzer.IdleEventTarget)
	}
	if c.Analyzer.WalksBeforeMoving < 1 {
		return fmt.Errorf("analyzer.walks_before_moving must be at least 1, got %d", c.Analyzer.WalksBeforeMoving)
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Input: InputConfig{
			Path:    "packet.txt",
			Charset: "utf-8",
		},
		Analyzer: AnalyzerConfig{
			Heuristics:        "",
			ScriptsDir:        "scripts",
			WalksBeforeMoving: 1,
			IdleEventTarget:   IdleTargetClean,
		},
		Globals: GlobalsConfig{
			Lives:      1,
			Gold:       1500,
			Reputation: 50,
		},
		Output: OutputConfig{
			Path:   "generated_timespace.xml",
			Indent: "\t",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
