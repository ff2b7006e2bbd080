// tsparse converts a recorded packet transcript into a time-space instance
// definition.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/noszanou/tsparse/internal/analyzer"
	"github.com/noszanou/tsparse/internal/config"
	"github.com/noszanou/tsparse/internal/data"
	"github.com/noszanou/tsparse/internal/instance"
	"github.com/noszanou/tsparse/internal/packet"
	"github.com/noszanou/tsparse/internal/scripting"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = "config/tsparse.toml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "tsparse [input] [output]",
		Short: "Convert a packet transcript into a time-space XML definition",
		Long: `Reads a packet log, one packet per line, and writes the scripted
instance it describes: maps, monsters, npcs, buttons, portals and their events.
Input and output default to the paths in the config file.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			optional := !cmd.Flags().Changed("config")
			cfg, err := config.Load(cfgPath, optional)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if len(args) > 0 {
				cfg.Input.Path = args[0]
			}
			if len(args) > 1 {
				cfg.Output.Path = args[1]
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", defaultConfigPath, "TOML config file")
	return cmd
}

// ── Console helpers ────────────────────────────────────────────────

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printWarn(msg string) {
	fmt.Printf("  \033[33m!\033[0m %s\n", msg)
}

// ── Conversion ─────────────────────────────────────────────────────

func run(cfg *config.Config) error {
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 1. Heuristics and classification hooks
	rules, err := data.LoadHeuristics(cfg.Analyzer.Heuristics)
	if err != nil {
		return fmt.Errorf("heuristics: %w", err)
	}
	engine, err := scripting.NewEngine(cfg.Analyzer.ScriptsDir, rules, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer engine.Close()

	// 2. Parse the transcript
	printSection("Transcript")
	src, err := packet.Open(cfg.Input.Path, cfg.Input.Charset)
	if err != nil {
		return err
	}
	defer src.Close()

	reg := packet.NewRegistry(log, rules.SendPackets)
	tr, err := reg.ReadTranscript(src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.Input.Path, err)
	}
	printOK(fmt.Sprintf("Read %s", cfg.Input.Path))
	for k := packet.KindAt; k <= packet.KindSendPacket; k++ {
		if n := tr.Counts[k]; n > 0 {
			printStat(k.String(), n)
		}
	}
	printStat("unrecognized", len(tr.Unrecognized))
	fmt.Println()

	// 3. Analyze
	printSection("Analysis")
	a := analyzer.New(cfg.Analyzer, rules, engine, log)
	model := a.Analyze(tr.Packets)
	printStat("maps", len(model.Maps))
	printStat("monsters", countMonsters(model))
	if !model.Globals.Found {
		printWarn("no rbr packet, globals left empty")
	}
	fmt.Println()

	// 4. Write
	printSection("Output")
	doc := instance.Build(model, cfg.Globals)
	if err := instance.Save(cfg.Output.Path, doc, cfg.Output.Indent); err != nil {
		return err
	}
	printOK(fmt.Sprintf("Wrote %d maps to %s", len(doc.InstanceEvents.Maps), cfg.Output.Path))

	if len(tr.Unrecognized) > 0 {
		fmt.Println()
		printSection("Unrecognized lines")
		for _, u := range tr.Unrecognized {
			printWarn(u.String())
		}
	}
	return nil
}

func countMonsters(m *analyzer.Model) int {
	n := 0
	var walk func(ev *analyzer.Events)
	walk = func(ev *analyzer.Events) {
		if ev == nil {
			return
		}
		for _, mon := range ev.Monsters {
			n++
			walk(&mon.OnDeath)
		}
		walk(ev.Clean)
	}
	for _, mp := range m.Maps {
		walk(&mp.Discover)
		walk(&mp.Move)
		for _, b := range mp.Buttons {
			walk(&b.FirstEnable)
		}
	}
	return n
}

// newLogger writes to stderr; stdout carries the report.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Sampling = nil // keep every attribution line
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableStacktrace = true
		zapCfg.DisableCaller = level > zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build(zap.Fields(zap.String("app", "tsparse")))
}
