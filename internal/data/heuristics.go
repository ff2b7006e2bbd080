package data

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed heuristics.yaml
var defaultHeuristics []byte

// Heuristics holds every tunable constant the analyzer relies on.
type Heuristics struct {
	Npc         NpcRules         `yaml:"npc"`
	Monster     MonsterRules     `yaml:"monster"`
	Buttons     ButtonRules      `yaml:"buttons"`
	Portal      PortalRules      `yaml:"portal"`
	Effect      EffectRules      `yaml:"effect"`
	FirstEnable FirstEnableRules `yaml:"first_enable"`
	Clock       ClockRules       `yaml:"clock"`
	Grid        GridRules        `yaml:"grid"`
	SendPackets []string         `yaml:"send_packets"`
}

type EffectRules struct {
	Target int32 `yaml:"target"`
	Bonus  int32 `yaml:"bonus"`
}

type FirstEnableRules struct {
	OutTypes []int32 `yaml:"out_types"`
}

// StartsFirstEnable reports whether an OUT of this entity type code opens a
// button's first-enable sequence.
func (r FirstEnableRules) StartsFirstEnable(typeCode int32) bool {
	return slices.Contains(r.OutTypes, typeCode)
}

type ClockRules struct {
	SimpleType     int32 `yaml:"simple_type"`
	MapType        int32 `yaml:"map_type"`
	TimeoutEndType int32 `yaml:"timeout_end_type"`
}

type GridRules struct {
	DefaultX     int32 `yaml:"default_x"`
	DefaultYBase int32 `yaml:"default_y_base"`
}

// DefaultIndex returns the minimap index of a map that never got a hint.
func (g GridRules) DefaultIndex(ordinal int) (int32, int32) {
	return g.DefaultX, g.DefaultYBase - int32(ordinal)
}

// DefaultHeuristics returns the embedded table.
func DefaultHeuristics() (*Heuristics, error) {
	h := &Heuristics{}
	if err := yaml.Unmarshal(defaultHeuristics, h); err != nil {
		return nil, fmt.Errorf("parse embedded heuristics: %w", err)
	}
	h.index()
	return h, nil
}

// LoadHeuristics loads an override file on top of the embedded table.
// An empty path returns the embedded table unchanged.
func LoadHeuristics(path string) (*Heuristics, error) {
	h, err := DefaultHeuristics()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return h, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read heuristics %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, h); err != nil {
		return nil, fmt.Errorf("parse heuristics %s: %w", path, err)
	}
	h.index()
	return h, nil
}

func (h *Heuristics) index() {
	h.Buttons.index()
}
