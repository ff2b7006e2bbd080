package data

import "slices"

// NpcTraits are the classification flags of a summoned npc.
type NpcTraits struct {
	Protected bool
	Move      bool
}

// MonsterTraits are the classification flags of a summoned monster.
type MonsterTraits struct {
	Bonus   bool
	Hostile bool
	Move    bool
}

// NpcRules classifies npcs by vnum.
type NpcRules struct {
	Guards           []int32 `yaml:"guards"`
	ProtectedEndType int32   `yaml:"protected_end_type"`
}

// Classify returns the npc's traits. Guards are protected; every npc moves.
func (r NpcRules) Classify(vnum int32) NpcTraits {
	return NpcTraits{
		Protected: slices.Contains(r.Guards, vnum),
		Move:      true,
	}
}

// MonsterRules classifies monsters by vnum. Monsters are hostile and mobile
// unless listed otherwise.
type MonsterRules struct {
	Bonus    []int32 `yaml:"bonus"`
	Passive  []int32 `yaml:"passive"`
	Immobile []int32 `yaml:"immobile"`
}

func (r MonsterRules) Classify(vnum int32) MonsterTraits {
	return MonsterTraits{
		Bonus:   slices.Contains(r.Bonus, vnum),
		Hostile: !slices.Contains(r.Passive, vnum),
		Move:    !slices.Contains(r.Immobile, vnum),
	}
}

// ButtonPair is a lever whose two sprites are known.
type ButtonPair struct {
	Disabled int32 `yaml:"disabled"`
	Enabled  int32 `yaml:"enabled"`
}

// ButtonRules derives a button's enabled/disabled sprites from the one seen.
type ButtonRules struct {
	Pairs []ButtonPair `yaml:"pairs"`

	byVNum map[int32]ButtonPair
}

func (r *ButtonRules) index() {
	r.byVNum = make(map[int32]ButtonPair, len(r.Pairs)*2)
	for _, p := range r.Pairs {
		r.byVNum[p.Disabled] = p
		r.byVNum[p.Enabled] = p
	}
}

// VNums returns (enabled, disabled) for an observed button sprite. A sprite
// of a known pair is the enabled state and the other sprite of the pair the
// disabled one. Any other sprite is taken as the disabled state with the
// enabled sprite one vnum above it.
func (r *ButtonRules) VNums(observed int32) (int32, int32) {
	if p, ok := r.byVNum[observed]; ok {
		if observed == p.Enabled {
			return p.Enabled, p.Disabled
		}
		return p.Disabled, p.Enabled
	}
	return observed + 1, observed
}

// Classifier decides the flags and sprites of summoned entities.
type Classifier interface {
	ClassifyMonster(vnum int32) MonsterTraits
	ClassifyNpc(vnum int32) NpcTraits
	ButtonVNums(observed int32) (enabled, disabled int32)
}

func (h *Heuristics) ClassifyMonster(vnum int32) MonsterTraits {
	return h.Monster.Classify(vnum)
}

func (h *Heuristics) ClassifyNpc(vnum int32) NpcTraits {
	return h.Npc.Classify(vnum)
}

func (h *Heuristics) ButtonVNums(observed int32) (int32, int32) {
	return h.Buttons.VNums(observed)
}
