package analyzer

import (
	"github.com/noszanou/tsparse/internal/packet"
	"go.uber.org/zap"
)

func (a *Analyzer) handleIn(st *State, p *packet.InPacket) {
	switch p.Entity {
	case packet.EntityNpc:
		a.spawnNpc(st, p)
	case packet.EntityMonster:
		a.spawnMonster(st, p)
	case packet.EntityObject:
		a.spawnButton(st, p)
	default:
		// players and unknown sub-types carry nothing the instance needs
	}
}

func (a *Analyzer) spawnNpc(st *State, p *packet.InPacket) {
	traits := a.classify.ClassifyNpc(p.VNum)
	npc := &Npc{
		VNum:      p.VNum,
		EntityID:  p.EntityID,
		X:         p.X,
		Y:         p.Y,
		Move:      traits.Move,
		Protected: traits.Protected,
	}
	if npc.Protected {
		npc.OnDeath.Ends = append(npc.OnDeath.Ends, a.rules.Npc.ProtectedEndType)
	}

	var t Target
	switch {
	case st.phase == Discovering:
		t = Target{Kind: TargetMap, Section: SectionDiscover}
	case st.firstEnable >= 0:
		t = Target{Kind: TargetButton, Index: st.firstEnable}
	default:
		t = Target{Kind: TargetMap, Section: SectionMain}
	}
	ev := st.Events(t)
	ev.Npcs = append(ev.Npcs, npc)
	a.attributed("npc", t, p.Line())
}

func (a *Analyzer) spawnMonster(st *State, p *packet.InPacket) {
	traits := a.classify.ClassifyMonster(p.VNum)
	mon := &Monster{
		VNum:     p.VNum,
		EntityID: p.EntityID,
		X:        p.X,
		Y:        p.Y,
		Move:     traits.Move,
		Bonus:    traits.Bonus,
		Hostile:  traits.Hostile,
	}

	var t Target
	onMap := false
	switch {
	case st.phase == Discovering:
		t = Target{Kind: TargetMap, Section: SectionDiscover}
		onMap = true
	case st.firstEnable >= 0:
		t = Target{Kind: TargetButton, Index: st.firstEnable}
	case st.lastDead >= 0:
		t = Target{Kind: TargetMonster, Index: st.lastDead}
	default:
		t = Target{Kind: TargetMap, Section: SectionMain}
		onMap = true
	}
	ev := st.Events(t)
	ev.Monsters = append(ev.Monsters, mon)
	st.addMonster(mon, onMap)
	a.attributed("monster", t, p.Line())
}

// spawnButton registers a lever. Objects re-appear whenever the player
// comes back in range, so only the first IN per entity id counts.
func (a *Analyzer) spawnButton(st *State, p *packet.InPacket) {
	if st.seenButtons[p.EntityID] {
		return
	}
	st.seenButtons[p.EntityID] = true

	enabled, disabled := a.classify.ButtonVNums(p.VNum)
	st.cur.Buttons = append(st.cur.Buttons, &Button{
		ID:       p.EntityID,
		X:        p.X,
		Y:        p.Y,
		VNum:     p.VNum,
		Enabled:  enabled,
		Disabled: disabled,
	})
	a.log.Debug("button spawned",
		zap.Int("map", st.cur.Ordinal),
		zap.Int32("id", p.EntityID),
		zap.Int32("vnum", p.VNum),
		zap.Int("line", p.Line()),
	)
}

// handleSu marks a monster dead when the player attacks it. Later spawns
// hang off that monster's on-death list. With RequireLethalHit only a hit
// that leaves the target dead counts.
func (a *Analyzer) handleSu(st *State, p *packet.SuPacket) {
	if packet.EntityTypeFromCode(p.Type) != packet.EntityPlayer ||
		!st.playerKnown || p.CallerID != st.playerID {
		return
	}
	if packet.EntityTypeFromCode(p.TargetType) != packet.EntityMonster {
		return
	}
	if a.cfg.RequireLethalHit && !p.TargetKilled() {
		return
	}
	idx, ok := st.monsterByEntity(p.TargetID)
	if !ok {
		return
	}
	mon := st.monsters[idx]
	if mon.Dead {
		return
	}
	mon.Dead = true
	st.lastDead = idx
	a.log.Debug("monster killed",
		zap.Int32("vnum", mon.VNum),
		zap.Int32("id", mon.EntityID),
		zap.Int("line", p.Line()),
	)
}

func (a *Analyzer) handleEff(st *State, p *packet.EffPacket) {
	idx, ok := st.monsterByEntity(p.EntityID)
	if !ok {
		return
	}
	mon := st.monsters[idx]
	switch p.EffectID {
	case a.rules.Effect.Target:
		mon.Target = true
	case a.rules.Effect.Bonus:
		mon.Bonus = true
	}
}

// handleOut opens a first-enable sequence: the lever's guard disappearing
// is the usual sign the player just pulled it. The sequence belongs to the
// first button on the map that has not had one yet.
func (a *Analyzer) handleOut(st *State, p *packet.OutPacket) {
	if st.firstEnable >= 0 || !a.rules.FirstEnable.StartsFirstEnable(p.TypeCode) {
		return
	}
	for i, b := range st.cur.Buttons {
		if b.triggered {
			continue
		}
		b.triggered = true
		st.firstEnable = i
		st.firstEnableClean = false
		a.log.Debug("first enable started",
			zap.Int("map", st.cur.Ordinal),
			zap.Int32("button", b.ID),
			zap.Int("line", p.Line()),
		)
		return
	}
}
