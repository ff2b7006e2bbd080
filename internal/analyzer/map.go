package analyzer

import (
	"github.com/noszanou/tsparse/internal/packet"
	"go.uber.org/zap"
)

// handleAt starts a new map. The first AT of the run names the player.
func (a *Analyzer) handleAt(st *State, p *packet.AtPacket) {
	if !st.playerKnown {
		st.playerID = p.CharacterID
		st.playerKnown = true
	}

	m := &Map{
		Ordinal: len(st.model.Maps),
		VNum:    p.MapVNum,
		EntryX:  p.X,
		EntryY:  p.Y,
	}
	if st.hinted {
		m.IndexX, m.IndexY = st.hintX, st.hintY
		m.hinted = true
		st.hinted = false
	}
	st.enterMap(m)
	st.x, st.y = p.X, p.Y

	a.log.Debug("map entered",
		zap.Int("ordinal", m.Ordinal),
		zap.Int32("vnum", m.VNum),
		zap.Int32("x", p.X),
		zap.Int32("y", p.Y),
		zap.Int("line", p.Line()),
	)
}

// handleRsf records a minimap position hint. The latest hint wins for the
// current map. Before the first map, and between a PREQ and the AT it leads
// to, the hint is held for the map about to be entered.
func (a *Analyzer) handleRsf(st *State, p *packet.RsfPacket) {
	if p.Type != packet.RsfPosition || len(p.Values) < 2 {
		return
	}
	x, y := p.Values[0], p.Values[1]
	if st.cur != nil && !st.leaving {
		st.cur.IndexX, st.cur.IndexY = x, y
		st.cur.hinted = true
		return
	}
	st.hintX, st.hintY = x, y
	st.hinted = true
}

func (a *Analyzer) handleWalk(st *State, p *packet.WalkPacket) {
	st.x, st.y = p.X, p.Y
	st.walks++
	if st.phase == Discovering && st.walks >= a.cfg.WalksBeforeMoving {
		st.phase = Moving
		a.log.Debug("discovery ended",
			zap.Int("map", st.cur.Ordinal),
			zap.Int("line", p.Line()),
		)
	}
}

// handlePreq is a scripted checkpoint: the map script starts over.
func (a *Analyzer) handlePreq(st *State, p *packet.PreqPacket) {
	st.phase = Discovering
	st.walks = 0
	st.firstEnable = -1
	st.firstEnableClean = false
	st.lastDead = -1
	st.leaving = true
}

// handleMapClean kills whatever is left on the map and opens the
// on-map-clean block of the current target.
func (a *Analyzer) handleMapClean(st *State, p *packet.MapCleanPacket) {
	killed := 0
	for _, idx := range st.mapMonsters {
		if m := st.monsters[idx]; !m.Dead {
			m.Dead = true
			killed++
		}
	}
	st.lastDead = -1

	var t Target
	if st.firstEnable >= 0 {
		st.firstEnableClean = true
		t = st.buttonTarget()
	} else {
		t = Target{Kind: TargetMap, Section: SectionClean}
	}
	st.Events(t).marked = true

	a.log.Debug("map cleaned",
		zap.Int("map", st.cur.Ordinal),
		zap.Int("killed", killed),
		zap.Stringer("target", t.Kind),
		zap.Int("line", p.Line()),
	)
}

// handleRbr fills the globals from the first raid board.
func (a *Analyzer) handleRbr(st *State, p *packet.RbrPacket) {
	g := &st.model.Globals
	if g.Found {
		return
	}
	*g = Globals{
		Found:        true,
		Name:         p.Name,
		Label:        p.Label,
		LevelMinimum: p.LevelMinimum,
		LevelMaximum: p.LevelMaximum,
		DrawItems:    p.DrawItems,
		SpecialItems: p.SpecialItems,
		GiftItems:    p.GiftItems,
	}
}
