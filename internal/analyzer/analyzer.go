package analyzer

import (
	"github.com/noszanou/tsparse/internal/config"
	"github.com/noszanou/tsparse/internal/data"
	"github.com/noszanou/tsparse/internal/packet"
	"go.uber.org/zap"
)

// Analyzer turns a parsed transcript into a Model in one pass.
type Analyzer struct {
	cfg      config.AnalyzerConfig
	rules    *data.Heuristics
	classify data.Classifier
	log      *zap.Logger
}

// New creates an analyzer. A nil classifier falls back to the heuristics
// table itself.
func New(cfg config.AnalyzerConfig, rules *data.Heuristics, classify data.Classifier, log *zap.Logger) *Analyzer {
	if classify == nil {
		classify = rules
	}
	if cfg.WalksBeforeMoving < 1 {
		cfg.WalksBeforeMoving = 1
	}
	if cfg.IdleEventTarget == "" {
		cfg.IdleEventTarget = config.IdleTargetClean
	}
	return &Analyzer{cfg: cfg, rules: rules, classify: classify, log: log}
}

// Analyze runs every packet through a fresh state and returns the model.
func (a *Analyzer) Analyze(packets []packet.Packet) *Model {
	st := NewState()
	for _, p := range packets {
		a.Step(st, p)
	}
	return a.Finish(st)
}

// Step applies a single packet to the state.
func (a *Analyzer) Step(st *State, p packet.Packet) {
	switch pk := p.(type) {
	case *packet.AtPacket:
		a.handleAt(st, pk)
		return
	case *packet.RbrPacket:
		a.handleRbr(st, pk)
		return
	case *packet.RsfPacket:
		a.handleRsf(st, pk)
		return
	}

	if st.cur == nil {
		a.log.Debug("packet before first map dropped",
			zap.Stringer("kind", p.Kind()),
			zap.Int("line", p.Line()),
		)
		return
	}

	switch pk := p.(type) {
	case *packet.WalkPacket:
		a.handleWalk(st, pk)
	case *packet.InPacket:
		a.handleIn(st, pk)
	case *packet.SuPacket:
		a.handleSu(st, pk)
	case *packet.GpPacket:
		a.handleGp(st, pk)
	case *packet.MsgPacket:
		a.handleMsg(st, pk)
	case *packet.NpcReqPacket:
		a.handleNpcReq(st, pk)
	case *packet.SendPacket:
		a.handleSendPacket(st, pk)
	case *packet.EvntPacket:
		a.handleEvnt(st, pk)
	case *packet.OutPacket:
		a.handleOut(st, pk)
	case *packet.PreqPacket:
		a.handlePreq(st, pk)
	case *packet.EffPacket:
		a.handleEff(st, pk)
	case *packet.MapCleanPacket:
		a.handleMapClean(st, pk)
	default:
		a.log.Debug("packet ignored",
			zap.Stringer("kind", p.Kind()),
			zap.Int("line", p.Line()),
		)
	}
}

// Finish resolves what could only be known once the whole transcript was
// read and returns the model.
func (a *Analyzer) Finish(st *State) *Model {
	m := st.model
	for _, mp := range m.Maps {
		if !mp.hinted {
			mp.IndexX, mp.IndexY = a.rules.Grid.DefaultIndex(mp.Ordinal)
		}
		for _, p := range mp.Portals {
			if p.ToMap >= len(m.Maps) {
				a.log.Debug("portal leads past the last map",
					zap.Int("map", mp.Ordinal),
					zap.Int32("portal", p.IdOnMap),
					zap.Int("to_map", p.ToMap),
				)
				p.ToMap = -1
			}
		}
	}
	return m
}

// eventTarget is where messages, dialogs and raw packets go.
func (a *Analyzer) eventTarget(st *State) Target {
	switch {
	case st.phase == Discovering:
		return Target{Kind: TargetMap, Section: SectionDiscover}
	case st.firstEnable >= 0:
		return st.buttonTarget()
	case a.cfg.IdleEventTarget == config.IdleTargetMove:
		return Target{Kind: TargetMap, Section: SectionMain}
	default:
		return Target{Kind: TargetMap, Section: SectionClean}
	}
}

// toggleTarget is where portal state changes go.
func (a *Analyzer) toggleTarget(st *State) Target {
	if st.firstEnable >= 0 {
		return st.buttonTarget()
	}
	return Target{Kind: TargetMap, Section: SectionClean}
}

func (a *Analyzer) attributed(what string, t Target, line int) {
	a.log.Debug("attributed",
		zap.String("what", what),
		zap.Stringer("target", t.Kind),
		zap.Int("index", t.Index),
		zap.Uint8("section", uint8(t.Section)),
		zap.Int("line", line),
	)
}
