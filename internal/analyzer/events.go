package analyzer

import (
	"github.com/noszanou/tsparse/internal/packet"
	"go.uber.org/zap"
)

func (a *Analyzer) handleMsg(st *State, p *packet.MsgPacket) {
	t := a.eventTarget(st)
	ev := st.Events(t)
	ev.Messages = append(ev.Messages, Message{Type: p.Type, Value: p.Message})
	a.attributed("message", t, p.Line())
}

func (a *Analyzer) handleNpcReq(st *State, p *packet.NpcReqPacket) {
	t := a.eventTarget(st)
	ev := st.Events(t)
	ev.Dialogs = append(ev.Dialogs, p.DialogID)
	a.attributed("dialog", t, p.Line())
}

func (a *Analyzer) handleSendPacket(st *State, p *packet.SendPacket) {
	t := a.eventTarget(st)
	ev := st.Events(t)
	ev.Packets = append(ev.Packets, p.Value)
	a.attributed("send packet", t, p.Line())
}

// handleEvnt records a clock start. Only countdowns whose two times agree
// are clock starts; the rest are progress updates.
func (a *Analyzer) handleEvnt(st *State, p *packet.EvntPacket) {
	if p.Time1 != p.Time2 {
		return
	}
	if st.phase != Discovering {
		a.log.Debug("clock outside discovery ignored",
			zap.Int32("type", p.Type),
			zap.Int("line", p.Line()),
		)
		return
	}
	rules := a.rules.Clock
	clock := &Clock{Value: p.Time1, TimeoutEnd: rules.TimeoutEndType}
	switch p.Type {
	case rules.SimpleType:
		st.cur.Clock = clock
	case rules.MapType:
		st.cur.MapClock = clock
	default:
		return
	}
	a.log.Debug("clock started",
		zap.Int("map", st.cur.Ordinal),
		zap.Int32("type", p.Type),
		zap.Int32("value", p.Time1),
		zap.Int("line", p.Line()),
	)
}
