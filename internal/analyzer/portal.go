package analyzer

import (
	"github.com/noszanou/tsparse/internal/data"
	"github.com/noszanou/tsparse/internal/packet"
	"go.uber.org/zap"
)

// handleGp creates a portal or records a change of an existing one's type.
// The client resends every portal of the map on each refresh, so a
// (id, position, type) combination is only taken once per map.
func (a *Analyzer) handleGp(st *State, p *packet.GpPacket) {
	key := portalKey{id: p.PortalID, x: p.X, y: p.Y, typ: p.Type}
	if st.seenPortals[key] {
		return
	}
	st.seenPortals[key] = true

	rules := a.rules.Portal
	if rules.IsToggle(p.Type) {
		// No check that the portal exists: a toggle seen before the
		// portal itself is still recorded.
		t := a.toggleTarget(st)
		ev := st.Events(t)
		ev.PortalChanges = append(ev.PortalChanges, PortalChange{IdOnMap: p.PortalID, Type: p.Type})
		ev.RefreshMapItems = true
		a.attributed("portal change", t, p.Line())
		return
	}

	portal := &Portal{
		IdOnMap: p.PortalID,
		X:       p.X,
		Y:       p.Y,
		Type:    p.Type,
	}
	var dir data.Direction
	if rules.IsExit(p.Type) {
		portal.ToMap, portal.ToX, portal.ToY = -1, -1, -1
		portal.OnTraversal.Ends = append(portal.OnTraversal.Ends, rules.ExitEndType)
	} else {
		dir, portal.ToMap, portal.ToX, portal.ToY = rules.Destination(st.cur.Ordinal, p.X, p.Y)
	}
	st.cur.Portals = append(st.cur.Portals, portal)

	a.log.Debug("portal created",
		zap.Int("map", st.cur.Ordinal),
		zap.Int32("id", p.PortalID),
		zap.Int32("type", p.Type),
		zap.Int("direction", int(dir)),
		zap.Int("to_map", portal.ToMap),
		zap.Int("line", p.Line()),
	)
}
