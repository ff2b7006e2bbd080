package instance

import (
	"strconv"

	"github.com/noszanou/tsparse/internal/analyzer"
	"github.com/noszanou/tsparse/internal/config"
	"github.com/noszanou/tsparse/internal/packet"
)

// Build assembles the document for a model. Values the transcript cannot
// show (lives, gold, reputation) come from cfg.
func Build(m *analyzer.Model, cfg config.GlobalsConfig) *Definition {
	doc := &Definition{
		Globals: buildGlobals(m.Globals, cfg),
	}
	for _, mp := range m.Maps {
		doc.InstanceEvents.Maps = append(doc.InstanceEvents.Maps, buildMap(mp))
	}
	return doc
}

func buildGlobals(g analyzer.Globals, cfg config.GlobalsConfig) Globals {
	return Globals{
		Name:         Value{g.Name},
		Label:        Value{g.Label},
		LevelMinimum: Value{itoa(g.LevelMinimum)},
		LevelMaximum: Value{itoa(g.LevelMaximum)},
		Lives:        Value{strconv.Itoa(cfg.Lives)},
		DrawItems:    buildItems(g.DrawItems),
		SpecialItems: buildItems(g.SpecialItems),
		GiftItems:    buildItems(g.GiftItems),
		Gold:         Value{strconv.FormatInt(cfg.Gold, 10)},
		Reputation:   Value{strconv.Itoa(cfg.Reputation)},
	}
}

func buildItems(items []packet.Item) Items {
	var out Items
	for _, it := range items {
		out.Items = append(out.Items, Item{VNum: it.VNum, Amount: it.Amount})
	}
	return out
}

// buildMap emits the sections of one map. The first map spawns its portals
// from the discovery block so they exist before the player can move.
func buildMap(mp *analyzer.Map) CreateMap {
	cm := CreateMap{
		Map:    mp.Ordinal,
		VNum:   mp.VNum,
		IndexX: mp.IndexX,
		IndexY: mp.IndexY,
	}

	portals := make([]SpawnPortal, 0, len(mp.Portals))
	for _, p := range mp.Portals {
		portals = append(portals, buildPortal(p))
	}
	first := mp.Ordinal == 0

	d := &mp.Discover
	if !d.Empty() || (first && len(portals) > 0) {
		od := &OnDiscover{
			NpcDialogs: buildDialogs(d.Dialogs),
			Messages:   buildMessages(d.Messages),
			Npcs:       buildNpcs(d.Npcs),
			Monsters:   buildMonsters(d.Monsters),
			Packets:    buildPackets(d.Packets),
		}
		if first {
			od.Portals = portals
		}
		cm.Discover = od
	}
	if !first && len(portals) > 0 {
		cm.Portals = portals
	}

	if !mp.Move.Empty() || mp.Clock != nil || mp.MapClock != nil {
		cm.Move = buildMove(mp)
	}

	for _, b := range mp.Buttons {
		cm.Buttons = append(cm.Buttons, SpawnButton{
			ID:            b.ID,
			PositionX:     b.X,
			PositionY:     b.Y,
			VNumEnabled:   b.Enabled,
			VNumDisabled:  b.Disabled,
			OnFirstEnable: buildTrigger(&b.FirstEnable),
		})
	}
	return cm
}

func buildMove(mp *analyzer.Map) *OnMove {
	ev := &mp.Move
	om := &OnMove{
		Monsters:      buildMonsters(ev.Monsters),
		Npcs:          buildNpcs(ev.Npcs),
		Messages:      buildMessages(ev.Messages),
		NpcDialogs:    buildDialogs(ev.Dialogs),
		Packets:       buildPackets(ev.Packets),
		PortalChanges: buildPortalChanges(ev.PortalChanges),
		OnMapClean:    buildTrigger(ev.Clean),
	}
	if ev.RefreshMapItems {
		om.RefreshMapItems = &Marker{}
	}
	if c := mp.Clock; c != nil {
		om.GenerateClock = &Value{itoa(c.Value)}
		om.StartClock = &StartClock{OnTimeout: endTrigger(c.TimeoutEnd)}
	}
	if c := mp.MapClock; c != nil {
		om.GenerateMapClock = &Value{itoa(c.Value)}
		om.StartMapClock = &StartClock{OnTimeout: endTrigger(c.TimeoutEnd)}
	}
	return om
}

// buildTrigger converts a nested event list. Empty lists are omitted
// unless a map-clear marker opened them.
func buildTrigger(ev *analyzer.Events) *Trigger {
	if ev.Empty() {
		return nil
	}
	t := &Trigger{
		Monsters:      buildMonsters(ev.Monsters),
		Npcs:          buildNpcs(ev.Npcs),
		Messages:      buildMessages(ev.Messages),
		NpcDialogs:    buildDialogs(ev.Dialogs),
		Packets:       buildPackets(ev.Packets),
		PortalChanges: buildPortalChanges(ev.PortalChanges),
		OnMapClean:    buildTrigger(ev.Clean),
	}
	if ev.RefreshMapItems {
		t.RefreshMapItems = &Marker{}
	}
	for _, e := range ev.Ends {
		t.Ends = append(t.Ends, End{Type: e})
	}
	return t
}

func endTrigger(endType int32) *Trigger {
	return &Trigger{Ends: []End{{Type: endType}}}
}

func buildPortal(p *analyzer.Portal) SpawnPortal {
	return SpawnPortal{
		IdOnMap:     p.IdOnMap,
		PositionX:   p.X,
		PositionY:   p.Y,
		Type:        p.Type,
		ToMap:       p.ToMap,
		ToX:         p.ToX,
		ToY:         p.ToY,
		OnTraversal: buildTrigger(&p.OnTraversal),
	}
}

func buildMonsters(ms []*analyzer.Monster) []SummonMonster {
	var out []SummonMonster
	for _, m := range ms {
		out = append(out, SummonMonster{
			VNum:      m.VNum,
			PositionX: m.X,
			PositionY: m.Y,
			Move:      m.Move,
			IsBonus:   m.Bonus,
			IsHostile: m.Hostile,
			IsTarget:  m.Target,
			OnDeath:   buildTrigger(&m.OnDeath),
		})
	}
	return out
}

func buildNpcs(ns []*analyzer.Npc) []SummonNpc {
	var out []SummonNpc
	for _, n := range ns {
		out = append(out, SummonNpc{
			VNum:        n.VNum,
			PositionX:   n.X,
			PositionY:   n.Y,
			Move:        n.Move,
			IsProtected: n.Protected,
			OnDeath:     buildTrigger(&n.OnDeath),
		})
	}
	return out
}

func buildMessages(ms []analyzer.Message) []SendMessage {
	var out []SendMessage
	for _, m := range ms {
		out = append(out, SendMessage{Value: m.Value, Type: m.Type})
	}
	return out
}

func buildDialogs(ds []int32) []Value {
	var out []Value
	for _, d := range ds {
		out = append(out, Value{itoa(d)})
	}
	return out
}

func buildPackets(ps []string) []Value {
	var out []Value
	for _, p := range ps {
		out = append(out, Value{p})
	}
	return out
}

func buildPortalChanges(cs []analyzer.PortalChange) []ChangePortalType {
	var out []ChangePortalType
	for _, c := range cs {
		out = append(out, ChangePortalType{IdOnMap: c.IdOnMap, Type: c.Type})
	}
	return out
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}
