package analyzer

// Phase is where the player is in the current map's script.
type Phase uint8

const (
	Discovering Phase = iota // entered the map, has not moved yet
	Moving
)

func (p Phase) String() string {
	if p == Moving {
		return "Moving"
	}
	return "Discovering"
}

// TargetKind tags the owner of an event list.
type TargetKind uint8

const (
	TargetMap TargetKind = iota
	TargetMonster
	TargetButton
	TargetPortal
)

func (k TargetKind) String() string {
	switch k {
	case TargetMap:
		return "Map"
	case TargetMonster:
		return "Monster"
	case TargetButton:
		return "Button"
	case TargetPortal:
		return "Portal"
	}
	return "Unknown"
}

// Section selects one of the event lists a target owns.
type Section uint8

const (
	SectionMain     Section = iota // move list, on-death, first-enable, on-traversal
	SectionDiscover                // map only
	SectionClean                   // nested on-map-clean block
)

// Target names the event list a packet is attributed to. Index is into the
// run-wide monster table for TargetMonster and into the current map's
// buttons or portals otherwise.
type Target struct {
	Kind    TargetKind
	Index   int
	Section Section
}

// State is the interpreter state of one analysis run.
type State struct {
	model *Model
	cur   *Map

	phase Phase
	walks int
	x, y  int32

	playerID    int32
	playerKnown bool

	// firstEnable is the index of the button on the current map whose
	// first-enable sequence is receiving packets, -1 when none is.
	firstEnable int
	// firstEnableClean is set once a map clear was seen inside the active
	// first-enable sequence; later toggles and events go to its clean block.
	firstEnableClean bool

	lastDead int // index into monsters, -1 when unset

	monsters    []*Monster
	byEntity    map[int32]int
	mapMonsters []int

	seenButtons map[int32]bool
	seenPortals map[portalKey]bool

	// leaving is set by a PREQ until the next AT; hints seen meanwhile are
	// held for the next map.
	leaving bool

	hintX, hintY int32
	hinted       bool
}

type portalKey struct {
	id, x, y, typ int32
}

// NewState returns an empty state ready for the first packet.
func NewState() *State {
	return &State{
		model:       &Model{},
		firstEnable: -1,
		lastDead:    -1,
		byEntity:    make(map[int32]int),
	}
}

func (s *State) Phase() Phase             { return s.phase }
func (s *State) CurrentMap() *Map         { return s.cur }
func (s *State) PlayerID() (int32, bool)  { return s.playerID, s.playerKnown }
func (s *State) FirstEnableActive() bool  { return s.firstEnable >= 0 }
func (s *State) Model() *Model            { return s.model }
func (s *State) Monsters() []*Monster     { return s.monsters }
func (s *State) MapMonsterCount() int     { return len(s.mapMonsters) }
func (s *State) Position() (int32, int32) { return s.x, s.y }

// LastDeadMonster returns the monster whose on-death list is open.
func (s *State) LastDeadMonster() (*Monster, bool) {
	if s.lastDead < 0 {
		return nil, false
	}
	return s.monsters[s.lastDead], true
}

// Events resolves a target to the list it contributes to.
func (s *State) Events(t Target) *Events {
	switch t.Kind {
	case TargetMap:
		switch t.Section {
		case SectionDiscover:
			return &s.cur.Discover
		case SectionClean:
			return s.cur.Move.clean()
		default:
			return &s.cur.Move
		}
	case TargetMonster:
		return &s.monsters[t.Index].OnDeath
	case TargetButton:
		fe := &s.cur.Buttons[t.Index].FirstEnable
		if t.Section == SectionClean {
			return fe.clean()
		}
		return fe
	case TargetPortal:
		return &s.cur.Portals[t.Index].OnTraversal
	}
	return nil
}

func (s *State) buttonTarget() Target {
	t := Target{Kind: TargetButton, Index: s.firstEnable}
	if s.firstEnableClean {
		t.Section = SectionClean
	}
	return t
}

func (s *State) enterMap(m *Map) {
	s.model.Maps = append(s.model.Maps, m)
	s.cur = m
	s.phase = Discovering
	s.walks = 0
	s.leaving = false
	s.firstEnable = -1
	s.firstEnableClean = false
	s.lastDead = -1
	s.mapMonsters = s.mapMonsters[:0]
	s.seenButtons = make(map[int32]bool)
	s.seenPortals = make(map[portalKey]bool)
}

func (s *State) addMonster(m *Monster, onMap bool) {
	idx := len(s.monsters)
	s.monsters = append(s.monsters, m)
	s.byEntity[m.EntityID] = idx
	if onMap {
		s.mapMonsters = append(s.mapMonsters, idx)
	}
}

func (s *State) monsterByEntity(id int32) (int, bool) {
	idx, ok := s.byEntity[id]
	return idx, ok
}
