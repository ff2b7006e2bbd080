package analyzer

import "github.com/noszanou/tsparse/internal/packet"

// Model is everything the analyzer inferred from one transcript.
type Model struct {
	Globals Globals
	Maps    []*Map
}

// Globals is taken from the first RBR board in the transcript.
type Globals struct {
	Found        bool
	Name         string
	Label        string
	LevelMinimum int32
	LevelMaximum int32
	DrawItems    []packet.Item
	SpecialItems []packet.Item
	GiftItems    []packet.Item
}

// Map is one CreateMap block. Discover holds what happens when the player
// enters the map; Move what happens once the player moved, with the
// on-map-clean block nested in Move.Clean.
type Map struct {
	Ordinal  int
	VNum     int32
	IndexX   int32
	IndexY   int32
	EntryX   int32
	EntryY   int32
	Discover Events
	Move     Events
	Clock    *Clock
	MapClock *Clock
	Buttons  []*Button
	Portals  []*Portal

	hinted bool
}

// Events is an ordered event container. The same shape backs every event
// list of the document: discovery, move, on-death, first-enable,
// on-map-clean and on-traversal.
type Events struct {
	Dialogs         []int32
	Messages        []Message
	Packets         []string
	Npcs            []*Npc
	Monsters        []*Monster
	PortalChanges   []PortalChange
	RefreshMapItems bool
	Ends            []int32
	Clean           *Events

	// marked is set when a map-clear marker opened this block, so it is
	// kept even with nothing in it.
	marked bool
}

// Empty reports whether the container has nothing to emit.
func (e *Events) Empty() bool {
	if e == nil {
		return true
	}
	return len(e.Dialogs) == 0 &&
		len(e.Messages) == 0 &&
		len(e.Packets) == 0 &&
		len(e.Npcs) == 0 &&
		len(e.Monsters) == 0 &&
		len(e.PortalChanges) == 0 &&
		!e.RefreshMapItems &&
		len(e.Ends) == 0 &&
		e.Clean.Empty() &&
		!e.marked
}

// Marked reports whether a map-clear marker opened this block.
func (e *Events) Marked() bool {
	return e != nil && e.marked
}

// clean returns the nested on-map-clean block, creating it on first use.
func (e *Events) clean() *Events {
	if e.Clean == nil {
		e.Clean = &Events{}
	}
	return e.Clean
}

type Message struct {
	Type  int32
	Value string
}

type PortalChange struct {
	IdOnMap int32
	Type    int32
}

// Clock is a GenerateClock/StartClock (or map clock) pair.
type Clock struct {
	Value      int32 // deciseconds
	TimeoutEnd int32
}

type Monster struct {
	VNum     int32
	EntityID int32
	X        int32
	Y        int32
	Move     bool
	Bonus    bool
	Hostile  bool
	Target   bool
	Dead     bool
	OnDeath  Events
}

type Npc struct {
	VNum      int32
	EntityID  int32
	X         int32
	Y         int32
	Move      bool
	Protected bool
	OnDeath   Events
}

type Portal struct {
	IdOnMap     int32
	X           int32
	Y           int32
	Type        int32
	ToMap       int
	ToX         int32
	ToY         int32
	OnTraversal Events
}

type Button struct {
	ID          int32
	X           int32
	Y           int32
	VNum        int32 // sprite seen in the transcript
	Enabled     int32
	Disabled    int32
	FirstEnable Events

	triggered bool
}
