// Package instance holds the scripted-instance XML document and builds it
// from an analyzer model.
package instance

import "encoding/xml"

// Definition is the document root. Field order is emission order.
type Definition struct {
	XMLName        xml.Name       `xml:"Definition"`
	Globals        Globals        `xml:"Globals"`
	InstanceEvents InstanceEvents `xml:"InstanceEvents"`
}

type Value struct {
	Value string `xml:"Value,attr"`
}

type Globals struct {
	Name         Value `xml:"Name"`
	Label        Value `xml:"Label"`
	LevelMinimum Value `xml:"LevelMinimum"`
	LevelMaximum Value `xml:"LevelMaximum"`
	Lives        Value `xml:"Lives"`
	DrawItems    Items `xml:"DrawItems"`
	SpecialItems Items `xml:"SpecialItems"`
	GiftItems    Items `xml:"GiftItems"`
	Gold         Value `xml:"Gold"`
	Reputation   Value `xml:"Reputation"`
}

type Items struct {
	Items []Item `xml:"Item"`
}

type Item struct {
	VNum   int32 `xml:"VNum,attr"`
	Amount int32 `xml:"Amount,attr"`
}

type InstanceEvents struct {
	Maps []CreateMap `xml:"CreateMap"`
}

type CreateMap struct {
	Map      int           `xml:"Map,attr"`
	VNum     int32         `xml:"VNum,attr"`
	IndexX   int32         `xml:"IndexX,attr"`
	IndexY   int32         `xml:"IndexY,attr"`
	Discover *OnDiscover   `xml:"OnCharacterDiscoveringMap"`
	Move     *OnMove       `xml:"OnMoveOnMap"`
	Buttons  []SpawnButton `xml:"SpawnButton"`
	Portals  []SpawnPortal `xml:"SpawnPortal"`
}

// OnDiscover runs when the player enters the map.
type OnDiscover struct {
	NpcDialogs []Value         `xml:"NpcDialog"`
	Messages   []SendMessage   `xml:"SendMessage"`
	Portals    []SpawnPortal   `xml:"SpawnPortal"`
	Npcs       []SummonNpc     `xml:"SummonNpc"`
	Monsters   []SummonMonster `xml:"SummonMonster"`
	Packets    []Value         `xml:"SendPacket"`
}

// OnMove runs once the player first moves on the map.
type OnMove struct {
	Monsters         []SummonMonster    `xml:"SummonMonster"`
	Npcs             []SummonNpc        `xml:"SummonNpc"`
	Messages         []SendMessage      `xml:"SendMessage"`
	NpcDialogs       []Value            `xml:"NpcDialog"`
	Packets          []Value            `xml:"SendPacket"`
	PortalChanges    []ChangePortalType `xml:"ChangePortalType"`
	RefreshMapItems  *Marker            `xml:"RefreshMapItems"`
	GenerateClock    *Value             `xml:"GenerateClock"`
	StartClock       *StartClock        `xml:"StartClock"`
	GenerateMapClock *Value             `xml:"GenerateMapClock"`
	StartMapClock    *StartClock        `xml:"StartMapClock"`
	OnMapClean       *Trigger           `xml:"OnMapClean"`
}

type StartClock struct {
	OnTimeout *Trigger `xml:"OnTimeout"`
}

// Trigger is the body of every nested event list: OnDeath, OnFirstEnable,
// OnMapClean, OnTraversal and OnTimeout.
type Trigger struct {
	Monsters        []SummonMonster    `xml:"SummonMonster"`
	Npcs            []SummonNpc        `xml:"SummonNpc"`
	Messages        []SendMessage      `xml:"SendMessage"`
	NpcDialogs      []Value            `xml:"NpcDialog"`
	Packets         []Value            `xml:"SendPacket"`
	PortalChanges   []ChangePortalType `xml:"ChangePortalType"`
	RefreshMapItems *Marker            `xml:"RefreshMapItems"`
	OnMapClean      *Trigger           `xml:"OnMapClean"`
	Ends            []End              `xml:"End"`
}

// Marker is an element with neither attributes nor children.
type Marker struct{}

type End struct {
	Type int32 `xml:"Type,attr"`
}

type SendMessage struct {
	Value string `xml:"Value,attr"`
	Type  int32  `xml:"Type,attr"`
}

type ChangePortalType struct {
	IdOnMap int32 `xml:"IdOnMap,attr"`
	Type    int32 `xml:"Type,attr"`
}

type SpawnPortal struct {
	IdOnMap     int32    `xml:"IdOnMap,attr"`
	PositionX   int32    `xml:"PositionX,attr"`
	PositionY   int32    `xml:"PositionY,attr"`
	Type        int32    `xml:"Type,attr"`
	ToMap       int      `xml:"ToMap,attr"`
	ToX         int32    `xml:"ToX,attr"`
	ToY         int32    `xml:"ToY,attr"`
	OnTraversal *Trigger `xml:"OnTraversal"`
}

type SummonMonster struct {
	VNum      int32    `xml:"VNum,attr"`
	PositionX int32    `xml:"PositionX,attr"`
	PositionY int32    `xml:"PositionY,attr"`
	Move      bool     `xml:"Move,attr"`
	IsBonus   bool     `xml:"IsBonus,attr"`
	IsHostile bool     `xml:"IsHostile,attr"`
	IsTarget  bool     `xml:"IsTarget,attr,omitempty"`
	OnDeath   *Trigger `xml:"OnDeath"`
}

type SummonNpc struct {
	VNum        int32    `xml:"VNum,attr"`
	PositionX   int32    `xml:"PositionX,attr"`
	PositionY   int32    `xml:"PositionY,attr"`
	Move        bool     `xml:"Move,attr"`
	IsProtected bool     `xml:"IsProtected,attr"`
	OnDeath     *Trigger `xml:"OnDeath"`
}

type SpawnButton struct {
	ID            int32    `xml:"Id,attr"`
	PositionX     int32    `xml:"PositionX,attr"`
	PositionY     int32    `xml:"PositionY,attr"`
	VNumEnabled   int32    `xml:"VNumEnabled,attr"`
	VNumDisabled  int32    `xml:"VNumDisabled,attr"`
	OnFirstEnable *Trigger `xml:"OnFirstEnable"`
}
