package data

import "slices"

// PortalRules infers where a time-space portal leads. Time-space maps are
// laid out as a vertical chain: a portal on the top edge goes forward, one
// on the bottom edge goes back.
type PortalRules struct {
	NextY         int32   `yaml:"next_y"`
	PreviousY     int32   `yaml:"previous_y"`
	ToggleMinType int32   `yaml:"toggle_min_type"`
	ExitTypes     []int32 `yaml:"exit_types"`
	ExitEndType   int32   `yaml:"exit_end_type"`
}

// Direction tells which neighbouring map a portal leads to.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionNext
	DirectionPrevious
)

// IsExit reports whether taking the portal ends the instance.
func (r PortalRules) IsExit(portalType int32) bool {
	return slices.Contains(r.ExitTypes, portalType)
}

// IsToggle reports whether a portal definition of this type changes the
// state of a portal that already exists rather than creating one.
func (r PortalRules) IsToggle(portalType int32) bool {
	return portalType >= r.ToggleMinType && !r.IsExit(portalType)
}

// Destination resolves a portal's target map ordinal and arrival cell.
// The arrival cell mirrors the source onto the opposite edge. toMap is -1
// when the portal leads nowhere the chain can name.
func (r PortalRules) Destination(current int, x, y int32) (dir Direction, toMap int, toX, toY int32) {
	switch y {
	case r.NextY:
		return DirectionNext, current + 1, x, r.PreviousY
	case r.PreviousY:
		if current == 0 {
			return DirectionPrevious, -1, x, r.NextY
		}
		return DirectionPrevious, current - 1, x, r.NextY
	default:
		return DirectionUnknown, -1, x, r.PreviousY
	}
}
