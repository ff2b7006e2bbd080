package packet

import "fmt"

// Kind identifies the packet family of a transcript line.
type Kind int

const (
	KindUnknown    Kind = iota
	KindAt              // map enter
	KindRsf             // minimap hint (rsfn / rsfm / rsfp)
	KindWalk            // player movement
	KindIn              // entity appear
	KindSu              // skill use / combat
	KindGp              // portal definition
	KindMsg             // chat / system message
	KindNpcReq          // npc dialog request
	KindEvnt            // timed event
	KindOut             // entity disappear
	KindPreq            // portal traversal request (bare)
	KindRbr             // raid / time-space board
	KindEff             // effect on entity
	KindMapClean        // literal map-clear marker
	KindSendPacket      // configured raw packet forwarded as SendPacket
)

func (k Kind) String() string {
	switch k {
	case KindAt:
		return "AT"
	case KindRsf:
		return "RSF"
	case KindWalk:
		return "WALK"
	case KindIn:
		return "IN"
	case KindSu:
		return "SU"
	case KindGp:
		return "GP"
	case KindMsg:
		return "MSG"
	case KindNpcReq:
		return "NPC_REQ"
	case KindEvnt:
		return "EVNT"
	case KindOut:
		return "OUT"
	case KindPreq:
		return "PREQ"
	case KindRbr:
		return "RBR"
	case KindEff:
		return "EFF"
	case KindMapClean:
		return "MAPCLEAN"
	case KindSendPacket:
		return "SENDPACKET"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// EntityType is the sub-type carried by IN and OUT packets.
type EntityType int

const (
	EntityUnknown EntityType = iota
	EntityPlayer
	EntityNpc
	EntityMonster
	EntityObject
)

// EntityTypeFromCode maps the client's type code (1, 2, 3, 9) to an EntityType.
func EntityTypeFromCode(code int32) EntityType {
	switch code {
	case 1:
		return EntityPlayer
	case 2:
		return EntityNpc
	case 3:
		return EntityMonster
	case 9:
		return EntityObject
	default:
		return EntityUnknown
	}
}

func (t EntityType) String() string {
	switch t {
	case EntityPlayer:
		return "Player"
	case EntityNpc:
		return "Npc"
	case EntityMonster:
		return "Monster"
	case EntityObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// RsfType distinguishes the three minimap packets.
type RsfType int

const (
	RsfUnknown RsfType = iota
	RsfNode
	RsfMap
	RsfPosition
)
