package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/app"
	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

// JoinResult is the resolved counterpart of app.JoinResult: member ids
// turned into registry records ready for emission.
type JoinResult struct {
	Room          domain.RoomID
	AlreadyMember bool
	Others        []*app.Connection
	Left          *Departure
}

// Join puts cid into roomID, implicitly leaving any previous room. The
// joiner must be registered.
func (o *Orchestrator) Join(cid core.ConnectionID, roomID domain.RoomID) (JoinResult, error) {
	if _, ok := o.Registry.Lookup(cid); !ok {
		return JoinResult{}, app.ErrNotRegistered
	}

	r := o.Rooms.Join(roomID, cid)
	res := JoinResult{
		Room:          roomID,
		AlreadyMember: r.AlreadyMember,
		Others:        o.resolveAll(r.Others),
	}
	if r.Previous != "" {
		res.Left = &Departure{Room: r.Previous, Remaining: o.resolveAll(r.PreviousRemaining)}
	}
	log.Info().Str("module", "app.orch").Str("cid", string(cid)).Str("room", string(roomID)).Bool("already_member", r.AlreadyMember).Msg("join")
	return res, nil
}

// Leave removes cid from roomID. Unknown room or membership is a no-op.
func (o *Orchestrator) Leave(cid core.ConnectionID, roomID domain.RoomID) Departure {
	r := o.Rooms.Leave(roomID, cid)
	if !r.Removed {
		log.Debug().Str("module", "app.orch").Str("cid", string(cid)).Str("room", string(roomID)).Msg("leave for unknown room or membership")
		return Departure{}
	}
	log.Info().Str("module", "app.orch").Str("cid", string(cid)).Str("room", string(roomID)).Msg("leave")
	return Departure{Room: roomID, Remaining: o.resolveAll(r.Remaining)}
}
