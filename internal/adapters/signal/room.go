package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/app"
	"github.com/mkacem/groupcall/internal/app/orch"
	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

func (ctl *SignalWSController) handleJoinRoom(cid core.ConnectionID, c *WsSignalConn, data []byte) {
	var p joinRoomEvent
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join-room payload")
		ctl.sendError(c, "bad_payload")
		return
	}
	if p.RoomID == "" {
		ctl.sendError(c, "missing roomId")
		return
	}

	joiner, ok := ctl.Orch.Sender(cid)
	if !ok {
		return
	}

	res, err := ctl.Orch.Join(cid, domain.RoomID(p.RoomID))
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("join failed")
		return
	}

	// Members of an implicitly-left room are told before the new room hears
	// about the join.
	if res.Left != nil {
		ctl.broadcastUserLeft(res.Left, joiner)
	}

	ctl.sendJSON(c, roomJoinedEvent{
		Type:    "room-joined",
		RoomID:  res.Room,
		Members: views(res.Others),
	})

	if res.AlreadyMember {
		return
	}
	joined := userJoinedEvent{Type: "user-joined", User: joiner.View()}
	for _, peer := range res.Others {
		ctl.sendJSON(peer.Signal, joined)
	}
}

func (ctl *SignalWSController) handleLeaveRoom(cid core.ConnectionID, data []byte) {
	var p leaveRoomEvent
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad leave-room payload")
		return
	}

	leaver, ok := ctl.Orch.Sender(cid)
	if !ok {
		return
	}
	dep := ctl.Orch.Leave(cid, domain.RoomID(p.RoomID))
	if dep.Room != "" {
		ctl.broadcastUserLeft(&dep, leaver)
	}
}

// handleDisconnect runs once per connection from the readPump defer.
func (ctl *SignalWSController) handleDisconnect(cid core.ConnectionID) {
	res := ctl.Orch.Disconnect(cid)
	if res.Conn == nil || res.Left == nil {
		return
	}
	ctl.broadcastUserLeft(res.Left, res.Conn)
}

func (ctl *SignalWSController) broadcastUserLeft(dep *orch.Departure, who *app.Connection) {
	ev := userLeftEvent{
		Type:         "user-left",
		Identity:     who.User.Identity,
		ConnectionID: who.ID,
	}
	for _, peer := range dep.Remaining {
		ctl.sendJSON(peer.Signal, ev)
	}
}

func views(conns []*app.Connection) []core.MemberDTO {
	out := make([]core.MemberDTO, 0, len(conns))
	for _, c := range conns {
		out = append(out, c.View())
	}
	return out
}
