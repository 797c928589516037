package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/app"
	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

// Orchestrator drives the connection lifecycle and resolves relay targets.
// It owns no state of its own; all state lives in the three directories,
// and all JSON stays in the transport adapter.
type Orchestrator struct {
	Registry  *app.Registry
	Rooms     *app.RoomDirectory
	Directory *app.DirectDirectory
}

// Departure describes a room a connection just left, with the members that
// remain reachable for a user-left broadcast.
type Departure struct {
	Room      domain.RoomID
	Remaining []*app.Connection
}

// DisconnectResult carries what the adapter needs to notify peers after a
// connection is gone. Conn is nil when the id was never registered.
type DisconnectResult struct {
	Conn *app.Connection
	Left *Departure
}

// Connect validates the user, registers the connection and binds its
// identity. Nothing is created when validation fails.
func (o *Orchestrator) Connect(cid core.ConnectionID, user *domain.User, sig core.SignalConnection) (*app.Connection, error) {
	conn, err := o.Registry.Register(cid, user, sig)
	if err != nil {
		return nil, err
	}
	o.Directory.Bind(user.Identity, cid)
	return conn, nil
}

// Disconnect tears down every record for cid: room membership, identity
// binding, registry entry. Always total; no-ops cleanly for a connection
// that never joined a room or was never registered.
func (o *Orchestrator) Disconnect(cid core.ConnectionID) DisconnectResult {
	res := DisconnectResult{}

	conn, ok := o.Registry.Lookup(cid)
	if !ok {
		log.Warn().Str("module", "app.orch").Str("cid", string(cid)).Msg("disconnect for unknown connection")
		return res
	}
	res.Conn = conn

	if left := o.Rooms.RemoveAll(cid); left.Removed {
		res.Left = &Departure{Room: left.Room, Remaining: o.resolveAll(left.Remaining)}
	}
	o.Directory.Unbind(conn.User.Identity, cid)
	o.Registry.Remove(cid)

	log.Info().Str("module", "app.orch").Str("cid", string(cid)).Str("identity", string(conn.User.Identity)).Msg("disconnected")
	return res
}

// resolveAll maps connection ids to live registry records, skipping ids
// that disappeared in between (disconnect races are expected).
func (o *Orchestrator) resolveAll(cids []core.ConnectionID) []*app.Connection {
	out := make([]*app.Connection, 0, len(cids))
	for _, cid := range cids {
		if conn, ok := o.Registry.Lookup(cid); ok {
			out = append(out, conn)
		}
	}
	return out
}
