package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/app"
	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

// Sender resolves the originator of an inbound event. A miss means the
// event raced disconnect processing; callers drop the event.
func (o *Orchestrator) Sender(cid core.ConnectionID) (*app.Connection, bool) {
	conn, ok := o.Registry.Lookup(cid)
	if !ok {
		log.Warn().Str("module", "app.orch").Str("cid", string(cid)).Msg("event from unregistered connection, dropping")
	}
	return conn, ok
}

// Peer resolves a relay target by connection id. A miss is a non-fatal
// outcome (target disconnected mid-negotiation).
func (o *Orchestrator) Peer(target core.ConnectionID) (*app.Connection, bool) {
	conn, ok := o.Registry.Lookup(target)
	if !ok {
		log.Warn().Str("module", "app.orch").Str("target", string(target)).Msg("relay target not found, dropping")
	}
	return conn, ok
}

// PeersFor resolves every live connection bound to identity. Empty when the
// identity is not connected; callers drop the event in that case.
func (o *Orchestrator) PeersFor(identity domain.Identity) []*app.Connection {
	peers := o.resolveAll(o.Directory.Resolve(identity))
	if len(peers) == 0 {
		log.Warn().Str("module", "app.orch").Str("identity", string(identity)).Msg("identity not connected, dropping relay")
	}
	return peers
}
