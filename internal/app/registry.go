package app

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

var ErrNotRegistered = errors.New("connection not registered")

// Connection is the live record for one transport session.
type Connection struct {
	ID     core.ConnectionID
	User   *domain.User
	Signal core.SignalConnection
}

func (c *Connection) View() core.MemberDTO {
	return core.MemberDTO{
		Identity:     c.User.Identity,
		DisplayName:  c.User.DisplayName,
		ConnectionID: c.ID,
	}
}

// Registry is the single source of truth for live connections. Targets are
// always resolved here, never through transport internals.
type Registry struct {
	mu    sync.RWMutex
	conns map[core.ConnectionID]*Connection
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[core.ConnectionID]*Connection)}
}

// Register stores the record for cid. Called exactly once per connection, at
// connect time; the transport guarantees cid uniqueness.
func (r *Registry) Register(cid core.ConnectionID, user *domain.User, sig core.SignalConnection) (*Connection, error) {
	if user == nil || user.Identity == "" {
		return nil, domain.ErrIdentityEmpty
	}
	conn := &Connection{ID: cid, User: user, Signal: sig}
	r.mu.Lock()
	r.conns[cid] = conn
	r.mu.Unlock()
	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Str("identity", string(user.Identity)).Msg("registered connection")
	return conn, nil
}

func (r *Registry) Lookup(cid core.ConnectionID) (*Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[cid]
	return conn, ok
}

// Remove deletes the record. No-op if already absent.
func (r *Registry) Remove(cid core.ConnectionID) {
	r.mu.Lock()
	delete(r.conns, cid)
	r.mu.Unlock()
	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Msg("removed connection")
}
