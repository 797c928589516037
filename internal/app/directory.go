package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

// DirectDirectory maps a stable identity to the connections currently
// registered under it. Normally one, but several devices may hold the same
// identity at once; nothing here conflates them, and identity-addressed
// relays fan out to all of them.
type DirectDirectory struct {
	mu    sync.RWMutex
	conns map[domain.Identity]map[core.ConnectionID]struct{}
}

func NewDirectDirectory() *DirectDirectory {
	return &DirectDirectory{conns: make(map[domain.Identity]map[core.ConnectionID]struct{})}
}

// Bind adds cid under identity. Called once at connect time.
func (d *DirectDirectory) Bind(identity domain.Identity, cid core.ConnectionID) {
	d.mu.Lock()
	set, ok := d.conns[identity]
	if !ok {
		set = make(map[core.ConnectionID]struct{})
		d.conns[identity] = set
	}
	set[cid] = struct{}{}
	d.mu.Unlock()
	log.Info().Str("module", "app.directory").Str("identity", string(identity)).Str("cid", string(cid)).Msg("bound identity")
}

// Unbind removes cid from identity's set, deleting the entry once empty.
// Called at disconnect; no-op if the binding does not exist.
func (d *DirectDirectory) Unbind(identity domain.Identity, cid core.ConnectionID) {
	d.mu.Lock()
	if set, ok := d.conns[identity]; ok {
		delete(set, cid)
		if len(set) == 0 {
			delete(d.conns, identity)
		}
	}
	d.mu.Unlock()
	log.Info().Str("module", "app.directory").Str("identity", string(identity)).Str("cid", string(cid)).Msg("unbound identity")
}

// Resolve returns all live connections registered under identity. An empty
// result is an expected outcome, not an error.
func (d *DirectDirectory) Resolve(identity domain.Identity) []core.ConnectionID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	set := d.conns[identity]
	out := make([]core.ConnectionID, 0, len(set))
	for cid := range set {
		out = append(out, cid)
	}
	return out
}
