package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

// JoinResult reports the outcome of a join as one atomic step.
type JoinResult struct {
	// Others holds the member ids already in the room, excluding the joiner,
	// snapshotted at post-join state.
	Others []core.ConnectionID
	// AlreadyMember is true when the joiner was in the room before the call;
	// no mutation happened in that case.
	AlreadyMember bool
	// Previous is the room implicitly left, "" if none. PreviousRemaining
	// holds its members after the removal.
	Previous          domain.RoomID
	PreviousRemaining []core.ConnectionID
}

// LeaveResult reports whether a membership was actually removed and who is
// still in the room afterwards.
type LeaveResult struct {
	Room      domain.RoomID
	Removed   bool
	Remaining []core.ConnectionID
}

type RoomInfo struct {
	ID          domain.RoomID `json:"roomId"`
	MemberCount int           `json:"memberCount"`
}

// RoomDirectory maps rooms to member sets. A reverse index (connection to
// room) lives under the same lock, so "leave previous room + join new room"
// is a single critical section and no partial state is observable. It also
// keeps disconnect cleanup O(1) instead of scanning all rooms.
type RoomDirectory struct {
	mu      sync.RWMutex
	members map[domain.RoomID]map[core.ConnectionID]struct{}
	roomOf  map[core.ConnectionID]domain.RoomID
}

func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{
		members: make(map[domain.RoomID]map[core.ConnectionID]struct{}),
		roomOf:  make(map[core.ConnectionID]domain.RoomID),
	}
}

// Join inserts cid into roomID, creating the room lazily and leaving any
// previous room first. Duplicate joins are no-ops reported via AlreadyMember.
func (d *RoomDirectory) Join(roomID domain.RoomID, cid core.ConnectionID) JoinResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := JoinResult{}

	if prev, ok := d.roomOf[cid]; ok {
		if prev == roomID {
			res.AlreadyMember = true
			res.Others = d.othersLocked(roomID, cid)
			return res
		}
		d.removeLocked(prev, cid)
		res.Previous = prev
		res.PreviousRemaining = d.othersLocked(prev, cid)
	}

	set, ok := d.members[roomID]
	if !ok {
		set = make(map[core.ConnectionID]struct{})
		d.members[roomID] = set
		log.Info().Str("module", "app.rooms").Str("room", string(roomID)).Msg("room created")
	}
	set[cid] = struct{}{}
	d.roomOf[cid] = roomID
	res.Others = d.othersLocked(roomID, cid)

	log.Info().Str("module", "app.rooms").Str("room", string(roomID)).Str("cid", string(cid)).Int("size", len(set)).Msg("member joined")
	return res
}

// Leave removes cid from roomID. No-op if the room or the membership does
// not exist; the room is deleted once its member set becomes empty.
func (d *RoomDirectory) Leave(roomID domain.RoomID, cid core.ConnectionID) LeaveResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	set, ok := d.members[roomID]
	if !ok {
		return LeaveResult{}
	}
	if _, ok := set[cid]; !ok {
		return LeaveResult{}
	}
	d.removeLocked(roomID, cid)
	if d.roomOf[cid] == roomID {
		delete(d.roomOf, cid)
	}
	log.Info().Str("module", "app.rooms").Str("room", string(roomID)).Str("cid", string(cid)).Msg("member left")
	return LeaveResult{Room: roomID, Removed: true, Remaining: d.othersLocked(roomID, cid)}
}

// RemoveAll drops cid from whatever room it is in. Used on disconnect.
func (d *RoomDirectory) RemoveAll(cid core.ConnectionID) LeaveResult {
	d.mu.RLock()
	roomID, ok := d.roomOf[cid]
	d.mu.RUnlock()
	if !ok {
		return LeaveResult{}
	}
	return d.Leave(roomID, cid)
}

// RoomOf returns the room cid currently belongs to, if any.
func (d *RoomDirectory) RoomOf(cid core.ConnectionID) (domain.RoomID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	roomID, ok := d.roomOf[cid]
	return roomID, ok
}

// MembersOf returns a snapshot of the member set, empty if no such room.
func (d *RoomDirectory) MembersOf(roomID domain.RoomID) []core.ConnectionID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	set := d.members[roomID]
	out := make([]core.ConnectionID, 0, len(set))
	for cid := range set {
		out = append(out, cid)
	}
	return out
}

func (d *RoomDirectory) List() []RoomInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]RoomInfo, 0, len(d.members))
	for roomID, set := range d.members {
		out = append(out, RoomInfo{ID: roomID, MemberCount: len(set)})
	}
	return out
}

// removeLocked deletes the membership and the room itself once empty.
func (d *RoomDirectory) removeLocked(roomID domain.RoomID, cid core.ConnectionID) {
	set, ok := d.members[roomID]
	if !ok {
		return
	}
	delete(set, cid)
	if len(set) == 0 {
		delete(d.members, roomID)
		log.Info().Str("module", "app.rooms").Str("room", string(roomID)).Msg("room deleted (empty)")
	}
}

func (d *RoomDirectory) othersLocked(roomID domain.RoomID, cid core.ConnectionID) []core.ConnectionID {
	set := d.members[roomID]
	out := make([]core.ConnectionID, 0, len(set))
	for member := range set {
		if member == cid {
			continue
		}
		out = append(out, member)
	}
	return out
}
