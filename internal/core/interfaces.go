package core

import "github.com/mkacem/groupcall/internal/domain"

// Frame is a raw outbound payload (marshaled signaling event).
type Frame []byte

// ConnectionID identifies one live transport session. Assigned by the
// transport at connect time, unique per session, never reused.
type ConnectionID string

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// MemberDTO is a read-only view for wire events (no transport fields).
type MemberDTO struct {
	Identity     domain.Identity `json:"identity"`
	DisplayName  string          `json:"displayName"`
	ConnectionID ConnectionID    `json:"connectionId"`
}
