package signal

import (
	"encoding/json"

	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

// Inbound payloads. Negotiation blobs stay opaque end to end.

type joinRoomEvent struct {
	RoomID string `json:"roomId"`
}

type leaveRoomEvent struct {
	RoomID string `json:"roomId"`
}

type offerEvent struct {
	Target   string          `json:"targetConnectionId"`
	SDPOffer json.RawMessage `json:"sdpOffer"`
}

type answerEvent struct {
	Target    string          `json:"targetConnectionId"`
	SDPAnswer json.RawMessage `json:"sdpAnswer"`
}

type iceCandidateEvent struct {
	Target    string          `json:"targetConnectionId"`
	Candidate json.RawMessage `json:"iceCandidate"`
}

type directCallEvent struct {
	CalleeIdentity string          `json:"calleeIdentity"`
	SDPOffer       json.RawMessage `json:"sdpOffer"`
}

type directAnswerEvent struct {
	CallerIdentity string          `json:"callerIdentity"`
	SDPAnswer      json.RawMessage `json:"sdpAnswer"`
}

// Outbound events.

type roomJoinedEvent struct {
	Type    string           `json:"type"`
	RoomID  domain.RoomID    `json:"roomId"`
	Members []core.MemberDTO `json:"members"`
}

type userJoinedEvent struct {
	Type string         `json:"type"`
	User core.MemberDTO `json:"user"`
}

type userLeftEvent struct {
	Type         string            `json:"type"`
	Identity     domain.Identity   `json:"identity"`
	ConnectionID core.ConnectionID `json:"connectionId"`
}

// relayEvent carries offer, answer and ice-candidate forwards. Sender fields
// let the target reply without a directory lookup.
type relayEvent struct {
	Type            string            `json:"type"`
	FromConnection  core.ConnectionID `json:"fromConnectionId"`
	FromIdentity    domain.Identity   `json:"fromIdentity"`
	FromDisplayName string            `json:"fromDisplayName,omitempty"`
	Payload         json.RawMessage   `json:"payload"`
}

type directIncomingCallEvent struct {
	Type            string            `json:"type"`
	CallerIdentity  domain.Identity   `json:"callerIdentity"`
	FromConnection  core.ConnectionID `json:"fromConnectionId"`
	FromDisplayName string            `json:"fromDisplayName,omitempty"`
	Payload         json.RawMessage   `json:"payload"`
}

type directCallAnsweredEvent struct {
	Type           string            `json:"type"`
	CalleeIdentity domain.Identity   `json:"calleeIdentity"`
	FromConnection core.ConnectionID `json:"fromConnectionId"`
	Payload        json.RawMessage   `json:"payload"`
}

type errorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
