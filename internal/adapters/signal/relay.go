package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/core"
)

func (ctl *SignalWSController) handleOffer(cid core.ConnectionID, data []byte) {
	var p offerEvent
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad offer payload")
		return
	}
	ctl.relayToPeer(cid, "offer", p.Target, p.SDPOffer)
}

func (ctl *SignalWSController) handleAnswer(cid core.ConnectionID, data []byte) {
	var p answerEvent
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad answer payload")
		return
	}
	ctl.relayToPeer(cid, "answer", p.Target, p.SDPAnswer)
}

func (ctl *SignalWSController) handleICECandidate(cid core.ConnectionID, data []byte) {
	var p iceCandidateEvent
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad ice-candidate payload")
		return
	}
	ctl.relayToPeer(cid, "ice-candidate", p.Target, p.Candidate)
}

// relayToPeer forwards an opaque negotiation payload to one resolved target.
// A missing sender or target drops the event; neither is fatal.
func (ctl *SignalWSController) relayToPeer(cid core.ConnectionID, kind string, target string, payload json.RawMessage) {
	sender, ok := ctl.Orch.Sender(cid)
	if !ok {
		return
	}
	peer, ok := ctl.Orch.Peer(core.ConnectionID(target))
	if !ok {
		return
	}
	log.Debug().Str("module", "signal").Str("kind", kind).Str("from", string(cid)).Str("to", target).Msg("relaying")
	ctl.sendJSON(peer.Signal, relayEvent{
		Type:            kind,
		FromConnection:  sender.ID,
		FromIdentity:    sender.User.Identity,
		FromDisplayName: sender.User.DisplayName,
		Payload:         payload,
	})
}
