package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

// Direct calls address a stable identity instead of a room peer. When the
// identity has several live connections the call fans out to all of them;
// whichever device answers first carries on the negotiation.

func (ctl *SignalWSController) handleDirectCall(cid core.ConnectionID, data []byte) {
	var p directCallEvent
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad direct-call payload")
		return
	}
	sender, ok := ctl.Orch.Sender(cid)
	if !ok {
		return
	}
	for _, peer := range ctl.Orch.PeersFor(domain.Identity(p.CalleeIdentity)) {
		ctl.sendJSON(peer.Signal, directIncomingCallEvent{
			Type:            "direct-incoming-call",
			CallerIdentity:  sender.User.Identity,
			FromConnection:  sender.ID,
			FromDisplayName: sender.User.DisplayName,
			Payload:         p.SDPOffer,
		})
	}
}

func (ctl *SignalWSController) handleDirectAnswer(cid core.ConnectionID, data []byte) {
	var p directAnswerEvent
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad direct-answer payload")
		return
	}
	sender, ok := ctl.Orch.Sender(cid)
	if !ok {
		return
	}
	for _, peer := range ctl.Orch.PeersFor(domain.Identity(p.CallerIdentity)) {
		ctl.sendJSON(peer.Signal, directCallAnsweredEvent{
			Type:           "direct-call-answered",
			CalleeIdentity: sender.User.Identity,
			FromConnection: sender.ID,
			Payload:        p.SDPAnswer,
		})
	}
}
