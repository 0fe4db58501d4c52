package worker

import (
	"encoding/json"

	"github.com/StoreStation/blockserver/internal/proto"
)

// statusDescription, statusPlayers, statusVersion and statusJSON mirror the
// JSON document shape the status response sends. encoding/json is used directly
// here: no JSON library in the reference corpus offers anything beyond it
// for this flat, one-shot document.
type statusDescription struct {
	Text string `json:"text"`
}

type statusSample struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type statusPlayers struct {
	Max    int32           `json:"max"`
	Online int32           `json:"online"`
	Sample []statusSample  `json:"sample"`
}

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type statusJSON struct {
	Description statusDescription `json:"description"`
	Players     statusPlayers     `json:"players"`
	Version     statusVersion     `json:"version"`
	Favicon     string            `json:"favicon,omitempty"`
}

func (w *Worker) buildStatusJSON() string {
	doc := statusJSON{
		Description: statusDescription{Text: w.status.MOTD},
		Players:     statusPlayers{Max: w.status.MaxPlayers, Online: 0},
		Version:     statusVersion{Name: proto.GameVersionName, Protocol: proto.ProtocolVersion},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return `{"description":{"text":""},"players":{"max":0,"online":0},"version":{"name":"","protocol":0}}`
	}
	return string(b)
}

func (w *Worker) handleStatusPacket(decoded interface{}) error {
	switch p := decoded.(type) {
	case proto.StatusRequest:
		resp := proto.StatusResponse{JSON: w.buildStatusJSON()}
		w.sendPacket(proto.StatusIDStatusResponse, resp.Encode())
	case proto.Ping:
		pong := proto.PongResponse{Payload: p.Payload}
		w.sendPacket(proto.StatusIDPongResponse, pong.Encode())
	default:
		return &proto.ProtocolError{Phase: proto.PhaseStatus, Reason: "unexpected decoded type"}
	}
	return nil
}
