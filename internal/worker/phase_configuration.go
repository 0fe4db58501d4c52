package worker

import (
	"github.com/StoreStation/blockserver/internal/core"
	"github.com/StoreStation/blockserver/internal/proto"
	"github.com/StoreStation/blockserver/internal/registry"
)

func (w *Worker) handleConfigurationPacket(decoded interface{}) error {
	switch p := decoded.(type) {
	case proto.ClientInformation:
		w.player.ViewDistance = clampViewDistance(p.ViewDistance)
		w.sendPacket(proto.ConfigurationIDClientBoundKnownPacks,
			proto.ClientBoundKnownPacks{Packs: []proto.KnownPack{proto.CorePack}}.Encode())

	case proto.PluginMessage:
		// No configuration-phase plugin channel is recognized.

	case proto.ServerBoundKnownPacks:
		if len(p.Packs) == 0 || p.Packs[0] != proto.CorePack {
			return &proto.ProtocolError{Phase: proto.PhaseConfiguration, Reason: "known-pack mismatch"}
		}
		w.sendRequest(core.RequestTagInfo{})

	case proto.FinishConfigurationAck:
		w.enterPlay()

	default:
		return &proto.ProtocolError{Phase: proto.PhaseConfiguration, Reason: "unexpected decoded type"}
	}
	return nil
}

func (w *Worker) handleConfigurationCoreResponse(resp core.Response) {
	switch r := resp.(type) {
	case core.TagInfo:
		w.sendPacket(proto.ConfigurationIDUpdateTags, proto.UpdateTags{Groups: tagGroupsToWire(r.Groups)}.Encode())
		w.sendRequest(core.RequestRegistryInfo{})

	case core.RegistryInfo:
		w.sendPacket(proto.ConfigurationIDRegistryData, proto.RegistryData{
			RegistryID: r.ID,
			Entries:    registryEntriesToWire(r.Entries),
		}.Encode())

	case core.RegistryInfoFinished:
		w.sendPacket(proto.ConfigurationIDFinish, proto.FinishConfiguration{}.Encode())

	default:
		w.handleCommonCoreResponse(resp)
	}
}

func registryEntriesToWire(entries []registry.Entry) []proto.RegistryEntryWire {
	out := make([]proto.RegistryEntryWire, len(entries))
	for i, e := range entries {
		out[i] = proto.RegistryEntryWire{ID: e.ID, Data: e.Data}
	}
	return out
}

func tagGroupsToWire(groups []registry.TagGroup) []proto.TagGroup {
	out := make([]proto.TagGroup, len(groups))
	for i, g := range groups {
		tags := make([]proto.TagData, len(g.Tags))
		for j, t := range g.Tags {
			tags[j] = proto.TagData{Name: t.Name, Entries: t.Entries}
		}
		out[i] = proto.TagGroup{RegistryID: g.RegistryID, Tags: tags}
	}
	return out
}
