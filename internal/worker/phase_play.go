package worker

import (
	"github.com/StoreStation/blockserver/internal/codec"
	"github.com/StoreStation/blockserver/internal/core"
	"github.com/StoreStation/blockserver/internal/nbt"
	"github.com/StoreStation/blockserver/internal/proto"
)

// lowYCorrection is the y below which a position update is snapped back to
// -64 rather than left alone.
const lowYCorrection = -80

// enterPlay finalizes the configuration->play transition: send the Login
// packet and the fixed initialization burst, then announce the player to
// the rest of the server.
func (w *Worker) enterPlay() {
	w.phase = proto.PhasePlay

	login := proto.Login{
		EntityID:            w.player.EntityID,
		IsHardcore:          false,
		DimensionNames:      []string{"minecraft:overworld"},
		MaxPlayers:          20,
		ViewDistance:        w.player.ViewDistance,
		SimulationDistance:  w.player.ViewDistance,
		ReducedDebugInfo:    false,
		EnableRespawnScreen: false,
		DoLimitedCrafting:   false,
		DimensionTypeID:     0,
		DimensionName:       "minecraft:overworld",
		HashedSeed:          proto.DefaultHashedSeed,
		GameMode:            proto.GameModeCreative,
		PreviousGameMode:    proto.NoPreviousGameMode,
		IsDebug:             false,
		IsFlat:              false,
		HasDeathLocation:    false,
		PortalCooldown:      0,
		EnforcesSecureChat:  false,
	}
	w.sendPacket(proto.PlayIDLogin, login.Encode())
	w.sendPacket(proto.PlayIDChangeDifficulty, proto.ChangeDifficulty{Difficulty: 1, Locked: false}.Encode())
	w.sendPacket(proto.PlayIDCommands, proto.BuiltinCommandGraph())
	w.sendPacket(proto.PlayIDPlayerAbilitiesCB, proto.PlayerAbilitiesCB{
		Flags: 0x0D, FlySpeed: 0.05, FOVModifier: 0.1,
	}.Encode())
	w.sendPacket(proto.PlayIDSetHeldItemCB, proto.SetHeldItemCB{Slot: 0}.Encode())
	w.sendPacket(proto.PlayIDEntityEvent, proto.EntityEvent{
		EntityID: w.player.EntityID, EntityStatus: 24,
	}.Encode())
	w.sendPacket(proto.PlayIDEntityEffect, proto.EntityEffect{
		EntityID: w.player.EntityID, EffectID: 15, Amplifier: 1, Duration: 127, Flags: 0x07,
	}.Encode())

	w.sendRequest(core.ChatMessage{Player: w.player.Name, Text: w.player.Name + " joined the game"})
}

func (w *Worker) handlePlayPacket(decoded interface{}) error {
	switch p := decoded.(type) {
	case proto.ConfirmTeleportation:
		w.player.confirmTeleport(p.TeleportID)

	case proto.SetPlayerPosition:
		w.applyPositionUpdate(p.X, p.Y, p.Z, w.player.Yaw, w.player.Pitch, p.OnGround, false)

	case proto.SetPlayerPositionAndRotation:
		w.applyPositionUpdate(p.X, p.Y, p.Z, p.Yaw, p.Pitch, p.OnGround, true)

	case proto.SetPlayerRotation:
		w.player.Yaw, w.player.Pitch = p.Yaw, p.Pitch
		w.player.OnGround = p.OnGround

	case proto.SetPlayerOnGround:
		w.player.OnGround = p.OnGround

	case proto.PingRequest:
		w.sendPacket(proto.PlayIDPingResponse, proto.PingResponse{Payload: p.Payload}.Encode())

	case proto.ChatMessage:
		w.sendRequest(core.ChatMessage{
			Player:    w.player.Name,
			Text:      p.Message,
			Timestamp: p.Timestamp,
			Salt:      p.Salt,
		})

	case proto.ChatCommand:
		w.handleChatCommand(p.Command)

	case proto.ClientInformation:
		w.player.ViewDistance = clampViewDistance(p.ViewDistance)

	case proto.CloseContainer, proto.DebugSampleSubscription,
		proto.PlayerAbilitiesSB, proto.PlayerAction, proto.PlayerCommand,
		proto.SetHeldItemSB, proto.SetCreativeModeSlot, proto.SwingArm,
		proto.UseItemOn, proto.UseItem:
		// Parsed for framing only; none of these have server-side effects
		// in this world (inventory, combat and block-breaking are
		// non-goals).

	default:
		return &proto.ProtocolError{Phase: proto.PhasePlay, Reason: "unexpected decoded type"}
	}
	return nil
}

// applyPositionUpdate records the client-reported position/rotation and, if
// no teleport-confirm is outstanding, issues a correcting SyncPlayerPosition.
func (w *Worker) applyPositionUpdate(x, y, z float64, yaw, pitch float32, onGround, hasRotation bool) {
	w.player.X, w.player.Z = x, z
	w.player.Y = y
	w.player.OnGround = onGround
	if hasRotation {
		w.player.Yaw, w.player.Pitch = yaw, pitch
	}

	if w.player.outstandingTeleport != nil {
		return
	}

	sync := proto.SyncPlayerPosition{
		Flags: proto.TeleportFlagRelX | proto.TeleportFlagRelZ |
			proto.TeleportFlagRelYaw | proto.TeleportFlagRelPitch,
		Y: 0,
	}
	if y < lowYCorrection {
		sync.Y = -64
	} else {
		sync.Flags |= proto.TeleportFlagRelY
	}
	sync.TeleportID = w.player.nextTeleportID()
	w.sendPacket(proto.PlayIDSyncPlayerPosition, sync.Encode())
}

// handleChatCommand recognizes the single built-in command this server
// implements: "place <state id>", which overwrites the block at the
// player's feet and announces the change.
func (w *Worker) handleChatCommand(line string) {
	stateID, ok := parsePlaceCommand(line)
	if !ok {
		return
	}
	pos := codec.BlockPos{
		X: int32(w.player.X),
		Y: int32(w.player.Y),
		Z: int32(w.player.Z),
	}
	w.sendPacket(proto.PlayIDBlockUpdate, proto.BlockUpdate{Location: pos, StateID: stateID}.Encode())
}

// handleCommonCoreResponse dispatches a core response that every phase past
// login might receive: chat fan-out and chunk delivery. Configuration has
// its own handler for the registry/tag burst and defers everything else
// here.
func (w *Worker) handleCommonCoreResponse(resp core.Response) {
	switch r := resp.(type) {
	case core.ChatMessage:
		msg := proto.DisguisedChatMessage{
			Message:    nbt.TextComponent(r.Text),
			ChatType:   1,
			SenderName: nbt.TextComponent(r.Player),
			HasTarget:  false,
		}
		w.sendPacket(proto.PlayIDDisguisedChatMessage, msg.Encode())

	case core.ChunkData:
		if r.Chunk == nil {
			return
		}
		pkt := proto.ChunkDataAndUpdateLight{
			ChunkX:          r.X,
			ChunkZ:          r.Z,
			Chunk:           r.Chunk,
			BlockDirectBits: w.blockDirectBits,
			BiomeDirectBits: w.biomeDirectBits,
		}
		w.sendPacket(proto.PlayIDChunkDataAndLight, pkt.Encode())
	}
}
