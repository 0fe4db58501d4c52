package proto

import "github.com/StoreStation/blockserver/internal/codec"

// Configuration phase packet ids.
const (
	ConfigurationIDClientInformation     int32 = 0x00 // serverbound
	ConfigurationIDPluginMessage         int32 = 0x02 // serverbound
	ConfigurationIDFinishAck             int32 = 0x03 // serverbound
	ConfigurationIDServerBoundKnownPacks int32 = 0x07 // serverbound
	ConfigurationIDFinish                int32 = 0x03 // clientbound
	ConfigurationIDRegistryData          int32 = 0x07 // clientbound
	ConfigurationIDUpdateTags            int32 = 0x0D // clientbound
	ConfigurationIDClientBoundKnownPacks int32 = 0x0E // clientbound
)

// ClientInformation is sent once in Configuration and again, identically
// shaped, in Play.
type ClientInformation struct {
	Locale             string
	ViewDistance       int8
	ChatMode           int32
	ChatColors         bool
	SkinParts          uint8
	MainHand           int32
	TextFiltering      bool
	AllowServerListings bool
}

// DecodeClientInformation parses a ClientInformation packet payload.
func DecodeClientInformation(payload []byte) (ClientInformation, error) {
	var c ClientInformation
	var n int
	var err error

	c.Locale, n, err = codec.DecodeString(payload)
	if err != nil {
		return c, errDecode(PhaseConfiguration, "locale", err)
	}
	payload = payload[n:]

	vd, n, err := codec.DecodeI8(payload)
	if err != nil {
		return c, errDecode(PhaseConfiguration, "view_distance", err)
	}
	c.ViewDistance = vd
	payload = payload[n:]

	c.ChatMode, n, err = codec.DecodeVarInt(payload)
	if err != nil {
		return c, errDecode(PhaseConfiguration, "chat_mode", err)
	}
	payload = payload[n:]

	c.ChatColors, n, err = codec.DecodeBool(payload)
	if err != nil {
		return c, errDecode(PhaseConfiguration, "chat_colors", err)
	}
	payload = payload[n:]

	c.SkinParts, n, err = codec.DecodeU8(payload)
	if err != nil {
		return c, errDecode(PhaseConfiguration, "skin_parts", err)
	}
	payload = payload[n:]

	c.MainHand, n, err = codec.DecodeVarInt(payload)
	if err != nil {
		return c, errDecode(PhaseConfiguration, "main_hand", err)
	}
	payload = payload[n:]

	c.TextFiltering, n, err = codec.DecodeBool(payload)
	if err != nil {
		return c, errDecode(PhaseConfiguration, "text_filtering", err)
	}
	payload = payload[n:]

	c.AllowServerListings, _, err = codec.DecodeBool(payload)
	if err != nil {
		return c, errDecode(PhaseConfiguration, "server_listings", err)
	}
	return c, nil
}

// PluginMessage carries an arbitrary channel-addressed byte payload.
type PluginMessage struct {
	Channel string
	Data    []byte
}

// DecodePluginMessage parses a PluginMessage packet payload.
func DecodePluginMessage(payload []byte) (PluginMessage, error) {
	var m PluginMessage
	channel, n, err := codec.DecodeString(payload)
	if err != nil {
		return m, errDecode(PhaseConfiguration, "channel", err)
	}
	m.Channel = channel
	m.Data = append([]byte{}, payload[n:]...)
	return m, nil
}

// FinishConfigurationAck carries no fields.
type FinishConfigurationAck struct{}

// DecodeFinishConfigurationAck returns the empty ack; any payload bytes are
// ignored.
func DecodeFinishConfigurationAck(payload []byte) (FinishConfigurationAck, error) {
	return FinishConfigurationAck{}, nil
}

// KnownPack identifies a data-pack namespace/id/version triple exchanged
// during configuration.
type KnownPack struct {
	Namespace string
	ID        string
	Version   string
}

func decodeKnownPack(payload []byte) (KnownPack, int, error) {
	var kp KnownPack
	total := 0

	ns, n, err := codec.DecodeString(payload)
	if err != nil {
		return kp, 0, err
	}
	payload, total = payload[n:], total+n

	id, n, err := codec.DecodeString(payload)
	if err != nil {
		return kp, 0, err
	}
	payload, total = payload[n:], total+n

	ver, n, err := codec.DecodeString(payload)
	if err != nil {
		return kp, 0, err
	}
	total += n

	kp.Namespace, kp.ID, kp.Version = ns, id, ver
	return kp, total, nil
}

func encodeKnownPack(dst []byte, kp KnownPack) []byte {
	dst = codec.EncodeString(dst, kp.Namespace)
	dst = codec.EncodeString(dst, kp.ID)
	dst = codec.EncodeString(dst, kp.Version)
	return dst
}

// CorePack is the single known pack this server advertises and requires.
var CorePack = KnownPack{Namespace: "minecraft", ID: "core", Version: "1.21"}

// ServerBoundKnownPacks lists the packs the client claims to already have.
type ServerBoundKnownPacks struct {
	Packs []KnownPack
}

// DecodeServerBoundKnownPacks parses a ServerBoundKnownPacks payload.
func DecodeServerBoundKnownPacks(payload []byte) (ServerBoundKnownPacks, error) {
	var out ServerBoundKnownPacks
	count, n, err := codec.DecodeVarInt(payload)
	if err != nil {
		return out, errDecode(PhaseConfiguration, "pack_count", err)
	}
	payload = payload[n:]

	for i := int32(0); i < count; i++ {
		kp, n, err := decodeKnownPack(payload)
		if err != nil {
			return out, errDecode(PhaseConfiguration, "pack", err)
		}
		payload = payload[n:]
		out.Packs = append(out.Packs, kp)
	}
	return out, nil
}

// FinishConfiguration carries no fields.
type FinishConfiguration struct{}

// Encode renders the (empty) clientbound FinishConfiguration payload.
func (FinishConfiguration) Encode() []byte { return nil }

// RegistryEntryWire is one entry of a RegistryData packet: an identifier
// and an optional opaque NBT payload. The resource-registry loader never
// attaches payload data (see registry package), so Data is always nil in
// this server, but the wire shape still carries the has_data flag.
type RegistryEntryWire struct {
	ID   string
	Data []byte
}

// RegistryData announces the numeric-id space of a single registry.
type RegistryData struct {
	RegistryID string
	Entries    []RegistryEntryWire
}

// Encode renders the clientbound RegistryData payload.
func (r RegistryData) Encode() []byte {
	buf := codec.EncodeString(nil, r.RegistryID)
	buf = codec.EncodeVarInt(buf, int32(len(r.Entries)))
	for _, e := range r.Entries {
		buf = codec.EncodeString(buf, e.ID)
		hasData := e.Data != nil
		buf = codec.EncodeBool(buf, hasData)
		if hasData {
			buf = append(buf, e.Data...)
		}
	}
	return buf
}

// TagData is one named tag and its resolved numeric-id members.
type TagData struct {
	Name      string
	Entries   []int32
}

// TagGroup is every tag declared against a single registry.
type TagGroup struct {
	RegistryID string
	Tags       []TagData
}

// UpdateTags carries every tag group known to the server.
type UpdateTags struct {
	Groups []TagGroup
}

// Encode renders the clientbound UpdateTags payload.
func (u UpdateTags) Encode() []byte {
	buf := codec.EncodeVarInt(nil, int32(len(u.Groups)))
	for _, g := range u.Groups {
		buf = codec.EncodeString(buf, g.RegistryID)
		buf = codec.EncodeVarInt(buf, int32(len(g.Tags)))
		for _, tag := range g.Tags {
			buf = codec.EncodeString(buf, tag.Name)
			buf = codec.EncodeVarInt(buf, int32(len(tag.Entries)))
			for _, id := range tag.Entries {
				buf = codec.EncodeVarInt(buf, id)
			}
		}
	}
	return buf
}

// ClientBoundKnownPacks advertises the packs the server supports. This
// server always advertises exactly CorePack.
type ClientBoundKnownPacks struct {
	Packs []KnownPack
}

// Encode renders the clientbound ClientBoundKnownPacks payload.
func (p ClientBoundKnownPacks) Encode() []byte {
	buf := codec.EncodeVarInt(nil, int32(len(p.Packs)))
	for _, kp := range p.Packs {
		buf = encodeKnownPack(buf, kp)
	}
	return buf
}
