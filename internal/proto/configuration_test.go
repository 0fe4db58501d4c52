package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StoreStation/blockserver/internal/codec"
)

func TestClientInformationRoundTrip(t *testing.T) {
	var payload []byte
	payload = codec.EncodeString(payload, "en_us")
	payload = codec.EncodeI8(payload, 25)
	payload = codec.EncodeVarInt(payload, 0)
	payload = codec.EncodeBool(payload, true)
	payload = codec.EncodeU8(payload, 0x7F)
	payload = codec.EncodeVarInt(payload, 1)
	payload = codec.EncodeBool(payload, true)
	payload = codec.EncodeBool(payload, true)

	c, err := DecodeClientInformation(payload)
	require.NoError(t, err)
	assert.Equal(t, "en_us", c.Locale)
	assert.EqualValues(t, 25, c.ViewDistance)
	assert.True(t, c.AllowServerListings)
}

func TestServerBoundKnownPacksRequiresCorePack(t *testing.T) {
	var payload []byte
	payload = codec.EncodeVarInt(payload, 1)
	payload = encodeKnownPack(payload, CorePack)

	packs, err := DecodeServerBoundKnownPacks(payload)
	require.NoError(t, err)
	require.Len(t, packs.Packs, 1)
	assert.Equal(t, CorePack, packs.Packs[0])
}

func TestRegistryDataEncodeNoData(t *testing.T) {
	r := RegistryData{
		RegistryID: "minecraft:worldgen/biome",
		Entries: []RegistryEntryWire{
			{ID: "minecraft:plains"},
			{ID: "minecraft:desert"},
		},
	}
	out := r.Encode()
	assert.NotEmpty(t, out)
}

func TestUpdateTagsEncode(t *testing.T) {
	u := UpdateTags{Groups: []TagGroup{
		{RegistryID: "minecraft:block", Tags: []TagData{{Name: "minecraft:mineable/pickaxe", Entries: []int32{1}}}},
	}}
	out := u.Encode()
	assert.NotEmpty(t, out)
}

func TestClientBoundKnownPacksAdvertisesCorePack(t *testing.T) {
	p := ClientBoundKnownPacks{Packs: []KnownPack{CorePack}}
	out := p.Encode()
	assert.NotEmpty(t, out)
}

func TestFinishConfigurationEmptyPayload(t *testing.T) {
	assert.Empty(t, FinishConfiguration{}.Encode())
}
