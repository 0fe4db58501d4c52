package worker

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/StoreStation/blockserver/internal/codec"
	"github.com/StoreStation/blockserver/internal/core"
	"github.com/StoreStation/blockserver/internal/proto"
	"github.com/StoreStation/blockserver/internal/registry"
)

func testSnapshot(t *testing.T) *registry.Snapshot {
	t.Helper()
	blocks := registry.NewBlockStateTable()
	blocks.AddBlock("minecraft:air", []registry.BlockState{{ID: 0, Default: true}})
	blocks.AddBlock("minecraft:stone", []registry.BlockState{{ID: 1, Default: true}})
	return &registry.Snapshot{
		RegistryOrder: nil,
		Registries:    map[string]*registry.Registry{},
		BlockStates:   blocks,
	}
}

// readFrame reads exactly one frame off conn using a short-lived decoder,
// blocking until a complete frame arrives or the deadline trips.
func readFrame(t *testing.T, conn net.Conn) codec.Frame {
	t.Helper()
	dec := codec.NewDecoder(0)
	buf := make([]byte, 4096)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		frame, ok, err := dec.Next()
		require.NoError(t, err)
		if ok {
			return frame
		}
		n, err := conn.Read(buf)
		require.NoError(t, err)
		dec.Feed(buf[:n])
	}
}

func TestHandshakeStatusRequestAndPing(t *testing.T) {
	client, srvConn := net.Pipe()
	defer client.Close()

	snapshot := testSnapshot(t)
	factory := New(snapshot, zap.NewNop().Sugar(), StatusInfo{MOTD: "hi there", MaxPlayers: 20})

	toCore := make(chan core.Request, 8)
	toWorker := make(chan core.Response, 8)
	run := factory(srvConn, 1, toCore, toWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go run(ctx)

	var handshakePayload []byte
	handshakePayload = codec.EncodeVarInt(handshakePayload, 767)
	handshakePayload = codec.EncodeString(handshakePayload, "localhost")
	handshakePayload = codec.EncodeU16(handshakePayload, 25565)
	handshakePayload = codec.EncodeVarInt(handshakePayload, proto.NextStateStatus)
	_, err := client.Write(codec.EncodeFrame(proto.HandshakeIDHandshake, handshakePayload))
	require.NoError(t, err)

	_, err = client.Write(codec.EncodeFrame(proto.StatusIDStatusRequest, nil))
	require.NoError(t, err)

	frame := readFrame(t, client)
	require.Equal(t, proto.StatusIDStatusResponse, frame.PacketID)
	json, _, err := codec.DecodeString(frame.Payload)
	require.NoError(t, err)
	require.Contains(t, json, "hi there")

	var pingPayload []byte
	pingPayload = append(pingPayload, 1, 2, 3, 4, 5, 6, 7, 8)
	_, err = client.Write(codec.EncodeFrame(proto.StatusIDPing, pingPayload))
	require.NoError(t, err)

	pong := readFrame(t, client)
	require.Equal(t, proto.StatusIDPongResponse, pong.PacketID)
	require.Equal(t, pingPayload, pong.Payload)
}
