// Package worker implements the connection worker: one cooperative,
// non-blocking loop per accepted socket, walking it through handshake,
// status/login, configuration and play. One net.Conn per player,
// generalized from a blocking read loop into a short-poll non-blocking
// loop, and from direct shared-state mutation into explicit messages
// exchanged with internal/core over channels.
package worker

import (
	"context"
	"errors"
	"io"
	"math/bits"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/StoreStation/blockserver/internal/codec"
	"github.com/StoreStation/blockserver/internal/core"
	"github.com/StoreStation/blockserver/internal/proto"
	"github.com/StoreStation/blockserver/internal/registry"
)

// biomeRegistryID names the registry whose entry count sizes the chunk
// section encoder's direct biome palette.
const biomeRegistryID = "minecraft:worldgen/biome"

// maxBufferedBytes bounds the decoder's growable read buffer; exceeding it
// is a fatal per-connection error.
const maxBufferedBytes = 2 << 20 // 2 MiB

// pollInterval bounds the worker loop's CPU spin between iterations when
// there is nothing to do.
const pollInterval = 2 * time.Millisecond

// readDeadline is the short poll window used on every socket read so the
// loop never blocks for long on an idle connection.
const readDeadline = 2 * time.Millisecond

// Worker owns one accepted socket end to end.
type Worker struct {
	id       uint64
	conn     net.Conn
	logger   *zap.SugaredLogger
	snapshot *registry.Snapshot

	toCore   chan<- core.Request
	toWorker <-chan core.Response

	decoder *codec.Decoder
	phase   proto.Phase
	player  Player

	tickStarted bool
	lastTick    time.Time

	status StatusInfo

	blockDirectBits int
	biomeDirectBits int
}

// StatusInfo carries the server-list values reported to a client during
// the Status phase.
type StatusInfo struct {
	MOTD       string
	MaxPlayers int32
}

// New constructs a Worker and returns the run function expected by
// core.WorkerFactory.
func New(snapshot *registry.Snapshot, logger *zap.SugaredLogger, status StatusInfo) core.WorkerFactory {
	return func(conn net.Conn, id uint64, toCore chan<- core.Request, toWorker <-chan core.Response) func(ctx context.Context) {
		w := &Worker{
			id:       id,
			conn:     conn,
			logger:   logger,
			snapshot: snapshot,
			toCore:   toCore,
			toWorker: toWorker,
			decoder:  codec.NewDecoder(maxBufferedBytes),
			phase:    proto.PhaseHandshake,
			player:   newPlayer(),
			status:   status,
		}
		w.blockDirectBits = ceilLog2(int(snapshot.BlockStates.MaxStateID()) + 1)
		if biomes := snapshot.Registry(biomeRegistryID); biomes != nil && len(biomes.Entries) > 1 {
			w.biomeDirectBits = ceilLog2(len(biomes.Entries))
		} else {
			w.biomeDirectBits = 1
		}
		return w.Run
	}
}

// ceilLog2 returns the smallest bit width that can represent values in
// [0, n), matching the palette-sizing rule worldsrc's chunk encoder uses.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Run is the worker's cooperative loop: read whatever is available,
// decode and dispatch every complete frame, drain core responses, and
// (in Play) drive chunk streaming and ticking, all without blocking.
func (w *Worker) Run(ctx context.Context) {
	defer w.conn.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		w.conn.SetReadDeadline(time.Now().Add(readDeadline))
		n, err := w.conn.Read(buf)
		if n > 0 {
			w.decoder.Feed(buf[:n])
		}
		if err != nil && !isTimeout(err) {
			if !errors.Is(err, io.EOF) {
				w.logger.Debugw("connection closed", "worker", w.id, "err", err)
			}
			return
		}

		for {
			frame, ok, ferr := w.decoder.Next()
			if ferr != nil {
				w.logger.Warnw("fatal frame error", "worker", w.id, "phase", w.phase, "err", ferr)
				return
			}
			if !ok {
				break
			}
			if err := w.handleFrame(frame); err != nil {
				w.logger.Warnw("fatal protocol error", "worker", w.id, "phase", w.phase, "err", err)
				return
			}
		}

		w.drainCore()

		if w.phase == proto.PhasePlay {
			now := time.Now()
			w.runChunkLoading()
			w.maybeTick(now)
		}

		time.Sleep(pollInterval)
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// handleFrame decodes one frame against the current phase's dispatch table
// and routes it to the matching handler. An id with no entry in the
// current phase's table is treated as fatal, rather than silently
// ignored.
func (w *Worker) handleFrame(frame codec.Frame) error {
	decoded, err := proto.Dispatch(w.phase, frame.PacketID, frame.Payload)
	if err != nil {
		return err
	}
	switch w.phase {
	case proto.PhaseHandshake:
		return w.handleHandshakePacket(decoded)
	case proto.PhaseStatus:
		return w.handleStatusPacket(decoded)
	case proto.PhaseLogin:
		return w.handleLoginPacket(decoded)
	case proto.PhaseConfiguration:
		return w.handleConfigurationPacket(decoded)
	case proto.PhasePlay:
		return w.handlePlayPacket(decoded)
	default:
		return nil
	}
}

// drainCore dispatches every response currently queued from the server
// core, without blocking if there are none.
func (w *Worker) drainCore() {
	for {
		select {
		case resp, ok := <-w.toWorker:
			if !ok {
				return
			}
			w.handleCoreResponse(resp)
		default:
			return
		}
	}
}

func (w *Worker) handleCoreResponse(resp core.Response) {
	switch w.phase {
	case proto.PhaseConfiguration:
		w.handleConfigurationCoreResponse(resp)
	default:
		w.handleCommonCoreResponse(resp)
	}
}

// sendPacket writes one clientbound frame to the socket.
func (w *Worker) sendPacket(id int32, payload []byte) {
	w.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := w.conn.Write(codec.EncodeFrame(id, payload)); err != nil {
		w.logger.Debugw("write error", "worker", w.id, "err", err)
	}
}

// sendRequest forwards a request to the server core, dropping it rather
// than blocking if the core's inbox is momentarily full.
func (w *Worker) sendRequest(req core.Request) {
	select {
	case w.toCore <- req:
	default:
		w.logger.Warnw("dropping request, core inbox full", "worker", w.id)
	}
}
