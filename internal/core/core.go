// Package core implements the server core: the single goroutine that owns
// the resource registry snapshot and the world handle, accepts sockets, and
// exchanges request/response messages with one connection worker per
// socket. Generalized from a mutex-guarded player map into explicit
// channel message-passing rather than shared-state locking.
package core

import (
	"context"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/StoreStation/blockserver/internal/registry"
	"github.com/StoreStation/blockserver/internal/worldsrc"
)

// WorkerFactory spawns a connection worker bound to conn and the given
// channel pair, returning a func that runs the worker's cooperative loop
// until the connection closes. Kept as a factory rather than a concrete
// import to avoid internal/worker depending back on internal/core's
// concrete Core type.
type WorkerFactory func(conn net.Conn, id uint64, toCore chan<- Request, toWorker <-chan Response) func(ctx context.Context)

// Config bundles the values Core needs at construction.
type Config struct {
	Snapshot      *registry.Snapshot
	World         worldsrc.Source
	Listener      net.Listener
	Logger        *zap.SugaredLogger
	SpawnWorker   WorkerFactory
	PollInterval  time.Duration
	InboxCapacity int
}

type workerHandle struct {
	id       uint64
	toCore   chan Request
	toWorker chan Response
	done     chan struct{}
}

// Core is the server core: it owns the listener, the worker registry,
// and the registry/tag/chunk/chat responses every worker consumes.
type Core struct {
	snapshot     *registry.Snapshot
	world        worldsrc.Source
	listener     net.Listener
	logger       *zap.SugaredLogger
	spawnWorker  WorkerFactory
	pollInterval time.Duration
	inboxCap     int

	mu      sync.Mutex
	workers map[uint64]*workerHandle
	nextID  uint64
}

// New builds a Core ready to Run.
func New(cfg Config) *Core {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Millisecond
	}
	if cfg.InboxCapacity <= 0 {
		cfg.InboxCapacity = 256
	}
	return &Core{
		snapshot:     cfg.Snapshot,
		world:        cfg.World,
		listener:     cfg.Listener,
		logger:       cfg.Logger,
		spawnWorker:  cfg.SpawnWorker,
		pollInterval: cfg.PollInterval,
		inboxCap:     cfg.InboxCapacity,
		workers:      make(map[uint64]*workerHandle),
	}
}

// Run drives the accept loop and the request/response poll loop until ctx
// is canceled. It is intended to run on its own goroutine.
func (c *Core) Run(ctx context.Context) {
	newConns := make(chan net.Conn, 8)
	go c.acceptLoop(ctx, newConns)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case conn := <-newConns:
			c.spawn(ctx, conn)
		case <-ticker.C:
			c.pollWorkers()
		}
	}
}

func (c *Core) acceptLoop(ctx context.Context, out chan<- net.Conn) {
	for {
		conn, err := c.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			c.logger.Warnw("accept error", "err", err)
			continue
		}
		select {
		case out <- conn:
		case <-ctx.Done():
			conn.Close()
			return
		}
	}
}

func (c *Core) spawn(ctx context.Context, conn net.Conn) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	handle := &workerHandle{
		id:       id,
		toCore:   make(chan Request, c.inboxCap),
		toWorker: make(chan Response, c.inboxCap),
		done:     make(chan struct{}),
	}
	c.workers[id] = handle
	c.mu.Unlock()

	run := c.spawnWorker(conn, id, handle.toCore, handle.toWorker)
	go func() {
		defer close(handle.done)
		defer func() {
			if r := recover(); r != nil {
				c.logger.Errorw("worker panic", "worker", id, "panic", r)
			}
		}()
		run(ctx)
	}()
}

// pollWorkers drains at most one request per worker per tick and reaps any
// worker that has finished, mirroring the cooperative, non-blocking style
// of the connection worker's own loop.
func (c *Core) pollWorkers() {
	c.mu.Lock()
	handles := make([]*workerHandle, 0, len(c.workers))
	for _, h := range c.workers {
		handles = append(handles, h)
	}
	c.mu.Unlock()

	for _, h := range handles {
		select {
		case req, ok := <-h.toCore:
			if ok {
				c.handleRequest(h, req)
			}
		default:
		}

		select {
		case <-h.done:
			c.mu.Lock()
			delete(c.workers, h.id)
			c.mu.Unlock()
		default:
		}
	}
}

func (c *Core) handleRequest(from *workerHandle, req Request) {
	switch r := req.(type) {
	case RequestRegistryInfo:
		for _, id := range c.snapshot.RegistryOrder {
			reg := c.snapshot.Registries[id]
			c.send(from, RegistryInfo{ID: reg.ID, Entries: reg.Entries})
		}
		c.send(from, RegistryInfoFinished{})

	case RequestTagInfo:
		c.send(from, TagInfo{Groups: c.snapshot.Tags})

	case RequestChunk:
		chunk, err := c.world.Chunk(context.Background(), r.X, r.Z)
		if err != nil {
			c.logger.Warnw("chunk source error", "x", r.X, "z", r.Z, "err", err)
			c.send(from, ChunkData{X: r.X, Z: r.Z})
			return
		}
		c.send(from, ChunkData{X: r.X, Z: r.Z, Chunk: chunk})

	case ChatMessage:
		c.broadcast(r)
	}
}

func (c *Core) send(to *workerHandle, resp Response) {
	select {
	case to.toWorker <- resp:
	default:
		c.logger.Warnw("dropping response, worker inbox full", "worker", to.id)
	}
}

// broadcast fans an identical chat message out to every connected worker,
// including the sender, in the order the core received it.
func (c *Core) broadcast(msg ChatMessage) {
	c.mu.Lock()
	handles := make([]*workerHandle, 0, len(c.workers))
	for _, h := range c.workers {
		handles = append(handles, h)
	}
	c.mu.Unlock()

	for _, h := range handles {
		c.send(h, msg)
	}
}
