package bridge

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// room pairs the two WebSocket connections under one relay id.
type room struct {
	first *websocket.Conn
	full  bool
}

// Relay is a payload-opaque message bridge. It pairs two WebSocket
// connections per id and pipes frames between them verbatim, in both
// directions, without inspecting the bytes. A third connection on a
// live id is refused.
type Relay struct {
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	rooms map[string]*room
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

// WithLogger sets the relay's logger. The default discards all events.
func WithLogger(log zerolog.Logger) RelayOption {
	return func(r *Relay) { r.log = log }
}

// NewRelay creates an empty relay.
func NewRelay(opts ...RelayOption) *Relay {
	r := &Relay{
		log:   zerolog.Nop(),
		rooms: make(map[string]*room),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handler returns the HTTP surface of the relay:
//
//	GET /relay/{id}   (WebSocket upgrade)
func (rl *Relay) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/relay/{id}", rl.handleRelay).Methods(http.MethodGet)
	return r
}

func (rl *Relay) handleRelay(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// Reserve a seat in the room before upgrading so a third caller
	// gets a plain HTTP error instead of a dead socket.
	rl.mu.Lock()
	rm, ok := rl.rooms[id]
	switch {
	case !ok:
		rm = &room{}
		rl.rooms[id] = rm
	case rm.full:
		rl.mu.Unlock()
		rl.log.Warn().Str("id", id).Msg("refusing third connection on live relay id")
		http.Error(w, "relay id already in use", http.StatusConflict)
		return
	default:
		rm.full = true
	}
	first := !ok
	rl.mu.Unlock()

	conn, err := rl.upgrader.Upgrade(w, r, nil)
	if err != nil {
		rl.log.Warn().Str("id", id).Err(err).Msg("upgrade failed")
		rl.release(id, rm, first)
		return
	}

	if first {
		rl.mu.Lock()
		rm.first = conn
		rl.mu.Unlock()
		rl.log.Debug().Str("id", id).Msg("first peer connected")
		return
	}

	rl.mu.Lock()
	peer := rm.first
	rl.mu.Unlock()

	if peer == nil {
		// First seat was reserved but its upgrade never completed.
		conn.Close()
		rl.release(id, rm, false)
		return
	}

	// The room stays full while frames flow, so further connections on
	// this id are refused until both peers hang up.
	rl.log.Info().Str("id", id).Msg("relay established")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); pipe(peer, conn) }()
	go func() { defer wg.Done(); pipe(conn, peer) }()
	go func() {
		wg.Wait()
		rl.evict(id, rm)
		rl.log.Debug().Str("id", id).Msg("relay closed")
	}()
}

// evict frees the id once the relayed conversation has ended.
func (rl *Relay) evict(id string, rm *room) {
	rl.mu.Lock()
	if cur, ok := rl.rooms[id]; ok && cur == rm {
		delete(rl.rooms, id)
	}
	rl.mu.Unlock()
}

// release undoes a seat reservation after a failed upgrade.
func (rl *Relay) release(id string, rm *room, first bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if cur, ok := rl.rooms[id]; ok && cur == rm {
		if first {
			delete(rl.rooms, id)
		} else {
			rm.full = false
		}
	}
}

// pipe copies frames from src to dst until either side fails, then
// closes both so the peer's pump unblocks.
func pipe(src, dst *websocket.Conn) {
	for {
		mt, msg, err := src.ReadMessage()
		if err != nil {
			break
		}
		if err := dst.WriteMessage(mt, msg); err != nil {
			break
		}
	}
	src.Close()
	dst.Close()
}
