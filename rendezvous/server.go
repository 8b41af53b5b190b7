package rendezvous

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// DefaultWait is how long a first caller blocks for its peer before
// being told to retry with a fresh id.
const DefaultWait = 10 * time.Second

// slot tracks one pairing id. paired is closed when the second caller
// arrives; matched distinguishes a live waiter from a completed pair.
type slot struct {
	paired  chan struct{}
	matched bool
}

// Server is a two-party pairing barrier. The first caller under an id
// blocks until a second caller arrives under the same id or the bounded
// wait elapses. A matched id stays known for one wait window, during
// which any further caller is refused.
//
// The server holds no state beyond in-flight pairings and interprets
// nothing about the ids, which are opaque strings chosen by callers.
type Server struct {
	wait time.Duration
	log  zerolog.Logger

	mu    sync.Mutex
	slots map[string]*slot
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithWait sets the bounded wait for the first caller.
func WithWait(d time.Duration) ServerOption {
	return func(s *Server) { s.wait = d }
}

// WithLogger sets the server's logger. The default discards all events.
func WithLogger(log zerolog.Logger) ServerOption {
	return func(s *Server) { s.log = log }
}

// NewServer creates a pairing barrier with [DefaultWait].
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		wait:  DefaultWait,
		log:   zerolog.Nop(),
		slots: make(map[string]*slot),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP surface of the barrier:
//
//	GET /sync/{id}
//
// Responses: 200 when both parties met, 408 when the wait expired
// (retry with a fresh id), 409 when the id was already paired.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/sync/{id}", s.handleSync).Methods(http.MethodGet)
	return r
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	sl, ok := s.slots[id]
	if !ok {
		sl = &slot{paired: make(chan struct{})}
		s.slots[id] = sl
		s.mu.Unlock()
		s.waitForPeer(w, r, id, sl)
		return
	}
	if sl.matched {
		s.mu.Unlock()
		s.log.Warn().Str("id", id).Msg("refusing third caller on paired id")
		http.Error(w, "id already paired", http.StatusConflict)
		return
	}
	sl.matched = true
	close(sl.paired)
	s.mu.Unlock()

	// Keep the matched slot visible for one wait window so late
	// callers get a conflict instead of silently starting a new pair.
	time.AfterFunc(s.wait, func() { s.evict(id, sl) })

	s.log.Info().Str("id", id).Msg("second party arrived, pair complete")
	fmt.Fprintln(w, "both parties synced")
}

// waitForPeer parks the first caller until its peer shows up, the wait
// expires, or the caller goes away.
func (s *Server) waitForPeer(w http.ResponseWriter, r *http.Request, id string, sl *slot) {
	s.log.Debug().Str("id", id).Dur("wait", s.wait).Msg("first party waiting")

	timer := time.NewTimer(s.wait)
	defer timer.Stop()

	select {
	case <-sl.paired:
		s.log.Info().Str("id", id).Msg("first party released")
		fmt.Fprintln(w, "both parties synced")
	case <-timer.C:
		s.mu.Lock()
		matched := sl.matched
		if !matched {
			delete(s.slots, id)
		}
		s.mu.Unlock()
		if matched {
			fmt.Fprintln(w, "both parties synced")
			return
		}
		s.log.Info().Str("id", id).Msg("wait expired, no second party")
		http.Error(w, "no second party arrived, retry with a fresh id", http.StatusRequestTimeout)
	case <-r.Context().Done():
		s.mu.Lock()
		if !sl.matched {
			delete(s.slots, id)
		}
		s.mu.Unlock()
		s.log.Debug().Str("id", id).Msg("first party gone")
	}
}

func (s *Server) evict(id string, sl *slot) {
	s.mu.Lock()
	if cur, ok := s.slots[id]; ok && cur == sl {
		delete(s.slots, id)
	}
	s.mu.Unlock()
}
