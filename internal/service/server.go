// Package service exposes the solver, strategist and bettor over a
// websocket connection: one JSON request/response pair per call, one
// solver instance per connection.
package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/patrikgergely/bbwrl/internal/rules"
)

// Server is the solver service's websocket listener.
type Server struct {
	addr     string
	cfg      rules.Config
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock

	requestTimeout time.Duration
	statsInterval  time.Duration

	mu       sync.Mutex
	active   int
	handled  int
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer builds a Server that answers advise/bet requests under rule
// configuration cfg. clock defaults to quartz.NewReal() when nil — tests
// inject quartz.NewMock() to control the periodic stats tick.
func NewServer(addr string, cfg rules.Config, logger *log.Logger, clock quartz.Clock) *Server {
	if clock == nil {
		clock = quartz.NewReal()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr: addr,
		cfg:  cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:         logger.WithPrefix("service"),
		clock:          clock,
		requestTimeout: 5 * time.Second,
		statsInterval:  time.Minute,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start runs the stats ticker and blocks serving HTTP on addr.
func (s *Server) Start() error {
	go s.logStats()

	mux := http.NewServeMux()
	mux.HandleFunc("/advise", s.handleConn)
	mux.HandleFunc("/health", s.handleHealth)

	s.logger.Info("starting solver service", "addr", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

// Stop cancels the stats ticker. Per-connection request timers are not
// affected.
func (s *Server) Stop() {
	s.cancel()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	s.active++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.active--
		s.mu.Unlock()
	}()

	c := newConnection(conn, s.cfg, s.logger, s.clock, s.requestTimeout)
	c.run()

	s.mu.Lock()
	s.handled += c.handled
	s.mu.Unlock()
}

// logStats reschedules itself on the injected clock every statsInterval,
// the same clock.AfterFunc self-rescheduling shape NetworkAgentManager
// uses for its own periodic work, so tests can drive it deterministically
// with quartz.NewMock() instead of sleeping on the wall clock.
func (s *Server) logStats() {
	var tick func()
	tick = func() {
		select {
		case <-s.ctx.Done():
			return
		default:
		}
		s.mu.Lock()
		active, handled := s.active, s.handled
		s.mu.Unlock()
		s.logger.Info("solver service stats", "activeConnections", active, "requestsHandled", handled)
		s.clock.AfterFunc(s.statsInterval, tick)
	}
	s.clock.AfterFunc(s.statsInterval, tick)
}
