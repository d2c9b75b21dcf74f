package service

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/patrikgergely/bbwrl/internal/bettor"
	"github.com/patrikgergely/bbwrl/internal/cards"
	"github.com/patrikgergely/bbwrl/internal/rules"
	"github.com/patrikgergely/bbwrl/internal/solver"
	"github.com/patrikgergely/bbwrl/internal/strategist"
)

func linearUtility(w float64) float64 { return w }

// connection owns exactly one solver (and the strategist/bettor built on
// top of it) for the lifetime of one websocket connection. At most one
// goroutine uses the solver at a time, matching the solver's
// non-reentrancy contract: after a request times out the connection
// stops reading further requests.
type connection struct {
	conn    *websocket.Conn
	logger  *log.Logger
	clock   quartz.Clock
	timeout time.Duration

	solver     *solver.Solver
	strategist *strategist.Strategist
	bettor     *bettor.Bettor

	handled int
}

func newConnection(conn *websocket.Conn, cfg rules.Config, logger *log.Logger, clock quartz.Clock, timeout time.Duration) *connection {
	s, err := solver.New(cfg, linearUtility)
	if err != nil {
		// cfg was already validated when the server started; this would
		// only trip if a caller constructed a Server with a bad cfg
		// directly, so fail loudly rather than silently degrade.
		panic("service: solver construction failed with a config the server already validated: " + err.Error())
	}
	return &connection{
		conn:       conn,
		logger:     logger.WithPrefix("conn"),
		clock:      clock,
		timeout:    timeout,
		solver:     s,
		strategist: strategist.New(s),
		bettor:     bettor.New(s),
	}
}

func (c *connection) run() {
	defer c.conn.Close()

	for {
		var req Request
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("connection closed unexpectedly", "error", err)
			}
			return
		}

		resp := c.dispatch(req)
		c.handled++
		if err := c.conn.WriteJSON(resp); err != nil {
			c.logger.Warn("failed to write response", "error", err)
			return
		}
		if resp.Error == "request timed out" {
			// The timed-out handler may still be running on c.solver.
			return
		}
	}
}

func (c *connection) dispatch(req Request) Response {
	done := make(chan Response, 1)
	timedOut := make(chan struct{})
	timer := c.clock.AfterFunc(c.timeout, func() { close(timedOut) })
	defer timer.Stop()

	go func() { done <- c.handle(req) }()

	select {
	case resp := <-done:
		return resp
	case <-timedOut:
		return Response{Op: req.Op, Error: "request timed out"}
	}
}

func (c *connection) handle(req Request) Response {
	if req.Decks <= 0 {
		return errorResponse(req, "decks must be positive")
	}

	if req.Op == "bet" {
		return Response{Op: req.Op, Bet: c.bettor.Bet(cards.StandardShoe(req.Decks), req.Chips)}
	}

	if len(req.Player) != 2 {
		return errorResponse(req, "player must hold exactly two cards")
	}

	shoe := req.shoe()
	pt, pa := req.playerState()
	dt := cards.Value(req.DealerUp)
	splittable := c.strategist.Splittable(req.Player[0], req.Player[1])

	switch req.Op {
	case "hit":
		return Response{Op: req.Op, ShouldHit: c.strategist.ShouldHit(&shoe, pt, pa, dt)}
	case "double":
		return Response{Op: req.Op, ShouldDouble: c.strategist.ShouldDouble(&shoe, pt, pa, dt)}
	case "split":
		return Response{Op: req.Op, ShouldSplit: splittable && c.strategist.ShouldSplit(&shoe, pt, pa, dt)}
	case "advise":
		return Response{
			Op:           req.Op,
			ShouldHit:    c.strategist.ShouldHit(&shoe, pt, pa, dt),
			ShouldDouble: c.strategist.ShouldDouble(&shoe, pt, pa, dt),
			ShouldSplit:  splittable && c.strategist.ShouldSplit(&shoe, pt, pa, dt),
		}
	default:
		return errorResponse(req, fmt.Sprintf("unknown op %q", req.Op))
	}
}

func errorResponse(req Request, msg string) Response {
	return Response{Op: req.Op, Error: msg}
}
