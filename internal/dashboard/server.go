// Package dashboard serves a read-only spectator view of a running session:
// a JSON status endpoint and a websocket stream of hit and miss events.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"gazehunt/internal/engine"
	"gazehunt/internal/gaze"
	"gazehunt/internal/log"
)

const maxEvents = 100

// Status is the latest snapshot of the session.
type Status struct {
	Session  string     `json:"session"`
	Started  time.Time  `json:"started"`
	Frames   uint64     `json:"frames"`
	Score    int        `json:"score"`
	Hits     int        `json:"hits"`
	Misses   int        `json:"misses"`
	Looking  bool       `json:"looking"`
	Pitch    float32    `json:"pitch"`
	Yaw      float32    `json:"yaw"`
	Target   [3]float32 `json:"target"`
	Distance float32    `json:"distance"`
}

// Event is one trigger outcome.
type Event struct {
	Type     string     `json:"type"` // "hit" or "miss"
	Time     time.Time  `json:"time"`
	Score    int        `json:"score"`
	Pitch    float32    `json:"pitch"`
	Yaw      float32    `json:"yaw"`
	Target   [3]float32 `json:"target"`
	Distance float32    `json:"distance"`
}

// envelope wraps every websocket message.
type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Server struct {
	app *fiber.App
	hub *Hub
	log *slog.Logger

	mu     sync.RWMutex
	status Status
	events []Event

	cancel context.CancelFunc

	controller    *gaze.Controller
	hitID, missID engine.ListenerID
}

// NewServer builds the app and starts the broadcast hub.
func NewServer(session string) *Server {
	l := log.With("component", "dashboard", "session", session)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		hub:    NewHub(l),
		log:    l,
		status: Status{Session: session, Started: time.Now()},
		events: make([]Event, 0, maxEvents),
		cancel: cancel,
	}
	go s.hub.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:               "gazehunt dashboard",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"session": session,
			"clients": s.hub.ClientCount(),
		})
	})

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/events", s.handleEvents)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", websocket.New(s.handleEventsWS))

	s.app = app
	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("dashboard listening", "addr", addr)
	if err := s.app.Listen(addr); err != nil {
		return fmt.Errorf("dashboard listen %s: %w", addr, err)
	}
	return nil
}

// Serve serves on an existing listener until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("dashboard listening", "addr", ln.Addr().String())
	if err := s.app.Listener(ln); err != nil {
		return fmt.Errorf("dashboard serve: %w", err)
	}
	return nil
}

// ListenAsync runs Listen in a goroutine and logs a failure.
func (s *Server) ListenAsync(addr string) {
	go func() {
		if err := s.Listen(addr); err != nil {
			s.log.Error("dashboard stopped", "error", err)
		}
	}()
}

func (s *Server) Shutdown() error {
	s.Detach()
	s.cancel()
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("dashboard shutdown: %w", err)
	}
	return nil
}

// Attach streams c's hit and miss events to the dashboard.
func (s *Server) Attach(c *gaze.Controller) {
	s.Detach()
	s.controller = c
	s.hitID = c.OnHit.AddListener(func(o gaze.Outcome) { s.Record("hit", o) })
	s.missID = c.OnMiss.AddListener(func(o gaze.Outcome) { s.Record("miss", o) })
	s.Update(c)
}

func (s *Server) Detach() {
	if s.controller == nil {
		return
	}
	s.controller.OnHit.RemoveListener(s.hitID)
	s.controller.OnMiss.RemoveListener(s.missID)
	s.controller = nil
}

// Update refreshes the status snapshot from c. Call it from the frame goroutine.
func (s *Server) Update(c *gaze.Controller) {
	g := c.Gaze()
	t := c.Target()
	pos := t.Position()

	s.mu.Lock()
	s.status.Frames = c.Frames()
	s.status.Score = c.Score()
	s.status.Looking = g.Looking
	s.status.Pitch = g.Pitch
	s.status.Yaw = g.Yaw
	s.status.Target = [3]float32{pos.X, pos.Y, pos.Z}
	s.status.Distance = t.Distance
	s.mu.Unlock()
}

// Record stores an outcome and broadcasts it to websocket clients.
func (s *Server) Record(kind string, o gaze.Outcome) {
	pos := o.Target.Position()
	ev := Event{
		Type:     kind,
		Time:     time.Now(),
		Score:    o.Score,
		Pitch:    o.Gaze.Pitch,
		Yaw:      o.Gaze.Yaw,
		Target:   [3]float32{pos.X, pos.Y, pos.Z},
		Distance: o.Target.Distance,
	}

	s.mu.Lock()
	if o.Hit {
		s.status.Hits++
	} else {
		s.status.Misses++
	}
	s.status.Score = o.Score
	s.status.Target = ev.Target
	s.status.Distance = ev.Distance
	s.events = append(s.events, ev)
	if len(s.events) > maxEvents {
		s.events = s.events[1:]
	}
	s.mu.Unlock()

	if err := s.hub.BroadcastJSON(envelope{Type: kind, Data: ev}); err != nil {
		s.log.Warn("broadcast event", "error", err)
	}
}

func (s *Server) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Server) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Server) ClientCount() int {
	return s.hub.ClientCount()
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.Status())
}

func (s *Server) handleEvents(c *fiber.Ctx) error {
	return c.JSON(s.Events())
}

// handleEventsWS greets the client with the current status, then streams events.
func (s *Server) handleEventsWS(conn *websocket.Conn) {
	cl := newClient(s.hub, conn)
	if cl == nil {
		return
	}
	if err := conn.WriteJSON(envelope{Type: "status", Data: s.Status()}); err != nil {
		s.log.Debug("websocket greeting", "error", err)
	}
	cl.run()
}
