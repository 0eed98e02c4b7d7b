package dashboard

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazehunt/internal/gaze"
)

func newController() *gaze.Controller {
	return gaze.NewController(gaze.DefaultSettings(), gaze.NewRand(3))
}

func getJSON(t *testing.T, s *Server, path string, v any) {
	t.Helper()
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestStatusEndpoint(t *testing.T) {
	s := NewServer("session-1")
	defer s.Shutdown()
	c := newController()
	c.Frame(rl.MatrixIdentity())
	s.Attach(c)

	var st Status
	getJSON(t, s, "/api/status", &st)

	assert.Equal(t, "session-1", st.Session)
	assert.Equal(t, 0, st.Score)
	assert.True(t, st.Looking)
	assert.Equal(t, uint64(1), st.Frames)
	assert.InDelta(t, -12, st.Target[2], 1e-5)
	assert.Equal(t, float32(12), st.Distance)
}

func TestEventsFollowTriggers(t *testing.T) {
	s := NewServer("session-2")
	defer s.Shutdown()
	c := newController()
	s.Attach(c)

	c.Trigger() // identity head, target dead ahead
	c.Trigger() // the target has moved behind

	var events []Event
	getJSON(t, s, "/api/events", &events)

	require.Len(t, events, 2)
	assert.Equal(t, "hit", events[0].Type)
	assert.Equal(t, 1, events[0].Score)
	assert.Equal(t, "miss", events[1].Type)
	assert.Equal(t, 1, events[1].Score)

	st := s.Status()
	assert.Equal(t, 1, st.Hits)
	assert.Equal(t, 1, st.Misses)
	assert.Equal(t, 1, st.Score)
}

func TestEventsAreBounded(t *testing.T) {
	s := NewServer("session-3")
	defer s.Shutdown()

	for i := 0; i < maxEvents+10; i++ {
		s.Record("miss", gaze.Outcome{Target: gaze.NewTarget(12)})
	}

	assert.Len(t, s.Events(), maxEvents)
	assert.Equal(t, maxEvents+10, s.Status().Misses)
}

func TestDetachStopsRecording(t *testing.T) {
	s := NewServer("session-4")
	defer s.Shutdown()
	c := newController()
	s.Attach(c)
	s.Detach()

	c.Trigger()

	assert.Empty(t, s.Events())
}

func TestWebSocketRequiresUpgrade(t *testing.T) {
	s := NewServer("session-5")
	defer s.Shutdown()

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/ws/events", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

type wsMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func TestWebSocketStreamsEvents(t *testing.T) {
	s := NewServer("session-6")
	c := newController()
	s.Attach(c)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go s.Serve(ln)
	defer s.Shutdown()

	ws, _, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws/events", nil)
	require.NoError(t, err)
	defer ws.Close()
	ws.SetReadDeadline(time.Now().Add(5 * time.Second))

	var greeting wsMessage
	require.NoError(t, ws.ReadJSON(&greeting))
	assert.Equal(t, "status", greeting.Type)
	var st Status
	require.NoError(t, json.Unmarshal(greeting.Data, &st))
	assert.Equal(t, "session-6", st.Session)

	c.Trigger()

	var msg wsMessage
	require.NoError(t, ws.ReadJSON(&msg))
	assert.Equal(t, "hit", msg.Type)
	var ev Event
	require.NoError(t, json.Unmarshal(msg.Data, &ev))
	assert.Equal(t, 1, ev.Score)
	assert.Equal(t, 1, s.ClientCount())
}

func TestHealth(t *testing.T) {
	s := NewServer("session-7")
	defer s.Shutdown()

	var body map[string]any
	getJSON(t, s, "/health", &body)

	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "session-7", body["session"])
	assert.Equal(t, float64(0), body["clients"])
}
