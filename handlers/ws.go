package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"fitgateway/domain"
	"fitgateway/helpers"
	"fitgateway/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// sendBufferSize bounds the per-peer outbound queue; when it is full further
// events are dropped for that peer so a slow reader never blocks a broadcast.
const sendBufferSize = 32

var errPeerClosed = errors.New("peer connection is closed")
var errSendBufferFull = errors.New("peer send buffer is full")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades GET /ws to a websocket connection and runs the
// per-connection read loop, dispatching decoded frames to the session hub.
// Malformed frames are logged and dropped; the connection stays open until
// the transport itself closes it.
type WSHandler struct {
	hub    interfaces.SessionHub
	logger log.Logger
}

// NewWSHandler creates the websocket handler. Panics on nil hub or logger.
func NewWSHandler(hub interfaces.SessionHub, logger log.Logger) *WSHandler {
	return &WSHandler{
		hub:    helpers.NilPanic(hub, "handlers.ws.go: hub is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "handlers.ws.go: logger is required"), "component", "WSHandler"),
	}
}

// Handle (GET /ws) upgrades the request and serves the connection until the
// transport closes. Each connection gets one writer goroutine draining the
// peer's send buffer; the read loop runs on the handler goroutine.
//
// Parameter ectx — echo context carrying the upgrade request.
//
// Returns: nil (upgrade errors are logged; after a successful upgrade the
// response is hijacked and nothing more can be written through echo).
func (h *WSHandler) Handle(ectx echo.Context) error {
	conn, err := upgrader.Upgrade(ectx.Response(), ectx.Request(), nil)
	if err != nil {
		level.Error(h.logger).Log("msg", "websocket upgrade failed", "err", err)
		return nil
	}

	peer := newWSPeer(conn)
	go peer.writeLoop()
	h.readLoop(ectx, peer)
	return nil
}

// readLoop decodes inbound frames and dispatches them to the hub until the
// connection closes, then detaches the peer. A frame that fails to decode is
// a protocol error: logged, dropped, connection kept open.
func (h *WSHandler) readLoop(ectx echo.Context, peer *wsPeer) {
	defer func() {
		h.hub.Disconnect(peer)
		peer.close()
	}()
	for {
		_, data, err := peer.conn.ReadMessage()
		if err != nil {
			level.Debug(h.logger).Log("msg", "websocket closed", "err", err)
			return
		}
		var event domain.Event
		if err := json.Unmarshal(data, &event); err != nil {
			level.Info(h.logger).Log("msg", "malformed frame dropped", "err", err)
			continue
		}
		switch event.Type {
		case domain.EventJoinSession:
			h.hub.Join(ectx.Request().Context(), peer, event.SessionID, event.UserID)
		case domain.EventLeaveSession:
			h.hub.Leave(peer)
		case domain.EventChatMessage:
			h.hub.Chat(peer, event.Message)
		case domain.EventVoteExercise:
			h.hub.VoteExercise(ectx.Request().Context(), peer, event.Exercise)
		case domain.EventExerciseChosen:
			h.hub.ChooseExercise(peer, event.Exercise)
		default:
			level.Info(h.logger).Log("msg", "unknown frame type dropped", "type", event.Type)
		}
	}
}

// wsPeer adapts a gorilla connection to interfaces.SessionPeer: Send enqueues
// into a bounded buffer and a single writer goroutine serializes the actual
// websocket writes.
type wsPeer struct {
	conn      *websocket.Conn
	sendCh    chan domain.Event
	done      chan struct{}
	closeOnce sync.Once
}

func newWSPeer(conn *websocket.Conn) *wsPeer {
	return &wsPeer{
		conn:   conn,
		sendCh: make(chan domain.Event, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// Send enqueues the event for the writer goroutine without blocking.
//
// Parameter event — outbound frame.
//
// Returns: nil when enqueued; errPeerClosed after close; errSendBufferFull when the buffer is full (the event is dropped for this peer only).
//
// Called from service.sessionHub broadcast fan-out.
func (p *wsPeer) Send(event domain.Event) error {
	select {
	case <-p.done:
		return errPeerClosed
	default:
	}
	select {
	case p.sendCh <- event:
		return nil
	default:
		return errSendBufferFull
	}
}

// writeLoop serializes websocket writes for the peer. Exits on close or on the
// first write error (the read loop then observes the broken transport).
func (p *wsPeer) writeLoop() {
	for {
		select {
		case event := <-p.sendCh:
			if err := p.conn.WriteJSON(event); err != nil {
				return
			}
		case <-p.done:
			return
		}
	}
}

// close stops the writer and closes the underlying connection. Idempotent.
func (p *wsPeer) close() {
	p.closeOnce.Do(func() {
		close(p.done)
		_ = p.conn.Close()
	})
}
