package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mkacem/groupcall/internal/app/orch"
	"github.com/mkacem/groupcall/internal/core"
	"github.com/mkacem/groupcall/internal/domain"
)

var ErrBackpressure = errors.New("backpressure")

const sendBufferSize = 32

type SignalWSController struct {
	Orch      *orch.Orchestrator
	ReadLimit int64
}

func NewSignalWSController(o *orch.Orchestrator, readLimit int64) *SignalWSController {
	return &SignalWSController{Orch: o, ReadLimit: readLimit}
}

type WsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *WsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSignal registers a new connection and starts its pumps. A missing
// identity is refused before the upgrade, so the client sees a failed
// connection attempt rather than a silent hang.
func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	user, err := domain.NewUser(c.Query("identity"), c.Query("displayName"))
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("refusing connection")
		c.String(http.StatusBadRequest, "%s", err)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("ws upgrade")
		return
	}

	cid := core.ConnectionID(uuid.NewString())
	conn := &WsSignalConn{
		conn: ws,
		send: make(chan core.Frame, sendBufferSize),
	}
	if ctl.ReadLimit > 0 {
		ws.SetReadLimit(ctl.ReadLimit)
	}

	if _, err := ctl.Orch.Connect(cid, user, conn); err != nil {
		log.Error().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("connect failed")
		conn.Close()
		return
	}
	log.Info().Str("module", "signal").Str("cid", string(cid)).Str("identity", string(user.Identity)).Msg("new WS connection")

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, cid, conn)
}
