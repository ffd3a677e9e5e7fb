package handlers

import (
	"net/http"

	"sanocare/services/feed"
	"sanocare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Token auth happens in middleware before the upgrade; the dashboard
	// origin varies by environment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FeedHandler upgrades dashboard connections onto the realtime booking
// feed.
type FeedHandler struct {
	Service *feed.Service
}

func NewFeedHandler(svc *feed.Service) *FeedHandler {
	return &FeedHandler{Service: svc}
}

// Stream upgrades to a websocket and registers the console with the hub.
// The connection stays open until the console disconnects.
func (h *FeedHandler) Stream(c *gin.Context) {
	conn, err := feedUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.GetLogger().Warn("feed upgrade failed", zap.Error(err))
		return
	}

	client := &feed.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 64),
	}
	h.Service.Hub.AddClient(client)

	// Read loop exists only to detect disconnect; consoles never send.
	go func() {
		defer h.Service.Hub.RemoveClient(client.ID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
