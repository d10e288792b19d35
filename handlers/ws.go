package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/LovationAdmin/travel-api/middleware"
	"github.com/LovationAdmin/travel-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes "entity changed" signals to connected dashboards. It
// implements services.Notifier.
type WSHandler struct {
	M *melody.Melody
}

type changeEvent struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive for hosts that drop idle connections
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		utils.LogWebSocket("connected", sessionUser(s), m.Len())
	})

	m.HandleDisconnect(func(s *melody.Session) {
		utils.LogWebSocket("disconnected", sessionUser(s), m.Len())
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades an authenticated request.
func (h *WSHandler) HandleWS(c *gin.Context) {
	keys := map[string]interface{}{"user_id": middleware.GetUserID(c)}
	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// Notify broadcasts {"type":"<entity>.<action>","id":N} to every session.
func (h *WSHandler) Notify(entity, action string, id uint) {
	msg, err := json.Marshal(changeEvent{Type: entity + "." + action, ID: id})
	if err != nil {
		return
	}
	if err := h.M.Broadcast(msg); err != nil {
		log.Printf("⚠️ Error broadcasting %s.%s: %v", entity, action, err)
	}
}

// Close disconnects every session.
func (h *WSHandler) Close() error {
	return h.M.Close()
}

func sessionUser(s *melody.Session) uint {
	v, ok := s.Get("user_id")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
