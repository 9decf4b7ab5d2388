package game

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

func NewHandler(hub *Hub, allowedOrigins []string, logger zerolog.Logger) *Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
		logger: logger,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/ws", h.SessionHandler)
	r.GET("/api/characters", h.CharactersHandler)
	r.GET("/api/quotes", h.QuotesHandler)
}

func (h *Handler) CharactersHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"characters": Characters()})
}

func (h *Handler) QuotesHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"quotes": Quotes()})
}

// SessionHandler upgrades the request and hands the socket to the hub. All
// further interaction happens over the event channel.
func (h *Handler) SessionHandler(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("ip", ctx.ClientIP()).Msg("ws upgrade failed")
		return
	}
	h.hub.Connect(NewWebsocketConnection(conn))
}
