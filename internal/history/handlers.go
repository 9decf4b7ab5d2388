package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMatchesLimit = 20

type Handler struct {
	store  *Store
	logger zerolog.Logger
}

func NewHandler(store *Store, logger zerolog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/api/matches", h.RecentMatchesHandler)
}

func (h *Handler) RecentMatchesHandler(ctx *gin.Context) {
	limit := defaultMatchesLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	matches, err := h.store.Recent(limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("fetching match history")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"matches": matches})
}
