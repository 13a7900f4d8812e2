package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stats returns the admin dashboard aggregates, recomputed on every call.
func (h *Handler) Stats(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor"})
		return
	}

	stats, err := h.Tracker.Stats(actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
