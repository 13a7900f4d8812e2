package handler

import (
	"errors"
	"net/http"
	"time"

	"civicdesk/backend/internal/events"
	"civicdesk/backend/internal/storage"
	"civicdesk/backend/internal/tracker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires the HTTP surface to the tracker, storage and the feed hub.
type Handler struct {
	Tracker *tracker.Service
	Storage storage.Storage
	Hub     *events.Hub
	Log     *zap.Logger

	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewHandler(t *tracker.Service, s storage.Storage, hub *events.Hub, log *zap.Logger, secret []byte, ttl time.Duration) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Tracker:   t,
		Storage:   s,
		Hub:       hub,
		Log:       log,
		JWTSecret: secret,
		TokenTTL:  ttl,
	}
}

// Routes registers every endpoint on the router.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.GET("/departments", h.ListDepartments)

		authed := api.Group("")
		authed.Use(JWTAuth(h.JWTSecret))
		{
			authed.POST("/departments", h.CreateDepartment)
			authed.POST("/complaints", h.CreateComplaint)
			authed.GET("/complaints", h.ListComplaints)
			authed.GET("/complaints/:id", h.GetComplaint)
			authed.PUT("/complaints/:id", h.UpdateComplaint)
			authed.DELETE("/complaints/:id", h.DeleteComplaint)
			authed.GET("/stats", h.Stats)
		}
	}

	r.GET("/ws/feed", h.ServeFeed)
}

// respondError maps the tracker's error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a data-service failure.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, tracker.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, tracker.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, tracker.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, tracker.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	default:
		h.Log.Error("data service error", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
