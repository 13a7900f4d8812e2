package handler

import (
	"net/http"
	"strconv"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/tracker"

	"github.com/gin-gonic/gin"
)

func complaintID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return 0, false
	}
	return uint(id), true
}

// CreateComplaint files a new complaint for the acting citizen.
func (h *Handler) CreateComplaint(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor"})
		return
	}

	var in tracker.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.Tracker.Create(actor, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Complaint registered", "data": complaint})
}

// ListComplaints returns the actor's slice of the table: own complaints
// for citizens, the department's for officers, everything for admins.
func (h *Handler) ListComplaints(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor"})
		return
	}

	complaints, err := h.Tracker.List(actor)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// GetComplaint returns a single complaint the actor may see.
func (h *Handler) GetComplaint(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor"})
		return
	}
	id, ok := complaintID(c)
	if !ok {
		return
	}

	complaint, err := h.Tracker.Get(actor, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

type updateComplaintRequest struct {
	Status models.Status `json:"status" binding:"required"`
	Remark string        `json:"remark"`
}

// UpdateComplaint transitions the complaint's status. Officer of the
// complaint's department only.
func (h *Handler) UpdateComplaint(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor"})
		return
	}
	id, ok := complaintID(c)
	if !ok {
		return
	}

	var req updateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.Tracker.Transition(actor, id, req.Status, req.Remark)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint updated", "data": complaint})
}

// DeleteComplaint removes the complaint permanently. Admin only.
func (h *Handler) DeleteComplaint(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor"})
		return
	}
	id, ok := complaintID(c)
	if !ok {
		return
	}

	if err := h.Tracker.Delete(actor, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted"})
}
