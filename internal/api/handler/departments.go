package handler

import (
	"net/http"

	"civicdesk/backend/internal/models"
	"civicdesk/backend/internal/policy"

	"github.com/gin-gonic/gin"
)

// ListDepartments returns the registry. Public: the registration form
// needs it before a session exists.
func (h *Handler) ListDepartments(c *gin.Context) {
	depts, err := h.Storage.ListDepartments()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, depts)
}

// CreateDepartment adds a registry entry. Admin only.
func (h *Handler) CreateDepartment(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok || !policy.CanManageDepartments(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dept := &models.Department{Name: req.Name}
	if err := h.Storage.CreateDepartment(dept); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "department already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Department created", "data": dept})
}
