package handler

import (
	"net/http"

	"civicdesk/backend/internal/auth"
	"civicdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerRequest struct {
	Email        string      `json:"email" binding:"required,email"`
	Password     string      `json:"password" binding:"required,min=8"`
	FullName     string      `json:"full_name"`
	Role         models.Role `json:"role"`
	DepartmentID *uint       `json:"department_id"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a profile. Role defaults to citizen; officers must name
// an existing department, everyone else must not.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCitizen
	}
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	switch role {
	case models.RoleOfficer:
		if req.DepartmentID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "officers must belong to a department"})
			return
		}
		dept, err := h.Storage.GetDepartmentByID(*req.DepartmentID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		if dept == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown department"})
			return
		}
	case models.RoleCitizen, models.RoleAdmin:
		if req.DepartmentID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only officers belong to a department"})
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		DepartmentID: req.DepartmentID,
	}
	if err := h.Storage.CreateUser(user); err != nil {
		// Most likely the unique email index.
		h.Log.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful", "user": user})
}

// Login verifies the password and hands out a signed session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := auth.CreateAccessToken(user, h.JWTSecret, h.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
