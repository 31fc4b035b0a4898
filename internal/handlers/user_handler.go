package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"user-directory-api/internal/models"
	"user-directory-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserResponse is the safe response payload for a user record.
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Locale      string `json:"locale"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Locale:      u.Locale,
	}
}

// UpdateUserRequest represents a partial profile update. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email"`
	Locale      *string `json:"locale"`
	Password    *string `json:"password"`
}

// GetUser handles GET /api/users/:id
// Cache-aside read: identity cache first, database on a miss, with the
// fetched record pushed back into the cache. The X-Cache header exposes
// which path served the request.
func (h *Handlers) GetUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	if user, ok := h.users.Get(id); ok {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, toUserResponse(user))
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			lang := h.requestLanguage(c)
			c.JSON(http.StatusNotFound, gin.H{
				"error": h.translator.Translate(lang, "user.not_found"),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		}
		return
	}

	h.users.Set(user.ID, user)
	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /api/users
// Query params: page (default 1), limit (default 20), sort (asc|desc on
// created_at, default asc). List queries go straight to the database: the
// identity cache holds one entry per identity only.
func (h *Handlers) ListUsers(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "20")
	sortParam := strings.ToLower(c.DefaultQuery("sort", "asc"))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	order := "created_at asc"
	if sortParam == "desc" {
		order = "created_at desc"
	}

	var total int64
	if err := h.db.Model(&models.User{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	var users []models.User
	if err := h.db.Order(order).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}

	c.JSON(http.StatusOK, gin.H{
		"users": resp,
		"count": len(resp),
		"total": total,
		"page":  page,
		"limit": limit,
		"sort":  sortParam,
	})
}

// UpdateUser handles PUT /api/users/:id
// Users can only update their own profile. A successful update invalidates
// the cached record and notifies connected clients.
func (h *Handlers) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot modify another user's profile"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		}
		return
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Locale != nil {
		user.Locale = *req.Locale
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.Password = string(hash)
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	// Drop the stale cached record; the next read repopulates it.
	h.users.Invalidate(user.ID)
	h.hub.Broadcast(realtime.Event{Type: "user_updated", UserID: user.ID})

	c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/users/:id
func (h *Handlers) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete another user's profile"})
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		}
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	h.users.Invalidate(id)
	h.hub.Broadcast(realtime.Event{Type: "user_deleted", UserID: id})

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
		"id":      id,
	})
}
