package handlers

import (
	"errors"
	"net/http"

	"user-directory-api/internal/auth"
	"user-directory-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Locale      string `json:"locale"`
}

// Login handles POST /api/login
// Verifies the password against the stored bcrypt hash. A first-time
// username is registered on the fly (development convenience); a known
// username with a wrong password is rejected.
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request. Username and password are required.",
		})
		return
	}

	lang := h.requestLanguage(c)

	var user models.User
	err := h.db.Where("username = ?", req.Username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		created, createErr := h.createUser(req.Username, req.Password, "", "", lang)
		if createErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		user = created
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	default:
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": h.translator.Translate(lang, "auth.invalid_credentials"),
			})
			return
		}
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Locale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Warm the identity cache: a login is usually followed by profile reads.
	h.users.Set(user.ID, user)

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Message:  h.translator.Translate(lang, "auth.login_success"),
	})
}

// Register handles POST /api/register
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := req.Locale
	if lang == "" {
		lang = h.requestLanguage(c)
	}

	var existing models.User
	if err := h.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": h.translator.Translate(lang, "auth.username_taken"),
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
		return
	}

	user, err := h.createUser(req.Username, req.Password, req.DisplayName, req.Email, lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": toUserResponse(user),
		"message": h.translator.TranslateWithArgs(lang, "user.registered",
			map[string]any{"name": user.Username}),
	})
}

// createUser hashes the password and persists a new user record.
func (h *Handlers) createUser(username, password, displayName, email, locale string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	if displayName == "" {
		displayName = username
	}
	user := models.User{
		ID:          uuid.NewString(),
		Username:    username,
		DisplayName: displayName,
		Email:       email,
		Locale:      locale,
		Password:    string(hash),
	}
	if err := h.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
