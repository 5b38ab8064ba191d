package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/itzlabs/clientdesk/internal/config"
	"github.com/itzlabs/clientdesk/internal/httperr"
	"github.com/itzlabs/clientdesk/internal/mail"
	"github.com/itzlabs/clientdesk/internal/models"
	"github.com/itzlabs/clientdesk/internal/resettoken"
	"github.com/itzlabs/clientdesk/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	tokens *resettoken.Store
	mailer mail.Mailer
	log    *slog.Logger
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	tokens *resettoken.Store,
	mailer mail.Mailer,
	log *slog.Logger,
) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, tokens: tokens, mailer: mailer, log: log}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetupRequest struct {
	SetupKey string `json:"setup_key" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type ResetRequestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetConfirmRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var agent models.Agent
	if err := h.db.Where("email = ?", email).First(&agent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		h.log.Error("login lookup failed", "err", err)
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(&agent)
	if err != nil {
		h.log.Error("token generation failed", "err", err)
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agent": gin.H{
			"id":    agent.ID,
			"name":  agent.Name,
			"email": agent.Email,
			"role":  agent.Role,
		},
		"token": token,
	})
}

// Setup bootstraps the first admin account. It is guarded by the
// deployment's setup key and refuses once any agent exists.
func (h *AuthHandler) Setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and password are required.")
		return
	}

	if h.config.SetupKey == "" || req.SetupKey != h.config.SetupKey {
		httperr.Unauthorized(c, "invalid_setup_key", "Setup key rejected.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Agent{}).Count(&count).Error; err != nil {
		h.log.Error("setup count failed", "err", err)
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "already_initialized", "An admin account already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	agent := models.Agent{
		Name:         req.Name,
		Email:        validators.NormalizeEmail(req.Email),
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := h.db.Create(&agent).Error; err != nil {
		h.log.Error("setup create failed", "err", err)
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": agent.ID, "email": agent.Email})
}

// ResetRequest always answers 200 so the endpoint cannot be used to
// probe which addresses have accounts.
func (h *AuthHandler) ResetRequest(c *gin.Context) {
	var req ResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email is required.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	accepted := gin.H{"message": "If that address has an account, a reset link was sent."}

	var agent models.Agent
	if err := h.db.Where("email = ?", email).First(&agent).Error; err != nil {
		c.JSON(http.StatusOK, accepted)
		return
	}

	token, err := h.tokens.Issue(c.Request.Context(), email, agent.ID)
	if err != nil {
		if errors.Is(err, resettoken.ErrThrottled) {
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests", "Try again later.")
			return
		}
		h.log.Error("reset token issue failed", "err", err)
		c.JSON(http.StatusOK, accepted)
		return
	}

	link := h.config.SiteURL + "/reset?token=" + token
	htmlBody, alt := mail.RenderTemplate(
		"Hi {{name}},\n\nUse this link to reset your password (valid for 30 minutes):\n{{link}}\n\nIf you did not ask for this, ignore this mail.",
		map[string]string{"name": agent.Name, "link": link},
	)
	if err := h.mailer.Send(h.config.MailFromName, agent.Email, agent.Name, "Password reset", htmlBody, alt); err != nil {
		h.log.Warn("reset mail delivery failed", "to", agent.Email, "err", err)
	}

	c.JSON(http.StatusOK, accepted)
}

func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req ResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Token and new password are required.")
		return
	}

	agentID, err := h.tokens.Redeem(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, resettoken.ErrInvalidToken) {
			httperr.BadRequest(c, "invalid_token", "This reset link is invalid or expired.")
			return
		}
		h.log.Error("reset token redeem failed", "err", err)
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	res := h.db.Model(&models.Agent{}).
		Where("id = ?", agentID).
		Update("password_hash", string(hashed))
	if res.Error != nil || res.RowsAffected == 0 {
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(agent *models.Agent) (string, error) {
	claims := jwt.MapClaims{
		"sub":  agent.ID,
		"role": agent.Role,
		"name": agent.Name,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
