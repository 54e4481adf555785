package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/validators"
)

// Sessões de admin são opacas: token aleatório persistido no banco,
// sem nada codificado dentro. Revogação = apagar a linha.

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Telefone e senha obrigatórios.")
		return
	}

	phone := validators.CleanPhone(req.Phone)

	var admin models.AdminUser
	if err := h.db.Where("phone = ?", phone).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "login_failed", "Erro ao autenticar.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	session := models.AdminSession{
		AdminID:   admin.ID,
		Token:     newSessionToken(),
		ExpiresAt: time.Now().Add(sessionTTL),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	if err := h.db.Create(&session).Error; err != nil {
		httperr.Internal(c, "session_failed", "Erro ao criar sessão.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID: &admin.ID,
		Action:  "admin_login",
		Entity:  "admin_session",
		EntityID: &session.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"phone": admin.Phone,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		httperr.Unauthorized(c, "missing_token", "Token ausente.")
		return
	}

	var session models.AdminSession
	if err := h.db.Where("token = ?", token).First(&session).Error; err != nil {
		// Logout de sessão já inexistente é idempotente.
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if err := h.db.Delete(&session).Error; err != nil {
		httperr.Internal(c, "logout_failed", "Erro ao encerrar sessão.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID: &session.AdminID,
		Action:  "admin_logout",
		Entity:  "admin_session",
		EntityID: &session.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Token ---------

func newSessionToken() string {
	a := strings.ReplaceAll(uuid.NewString(), "-", "")
	b := strings.ReplaceAll(uuid.NewString(), "-", "")
	return a + b
}
