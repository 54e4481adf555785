package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/storage"
)

const maxAvatarBytes = 5 << 20 // 5 MiB

type ProfessionalHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	avatars *storage.AvatarStore // nil quando upload desligado
}

func NewProfessionalHandler(
	db *gorm.DB,
	dispatcher *audit.Dispatcher,
	avatars *storage.AvatarStore,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		db:      db,
		audit:   dispatcher,
		avatars: avatars,
	}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProfessionalRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Session(&gorm.Session{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var pros []models.Professional
	if err := q.Order("id ASC").Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome obrigatório.")
		return
	}

	pro := models.Professional{
		Name:   strings.TrimSpace(req.Name),
		Active: true,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "professional_created",
		Entity:   "professional",
		EntityID: &pro.ID,
	})

	c.JSON(http.StatusCreated, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.First(&pro, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		pro.Name = strings.TrimSpace(*req.Name)
	}
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "professional_updated",
		Entity:   "professional",
		EntityID: &pro.ID,
	})

	c.JSON(http.StatusOK, pro)
}

func (h *ProfessionalHandler) Toggle(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.First(&pro, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	pro.Active = !pro.Active

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_toggle_professional", "Erro ao atualizar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "professional_toggled",
		Entity:   "professional",
		EntityID: &pro.ID,
		Metadata: map[string]any{"active": pro.Active},
	})

	c.JSON(http.StatusOK, pro)
}

// Delete segue a mesma regra de serviços: com agendamentos no
// histórico, o profissional é desativado em vez de removido.
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var pro models.Professional
	if err := h.db.First(&pro, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var refs int64
	if err := h.db.
		Model(&models.Appointment{}).
		Where("professional_id = ?", pro.ID).
		Count(&refs).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_professional", "Erro ao remover profissional.")
		return
	}

	if refs > 0 {
		pro.Active = false
		if err := h.db.Save(&pro).Error; err != nil {
			httperr.Internal(c, "failed_to_delete_professional", "Erro ao remover profissional.")
			return
		}

		h.audit.Dispatch(audit.Event{
			AdminID:  &adminID,
			Action:   "professional_deactivated",
			Entity:   "professional",
			EntityID: &pro.ID,
			Metadata: map[string]any{"appointments": refs},
		})

		c.JSON(http.StatusOK, gin.H{
			"deleted":     false,
			"deactivated": true,
		})
		return
	}

	if err := h.db.Delete(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao remover profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "professional_deleted",
		Entity:   "professional",
		EntityID: &pro.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --------- Avatar ---------

func (h *ProfessionalHandler) UploadAvatar(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	if h.avatars == nil {
		httperr.Write(c, http.StatusServiceUnavailable,
			"avatar_storage_disabled", "Upload de avatar desligado.")
		return
	}

	var pro models.Professional
	if err := h.db.First(&pro, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de avatar obrigatório.")
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		httperr.BadRequest(c, "file_too_large", "Avatar acima de 5MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), pro.ID, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	pro.AvatarURL = url
	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_save_avatar", "Erro ao salvar avatar.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "professional_avatar_updated",
		Entity:   "professional",
		EntityID: &pro.ID,
	})

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
