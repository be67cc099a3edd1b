package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/middleware"
	"github.com/tabletide/shift-scheduler/internal/models"
)

type ShiftTemplateHandler struct {
	db *gorm.DB
}

func NewShiftTemplateHandler(db *gorm.DB) *ShiftTemplateHandler {
	return &ShiftTemplateHandler{db: db}
}

// --------- Requests ---------

type CreateShiftTemplateRequest struct {
	BranchID  uint   `json:"branch_id" binding:"required"`
	Weekday   *int   `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	MaxStaff  int    `json:"max_staff" binding:"required,min=1"`
}

type UpdateShiftTemplateRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	MaxStaff *int    `json:"max_staff,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ShiftTemplateHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	q := h.db.Where("company_id = ?", companyID)
	if branchStr := c.Query("branch_id"); branchStr != "" {
		q = q.Where("branch_id = ?", branchStr)
	}
	if activeStr := c.Query("active"); activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var templates []models.ShiftTemplate
	if err := q.Order("id ASC").Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_templates"})
		return
	}

	c.JSON(http.StatusOK, templates)
}

func (h *ShiftTemplateHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// templates only exist for real grid cells
	if _, err := domain.FindSlot(*req.Weekday, req.StartTime, req.EndTime); err != nil {
		writeScheduleError(c, err)
		return
	}

	var branch models.Branch
	if err := h.db.
		Where("id = ? AND company_id = ?", req.BranchID, companyID).
		First(&branch).Error; err != nil {

		c.JSON(http.StatusBadRequest, gin.H{"error": "branch_not_found"})
		return
	}

	role := strings.ToLower(req.Role)
	if role != "" && !models.KnownRole(role) {
		role = models.RoleOther
	}

	tpl := models.ShiftTemplate{
		CompanyID: companyID,
		BranchID:  branch.ID,
		Weekday:   *req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Name:      req.Name,
		Role:      role,
		MaxStaff:  req.MaxStaff,
		Active:    true,
	}

	if err := h.db.Create(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_template"})
		return
	}

	c.JSON(http.StatusCreated, tpl)
}

func (h *ShiftTemplateHandler) Update(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id := c.Param("id")

	var tpl models.ShiftTemplate
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&tpl).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "template_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_template"})
		return
	}

	var req UpdateShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		tpl.Name = *req.Name
	}
	if req.Role != nil {
		tpl.Role = strings.ToLower(*req.Role)
	}
	if req.MaxStaff != nil && *req.MaxStaff >= 1 {
		tpl.MaxStaff = *req.MaxStaff
	}
	if req.Active != nil {
		tpl.Active = *req.Active
	}

	if err := h.db.Save(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_template"})
		return
	}

	c.JSON(http.StatusOK, tpl)
}

// Deactivate retires a template without deleting it. Historical grids keep
// rendering; new coverage lookups skip it.
func (h *ShiftTemplateHandler) Deactivate(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id := c.Param("id")

	var tpl models.ShiftTemplate
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&tpl).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "template_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_template"})
		return
	}

	tpl.Active = false
	if err := h.db.Save(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_template"})
		return
	}

	c.JSON(http.StatusOK, tpl)
}
