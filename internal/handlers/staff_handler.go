package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabletide/shift-scheduler/internal/middleware"
	"github.com/tabletide/shift-scheduler/internal/models"
)

// StaffHandler is the thin directory surface the grid's staff sidebar
// reads from. The engine consumes staff read-only; create/deactivate
// exist so a deployment is usable without the full HR module.
type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	BranchID *uint  `json:"branch_id"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	role := strings.ToLower(strings.TrimSpace(c.Query("role")))

	q := h.db.Where("company_id = ? AND active = ?", companyID, true)
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if branchStr := c.Query("branch_id"); branchStr != "" {
		q = q.Where("branch_id = ?", branchStr)
	}

	var staff []models.StaffMember
	if err := q.Order("name ASC").Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role := strings.ToLower(req.Role)
	if !models.KnownRole(role) {
		role = models.RoleOther
	}

	staff := models.StaffMember{
		CompanyID: companyID,
		Name:      req.Name,
		Role:      role,
		BranchID:  req.BranchID,
		Active:    true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_staff"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Deactivate(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id := c.Param("id")

	var staff models.StaffMember
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&staff).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_staff"})
		return
	}

	staff.Active = false
	if err := h.db.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}
