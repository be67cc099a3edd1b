package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabletide/shift-scheduler/internal/middleware"
	"github.com/tabletide/shift-scheduler/internal/models"
	"github.com/tabletide/shift-scheduler/internal/timezone"
)

type BranchHandler struct {
	db *gorm.DB
}

func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{db: db}
}

type CreateBranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Timezone string `json:"timezone"`
}

func (h *BranchHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var branches []models.Branch
	if err := h.db.
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&branches).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_branches"})
		return
	}

	c.JSON(http.StatusOK, branches)
}

func (h *BranchHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	branch := models.Branch{
		CompanyID: companyID,
		Name:      req.Name,
		Timezone:  tz,
	}

	if err := h.db.Create(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_branch"})
		return
	}

	c.JSON(http.StatusCreated, branch)
}
