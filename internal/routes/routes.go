package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabletide/shift-scheduler/internal/audit"
	"github.com/tabletide/shift-scheduler/internal/config"
	"github.com/tabletide/shift-scheduler/internal/handlers"
	infraRepo "github.com/tabletide/shift-scheduler/internal/infra/repository"
	"github.com/tabletide/shift-scheduler/internal/middleware"
	ucSchedule "github.com/tabletide/shift-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	capacity := ucSchedule.CapacitySoft
	if cfg.TemplateCapacityMode == string(ucSchedule.CapacityHard) {
		capacity = ucSchedule.CapacityHard
	}

	// ======================================================
	// USE CASES — SCHEDULE ENGINE
	// ======================================================
	placeUC := ucSchedule.NewPlaceAssignment(scheduleRepo, auditDispatcher, capacity)
	moveUC := ucSchedule.NewMoveAssignment(scheduleRepo, auditDispatcher)
	editUC := ucSchedule.NewEditAssignment(scheduleRepo, auditDispatcher)
	removeUC := ucSchedule.NewRemoveAssignment(scheduleRepo, auditDispatcher)
	stateUC := ucSchedule.NewSetShiftState(scheduleRepo, auditDispatcher)
	resolveUC := ucSchedule.NewResolveSlot(scheduleRepo)
	gridUC := ucSchedule.NewWeekGrid(scheduleRepo)
	nowUC := ucSchedule.NewCurrentSlot(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	scheduleHandler := handlers.NewScheduleHandler(
		placeUC,
		moveUC,
		editUC,
		removeUC,
		stateUC,
		resolveUC,
		gridUC,
		nowUC,
	)

	staffHandler := handlers.NewStaffHandler(db)
	branchHandler := handlers.NewBranchHandler(db)
	templateHandler := handlers.NewShiftTemplateHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		// ------------------------------
		// DIRECTORY / REGISTRY
		// ------------------------------
		api.GET("/staff", staffHandler.List)
		api.POST("/staff", staffHandler.Create)
		api.PATCH("/staff/:id/deactivate", staffHandler.Deactivate)

		api.GET("/branches", branchHandler.List)
		api.POST("/branches", branchHandler.Create)

		// ------------------------------
		// TEMPLATES
		// ------------------------------
		api.GET("/templates", templateHandler.List)
		api.POST("/templates", templateHandler.Create)
		api.PATCH("/templates/:id", templateHandler.Update)
		api.PATCH("/templates/:id/deactivate", templateHandler.Deactivate)

		// ------------------------------
		// SCHEDULE
		// ------------------------------
		api.GET("/schedule", scheduleHandler.Grid)
		api.GET("/schedule/slot", scheduleHandler.ResolveSlot)
		api.GET("/schedule/now", scheduleHandler.Now)

		api.POST("/schedule/assignments", scheduleHandler.Place)
		api.PATCH("/schedule/assignments/:id", scheduleHandler.Edit)
		api.PATCH("/schedule/assignments/:id/move", scheduleHandler.Move)
		api.PATCH("/schedule/assignments/:id/state", scheduleHandler.SetState)
		api.DELETE("/schedule/assignments/:id", scheduleHandler.Remove)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
