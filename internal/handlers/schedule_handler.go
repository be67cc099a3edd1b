package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tabletide/shift-scheduler/internal/httperr"
	"github.com/tabletide/shift-scheduler/internal/httpresp"
	ucSchedule "github.com/tabletide/shift-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	place   *ucSchedule.PlaceAssignment
	move    *ucSchedule.MoveAssignment
	edit    *ucSchedule.EditAssignment
	remove  *ucSchedule.RemoveAssignment
	state   *ucSchedule.SetShiftState
	resolve *ucSchedule.ResolveSlot
	grid    *ucSchedule.WeekGrid
	now     *ucSchedule.CurrentSlot
}

func NewScheduleHandler(
	place *ucSchedule.PlaceAssignment,
	move *ucSchedule.MoveAssignment,
	edit *ucSchedule.EditAssignment,
	remove *ucSchedule.RemoveAssignment,
	state *ucSchedule.SetShiftState,
	resolve *ucSchedule.ResolveSlot,
	grid *ucSchedule.WeekGrid,
	now *ucSchedule.CurrentSlot,
) *ScheduleHandler {
	return &ScheduleHandler{
		place:   place,
		move:    move,
		edit:    edit,
		remove:  remove,
		state:   state,
		resolve: resolve,
		grid:    grid,
		now:     now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PlaceAssignmentRequest struct {
	StaffID   uint   `json:"staff_id" binding:"required"`
	Weekday   *int   `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	BranchID  *uint  `json:"branch_id"`
	Notes     string `json:"notes"`
}

type MoveAssignmentRequest struct {
	Weekday   *int   `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	BranchID  *uint  `json:"branch_id"`
	StaffID   *uint  `json:"staff_id"`
}

type EditAssignmentRequest struct {
	Title *string `json:"title,omitempty"`
	Notes *string `json:"notes,omitempty"`
	Color *string `json:"color,omitempty"`
	Role  *string `json:"role,omitempty"`
}

type SetStateRequest struct {
	State string `json:"state" binding:"required"`
}

// ======================================================
// WRITES
// ======================================================

// Place handles the drop event of the drag-and-drop grid.
func (h *ScheduleHandler) Place(c *gin.Context) {
	companyID, actorID := companyScope(c)

	var req PlaceAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid placement payload.")
		return
	}

	out, err := h.place.Execute(c.Request.Context(), ucSchedule.PlaceAssignmentInput{
		CompanyID: companyID,
		ActorID:   actorID,
		StaffID:   req.StaffID,
		Weekday:   *req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BranchID:  req.BranchID,
		Notes:     req.Notes,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *ScheduleHandler) Move(c *gin.Context) {
	companyID, actorID := companyScope(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req MoveAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid move payload.")
		return
	}

	ap, err := h.move.Execute(c.Request.Context(), ucSchedule.MoveAssignmentInput{
		CompanyID:    companyID,
		ActorID:      actorID,
		AssignmentID: id,
		Weekday:      *req.Weekday,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BranchID:     req.BranchID,
		StaffID:      req.StaffID,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *ScheduleHandler) Edit(c *gin.Context) {
	companyID, actorID := companyScope(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req EditAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid edit payload.")
		return
	}

	ap, err := h.edit.Execute(c.Request.Context(), ucSchedule.EditAssignmentInput{
		CompanyID:    companyID,
		ActorID:      actorID,
		AssignmentID: id,
		Title:        req.Title,
		Notes:        req.Notes,
		Color:        req.Color,
		Role:         req.Role,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *ScheduleHandler) Remove(c *gin.Context) {
	companyID, actorID := companyScope(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), companyID, actorID, id); err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) SetState(c *gin.Context) {
	companyID, actorID := companyScope(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req SetStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid state payload.")
		return
	}

	ap, err := h.state.Execute(c.Request.Context(), ucSchedule.SetShiftStateInput{
		CompanyID:    companyID,
		ActorID:      actorID,
		AssignmentID: id,
		State:        req.State,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// READS
// ======================================================

func (h *ScheduleHandler) Grid(c *gin.Context) {
	companyID, _ := companyScope(c)

	branchID, err := branchFilter(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_branch_filter", "branch_id must be numeric.")
		return
	}

	grid, err := h.grid.Execute(c.Request.Context(), ucSchedule.WeekGridInput{
		CompanyID: companyID,
		BranchID:  branchID,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, grid)
}

func (h *ScheduleHandler) ResolveSlot(c *gin.Context) {
	companyID, _ := companyScope(c)

	branchID, err := branchFilter(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_branch_filter", "branch_id must be numeric.")
		return
	}

	weekday, err := strconv.Atoi(c.Query("weekday"))
	if err != nil {
		httperr.BadRequest(c, "invalid_weekday", "weekday must be 0 (Sunday) to 6 (Saturday).")
		return
	}

	res, err := h.resolve.Execute(c.Request.Context(), ucSchedule.ResolveSlotInput{
		CompanyID: companyID,
		BranchID:  branchID,
		Weekday:   weekday,
		StartTime: c.Query("start"),
		EndTime:   c.Query("end"),
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ScheduleHandler) Now(c *gin.Context) {
	companyID, _ := companyScope(c)

	branchID, err := branchFilter(c)
	if err != nil || branchID == nil {
		httperr.BadRequest(c, "invalid_branch_filter", "branch_id is required.")
		return
	}

	out, err := h.now.Execute(c.Request.Context(), ucSchedule.CurrentSlotInput{
		CompanyID: companyID,
		BranchID:  *branchID,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, out)
}
