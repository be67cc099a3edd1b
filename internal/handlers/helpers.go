package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/httperr"
	"github.com/tabletide/shift-scheduler/internal/middleware"
)

func companyScope(c *gin.Context) (companyID uint, actorID *uint) {
	companyID = c.MustGet(middleware.ContextCompanyID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	return companyID, &userID
}

// branchFilter reads the optional branch_id query param; absent means
// "all branches".
func branchFilter(c *gin.Context) (*uint, error) {
	raw := c.Query("branch_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	v := uint(id)
	return &v, nil
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

// writeScheduleError translates engine rejections to HTTP, keeping the
// conflicting entity visible so the grid can explain the refusal.
func writeScheduleError(c *gin.Context, err error) {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		httperr.WriteDetails(c, http.StatusConflict, conflict.Code,
			"The staff member is already booked in an overlapping slot.",
			gin.H{"conflicting_assignment_id": conflict.AssignmentID})
		return
	}

	var capacity *domain.CapacityError
	if errors.As(err, &capacity) {
		httperr.WriteDetails(c, http.StatusConflict, domain.CodeCapacityExceeded,
			"The slot already has the full headcount its template asks for.",
			gin.H{"template_id": capacity.TemplateID, "max_staff": capacity.MaxStaff})
		return
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		httperr.WriteDetails(c, http.StatusNotFound, "not_found",
			"Referenced record no longer exists.",
			gin.H{"entity": notFound.Entity, "id": notFound.ID})
		return
	}

	var slotErr *domain.SlotError
	if errors.As(err, &slotErr) {
		httperr.WriteDetails(c, http.StatusBadRequest, domain.CodeInvalidSlot,
			"The requested times do not match any slot of the weekly grid.",
			gin.H{"weekday": slotErr.Weekday, "start_time": slotErr.Start, "end_time": slotErr.End})
		return
	}

	if code := httperr.BusinessCode(err); code != "" {
		httperr.BadRequest(c, code, "Request rejected.")
		return
	}

	httperr.Internal(c, "internal_error", "Unexpected failure.")
}
