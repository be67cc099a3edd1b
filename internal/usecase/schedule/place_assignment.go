package schedule

import (
	"context"

	"github.com/tabletide/shift-scheduler/internal/audit"
	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/httperr"
	"github.com/tabletide/shift-scheduler/internal/models"
)

// CapacityMode decides what happens when a placement would push a slot
// past its template's MaxStaff. Templates express guidance, so the
// default is soft: report, never block.
type CapacityMode string

const (
	CapacitySoft CapacityMode = "soft"
	CapacityHard CapacityMode = "hard"
)

var roleColors = map[string]string{
	models.RoleManager: "#7c3aed",
	models.RoleChef:    "#dc2626",
	models.RoleWaiter:  "#2563eb",
	models.RoleBarista: "#d97706",
	models.RoleCashier: "#059669",
}

const defaultColor = "#64748b"

// ======================================================
// INPUT / OUTPUT
// ======================================================

type PlaceAssignmentInput struct {
	CompanyID uint
	ActorID   *uint
	StaffID   uint

	Weekday   int
	StartTime string
	EndTime   string

	// BranchID nil means the grid is filtered to "all branches" and the
	// assignment lands on the staff member's home branch.
	BranchID *uint

	Notes string
}

type PlaceAssignmentOutput struct {
	Assignment *models.ShiftAssignment `json:"assignment"`
	Coverage   domain.Coverage         `json:"coverage"`
}

// ======================================================
// USE CASE
// ======================================================

type PlaceAssignment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	capacity CapacityMode
}

func NewPlaceAssignment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	capacity CapacityMode,
) *PlaceAssignment {
	return &PlaceAssignment{
		repo:     repo,
		audit:    audit,
		capacity: capacity,
	}
}

func (uc *PlaceAssignment) Execute(
	ctx context.Context,
	in PlaceAssignmentInput,
) (*PlaceAssignmentOutput, error) {

	slot, err := domain.FindSlot(in.Weekday, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	staff, err := uc.repo.GetStaffMember(ctx, in.CompanyID, in.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.Active {
		return nil, httperr.ErrBusiness("staff_inactive")
	}

	branchID, err := uc.resolveBranch(ctx, in, staff)
	if err != nil {
		return nil, err
	}

	tpl, err := uc.repo.FindTemplateForSlot(
		ctx,
		in.CompanyID,
		&branchID,
		in.Weekday,
		in.StartTime,
		in.EndTime,
	)
	if err != nil {
		return nil, err
	}

	occupants, err := uc.repo.ListAssignmentsForSlot(
		ctx,
		in.CompanyID,
		&branchID,
		in.Weekday,
		in.StartTime,
		in.EndTime,
	)
	if err != nil {
		return nil, err
	}

	if uc.capacity == CapacityHard && tpl != nil && len(occupants) >= tpl.MaxStaff {
		return nil, &domain.CapacityError{
			TemplateID: tpl.ID,
			MaxStaff:   tpl.MaxStaff,
		}
	}

	ap := &models.ShiftAssignment{
		CompanyID: in.CompanyID,
		BranchID:  branchID,
		StaffID:   staff.ID,
		Title:     slot.DefaultTitle(),
		Weekday:   in.Weekday,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Role:      staff.Role,
		State:     string(domain.InitialState()),
		Color:     colorForRole(staff.Role),
		Notes:     in.Notes,
	}

	// overlap scan and insert commit together
	if err := uc.repo.CreateAssignmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    in.ActorID,
		Action:    "shift_assigned",
		Entity:    "shift_assignment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"staff_id": staff.ID,
			"weekday":  in.Weekday,
			"slot":     slot.Label,
		},
	})

	return &PlaceAssignmentOutput{
		Assignment: ap,
		Coverage:   domain.EvaluateCoverage(len(occupants)+1, tpl),
	}, nil
}

func (uc *PlaceAssignment) resolveBranch(
	ctx context.Context,
	in PlaceAssignmentInput,
	staff *models.StaffMember,
) (uint, error) {

	if in.BranchID != nil {
		branch, err := uc.repo.GetBranch(ctx, in.CompanyID, *in.BranchID)
		if err != nil {
			return 0, err
		}
		return branch.ID, nil
	}

	if staff.BranchID == nil {
		return 0, httperr.ErrBusiness("no_branch_for_staff")
	}
	return *staff.BranchID, nil
}

func colorForRole(role string) string {
	if c, ok := roleColors[role]; ok {
		return c
	}
	return defaultColor
}
