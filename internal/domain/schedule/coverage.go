package schedule

import "github.com/tabletide/shift-scheduler/internal/models"

// CoverageStatus compares actual headcount in a slot against the matching
// template. Purely informational: in the default soft capacity mode an
// over-filled slot is reported, never blocked.
type CoverageStatus string

const (
	CoverageUnder CoverageStatus = "under"
	CoverageMet   CoverageStatus = "met"
	CoverageOver  CoverageStatus = "over"
)

type Coverage struct {
	Status     CoverageStatus `json:"status"`
	Assigned   int            `json:"assigned"`
	Required   int            `json:"required"`
	TemplateID uint           `json:"template_id,omitempty"`
}

// EvaluateCoverage counts assignments (regardless of state) against the
// template's MaxStaff. No template means no requirement, which always
// reads as met.
func EvaluateCoverage(assigned int, tpl *models.ShiftTemplate) Coverage {
	cov := Coverage{Status: CoverageMet, Assigned: assigned}
	if tpl == nil {
		return cov
	}

	cov.Required = tpl.MaxStaff
	cov.TemplateID = tpl.ID

	switch {
	case assigned < tpl.MaxStaff:
		cov.Status = CoverageUnder
	case assigned > tpl.MaxStaff:
		cov.Status = CoverageOver
	}
	return cov
}
