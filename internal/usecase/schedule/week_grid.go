package schedule

import (
	"context"

	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/dto"
	"github.com/tabletide/shift-scheduler/internal/models"
)

type WeekGridInput struct {
	CompanyID uint
	BranchID  *uint
}

// WeekGrid builds the full timetable read model the drag-and-drop grid
// renders from: every (weekday, slot) cell with its occupants and
// coverage. One assignments query and one templates query, grouped in
// memory.
type WeekGrid struct {
	repo domain.Repository
}

func NewWeekGrid(repo domain.Repository) *WeekGrid {
	return &WeekGrid{repo: repo}
}

func (uc *WeekGrid) Execute(
	ctx context.Context,
	in WeekGridInput,
) (*dto.WeekGridDTO, error) {

	assignments, err := uc.repo.ListAssignments(ctx, in.CompanyID, in.BranchID)
	if err != nil {
		return nil, err
	}

	templates, err := uc.repo.ListTemplates(ctx, in.CompanyID, in.BranchID)
	if err != nil {
		return nil, err
	}

	type cellKey struct {
		weekday    int
		start, end string
	}

	byCell := make(map[cellKey][]models.ShiftAssignment)
	for _, ap := range assignments {
		k := cellKey{ap.Weekday, ap.StartTime, ap.EndTime}
		byCell[k] = append(byCell[k], ap)
	}

	// templates arrive in id order; the first active match per cell wins
	tplByCell := make(map[cellKey]*models.ShiftTemplate)
	for i := range templates {
		tpl := &templates[i]
		if !tpl.Active {
			continue
		}
		k := cellKey{tpl.Weekday, tpl.StartTime, tpl.EndTime}
		if _, taken := tplByCell[k]; !taken {
			tplByCell[k] = tpl
		}
	}

	grid := &dto.WeekGridDTO{Slots: domain.Catalog}
	for weekday := 0; weekday <= 6; weekday++ {
		for _, slot := range domain.Catalog {
			k := cellKey{weekday, slot.Start, slot.End}
			occupants := byCell[k]
			grid.Cells = append(grid.Cells, dto.WeekGridCellDTO{
				Weekday:     weekday,
				Slot:        slot,
				Assignments: occupants,
				Coverage:    domain.EvaluateCoverage(len(occupants), tplByCell[k]),
			})
		}
	}

	return grid, nil
}
