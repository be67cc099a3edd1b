package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/dto"
	"github.com/tabletide/shift-scheduler/internal/models"
)

func gridCell(t *testing.T, grid *dto.WeekGridDTO, weekday int, start string) dto.WeekGridCellDTO {
	t.Helper()
	for _, cell := range grid.Cells {
		if cell.Weekday == weekday && cell.Slot.Start == start {
			return cell
		}
	}
	t.Fatalf("no cell weekday=%d start=%s", weekday, start)
	return dto.WeekGridCellDTO{}
}

func TestWeekGridGroupsByCell(t *testing.T) {
	repo := new(mockRepo)
	repo.On("ListAssignments", mock.Anything, uint(1), mock.Anything).Return([]models.ShiftAssignment{
		{ID: 1, CompanyID: 1, StaffID: 7, Weekday: 1, StartTime: "10:00", EndTime: "14:00", State: "inactive"},
		{ID: 2, CompanyID: 1, StaffID: 8, Weekday: 1, StartTime: "10:00", EndTime: "14:00", State: "active"},
		{ID: 3, CompanyID: 1, StaffID: 7, Weekday: 4, StartTime: "22:00", EndTime: "02:00", State: "inactive"},
	}, nil)
	repo.On("ListTemplates", mock.Anything, uint(1), mock.Anything).Return([]models.ShiftTemplate{
		{ID: 10, CompanyID: 1, Weekday: 1, StartTime: "10:00", EndTime: "14:00", MaxStaff: 2, Active: true},
		{ID: 11, CompanyID: 1, Weekday: 4, StartTime: "22:00", EndTime: "02:00", MaxStaff: 2, Active: true},
	}, nil)

	uc := NewWeekGrid(repo)
	grid, err := uc.Execute(context.Background(), WeekGridInput{CompanyID: 1})
	require.NoError(t, err)

	// 7 weekdays x the full slot catalog, every cell present even if empty
	assert.Len(t, grid.Cells, 7*len(domain.Catalog))
	assert.Equal(t, domain.Catalog, grid.Slots)

	mondayMorning := gridCell(t, grid, 1, "10:00")
	assert.Len(t, mondayMorning.Assignments, 2)
	assert.Equal(t, domain.CoverageMet, mondayMorning.Coverage.Status)

	thursdayNight := gridCell(t, grid, 4, "22:00")
	assert.Len(t, thursdayNight.Assignments, 1)
	assert.Equal(t, domain.CoverageUnder, thursdayNight.Coverage.Status)

	// untouched cell: empty, no template, coverage trivially met
	tuesdayEvening := gridCell(t, grid, 2, "18:00")
	assert.Empty(t, tuesdayEvening.Assignments)
	assert.Equal(t, domain.CoverageMet, tuesdayEvening.Coverage.Status)
}

func TestWeekGridFirstActiveTemplateWins(t *testing.T) {
	repo := new(mockRepo)
	repo.On("ListAssignments", mock.Anything, uint(1), mock.Anything).
		Return([]models.ShiftAssignment{}, nil)
	// id order: the retired template sorts first but is skipped, then the
	// lower-id active one shadows the later duplicate
	repo.On("ListTemplates", mock.Anything, uint(1), mock.Anything).Return([]models.ShiftTemplate{
		{ID: 5, CompanyID: 1, Weekday: 3, StartTime: "06:00", EndTime: "10:00", MaxStaff: 9, Active: false},
		{ID: 6, CompanyID: 1, Weekday: 3, StartTime: "06:00", EndTime: "10:00", MaxStaff: 2, Active: true},
		{ID: 7, CompanyID: 1, Weekday: 3, StartTime: "06:00", EndTime: "10:00", MaxStaff: 4, Active: true},
	}, nil)

	uc := NewWeekGrid(repo)
	grid, err := uc.Execute(context.Background(), WeekGridInput{CompanyID: 1})
	require.NoError(t, err)

	cell := gridCell(t, grid, 3, "06:00")
	assert.Equal(t, domain.CoverageUnder, cell.Coverage.Status)
	assert.Equal(t, 2, cell.Coverage.Required)
}
