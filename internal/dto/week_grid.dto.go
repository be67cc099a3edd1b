package dto

import (
	domain "github.com/tabletide/shift-scheduler/internal/domain/schedule"
	"github.com/tabletide/shift-scheduler/internal/models"
)

// WeekGridCellDTO is one cell of the 7 x slot-catalog timetable.
type WeekGridCellDTO struct {
	Weekday     int                      `json:"weekday"`
	Slot        domain.Slot              `json:"slot"`
	Assignments []models.ShiftAssignment `json:"assignments"`
	Coverage    domain.Coverage          `json:"coverage"`
}

type WeekGridDTO struct {
	Slots []domain.Slot     `json:"slots"`
	Cells []WeekGridCellDTO `json:"cells"`
}
