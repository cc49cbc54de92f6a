package models

import (
	"time"
)

// SelectionProcessStatus defines the lifecycle state of a selection process
type SelectionProcessStatus string

const (
	StatusOpen       SelectionProcessStatus = "OPEN"
	StatusInProgress SelectionProcessStatus = "IN_PROGRESS"
	StatusClosed     SelectionProcessStatus = "CLOSED"
)

// CanTransitionTo reports whether the status may move to the target state.
// Processes only move forward: OPEN -> IN_PROGRESS -> CLOSED.
func (s SelectionProcessStatus) CanTransitionTo(target SelectionProcessStatus) bool {
	switch s {
	case StatusOpen:
		return target == StatusInProgress
	case StatusInProgress:
		return target == StatusClosed
	default:
		return false
	}
}

// IsValid reports whether the value is one of the known statuses
func (s SelectionProcessStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// SelectionProcess defines the selection process model based on the
// 'selection_processes' table. The roster lives in the
// 'selection_process_students' join table.
type SelectionProcess struct {
	ID        int64                  `json:"id" db:"id" example:"1"`
	Title     string                 `json:"title" db:"title" example:"Internship 2024/1"`
	Status    SelectionProcessStatus `json:"status" db:"status" example:"OPEN"`
	CreatedAt time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time              `json:"updatedAt" db:"updated_at"`

	// Roster (populated when needed)
	Students []Student `json:"students,omitempty"`
}
