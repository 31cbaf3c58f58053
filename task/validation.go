package task

import (
	"errors"

	"github.com/dmoraes/tarefas/internal/validation"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidOrigin is returned when an invalid origin is provided.
	ErrInvalidOrigin = errors.New("invalid origin")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrTaskNotFound is returned when an ID doesn't resolve to an active task.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAlreadyCompleted is returned when completing a task that already
	// has a completion timestamp.
	ErrAlreadyCompleted = errors.New("task is already completed")

	// ErrNoPendingTasks is returned when the urgency scan finds nothing pending.
	ErrNoPendingTasks = errors.New("no pending tasks")

	// ErrCompletedTaskMissingTimestamp is returned when a completed task has
	// no completion timestamp.
	ErrCompletedTaskMissingTimestamp = errors.New("completed task must have a completion timestamp")

	// ErrIncompleteTaskHasTimestamp is returned when a task that never
	// completed carries a completion timestamp.
	ErrIncompleteTaskHasTimestamp = errors.New("incomplete task cannot have a completion timestamp")
)

func formatInvalidPriorityError(p Priority) error {
	return validation.FormatInvalidValueError(ErrInvalidPriority, p, ValidPriorities())
}

func formatInvalidOriginError(o Origin) error {
	return validation.FormatInvalidValueError(ErrInvalidOrigin, o, ValidOrigins())
}

func formatInvalidStatusError(s Status) error {
	return validation.FormatInvalidValueError(ErrInvalidStatus, s, ValidStatuses())
}

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateTask checks if a task struct is internally consistent.
func ValidateTask(t *Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return formatInvalidStatusError(t.Status)
	}
	if !t.Priority.IsValid() {
		return formatInvalidPriorityError(t.Priority)
	}
	if !t.Origin.IsValid() {
		return formatInvalidOriginError(t.Origin)
	}

	// The completion timestamp is present iff the task has ever completed.
	// A deleted task may hold one (deletion after completion keeps it).
	switch t.Status {
	case StatusConcluida:
		if t.CompletedAt == nil {
			return ErrCompletedTaskMissingTimestamp
		}
	case StatusPendente, StatusFazendo:
		if t.CompletedAt != nil {
			return ErrIncompleteTaskHasTimestamp
		}
	}

	return nil
}
