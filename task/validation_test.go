package task

import (
	"errors"
	"testing"
)

func validTask() Task {
	return Task{
		ID:        1,
		Title:     "tarefa",
		Priority:  PriorityMedia,
		Status:    StatusPendente,
		Origin:    OriginEmail,
		CreatedAt: "2026-08-01T09:00:00",
	}
}

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Task)
		sentinel error
	}{
		{
			name:   "valid pending task",
			mutate: func(t *Task) {},
		},
		{
			name: "valid completed task",
			mutate: func(t *Task) {
				t.Status = StatusConcluida
				t.CompletedAt = timestampPtr("2026-08-02T09:00:00")
			},
		},
		{
			name: "valid deleted-after-completion task",
			mutate: func(t *Task) {
				t.Status = StatusExcluida
				t.CompletedAt = timestampPtr("2026-08-02T09:00:00")
			},
		},
		{
			name:     "empty title",
			mutate:   func(t *Task) { t.Title = "" },
			sentinel: ErrEmptyTitle,
		},
		{
			name:     "invalid status",
			mutate:   func(t *Task) { t.Status = "Arquivada" },
			sentinel: ErrInvalidStatus,
		},
		{
			name:     "invalid priority",
			mutate:   func(t *Task) { t.Priority = "baixa" },
			sentinel: ErrInvalidPriority,
		},
		{
			name:     "invalid origin",
			mutate:   func(t *Task) { t.Origin = "Fax" },
			sentinel: ErrInvalidOrigin,
		},
		{
			name:     "completed without timestamp",
			mutate:   func(t *Task) { t.Status = StatusConcluida },
			sentinel: ErrCompletedTaskMissingTimestamp,
		},
		{
			name: "pending with timestamp",
			mutate: func(t *Task) {
				t.CompletedAt = timestampPtr("2026-08-02T09:00:00")
			},
			sentinel: ErrIncompleteTaskHasTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := validTask()
			tt.mutate(&candidate)

			err := ValidateTask(&candidate)
			if tt.sentinel == nil {
				if err != nil {
					t.Fatalf("expected valid task, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}
