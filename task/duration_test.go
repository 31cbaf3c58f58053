package task

import (
	"testing"
	"time"

	"github.com/dmoraes/tarefas/internal/span"
)

func TestExecutionSpan(t *testing.T) {
	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour + 2*time.Hour + 3*time.Minute + 4*time.Second)

	completed := Task{
		ID:          1,
		Title:       "tarefa",
		Priority:    PriorityAlta,
		Status:      StatusConcluida,
		Origin:      OriginEmail,
		CreatedAt:   FormatTime(start),
		CompletedAt: timestampPtr(FormatTime(end)),
	}

	breakdown, ok := ExecutionSpan(completed)
	if !ok {
		t.Fatal("expected a span for a completed task")
	}
	want := span.Breakdown{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}
	if breakdown != want {
		t.Errorf("expected %+v, got %+v", want, breakdown)
	}

	// Derived on demand: recomputing yields the same result.
	again, ok := ExecutionSpan(completed)
	if !ok || again != breakdown {
		t.Errorf("expected stable recomputation, got %+v", again)
	}
}

func TestExecutionSpan_Absent(t *testing.T) {
	tests := []struct {
		name string
		task Task
	}{
		{
			name: "no completion timestamp",
			task: Task{CreatedAt: "2026-08-01T09:00:00"},
		},
		{
			name: "unparsable completion timestamp",
			task: Task{CreatedAt: "2026-08-01T09:00:00", CompletedAt: timestampPtr("ontem")},
		},
		{
			name: "unparsable creation timestamp",
			task: Task{CreatedAt: "???", CompletedAt: timestampPtr("2026-08-02T09:00:00")},
		},
		{
			name: "empty timestamps",
			task: Task{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ExecutionSpan(tt.task); ok {
				t.Error("expected no span")
			}
		})
	}
}

func TestParseTime_Layouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "wire format", input: "2026-08-01T09:00:00", ok: true},
		{name: "fractional seconds", input: "2026-08-01T09:00:00.123456", ok: true},
		{name: "rfc3339", input: "2026-08-01T09:00:00Z", ok: true},
		{name: "date only", input: "2026-08-01", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseTime(tt.input); ok != tt.ok {
				t.Errorf("ParseTime(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}
