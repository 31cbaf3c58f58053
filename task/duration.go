package task

import "github.com/dmoraes/tarefas/internal/span"

// ExecutionSpan computes the elapsed span between a task's creation and
// completion timestamps. It is derived on demand, never stored, so
// recomputing always yields the same result for the same task. Returns
// false when either timestamp is missing or unparsable.
func ExecutionSpan(t Task) (span.Breakdown, bool) {
	start, ok := ParseTime(t.CreatedAt)
	if !ok {
		return span.Breakdown{}, false
	}
	if t.CompletedAt == nil {
		return span.Breakdown{}, false
	}
	end, ok := ParseTime(*t.CompletedAt)
	if !ok {
		return span.Breakdown{}, false
	}
	return span.Between(start, end), true
}
