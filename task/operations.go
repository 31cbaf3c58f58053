package task

import "time"

// DefaultRetention is how long a completed task stays in the active
// collection before the sweep moves it to the archive.
const DefaultRetention = 7 * 24 * time.Hour

// CreateOptions configures a new task.
type CreateOptions struct {
	// Description provides additional context. Optional.
	Description string

	// Priority is the urgency level. Required; must be canonical.
	Priority Priority

	// Origin records where the task came from. Required; must be canonical.
	Origin Origin
}

// Create creates a new task with the given title. The task starts as
// StatusPendente with a fresh creation timestamp and the next unique ID.
// Validation happens before any mutation; a rejected create leaves the
// store untouched.
func (s *Store) Create(title string, opts CreateOptions) (*Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if !opts.Priority.IsValid() {
		return nil, formatInvalidPriorityError(opts.Priority)
	}
	if !opts.Origin.IsValid() {
		return nil, formatInvalidOriginError(opts.Origin)
	}

	t := Task{
		ID:          s.nextID,
		Title:       title,
		Description: opts.Description,
		Priority:    opts.Priority,
		Status:      StatusPendente,
		Origin:      opts.Origin,
		CreatedAt:   FormatTime(time.Now()),
	}
	s.nextID++
	s.active = append(s.active, t)

	return &t, nil
}

// Get returns a copy of the active task with the given ID. Archived tasks
// are not searchable; once a task is archived it reports not found here,
// like every other lifecycle operation.
func (s *Store) Get(id int) (Task, error) {
	t := s.find(id)
	if t == nil {
		return Task{}, ErrTaskNotFound
	}
	return *t, nil
}

// SelectNextUrgent picks the next pending task to work on and marks it
// StatusFazendo. The scan walks PriorityOrder and returns the first task,
// in insertion order, whose priority matches the most urgent level that
// has at least one pending task. Returns ErrNoPendingTasks when nothing
// is pending.
func (s *Store) SelectNextUrgent() (*Task, error) {
	for _, p := range PriorityOrder() {
		for i := range s.active {
			if s.active[i].Status != StatusPendente || s.active[i].Priority != p {
				continue
			}
			s.active[i].Status = StatusFazendo
			selected := s.active[i]
			return &selected, nil
		}
	}
	return nil, ErrNoPendingTasks
}

// SetPriority changes the priority of an active task. Any canonical
// priority may replace any other, regardless of the task's status; a
// logically deleted task is still editable while it sits in the active
// collection.
func (s *Store) SetPriority(id int, priority Priority) (*Task, error) {
	if !priority.IsValid() {
		return nil, formatInvalidPriorityError(priority)
	}

	t := s.find(id)
	if t == nil {
		return nil, ErrTaskNotFound
	}

	t.Priority = priority
	updated := *t
	return &updated, nil
}

// Complete marks a task as StatusConcluida and stamps its completion
// timestamp. The timestamp is set exactly once: a task that already
// carries one, including a completed-then-deleted task, reports
// ErrAlreadyCompleted instead of re-stamping.
func (s *Store) Complete(id int) (*Task, error) {
	t := s.find(id)
	if t == nil {
		return nil, ErrTaskNotFound
	}
	if t.CompletedAt != nil {
		return nil, ErrAlreadyCompleted
	}

	completedAt := FormatTime(time.Now())
	t.CompletedAt = &completedAt
	t.Status = StatusConcluida
	updated := *t
	return &updated, nil
}

// Delete marks a task as StatusExcluida. The record stays in its
// collection; nothing is ever physically removed by deletion. Deletion is
// allowed from any state, including an already deleted task.
func (s *Store) Delete(id int) (*Task, error) {
	t := s.find(id)
	if t == nil {
		return nil, ErrTaskNotFound
	}

	t.Status = StatusExcluida
	updated := *t
	return &updated, nil
}

// ArchiveAged moves completed tasks whose completion timestamp is older
// than now minus retention from the active collection into the archive,
// as one batch. Tasks without a completion timestamp are never selected
// regardless of status, so the sweep is idempotent: a task moves at most
// once and is never reconsidered. Returns the number of tasks moved.
func (s *Store) ArchiveAged(now time.Time, retention time.Duration) int {
	cutoff := now.Add(-retention)

	var kept, moved []Task
	for _, t := range s.active {
		if t.Status == StatusConcluida && t.CompletedAt != nil {
			if completed, ok := ParseTime(*t.CompletedAt); ok && completed.Before(cutoff) {
				moved = append(moved, t)
				continue
			}
		}
		kept = append(kept, t)
	}

	if len(moved) == 0 {
		return 0
	}

	s.active = kept
	s.archived = append(s.archived, moved...)
	return len(moved)
}

// CompactArchive physically removes logically deleted records from the
// archived collection. This is a maintenance operation; the retention
// sweep never does this on its own. Returns the number of records removed.
func (s *Store) CompactArchive() int {
	var kept []Task
	for _, t := range s.archived {
		if t.Status == StatusExcluida {
			continue
		}
		kept = append(kept, t)
	}

	removed := len(s.archived) - len(kept)
	s.archived = kept
	return removed
}
