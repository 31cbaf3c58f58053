package task

import "testing"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New()
}

// addActive appends a pre-built task to the active collection, keeping the
// ID counter ahead of it.
func addActive(s *Store, t Task) {
	s.active = append(s.active, t)
	if t.ID >= s.nextID {
		s.nextID = t.ID + 1
	}
}

// addArchived appends a pre-built task straight to the archive.
func addArchived(s *Store, t Task) {
	s.archived = append(s.archived, t)
	if t.ID >= s.nextID {
		s.nextID = t.ID + 1
	}
}

func timestampPtr(value string) *string {
	return &value
}

func mustCreate(t *testing.T, s *Store, title string, priority Priority) *Task {
	t.Helper()

	created, err := s.Create(title, CreateOptions{
		Priority: priority,
		Origin:   OriginEmail,
	})
	if err != nil {
		t.Fatalf("failed to create task %q: %v", title, err)
	}
	return created
}
