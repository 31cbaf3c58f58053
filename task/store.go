package task

// Store owns the active and archived task collections and the ID counter.
// It is constructed once per process and passed into every operation; there
// is no ambient global state.
//
// The store is not safe for concurrent use. The tracker is single-user and
// every operation is a synchronous in-memory mutation.
type Store struct {
	active   []Task
	archived []Task
	nextID   int
}

// New returns an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// Load reads both collections from disk and seeds the ID counter one past
// the highest ID found across them. A missing or unparsable file yields an
// empty collection rather than an error; that is how a first run looks.
func Load(files Files) *Store {
	s := &Store{
		active:   readCollection(files.Active),
		archived: readCollection(files.Archived),
	}

	maxID := 0
	for _, t := range s.active {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	for _, t := range s.archived {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	s.nextID = maxID + 1

	return s
}

// Save overwrites both collection files with the in-memory state. The two
// files are written independently; a failure on the first still reports
// without touching the second.
func (s *Store) Save(files Files) error {
	if err := writeCollection(files.Active, s.active); err != nil {
		return err
	}
	return writeCollection(files.Archived, s.archived)
}

// Active returns a copy of the active collection, regardless of status.
func (s *Store) Active() []Task {
	return copyTasks(s.active)
}

// Archived returns a copy of the raw archived collection, including
// logically deleted records.
func (s *Store) Archived() []Task {
	return copyTasks(s.archived)
}

// ArchivedReport returns the archived tasks suitable for reporting:
// logically deleted records are filtered out, but remain in storage.
func (s *Store) ArchivedReport() []Task {
	var report []Task
	for _, t := range s.archived {
		if t.Status == StatusExcluida {
			continue
		}
		report = append(report, t)
	}
	return report
}

// find returns a pointer into the active collection, or nil. Archived
// tasks are deliberately not searchable here: once archived, a task is no
// longer editable through the lifecycle operations.
func (s *Store) find(id int) *Task {
	for i := range s.active {
		if s.active[i].ID == id {
			return &s.active[i]
		}
	}
	return nil
}

func copyTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
