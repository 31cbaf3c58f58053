// Package task implements the task store and lifecycle engine for the
// tarefas tracker.
//
// Tasks live in exactly one of two collections: active or archived. The
// active collection holds everything still visible to day-to-day work,
// regardless of status; the archived collection accumulates tasks moved
// out by the retention sweep and is never pruned automatically.
//
// The public API mirrors the shell operations:
//   - Create, SelectNextUrgent, SetPriority, Complete, Delete for lifecycle
//   - Get, Active, Archived, ArchivedReport for querying
//   - ArchiveAged, CompactArchive for archive maintenance
package task

// Task represents a single tracked task.
//
// The JSON tags are the on-disk wire format of the two collection files
// and must not change.
type Task struct {
	// ID is a positive integer, unique across the active and archived
	// collections, assigned in strictly increasing order and never reused.
	ID int `json:"id"`

	// Title is the short summary of the task. Required.
	Title string `json:"titulo"`

	// Description provides additional context. May be empty.
	Description string `json:"descricao"`

	// Priority is the urgency level, mutable after creation.
	Priority Priority `json:"prioridade"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// Origin records where the task came from. Immutable after creation.
	Origin Origin `json:"origem"`

	// CreatedAt is the creation timestamp as a naive ISO-8601 string.
	CreatedAt string `json:"data_criacao"`

	// CompletedAt is the completion timestamp, set exactly once when the
	// task reaches StatusConcluida. Nil while incomplete; logical deletion
	// after completion does not clear it.
	CompletedAt *string `json:"data_conclusao"`
}
