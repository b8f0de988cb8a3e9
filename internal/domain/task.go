// Package domain holds the pure types of the Momentum engine.
// Domain values are immutable by convention: engine components take
// snapshots as arguments and return new values — no shared mutable state.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ─── Task Types ─────────────────────────────────────────────────────────────

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusSkipped    TaskStatus = "skipped"
	StatusDeferred   TaskStatus = "deferred"
)

// Priority orders tasks for tie-breaks, critical highest.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PrioritySomeday  Priority = "someday"
)

// Rank returns the total order for a priority, critical highest.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 5
	case PriorityHigh:
		return 4
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 2
	case PrioritySomeday:
		return 1
	default:
		return 0
	}
}

// BaseXP returns the XP a task of this priority is worth at creation.
// Frozen onto the task at creation time and never recalculated.
func (p Priority) BaseXP() int {
	switch p {
	case PriorityCritical:
		return 50
	case PriorityHigh:
		return 35
	case PriorityMedium:
		return 25
	case PriorityLow:
		return 15
	case PrioritySomeday:
		return 10
	default:
		return 10
	}
}

// ContextTag marks where or with what a task can be done.
type ContextTag string

const (
	TagHome     ContextTag = "home"
	TagWork     ContextTag = "work"
	TagErrand   ContextTag = "errand"
	TagAnywhere ContextTag = "anywhere"
	TagPhone    ContextTag = "phone"
	TagComputer ContextTag = "computer"
)

// Task is a unit of work. Optional timestamps and the actual duration are
// pointers so every "is this present" branch is visible at the type level.
type Task struct {
	ID               uuid.UUID    `json:"id"`
	Title            string       `json:"title"`
	Status           TaskStatus   `json:"status"`
	Priority         Priority     `json:"priority"`
	EstimatedMinutes int          `json:"estimated_minutes"`
	ActualMinutes    *int         `json:"actual_minutes,omitempty"`
	DueAt            *time.Time   `json:"due_at,omitempty"`
	ScheduledAt      *time.Time   `json:"scheduled_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	CompletedAt      *time.Time   `json:"completed_at,omitempty"`
	Energy           int          `json:"energy"` // Required energy, 1–5
	Contexts         []ContextTag `json:"contexts,omitempty"`
	Tags             []string     `json:"tags,omitempty"`
	BaseXP           int          `json:"base_xp"` // Derived from priority at creation, immutable
	ChainID          *uuid.UUID   `json:"chain_id,omitempty"`
	ChainOrder       int          `json:"chain_order,omitempty"`
	TriggersID       *uuid.UUID   `json:"triggers_id,omitempty"`     // Task activated by completing this one
	TriggeredByID    *uuid.UUID   `json:"triggered_by_id,omitempty"` // Task whose completion activated this one
}

// NewTask creates a pending task with BaseXP frozen from the priority.
func NewTask(title string, priority Priority, estimatedMinutes, energy int, now time.Time) Task {
	return Task{
		ID:               uuid.New(),
		Title:            title,
		Status:           StatusPending,
		Priority:         priority,
		EstimatedMinutes: estimatedMinutes,
		CreatedAt:        now,
		Energy:           energy,
		BaseXP:           priority.BaseXP(),
	}
}

// HasContext reports whether the task carries the given context tag.
func (t Task) HasContext(tag ContextTag) bool {
	for _, c := range t.Contexts {
		if c == tag {
			return true
		}
	}
	return false
}

// HasTag reports whether the task carries the given free-form tag.
func (t Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// Completable reports whether the task may transition to completed.
func (t Task) Completable() bool {
	return t.Status == StatusPending || t.Status == StatusInProgress
}
