package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/momentum-hq/momentum/internal/domain"
)

// InsertTask stores a new task.
func (d *DB) InsertTask(t domain.Task) error {
	_, err := d.db.Exec(`
		INSERT INTO tasks (id, title, status, priority, estimated_minutes,
			actual_minutes, due_at, scheduled_at, created_at, completed_at,
			energy, contexts, tags, base_xp, chain_id, chain_order,
			triggers_id, triggered_by_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(), t.Title, string(t.Status), string(t.Priority),
		t.EstimatedMinutes, nullInt(t.ActualMinutes), nullTime(t.DueAt),
		nullTime(t.ScheduledAt), t.CreatedAt.Unix(), nullTime(t.CompletedAt),
		t.Energy, joinContexts(t.Contexts), strings.Join(t.Tags, ","),
		t.BaseXP, nullUUID(t.ChainID), t.ChainOrder,
		nullUUID(t.TriggersID), nullUUID(t.TriggeredByID),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// UpdateTask rewrites a stored task's mutable fields.
func (d *DB) UpdateTask(t domain.Task) error {
	res, err := d.db.Exec(`
		UPDATE tasks SET title = ?, status = ?, priority = ?,
			estimated_minutes = ?, actual_minutes = ?, due_at = ?,
			scheduled_at = ?, completed_at = ?, energy = ?, contexts = ?,
			tags = ?, chain_id = ?, chain_order = ?, triggers_id = ?,
			triggered_by_id = ?
		WHERE id = ?`,
		t.Title, string(t.Status), string(t.Priority),
		t.EstimatedMinutes, nullInt(t.ActualMinutes), nullTime(t.DueAt),
		nullTime(t.ScheduledAt), nullTime(t.CompletedAt), t.Energy,
		joinContexts(t.Contexts), strings.Join(t.Tags, ","),
		nullUUID(t.ChainID), t.ChainOrder, nullUUID(t.TriggersID),
		nullUUID(t.TriggeredByID), t.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// GetTask loads one task by ID.
func (d *DB) GetTask(id uuid.UUID) (domain.Task, error) {
	row := d.db.QueryRow(taskSelect+` WHERE id = ?`, id.String())
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, err
}

// ListTasks returns tasks filtered by status; an empty status lists all.
func (d *DB) ListTasks(status domain.TaskStatus) ([]domain.Task, error) {
	query := taskSelect
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// ListTasksForDay returns the tasks that belonged to a calendar day: those
// completed, scheduled, or due on it, plus pending ones created that day.
func (d *DB) ListTasksForDay(day time.Time) ([]domain.Task, error) {
	start := domain.StartOfDay(day)
	end := start.AddDate(0, 0, 1)
	rows, err := d.db.Query(taskSelect+`
		WHERE (completed_at >= ? AND completed_at < ?)
		   OR (scheduled_at >= ? AND scheduled_at < ?)
		   OR (due_at >= ? AND due_at < ?)
		   OR (status IN ('pending', 'in_progress', 'skipped') AND created_at >= ? AND created_at < ?)
		ORDER BY created_at`,
		start.Unix(), end.Unix(), start.Unix(), end.Unix(),
		start.Unix(), end.Unix(), start.Unix(), end.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks for day: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// CountCompletedOn returns how many tasks completed on a calendar day.
func (d *DB) CountCompletedOn(day time.Time) (int, error) {
	start := domain.StartOfDay(day)
	end := start.AddDate(0, 0, 1)
	var n int
	err := d.db.QueryRow(`
		SELECT COUNT(*) FROM tasks
		WHERE status = 'completed' AND completed_at >= ? AND completed_at < ?`,
		start.Unix(), end.Unix(),
	).Scan(&n)
	return n, err
}

const taskSelect = `
	SELECT id, title, status, priority, estimated_minutes, actual_minutes,
		due_at, scheduled_at, created_at, completed_at, energy, contexts,
		tags, base_xp, chain_id, chain_order, triggers_id, triggered_by_id
	FROM tasks`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t                                     domain.Task
		id, status, priority, contexts, tags  string
		actualMinutes                         sql.NullInt64
		dueAt, scheduledAt, completedAt       sql.NullInt64
		createdAt                             int64
		chainID, triggersID, triggeredByID    sql.NullString
	)
	err := row.Scan(&id, &t.Title, &status, &priority, &t.EstimatedMinutes,
		&actualMinutes, &dueAt, &scheduledAt, &createdAt, &completedAt,
		&t.Energy, &contexts, &tags, &t.BaseXP, &chainID, &t.ChainOrder,
		&triggersID, &triggeredByID)
	if err != nil {
		return t, err
	}

	t.ID, err = uuid.Parse(id)
	if err != nil {
		return t, fmt.Errorf("parse task id: %w", err)
	}
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.Priority(priority)
	t.CreatedAt = time.Unix(createdAt, 0).UTC()
	t.ActualMinutes = intPtr(actualMinutes)
	t.DueAt = timePtr(dueAt)
	t.ScheduledAt = timePtr(scheduledAt)
	t.CompletedAt = timePtr(completedAt)
	t.Contexts = splitContexts(contexts)
	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	}
	t.ChainID = uuidPtr(chainID)
	t.TriggersID = uuidPtr(triggersID)
	t.TriggeredByID = uuidPtr(triggeredByID)
	return t, nil
}

func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ─── NULL Helpers ───────────────────────────────────────────────────────────

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return p.Unix()
}

func nullUUID(p *uuid.UUID) any {
	if p == nil {
		return nil
	}
	return p.String()
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func timePtr(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	v := time.Unix(n.Int64, 0).UTC()
	return &v
}

func uuidPtr(n sql.NullString) *uuid.UUID {
	if !n.Valid || n.String == "" {
		return nil
	}
	id, err := uuid.Parse(n.String)
	if err != nil {
		return nil
	}
	return &id
}

func joinContexts(cs []domain.ContextTag) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func splitContexts(s string) []domain.ContextTag {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	cs := make([]domain.ContextTag, len(parts))
	for i, p := range parts {
		cs[i] = domain.ContextTag(p)
	}
	return cs
}
