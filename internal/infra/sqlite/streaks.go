package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// GetStreak loads the streak for one continuity metric. A kind that was
// never saved returns a zero streak of that kind, not an error.
func (d *DB) GetStreak(kind domain.StreakKind) (domain.Streak, error) {
	s := domain.Streak{Kind: kind}
	var lastActivity, startedAt sql.NullInt64
	err := d.db.QueryRow(`
		SELECT current_count, longest_count, last_activity,
			shields_available, shields_used, started_at
		FROM streaks WHERE kind = ?`, string(kind),
	).Scan(&s.CurrentCount, &s.LongestCount, &lastActivity,
		&s.ShieldsAvailable, &s.ShieldsUsed, &startedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("get streak %s: %w", kind, err)
	}
	if lastActivity.Valid {
		s.LastActivity = time.Unix(lastActivity.Int64, 0).UTC()
	}
	if startedAt.Valid {
		s.StartedAt = time.Unix(startedAt.Int64, 0).UTC()
	}
	return s, nil
}

// SaveStreak upserts one streak record.
func (d *DB) SaveStreak(s domain.Streak) error {
	_, err := d.db.Exec(`
		INSERT INTO streaks (kind, current_count, longest_count,
			last_activity, shields_available, shields_used, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET
			current_count = excluded.current_count,
			longest_count = excluded.longest_count,
			last_activity = excluded.last_activity,
			shields_available = excluded.shields_available,
			shields_used = excluded.shields_used,
			started_at = excluded.started_at`,
		string(s.Kind), s.CurrentCount, s.LongestCount,
		unixOrNil(s.LastActivity), s.ShieldsAvailable, s.ShieldsUsed,
		unixOrNil(s.StartedAt),
	)
	if err != nil {
		return fmt.Errorf("save streak %s: %w", s.Kind, err)
	}
	return nil
}

// ListStreaks returns every stored streak.
func (d *DB) ListStreaks() ([]domain.Streak, error) {
	rows, err := d.db.Query(`SELECT kind FROM streaks ORDER BY kind`)
	if err != nil {
		return nil, fmt.Errorf("list streaks: %w", err)
	}
	defer rows.Close()

	var kinds []domain.StreakKind
	for rows.Next() {
		var kind string
		if err := rows.Scan(&kind); err != nil {
			return nil, err
		}
		kinds = append(kinds, domain.StreakKind(kind))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var streaks []domain.Streak
	for _, kind := range kinds {
		s, err := d.GetStreak(kind)
		if err != nil {
			return nil, err
		}
		streaks = append(streaks, s)
	}
	return streaks, nil
}

func unixOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Unix()
}
