package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// InsertDayRating appends one day to the log. The log is append-only:
// a second rating for the same date is rejected.
func (d *DB) InsertDayRating(r domain.DayRating) error {
	_, err := d.db.Exec(`
		INSERT INTO day_ratings (date, type, energy, tasks_completed, xp_earned, note)
		VALUES (?, ?, ?, ?, ?, ?)`,
		domain.DateKey(r.Date), string(r.Type), r.Energy,
		r.TasksCompleted, r.XPEarned, r.Note,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDayAlreadyRated
		}
		return fmt.Errorf("insert day rating: %w", err)
	}
	return nil
}

// GetDayRating loads the rating for one calendar date, if any.
func (d *DB) GetDayRating(day time.Time) (domain.DayRating, bool, error) {
	row := d.db.QueryRow(`
		SELECT date, type, energy, tasks_completed, xp_earned, note
		FROM day_ratings WHERE date = ?`, domain.DateKey(day))
	r, err := scanDayRating(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DayRating{}, false, nil
	}
	if err != nil {
		return domain.DayRating{}, false, fmt.Errorf("get day rating: %w", err)
	}
	return r, true, nil
}

// ListDayRatings returns the most recent ratings, newest first.
// limit <= 0 returns the whole log.
func (d *DB) ListDayRatings(limit int) ([]domain.DayRating, error) {
	query := `
		SELECT date, type, energy, tasks_completed, xp_earned, note
		FROM day_ratings ORDER BY date DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list day ratings: %w", err)
	}
	defer rows.Close()

	var ratings []domain.DayRating
	for rows.Next() {
		r, err := scanDayRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}

func scanDayRating(row rowScanner) (domain.DayRating, error) {
	var (
		r          domain.DayRating
		date, typ  string
	)
	if err := row.Scan(&date, &typ, &r.Energy, &r.TasksCompleted, &r.XPEarned, &r.Note); err != nil {
		return r, err
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return r, fmt.Errorf("parse day rating date: %w", err)
	}
	r.Date = parsed
	r.Type = domain.DayType(typ)
	return r, nil
}

// isUniqueViolation detects a primary-key conflict from the driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
