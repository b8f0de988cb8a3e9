package sqlite

import (
	"fmt"
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// IsAchievementUnlocked reports whether an unlock record exists.
func (d *DB) IsAchievementUnlocked(id string) (bool, error) {
	var n int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM achievements WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check achievement %s: %w", id, err)
	}
	return n > 0, nil
}

// UnlockAchievement records an unlock once. Returns true when the record
// was newly created, false when it already existed.
func (d *DB) UnlockAchievement(id string, at time.Time) (bool, error) {
	res, err := d.db.Exec(`
		INSERT INTO achievements (id, unlocked_at, celebrated)
		VALUES (?, ?, 0)
		ON CONFLICT(id) DO NOTHING`, id, at.Unix())
	if err != nil {
		return false, fmt.Errorf("unlock achievement %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListUnlockedAchievements returns all unlock records, oldest first.
func (d *DB) ListUnlockedAchievements() ([]domain.UnlockedAchievement, error) {
	rows, err := d.db.Query(`
		SELECT id, unlocked_at, celebrated FROM achievements ORDER BY unlocked_at`)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var unlocked []domain.UnlockedAchievement
	for rows.Next() {
		var (
			u  domain.UnlockedAchievement
			ts int64
		)
		if err := rows.Scan(&u.ID, &ts, &u.Celebrated); err != nil {
			return nil, err
		}
		u.UnlockedAt = time.Unix(ts, 0).UTC()
		unlocked = append(unlocked, u)
	}
	return unlocked, rows.Err()
}

// MarkAchievementCelebrated flips the celebrated flag.
func (d *DB) MarkAchievementCelebrated(id string) error {
	res, err := d.db.Exec(`UPDATE achievements SET celebrated = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("celebrate achievement %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAchievementNotFound
	}
	return nil
}
