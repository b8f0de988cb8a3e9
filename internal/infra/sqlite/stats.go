package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// Stats live in a small KV table, one row per counter.

func (d *DB) getStat(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM stats WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get stat %s: %w", key, err)
	}
	return value, nil
}

func (d *DB) setStat(key, value string) error {
	_, err := d.db.Exec(`
		INSERT INTO stats (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set stat %s: %w", key, err)
	}
	return nil
}

// LoadStats reads the full UserStats snapshot. Missing keys read as zero.
func (d *DB) LoadStats() (domain.UserStats, error) {
	var stats domain.UserStats

	ints := map[string]*int{
		"total_xp":             &stats.TotalXP,
		"level":                &stats.Level,
		"current_streak":       &stats.CurrentStreak,
		"longest_streak":       &stats.LongestStreak,
		"tasks_completed":      &stats.TasksCompleted,
		"chains_completed":     &stats.ChainsCompleted,
		"perfect_days":         &stats.PerfectDays,
		"good_enough_days":     &stats.GoodEnoughDays,
		"zero_days":            &stats.ZeroDays,
		"most_productive_hour": &stats.MostProductiveHour,
	}
	for key, dst := range ints {
		v, err := d.getStat(key)
		if err != nil {
			return stats, err
		}
		if v != "" {
			*dst, _ = strconv.Atoi(v)
		}
	}

	if v, err := d.getStat("average_energy"); err != nil {
		return stats, err
	} else if v != "" {
		stats.AverageEnergy, _ = strconv.ParseFloat(v, 64)
	}

	if v, err := d.getStat("most_productive_day"); err != nil {
		return stats, err
	} else if v != "" {
		n, _ := strconv.Atoi(v)
		stats.MostProductiveDay = time.Weekday(n)
	}

	if stats.Level < 1 {
		stats.Level = 1
	}
	return stats, nil
}

// SaveStats writes the full UserStats snapshot.
func (d *DB) SaveStats(stats domain.UserStats) error {
	pairs := map[string]string{
		"total_xp":             strconv.Itoa(stats.TotalXP),
		"level":                strconv.Itoa(stats.Level),
		"current_streak":       strconv.Itoa(stats.CurrentStreak),
		"longest_streak":       strconv.Itoa(stats.LongestStreak),
		"tasks_completed":      strconv.Itoa(stats.TasksCompleted),
		"chains_completed":     strconv.Itoa(stats.ChainsCompleted),
		"perfect_days":         strconv.Itoa(stats.PerfectDays),
		"good_enough_days":     strconv.Itoa(stats.GoodEnoughDays),
		"zero_days":            strconv.Itoa(stats.ZeroDays),
		"average_energy":       strconv.FormatFloat(stats.AverageEnergy, 'f', -1, 64),
		"most_productive_hour": strconv.Itoa(stats.MostProductiveHour),
		"most_productive_day":  strconv.Itoa(int(stats.MostProductiveDay)),
	}
	for k, v := range pairs {
		if err := d.setStat(k, v); err != nil {
			return err
		}
	}
	return nil
}
