package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CountChainIncomplete returns how many tasks in a chain are not yet
// completed. Zero means the chain is done.
func (d *DB) CountChainIncomplete(chainID uuid.UUID) (int, error) {
	var n int
	err := d.db.QueryRow(`
		SELECT COUNT(*) FROM tasks
		WHERE chain_id = ? AND status != 'completed'`, chainID.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count chain incomplete: %w", err)
	}
	return n, nil
}

// ProductivityPattern derives the most productive completion hour and
// weekday from the task history. Best-effort: with no completions it
// returns zero values and ok=false.
func (d *DB) ProductivityPattern() (hour int, day time.Weekday, ok bool, err error) {
	row := d.db.QueryRow(`
		SELECT CAST(strftime('%H', completed_at, 'unixepoch') AS INTEGER) AS h,
			COUNT(*) AS n
		FROM tasks WHERE status = 'completed' AND completed_at IS NOT NULL
		GROUP BY h ORDER BY n DESC, h LIMIT 1`)
	if scanErr := row.Scan(&hour, new(int)); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return 0, 0, false, nil
		}
		return 0, 0, false, fmt.Errorf("productivity hour: %w", scanErr)
	}

	var weekday int
	row = d.db.QueryRow(`
		SELECT CAST(strftime('%w', completed_at, 'unixepoch') AS INTEGER) AS w,
			COUNT(*) AS n
		FROM tasks WHERE status = 'completed' AND completed_at IS NOT NULL
		GROUP BY w ORDER BY n DESC, w LIMIT 1`)
	if scanErr := row.Scan(&weekday, new(int)); scanErr != nil {
		return 0, 0, false, fmt.Errorf("productivity day: %w", scanErr)
	}
	return hour, time.Weekday(weekday), true, nil
}
