// Package tracker is the state container around the Momentum engine: it
// owns the database and serializes every mutation, so the pure engine
// components (suggest, reward, streak, day) never interleave against the
// same user's data. All engine calls take explicit snapshots and return
// values; the tracker is the only place that reads and writes state.
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/momentum-hq/momentum/internal/app/achievement"
	"github.com/momentum-hq/momentum/internal/app/day"
	"github.com/momentum-hq/momentum/internal/app/reward"
	"github.com/momentum-hq/momentum/internal/app/streak"
	"github.com/momentum-hq/momentum/internal/app/suggest"
	"github.com/momentum-hq/momentum/internal/domain"
	"github.com/momentum-hq/momentum/internal/infra/metrics"
	"github.com/momentum-hq/momentum/internal/infra/sqlite"
)

// Options tune the engagement behavior.
type Options struct {
	// MinimumTasksPerDay is the qualification threshold for the daily
	// activity streak.
	MinimumTasksPerDay int

	// MVD lists the task IDs whose completion keeps a day from zero.
	MVD domain.MinimumViableDay

	// SuggestionLimit caps ranked suggestion lists.
	SuggestionLimit int
}

// DefaultOptions returns the stock engagement tuning.
func DefaultOptions() Options {
	return Options{
		MinimumTasksPerDay: 1,
		SuggestionLimit:    5,
	}
}

// Tracker serializes all state mutations for one user.
type Tracker struct {
	mu    sync.Mutex
	db    *sqlite.DB
	clock domain.Clock
	opts  Options

	calc         *reward.Calculator
	suggester    *suggest.Suggester
	achievements *achievement.Service
}

// New creates a tracker over an open database.
func New(db *sqlite.DB, clock domain.Clock, rand domain.Rand, opts Options) *Tracker {
	if opts.MinimumTasksPerDay < 1 {
		opts.MinimumTasksPerDay = 1
	}
	if opts.SuggestionLimit < 1 {
		opts.SuggestionLimit = 5
	}
	return &Tracker{
		db:           db,
		clock:        clock,
		opts:         opts,
		calc:         reward.NewCalculator(clock, rand),
		suggester:    suggest.New(rand),
		achievements: achievement.NewService(db, clock),
	}
}

// TaskInput is the caller-supplied shape of a new task.
type TaskInput struct {
	Title            string
	Priority         domain.Priority
	EstimatedMinutes int
	Energy           int
	DueAt            *time.Time
	ScheduledAt      *time.Time
	Contexts         []domain.ContextTag
	Tags             []string
	ChainID          *uuid.UUID
	ChainOrder       int
	TriggersID       *uuid.UUID
	TriggeredByID    *uuid.UUID
}

// AddTask creates a pending task. BaseXP is derived from the priority
// here, once, and never recalculated.
func (tr *Tracker) AddTask(in TaskInput) (domain.Task, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if in.Title == "" {
		return domain.Task{}, fmt.Errorf("empty title: %w", domain.ErrInvalidArgument)
	}
	if in.Energy < 1 || in.Energy > 5 {
		return domain.Task{}, fmt.Errorf("energy %d: %w", in.Energy, domain.ErrInvalidArgument)
	}
	if in.Priority.Rank() == 0 {
		return domain.Task{}, fmt.Errorf("priority %q: %w", in.Priority, domain.ErrInvalidArgument)
	}
	if in.EstimatedMinutes <= 0 {
		in.EstimatedMinutes = 15
	}

	task := domain.NewTask(in.Title, in.Priority, in.EstimatedMinutes, in.Energy, tr.clock.Now())
	task.DueAt = in.DueAt
	task.ScheduledAt = in.ScheduledAt
	task.Contexts = in.Contexts
	task.Tags = in.Tags
	task.ChainID = in.ChainID
	task.ChainOrder = in.ChainOrder
	task.TriggersID = in.TriggersID
	task.TriggeredByID = in.TriggeredByID

	if err := tr.db.InsertTask(task); err != nil {
		return domain.Task{}, err
	}
	metrics.TasksPending.Inc()
	return task, nil
}

// StartTask moves a pending task to in-progress.
func (tr *Tracker) StartTask(id uuid.UUID) (domain.Task, error) {
	return tr.transition(id, domain.StatusPending, domain.StatusInProgress)
}

// SkipTask marks a task skipped; skipped tasks do not count as planned
// when the day is evaluated.
func (tr *Tracker) SkipTask(id uuid.UUID) (domain.Task, error) {
	task, err := tr.transition(id, "", domain.StatusSkipped)
	if err == nil {
		metrics.TasksPending.Dec()
	}
	return task, err
}

// DeferTask pushes a task off to later.
func (tr *Tracker) DeferTask(id uuid.UUID) (domain.Task, error) {
	task, err := tr.transition(id, "", domain.StatusDeferred)
	if err == nil {
		metrics.TasksPending.Dec()
	}
	return task, err
}

// transition applies a status change. An empty "from" permits any
// non-terminal source state.
func (tr *Tracker) transition(id uuid.UUID, from, to domain.TaskStatus) (domain.Task, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	task, err := tr.db.GetTask(id)
	if err != nil {
		return domain.Task{}, err
	}
	if from != "" && task.Status != from {
		return domain.Task{}, fmt.Errorf("task is %s, not %s: %w", task.Status, from, domain.ErrInvalidState)
	}
	if from == "" && !task.Completable() {
		return domain.Task{}, fmt.Errorf("task is %s: %w", task.Status, domain.ErrInvalidState)
	}
	task.Status = to
	if err := tr.db.UpdateTask(task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// CompleteTask finishes a task: stamps CompletedAt and ActualMinutes
// exactly once, runs the reward calculator, applies the XP and loot
// deltas, and checks achievements. Completing a task that is not pending
// or in progress is a caller programming error.
func (tr *Tracker) CompleteTask(id uuid.UUID, actualMinutes *int) (domain.Reward, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	task, err := tr.db.GetTask(id)
	if err != nil {
		return domain.Reward{}, err
	}
	if !task.Completable() {
		return domain.Reward{}, fmt.Errorf("task is %s: %w", task.Status, domain.ErrInvalidState)
	}

	now := tr.clock.Now()
	task.Status = domain.StatusCompleted
	task.CompletedAt = &now
	task.ActualMinutes = actualMinutes

	stats, err := tr.db.LoadStats()
	if err != nil {
		return domain.Reward{}, err
	}
	daily, err := tr.db.GetStreak(domain.StreakDailyActivity)
	if err != nil {
		return domain.Reward{}, err
	}

	rw := tr.calc.CalculateXP(task, stats, &daily)

	stats.TotalXP += rw.Total
	stats.TasksCompleted++
	stats.AverageEnergy = runningAverage(stats.AverageEnergy, stats.TasksCompleted, task.Energy)
	metrics.TasksCompleted.WithLabelValues(string(task.Priority)).Inc()
	metrics.TasksPending.Dec()
	metrics.XPAwarded.WithLabelValues("base").Add(float64(rw.Base))
	metrics.XPAwarded.WithLabelValues("bonus").Add(float64(rw.Total - rw.Base))

	// Loot is informational from the calculator's side; applying the
	// grant is our job.
	if rw.Loot != nil {
		metrics.LootDrops.WithLabelValues(string(rw.Loot.Rarity)).Inc()
		switch rw.Loot.Type {
		case domain.LootStreakShield:
			daily = streak.AddShield(daily, rw.Loot.Value)
			if err := tr.db.SaveStreak(daily); err != nil {
				return domain.Reward{}, err
			}
		case domain.LootXPBonus:
			stats.TotalXP += rw.Loot.Value
			metrics.XPAwarded.WithLabelValues("loot").Add(float64(rw.Loot.Value))
		}
	}

	stats.Level = reward.LevelForXP(stats.TotalXP)
	if rw.LevelUp != nil {
		metrics.LevelUps.Inc()
	}

	if err := tr.db.UpdateTask(task); err != nil {
		return domain.Reward{}, err
	}

	if err := tr.applyChainEffects(task, &stats); err != nil {
		return domain.Reward{}, err
	}

	stats.CurrentStreak = daily.CurrentCount
	stats.LongestStreak = daily.LongestCount
	if err := tr.db.SaveStats(stats); err != nil {
		return domain.Reward{}, err
	}
	if err := tr.awardAchievements(stats); err != nil {
		return domain.Reward{}, err
	}
	return rw, nil
}

// applyChainEffects activates the next link and credits finished chains.
// Triggered tasks are created deferred; completing their trigger promotes
// them to pending so they surface in suggestions.
func (tr *Tracker) applyChainEffects(task domain.Task, stats *domain.UserStats) error {
	if task.TriggersID != nil {
		next, err := tr.db.GetTask(*task.TriggersID)
		if err == nil && next.Status == domain.StatusDeferred {
			next.Status = domain.StatusPending
			if err := tr.db.UpdateTask(next); err != nil {
				return err
			}
			metrics.TasksPending.Inc()
		}
	}
	if task.ChainID == nil {
		return nil
	}
	remaining, err := tr.db.CountChainIncomplete(*task.ChainID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		stats.ChainsCompleted++
	}
	return nil
}

// awardAchievements runs the idempotent catalog check and applies the XP
// rewards of any new unlocks.
func (tr *Tracker) awardAchievements(stats domain.UserStats) error {
	newly, err := tr.achievements.CheckAndUnlock(stats)
	if err != nil {
		return err
	}
	if len(newly) == 0 {
		return nil
	}
	for _, def := range newly {
		stats.TotalXP += def.RewardXP
		metrics.XPAwarded.WithLabelValues("achievement").Add(float64(def.RewardXP))
	}
	stats.Level = reward.LevelForXP(stats.TotalXP)
	return tr.db.SaveStats(stats)
}

// Suggest refreshes the context's time-derived fields and ranks the
// pending backlog. The user-reported fields (energy, mood, location,
// available minutes) come in from the caller untouched.
func (tr *Tracker) Suggest(ctx domain.UserContext, limit int) ([]domain.Suggestion, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if limit <= 0 {
		limit = tr.opts.SuggestionLimit
	}
	ctx = ctx.Refresh(tr.clock.Now())

	pending, err := tr.db.ListTasks(domain.StatusPending)
	if err != nil {
		return nil, err
	}
	suggestions, err := tr.suggester.Rank(pending, ctx, limit)
	if err != nil {
		return nil, err
	}
	metrics.SuggestionsServed.Inc()
	return suggestions, nil
}

// CloseDay evaluates today, appends it to the day log, and advances the
// daily streak — the once-per-day-boundary mutation. Closing an already
// rated day returns ErrDayAlreadyRated.
func (tr *Tracker) CloseDay(note string, energy int) (domain.DayEvaluation, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	now := tr.clock.Now()
	if _, rated, err := tr.db.GetDayRating(now); err != nil {
		return domain.DayEvaluation{}, err
	} else if rated {
		return domain.DayEvaluation{}, domain.ErrDayAlreadyRated
	}

	tasks, err := tr.db.ListTasksForDay(now)
	if err != nil {
		return domain.DayEvaluation{}, err
	}

	mvd := &tr.opts.MVD
	if len(tr.opts.MVD.TaskIDs) == 0 {
		mvd = nil
	}
	eval := day.Evaluate(tasks, mvd)

	daily, err := tr.db.GetStreak(domain.StreakDailyActivity)
	if err != nil {
		return domain.DayEvaluation{}, err
	}
	before := daily
	daily, err = streak.Advance(daily, eval.TasksCompleted, tr.opts.MinimumTasksPerDay, now)
	if err != nil {
		return domain.DayEvaluation{}, err
	}
	if daily.ShieldsUsed > before.ShieldsUsed {
		metrics.StreaksSavedByShield.Inc()
	}
	if daily.CurrentCount < before.CurrentCount {
		metrics.StreaksReset.Inc()
	}

	rating := domain.DayRating{
		Date:           now,
		Type:           eval.Type,
		Energy:         energy,
		TasksCompleted: eval.TasksCompleted,
		XPEarned:       eval.XPEarned,
		Note:           note,
	}
	if err := tr.db.InsertDayRating(rating); err != nil {
		return domain.DayEvaluation{}, err
	}
	if err := tr.db.SaveStreak(daily); err != nil {
		return domain.DayEvaluation{}, err
	}
	metrics.DaysRated.WithLabelValues(string(eval.Type)).Inc()

	stats, err := tr.db.LoadStats()
	if err != nil {
		return domain.DayEvaluation{}, err
	}
	switch eval.Type {
	case domain.DayPerfect:
		stats.PerfectDays++
	case domain.DayZero:
		stats.ZeroDays++
	default:
		stats.GoodEnoughDays++
	}
	stats.CurrentStreak = daily.CurrentCount
	stats.LongestStreak = daily.LongestCount
	if err := tr.db.SaveStats(stats); err != nil {
		return domain.DayEvaluation{}, err
	}
	if err := tr.awardAchievements(stats); err != nil {
		return domain.DayEvaluation{}, err
	}
	return eval, nil
}

// WelcomeBack reports the current gap and its re-engagement copy.
func (tr *Tracker) WelcomeBack() (domain.RecoveryMessage, int, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	daily, err := tr.db.GetStreak(domain.StreakDailyActivity)
	if err != nil {
		return domain.RecoveryMessage{}, 0, err
	}

	daysMissed := 0
	if !daily.LastActivity.IsZero() {
		if gap := domain.DaysBetween(daily.LastActivity, tr.clock.Now()); gap > 1 {
			daysMissed = gap - 1
		}
	}
	return day.WelcomeBack(daysMissed), daysMissed, nil
}

// AnalyzeStreak recomputes the streak from the day log.
func (tr *Tracker) AnalyzeStreak() (domain.StreakAnalysis, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	ratings, err := tr.db.ListDayRatings(0)
	if err != nil {
		return domain.StreakAnalysis{}, err
	}
	daily, err := tr.db.GetStreak(domain.StreakDailyActivity)
	if err != nil {
		return domain.StreakAnalysis{}, err
	}
	return day.AnalyzeStreak(ratings, daily.ShieldsAvailable, tr.clock.Now()), nil
}

// ─── Accessors ──────────────────────────────────────────────────────────────

// Stats returns the cumulative counters with derived productivity fields
// filled in from the task history.
func (tr *Tracker) Stats() (domain.UserStats, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	stats, err := tr.db.LoadStats()
	if err != nil {
		return stats, err
	}
	if hour, weekday, ok, err := tr.db.ProductivityPattern(); err != nil {
		return stats, err
	} else if ok {
		stats.MostProductiveHour = hour
		stats.MostProductiveDay = weekday
	}
	return stats, nil
}

// Streak returns one streak record.
func (tr *Tracker) Streak(kind domain.StreakKind) (domain.Streak, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.db.GetStreak(kind)
}

// Tasks lists tasks by status ("" = all).
func (tr *Tracker) Tasks(status domain.TaskStatus) ([]domain.Task, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.db.ListTasks(status)
}

// Task loads one task.
func (tr *Tracker) Task(id uuid.UUID) (domain.Task, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.db.GetTask(id)
}

// DayLog returns the most recent day ratings, newest first.
func (tr *Tracker) DayLog(limit int) ([]domain.DayRating, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.db.ListDayRatings(limit)
}

// Achievements exposes the achievement service.
func (tr *Tracker) Achievements() *achievement.Service {
	return tr.achievements
}

// runningAverage folds one more sample into a running mean.
func runningAverage(avg float64, n, sample int) float64 {
	if n <= 0 {
		return float64(sample)
	}
	return (avg*float64(n-1) + float64(sample)) / float64(n)
}
