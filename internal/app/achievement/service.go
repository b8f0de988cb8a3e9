package achievement

import (
	"fmt"
	"time"

	"github.com/momentum-hq/momentum/internal/domain"
)

// Store persists unlock records. Implemented by the sqlite layer.
type Store interface {
	IsAchievementUnlocked(id string) (bool, error)
	UnlockAchievement(id string, at time.Time) (bool, error)
	ListUnlockedAchievements() ([]domain.UnlockedAchievement, error)
	MarkAchievementCelebrated(id string) error
}

// Service checks the catalog against stats snapshots and records unlocks.
type Service struct {
	store Store
	clock domain.Clock
	defs  []domain.AchievementDef
}

// NewService creates an achievement service over the full catalog.
func NewService(store Store, clock domain.Clock) *Service {
	return &Service{store: store, clock: clock, defs: Catalog()}
}

// CheckAndUnlock evaluates every achievement against the stats snapshot
// and returns the newly unlocked ones. Idempotent: already-unlocked
// achievements are skipped, and an unlock record is created exactly once.
func (s *Service) CheckAndUnlock(stats domain.UserStats) ([]domain.AchievementDef, error) {
	var newly []domain.AchievementDef
	for _, def := range s.defs {
		unlocked, err := s.store.IsAchievementUnlocked(def.ID)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", def.ID, err)
		}
		if unlocked {
			continue
		}
		if def.Predicate == nil || !def.Predicate(stats) {
			continue
		}
		isNew, err := s.store.UnlockAchievement(def.ID, s.clock.Now())
		if err != nil {
			return nil, fmt.Errorf("unlock %s: %w", def.ID, err)
		}
		if isNew {
			newly = append(newly, def)
		}
	}
	return newly, nil
}

// ListUnlocked returns all unlock records.
func (s *Service) ListUnlocked() ([]domain.UnlockedAchievement, error) {
	return s.store.ListUnlockedAchievements()
}

// Celebrate flips the celebrated flag — the single mutation an unlock
// record allows after creation.
func (s *Service) Celebrate(id string) error {
	return s.store.MarkAchievementCelebrated(id)
}

// Definitions returns the visible catalog plus any hidden entries the user
// has already unlocked.
func (s *Service) Definitions() ([]domain.AchievementDef, error) {
	var defs []domain.AchievementDef
	for _, def := range s.defs {
		if !def.Hidden {
			defs = append(defs, def)
			continue
		}
		unlocked, err := s.store.IsAchievementUnlocked(def.ID)
		if err != nil {
			return nil, err
		}
		if unlocked {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// TotalCount returns the catalog size.
func (s *Service) TotalCount() int { return len(s.defs) }
