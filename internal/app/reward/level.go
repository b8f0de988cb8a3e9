package reward

// levelThresholds is the fixed ascending level table: levelThresholds[i]
// is the minimum total XP for level i+1. Ten levels, the last is uncapped.
var levelThresholds = []int{0, 100, 250, 500, 1000, 2000, 4000, 8000, 16000, 32000}

// MaxLevel is the highest reachable level.
const MaxLevel = 10

// LevelForXP returns the level implied by a total XP amount (1–10).
func LevelForXP(totalXP int) int {
	level := 1
	for i := 1; i < len(levelThresholds); i++ {
		if totalXP >= levelThresholds[i] {
			level = i + 1
		}
	}
	return level
}

// XPForLevel returns the minimum total XP required for a level.
// Levels outside 1–10 are clamped.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelThresholds[level-1]
}

// XPToNextLevel returns the XP still needed to reach the next level,
// or 0 at max level.
func XPToNextLevel(totalXP int) int {
	level := LevelForXP(totalXP)
	if level >= MaxLevel {
		return 0
	}
	return XPForLevel(level+1) - totalXP
}
