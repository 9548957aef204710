package config

import "math"

// Difficulty tiers. Every PointsPerLevel points of score raise the level by
// one until MaxLevel. From ExtremeLevel on, speed and spawn rate jump
// instead of growing gradually.
const (
	PointsPerLevel = 5
	MaxLevel       = 10
	ExtremeLevel   = 5
)

// LevelFor returns the difficulty level for a score: 1 for [0,5), 2 for
// [5,10), and so on up to MaxLevel at 45 and above.
func LevelFor(score int) int {
	if score < 0 {
		return 1
	}
	level := score/PointsPerLevel + 1
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// SpeedMultiplierFor returns the fall speed factor for a level.
//
//	level 1      1.0
//	levels 2-4   1.0 + 0.3 per level above 1
//	level 5      2.5
//	levels 6+    2.5 + 0.5 per level above 5
//
// Values are computed in tenths so the results are the nearest float64 to
// the decimal figures above.
func SpeedMultiplierFor(level int) float64 {
	switch {
	case level <= 1:
		return 1.0
	case level < ExtremeLevel:
		return float64(10+3*(level-1)) / 10
	case level == ExtremeLevel:
		return 2.5
	default:
		return float64(25+5*(level-ExtremeLevel)) / 10
	}
}

// SpawnIntervalFor returns the number of ticks between two spawns at a level.
// Levels below ExtremeLevel shrink the interval with the square root of the
// level (60, 42, 34, 30); from ExtremeLevel on the floor drops to 5 ticks.
func SpawnIntervalFor(level int) int {
	if level < 1 {
		level = 1
	}
	if level < ExtremeLevel {
		return max(10, int(math.Floor(60/math.Sqrt(float64(level)))))
	}
	return max(5, 20/level)
}

// SpeedBonusPercent returns how much faster than level 1 the balls fall, in
// whole percent, as announced by the level-up banner.
func SpeedBonusPercent(level int) int {
	return int(math.Round((SpeedMultiplierFor(level) - 1) * 100))
}

// IsExtreme reports whether a level is past the difficulty cliff.
func IsExtreme(level int) bool {
	return level >= ExtremeLevel
}
