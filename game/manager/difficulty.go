package manager

import "time"

const (
	BaseSpeed     = 30
	MaxSpeed      = 60
	ScorePerLevel = 5
	ScorePerSpeed = 2
)

// Level is 1 + score/5.
func Level(score int) int {
	return 1 + score/ScorePerLevel
}

// Speed is the tick rate in ticks per second, capped at MaxSpeed.
func Speed(score int) int {
	return min(MaxSpeed, BaseSpeed+score/ScorePerSpeed)
}

// TickInterval is the duration of one tick at the current speed.
func TickInterval(score int) time.Duration {
	return time.Second / time.Duration(Speed(score))
}
