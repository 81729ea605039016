package game

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the tunables of a session. DefaultConfig returns the reference
// values; hosts override individual fields from flags.
type Config struct {
	Columns int
	Rows    int

	InitialFallSpeed time.Duration
	MinFallSpeed     time.Duration
	// SpeedStep is subtracted from the fall speed for every SpeedInterval points.
	SpeedStep     time.Duration
	SpeedInterval int
	PointsPerRow  int

	ClearDuration time.Duration
	FlashPeriod   time.Duration

	// Seed feeds the piece generator. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the reference 10x20 configuration.
func DefaultConfig() Config {
	return Config{
		Columns:          10,
		Rows:             20,
		InitialFallSpeed: 500 * time.Millisecond,
		MinFallSpeed:     100 * time.Millisecond,
		SpeedStep:        50 * time.Millisecond,
		SpeedInterval:    500,
		PointsPerRow:     100,
		ClearDuration:    450 * time.Millisecond,
		FlashPeriod:      150 * time.Millisecond,
	}
}

// Validate reports the first setting that would make a session unplayable.
func (c Config) Validate() error {
	switch {
	case c.Columns < 4 || c.Rows < 4:
		return fmt.Errorf("grid %dx%d is smaller than a tetromino", c.Columns, c.Rows)
	case c.InitialFallSpeed <= 0 || c.MinFallSpeed <= 0:
		return errors.New("fall speeds must be positive")
	case c.MinFallSpeed > c.InitialFallSpeed:
		return fmt.Errorf("minimum fall speed %s exceeds initial %s", c.MinFallSpeed, c.InitialFallSpeed)
	case c.SpeedStep < 0 || c.SpeedInterval <= 0:
		return errors.New("speed step must be non-negative and interval positive")
	case c.PointsPerRow < 0:
		return errors.New("points per row must be non-negative")
	case c.ClearDuration < 0 || c.FlashPeriod <= 0:
		return errors.New("clear duration must be non-negative and flash period positive")
	}
	return nil
}

// SpawnColumn is the anchor column new pieces appear at.
func (c Config) SpawnColumn() int {
	return (c.Columns - 4) / 2
}

// FallSpeedFor returns the auto-fall interval for a score.
func (c Config) FallSpeedFor(score int) time.Duration {
	speed := c.InitialFallSpeed - time.Duration(score/c.SpeedInterval)*c.SpeedStep
	return max(c.MinFallSpeed, speed)
}
