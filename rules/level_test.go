package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProgress(t *testing.T) {
	p := NewProgress(Easy)
	require.Equal(t, Progress{Level: 1, Speed: 200 * time.Millisecond}, p)
	require.Equal(t, 50, p.Required())
	require.Equal(t, 0.0, p.Fraction())
}

func TestAwardWithoutLevelUp(t *testing.T) {
	p, gained := NewProgress(Normal).Award(20, Normal)
	require.Equal(t, 0, gained)
	require.Equal(t, 20, p.Score)
	require.Equal(t, 20, p.LevelScore)
	require.Equal(t, 1, p.Level)
	require.Equal(t, Normal.BaseSpeed, p.Speed)
	require.InDelta(t, 0.4, p.Fraction(), 1e-9)
}

func TestAwardSingleLevelUp(t *testing.T) {
	p, gained := NewProgress(Normal).Award(50, Normal)
	require.Equal(t, 1, gained)
	require.Equal(t, 2, p.Level)
	require.Equal(t, 0, p.LevelScore)
	require.Equal(t, 142500*time.Microsecond, p.Speed)
	require.Equal(t, 100, p.Required())
}

func TestAwardMultipleLevelUps(t *testing.T) {
	p, gained := NewProgress(Easy).Award(120, Easy)
	require.Equal(t, 2, gained)
	require.Equal(t, 3, p.Level)
	require.Equal(t, 20, p.LevelScore)
	require.Equal(t, 120, p.Score)

	require.Equal(t, NextSpeed(NextSpeed(Easy.BaseSpeed, Easy), Easy), p.Speed)
	require.InDelta(t, float64(188180*time.Microsecond), float64(p.Speed), float64(time.Microsecond))
}

func TestAwardAccumulates(t *testing.T) {
	p := NewProgress(Hard)
	var gained int
	for i := 0; i < 4; i++ {
		p, gained = p.Award(10, Hard)
		require.Equal(t, 0, gained)
	}
	p, gained = p.Award(10, Hard)
	require.Equal(t, 1, gained)
	require.Equal(t, 2, p.Level)
	require.Equal(t, 0, p.LevelScore)
	require.Equal(t, 50, p.Score)
}

func TestNextSpeedFloorsAtMinSpeed(t *testing.T) {
	require.Equal(t, MinSpeed, NextSpeed(52*time.Millisecond, Hard))
	require.Equal(t, MinSpeed, NextSpeed(MinSpeed, Easy))

	speed := Hard.BaseSpeed
	for i := 0; i < 100; i++ {
		speed = NextSpeed(speed, Hard)
	}
	require.Equal(t, MinSpeed, speed)
}

func TestFractionIsCapped(t *testing.T) {
	p := Progress{Level: 1, LevelScore: 80}
	require.Equal(t, 1.0, p.Fraction())
}
