package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/snakearcade/engine/rules"
	"github.com/stretchr/testify/require"
)

func testManager(initErr error) (*SoundManager, *int) {
	inits := 0
	sm := NewSoundManager()
	sm.out = output{
		init: func(beep.SampleRate, beep.Streamer) error {
			inits++
			return initErr
		},
		lock:   func() {},
		unlock: func() {},
	}
	return sm, &inits
}

func TestSoundManager_PlaysEffects(t *testing.T) {
	sm, inits := testManager(nil)
	sm.OnFoodEaten(rules.RedPacket)
	sm.OnFoodEaten(rules.Crown)
	sm.OnLevelUp(2)
	require.Equal(t, 3, sm.mixer.Len())
	require.Equal(t, 1, *inits)
}

func TestSoundManager_BGM(t *testing.T) {
	sm, _ := testManager(nil)
	sm.OnSessionStart()
	require.True(t, sm.BGMPlaying())
	sm.OnSessionStart()
	require.Equal(t, 1, sm.mixer.Len())

	sm.OnSessionPause()
	require.False(t, sm.BGMPlaying())
	sm.OnSessionResume()
	require.True(t, sm.BGMPlaying())
	require.Equal(t, 1, sm.mixer.Len())

	sm.OnGameOver()
	require.False(t, sm.BGMPlaying())
	require.Equal(t, 2, sm.mixer.Len())

	sm.SetBGMVolume(0)
	require.True(t, sm.bgmVolume.Silent)
}

func TestSoundManager_Mute(t *testing.T) {
	sm, _ := testManager(nil)
	sm.OnSessionStart()
	require.True(t, sm.ToggleMute())
	require.False(t, sm.BGMPlaying())

	sm.OnFoodEaten(rules.Coin)
	sm.OnSessionResume()
	require.False(t, sm.BGMPlaying())
	require.Equal(t, 1, sm.mixer.Len())

	require.False(t, sm.ToggleMute())
	sm.OnSessionResume()
	require.True(t, sm.BGMPlaying())
}

// Games keep running without a sound device.
func TestSoundManager_InitFailure(t *testing.T) {
	sm, inits := testManager(errors.New("no audio device"))
	sm.OnSessionStart()
	sm.OnFoodEaten(rules.Diamond)
	sm.OnLevelUp(3)
	sm.OnGameOver()
	sm.OnSessionPause()
	sm.Cleanup()

	require.Equal(t, 1, *inits)
	require.Equal(t, 0, sm.mixer.Len())
	require.False(t, sm.BGMPlaying())
}

func TestSoundManager_Volumes(t *testing.T) {
	sm, _ := testManager(nil)
	sm.SetSFXVolume(2)
	require.Equal(t, 1.0, sm.sfx)
	sm.SetSFXVolume(-1)
	require.Equal(t, 0.0, sm.sfx)
	sm.SetBGMVolume(0.5)
	require.Equal(t, 0.5, sm.bgmLevel)
}

func TestSoundManager_Cleanup(t *testing.T) {
	sm, _ := testManager(nil)
	sm.OnSessionStart()
	sm.OnFoodEaten(rules.Coin)
	sm.Cleanup()
	require.Equal(t, 0, sm.mixer.Len())
	require.False(t, sm.BGMPlaying())
}
