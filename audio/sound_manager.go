// Package audio synthesizes the game's sound effects and background melody
// and plays them through the system speaker when one is available.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
	"github.com/snakearcade/engine/rules"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultSFXVolume and DefaultBGMVolume are the starting gains.
	DefaultSFXVolume = 0.3
	DefaultBGMVolume = 0.15
)

// output is the device the mixer plays through.
type output struct {
	init   func(rate beep.SampleRate, mixer beep.Streamer) error
	lock   func()
	unlock func()
}

var speakerOutput = output{
	init: func(rate beep.SampleRate, mixer beep.Streamer) error {
		if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
			return err
		}
		speaker.Play(mixer)
		return nil
	},
	lock:   speaker.Lock,
	unlock: speaker.Unlock,
}

// SoundManager manages all game audio. It receives session notifications
// and turns them into sounds; the speaker is opened on the first sound and a
// failure to open it silently disables playback.
type SoundManager struct {
	mu          sync.Mutex
	out         output
	mixer       *beep.Mixer
	bgm         *beep.Ctrl
	bgmVolume   *effects.Volume
	sfx         float64
	bgmLevel    float64
	muted       bool
	initialized bool
	failed      bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		out:      speakerOutput,
		mixer:    &beep.Mixer{},
		sfx:      DefaultSFXVolume,
		bgmLevel: DefaultBGMVolume,
	}
}

// ready opens the output on first use. Callers hold sm.mu.
func (sm *SoundManager) ready() bool {
	if sm.initialized {
		return true
	}
	if sm.failed {
		return false
	}
	if err := sm.out.init(sampleRate, sm.mixer); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
		sm.failed = true
		return false
	}
	sm.initialized = true
	return true
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted || !sm.ready() {
		return
	}
	sm.out.lock()
	sm.mixer.Add(newVolume(s, sm.sfx))
	sm.out.unlock()
}

// OnFoodEaten plays the eat chirp, or the arpeggio for rare food.
func (sm *SoundManager) OnFoodEaten(category rules.FoodCategory) {
	if category.Rare() {
		sm.play(CreateRareSound(sampleRate))
		return
	}
	sm.play(CreateEatSound(sampleRate))
}

// OnLevelUp plays the level up fanfare.
func (sm *SoundManager) OnLevelUp(level int) {
	sm.play(CreateLevelUpSound(sampleRate))
}

// OnGameOver stops the melody and plays the game over line.
func (sm *SoundManager) OnGameOver() {
	sm.StopBGM()
	sm.play(CreateGameOverSound(sampleRate))
}

// OnSessionStart starts the melody.
func (sm *SoundManager) OnSessionStart() { sm.StartBGM() }

// OnSessionResume starts the melody again.
func (sm *SoundManager) OnSessionResume() { sm.StartBGM() }

// OnSessionPause stops the melody.
func (sm *SoundManager) OnSessionPause() { sm.StopBGM() }

// StartBGM starts the background melody unless it is already playing.
func (sm *SoundManager) StartBGM() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted || !sm.ready() {
		return
	}
	if sm.bgm != nil && !sm.bgm.Paused {
		return
	}

	sm.out.lock()
	defer sm.out.unlock()
	if sm.bgm != nil {
		sm.bgm.Paused = false
		return
	}
	sm.bgm = &beep.Ctrl{Streamer: CreateMelodyLoop(sampleRate)}
	sm.bgmVolume = newVolume(sm.bgm, sm.bgmLevel)
	sm.mixer.Add(sm.bgmVolume)
}

// StopBGM pauses the background melody.
func (sm *SoundManager) StopBGM() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.bgm == nil {
		return
	}
	sm.out.lock()
	sm.bgm.Paused = true
	sm.out.unlock()
}

// BGMPlaying reports whether the melody is audible.
func (sm *SoundManager) BGMPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.bgm != nil && !sm.bgm.Paused
}

// SetSFXVolume sets the gain of sounds played from now on, in [0,1].
func (sm *SoundManager) SetSFXVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sfx = clamp(v)
}

// SetBGMVolume sets the melody gain, in [0,1].
func (sm *SoundManager) SetBGMVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.bgmLevel = clamp(v)
	if sm.bgmVolume == nil {
		return
	}
	sm.out.lock()
	setVolume(sm.bgmVolume, sm.bgmLevel)
	sm.out.unlock()
}

// SetMuted turns all sound off or back on. Muting stops the melody; it
// starts again on the next session start or resume.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()

	if muted {
		sm.StopBGM()
	}
}

// ToggleMute flips the mute state and returns the new one.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()

	sm.SetMuted(muted)
	return muted
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.lock()
	if sm.bgm != nil {
		sm.bgm.Paused = true
	}
	sm.mixer.Clear()
	sm.out.unlock()
	sm.bgm = nil
	sm.bgmVolume = nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
