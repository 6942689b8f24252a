package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSaw
)

// oscillator generates a raw wave, optionally sweeping its frequency
// exponentially from freq to sweepTo over sweep.
type oscillator struct {
	freq     float64
	sweepTo  float64
	sweep    int
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to to over sweep, then
// holding to until duration.
func NewSweep(freq, to float64, sweep, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweepTo:  to,
		sweep:    rate.N(sweep),
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) frequency() float64 {
	if o.sweep <= 0 || o.freq == o.sweepTo {
		return o.sweepTo
	}
	p := math.Min(float64(o.position)/float64(o.sweep), 1)
	return o.freq * math.Pow(o.sweepTo/o.freq, p)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Release curves for an envelope.
type Release int

const (
	// ReleaseExp decays exponentially to 1% of the peak by the end.
	ReleaseExp Release = iota
	// ReleaseLinear ramps linearly to silence by the end.
	ReleaseLinear
)

// envelope ramps a stream linearly up to peak over attack, then releases it
// until total.
type envelope struct {
	streamer beep.Streamer
	peak     float64
	release  Release
	position int
	attack   int
	total    int
}

// NewEnvelope shapes s to last duration.
func NewEnvelope(s beep.Streamer, peak float64, duration, attack time.Duration, release Release, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		peak:     peak,
		release:  release,
		attack:   rate.N(attack),
		total:    rate.N(duration),
	}
}

func (e *envelope) gain() float64 {
	if e.position < e.attack {
		return e.peak * float64(e.position) / float64(e.attack)
	}
	tail := e.total - e.attack
	if tail <= 0 {
		return e.peak
	}
	p := float64(e.position-e.attack) / float64(tail)
	if e.release == ReleaseLinear {
		return e.peak * (1 - p)
	}
	return e.peak * math.Pow(0.01, p)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. beep volumes are logarithmic, so a
// zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}

// note is one voice of an arpeggio.
type note struct {
	freq float64
	wave WaveType
}

// arpeggio starts each note stagger after the previous one and lets them
// ring over each other.
func arpeggio(notes []note, stagger, length, attack time.Duration, peak float64, release Release, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(notes))
	for i, n := range notes {
		osc := NewOscillator(n.freq, length, n.wave, rate)
		shaped := NewEnvelope(osc, peak, length, attack, release, rate)
		voices = append(voices, beep.Seq(beep.Silence(rate.N(time.Duration(i)*stagger)), shaped))
	}
	return beep.Mix(voices...)
}

// Sound effect generators

// CreateEatSound is a short rising chirp for common food.
func CreateEatSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(400, 600, 100*time.Millisecond, 150*time.Millisecond, WaveSine, rate)
	return NewEnvelope(osc, 0.3, 150*time.Millisecond, 0, ReleaseExp, rate)
}

// CreateRareSound is a bright major arpeggio for rare food.
func CreateRareSound(rate beep.SampleRate) beep.Streamer {
	notes := []note{{523.25, WaveSine}, {659.25, WaveSine}, {783.99, WaveSine}, {1046.50, WaveSine}}
	return arpeggio(notes, 80*time.Millisecond, 300*time.Millisecond, 20*time.Millisecond, 0.5, ReleaseExp, rate)
}

// CreateLevelUpSound climbs two octaves.
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	notes := []note{
		{523.25, WaveTriangle}, {659.25, WaveTriangle}, {783.99, WaveTriangle},
		{1046.50, WaveTriangle}, {1318.51, WaveTriangle},
	}
	return arpeggio(notes, 100*time.Millisecond, 300*time.Millisecond, 30*time.Millisecond, 0.4, ReleaseExp, rate)
}

// CreateGameOverSound is a falling sawtooth line.
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := []note{{392, WaveSaw}, {349.23, WaveSaw}, {329.63, WaveSaw}, {293.66, WaveSaw}, {261.63, WaveSaw}}
	return arpeggio(notes, 200*time.Millisecond, 400*time.Millisecond, 50*time.Millisecond, 0.3, ReleaseExp, rate)
}

// Melody is the background tune, one pass.
var Melody = []float64{523.25, 587.33, 659.25, 698.46, 783.99, 698.46, 659.25, 587.33}

// MelodyNote is the length of one melody note.
const MelodyNote = 300 * time.Millisecond

// CreateMelody plays Melody once.
func CreateMelody(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(Melody))
	for _, f := range Melody {
		osc := NewOscillator(f, MelodyNote, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, 0.3, MelodyNote, 50*time.Millisecond, ReleaseLinear, rate))
	}
	return beep.Seq(notes...)
}

// CreateMelodyLoop repeats the melody until it is paused or removed.
func CreateMelodyLoop(rate beep.SampleRate) beep.Streamer {
	return beep.Iterate(func() beep.Streamer { return CreateMelody(rate) })
}
