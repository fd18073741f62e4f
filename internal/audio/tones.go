package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a fixed-length oscillator with a linear attack and release.
type tone struct {
	freq      float64
	phase     float64
	wave      Wave
	rate      beep.SampleRate
	pos       int
	total     int
	attack    int
	release   int
	amplitude float64
}

// newTone creates a tone of the given duration. Attack and release are
// clamped to fit inside it.
func newTone(rate beep.SampleRate, freq float64, d time.Duration, wave Wave, attack, release time.Duration) *tone {
	t := &tone{
		freq:      freq,
		wave:      wave,
		rate:      rate,
		total:     rate.N(d),
		attack:    rate.N(attack),
		release:   rate.N(release),
		amplitude: 0.8,
	}
	if t.attack+t.release > t.total {
		t.attack = t.total / 2
		t.release = t.total - t.attack
	}
	return t
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= t.amplitude * t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if rem := t.total - t.pos; t.release > 0 && rem < t.release {
		return float64(rem) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// withVolume scales a stream linearly. Zero or negative volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// checkpointSound is a short rising two-note chirp with a faint overtone.
func checkpointSound(rate beep.SampleRate, vol float64) beep.Streamer {
	low := newTone(rate, 880, 70*time.Millisecond, WaveSine, 5*time.Millisecond, 20*time.Millisecond)
	high := newTone(rate, 1320, 90*time.Millisecond, WaveSine, 5*time.Millisecond, 40*time.Millisecond)
	chirp := beep.Seq(low, high)

	overtone := beep.Streamer(beep.Silence(0))
	if sine, err := generators.SineTone(rate, 2640); err == nil {
		overtone = withVolume(beep.Take(rate.N(60*time.Millisecond), sine), 0.1)
	}
	return withVolume(beep.Mix(chirp, overtone), vol)
}

// loseSound is a falling square-wave buzz.
func loseSound(rate beep.SampleRate, vol float64) beep.Streamer {
	first := newTone(rate, 220, 120*time.Millisecond, WaveSquare, 5*time.Millisecond, 30*time.Millisecond)
	second := newTone(rate, 110, 200*time.Millisecond, WaveSquare, 5*time.Millisecond, 120*time.Millisecond)
	return withVolume(beep.Seq(first, second), vol*0.5)
}
