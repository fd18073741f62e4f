package audio

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream did not end")
	return total
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave Wave
		d    time.Duration
	}{
		{"sine", WaveSine, 100 * time.Millisecond},
		{"square", WaveSquare, 50 * time.Millisecond},
		{"tiny envelope", WaveSine, 2 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTone(rate, 440, tc.d, tc.wave, 5*time.Millisecond, 20*time.Millisecond)
			if got, want := drain(t, s), rate.N(tc.d); got != want {
				t.Errorf("streamed %d samples, expected %d", got, want)
			}
			if s.Err() != nil {
				t.Errorf("unexpected error: %v", s.Err())
			}
		})
	}
}

func TestToneEnvelopeStartsSilent(t *testing.T) {
	s := newTone(beep.SampleRate(44100), 440, 50*time.Millisecond, WaveSquare, 10*time.Millisecond, 10*time.Millisecond)
	buf := make([][2]float64, 1)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0 during attack", buf[0][0])
	}
}

func TestCueSoundsEnd(t *testing.T) {
	rate := beep.SampleRate(44100)
	if n := drain(t, checkpointSound(rate, 1)); n < rate.N(150*time.Millisecond) {
		t.Errorf("checkpoint cue too short: %d samples", n)
	}
	if n := drain(t, loseSound(rate, 1)); n < rate.N(300*time.Millisecond) {
		t.Errorf("lose cue too short: %d samples", n)
	}
}

func TestCuesDisabledNeverOpensSpeaker(t *testing.T) {
	c := New(Options{Enabled: false, Logger: log.New(io.Discard)})
	opened := 0
	c.initFunc = func() error { opened++; return nil }

	c.PlayCheckpointCue()
	c.PlayLoseCue()
	if opened != 0 {
		t.Errorf("speaker opened %d times while disabled", opened)
	}
}

func TestCuesInitFailureIsSwallowed(t *testing.T) {
	c := New(Options{Enabled: true, Logger: log.New(io.Discard)})
	attempts := 0
	c.initFunc = func() error { attempts++; return errors.New("no audio device") }

	c.PlayCheckpointCue()
	c.PlayLoseCue()
	c.Close()

	if attempts != 1 {
		t.Errorf("speaker init attempted %d times, expected 1", attempts)
	}
	if c.Enabled() {
		t.Error("cues should report disabled after init failure")
	}
}
