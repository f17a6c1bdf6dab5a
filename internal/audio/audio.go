package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)

	paddleHitFreq     = 880
	paddleHitDuration = 50 * time.Millisecond
	volume            = 0.2
)

// Sound plays the game's sound effects
type Sound interface {
	PaddleHit()
	Close()
}

// Speaker plays sounds on the system audio device
type Speaker struct {
	closed bool
}

// NewSpeaker initializes the audio device. It can only be done once per
// process.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, errors.Wrap(err, "unable to initialize speaker")
	}
	return &Speaker{}, nil
}

// PaddleHit is a high-pitched short beep
func (s *Speaker) PaddleHit() {
	if s.closed {
		return
	}
	speaker.Play(squareWave(paddleHitFreq, paddleHitDuration))
}

func (s *Speaker) Close() {
	if s.closed {
		return
	}
	s.closed = true
	speaker.Close()
}

// Nop is a Sound that plays nothing, for headless builds or when there's
// no audio device
type Nop struct{}

func (Nop) PaddleHit() {}

func (Nop) Close() {}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	remaining := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, i > 0
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			remaining--
		}
		return len(samples), true
	})
}
