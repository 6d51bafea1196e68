// Package audio plays an optional sine drone derived from the wave set.
// Audio is strictly decorative: initialization failure leaves the renderer
// fully functional and is reported as a non-fatal error.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/OpalAayan/wavecli/wave"
)

const (
	sampleRate = beep.SampleRate(44100)

	// maxVoices bounds speaker load; waves beyond this stay silent
	maxVoices = 8

	// baseFreq anchors the drone; wave frequencies are fractions of a
	// radian per column, so they are scaled into the audible range
	baseFreq = 110.0
)

// Engine owns the speaker session for one run.
type Engine struct {
	started bool
}

// Start initializes the speaker and begins one tone per wave. The drone
// mirrors the wave set: spatial frequency maps to pitch, amplitude to gain.
func (e *Engine) Start(waves []wave.Wave) error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	voices := waves
	if len(voices) > maxVoices {
		voices = voices[:maxVoices]
	}

	streamers := make([]beep.Streamer, 0, len(voices))
	for _, w := range voices {
		sine, err := generators.SineTone(sampleRate, ToneFreq(w))
		if err != nil {
			continue
		}
		// Gain is offset against unity: amp 0.85 plays at ~0.21
		streamers = append(streamers, &effects.Gain{
			Streamer: sine,
			Gain:     w.Amp*0.25 - 1,
		})
	}
	speaker.Play(streamers...)

	e.started = true
	return nil
}

// Stop closes the speaker. Safe to call on an engine that never started.
func (e *Engine) Stop() {
	if !e.started {
		return
	}
	speaker.Close()
	e.started = false
}

// ToneFreq maps a wave's spatial frequency to an audible pitch in Hz.
func ToneFreq(w wave.Wave) float64 {
	return baseFreq * (1 + 8*w.Freq)
}
