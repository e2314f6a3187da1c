package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// TuneSampleRate is the rate the synthesized tune is rendered at.
const TuneSampleRate = beep.SampleRate(44100)

// a slow arpeggio, in Hz; 0 is a rest
var tuneNotes = []float64{
	261.63, 329.63, 392.00, 523.25,
	440.00, 349.23, 392.00, 0,
	293.66, 349.23, 440.00, 587.33,
	523.25, 392.00, 329.63, 0,
}

const (
	tuneNote  = 450 * time.Millisecond
	tuneDecay = 4.0
	tuneGain  = 0.25
)

// Tune returns an endless streamer playing the built-in melody.
func Tune(sr beep.SampleRate) beep.Streamer {
	noteLen := sr.N(tuneNote)
	var pos int
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := tuneSample(pos, noteLen, float64(sr))
			samples[i] = [2]float64{v, v}
			pos++
			if pos >= noteLen*len(tuneNotes) {
				pos = 0
			}
		}
		return len(samples), true
	})
}

func tuneSample(pos, noteLen int, rate float64) float64 {
	freq := tuneNotes[pos/noteLen]
	if freq == 0 {
		return 0
	}
	t := float64(pos%noteLen) / rate
	env := math.Exp(-tuneDecay * t)
	// short attack avoids a click at the note boundary
	if attack := 0.01; t < attack {
		env *= t / attack
	}
	tone := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
	return tuneGain * env * tone / 1.3
}
