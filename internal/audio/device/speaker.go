// Package device connects the audio player to the system speaker.
package device

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Speaker is the process-wide faiface speaker.
type Speaker struct{}

func (Speaker) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (Speaker) Play(s beep.Streamer) { speaker.Play(s) }
func (Speaker) Clear()               { speaker.Clear() }
func (Speaker) Lock()                { speaker.Lock() }
func (Speaker) Unlock()              { speaker.Unlock() }
