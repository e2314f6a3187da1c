package audio

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Output is the sound device the player feeds.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// Player owns the music stream. Paused may be called from the frame loop
// while Play runs on another goroutine.
type Player struct {
	log    *zap.Logger
	out    Output
	volume float64

	playing atomic.Bool
	tap     atomic.Pointer[Tap]

	mu       sync.Mutex
	path     string
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	format   beep.Format
	initDone bool
}

// NewPlayer returns a paused player for the file at path, or for the
// built-in tune when path is empty. volume is in beep's base-2 steps.
func NewPlayer(log *zap.Logger, out Output, path string, volume float64) *Player {
	return &Player{log: log, out: out, path: path, volume: volume}
}

// Paused reports whether music is currently silent.
func (p *Player) Paused() bool {
	return !p.playing.Load()
}

// Tap is the meter point of the current stream, nil before the first Play.
func (p *Player) Tap() *Tap {
	return p.tap.Load()
}

// Path is the music file in use; empty for the built-in tune.
func (p *Player) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// Play starts or resumes the music. It can block while the device starts.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		src, err := p.open(p.path)
		if err != nil {
			return err
		}
		if err := p.start(src); err != nil {
			return err
		}
	} else {
		p.out.Lock()
		p.ctrl.Paused = false
		p.out.Unlock()
	}
	p.playing.Store(true)
	return nil
}

// Pause silences the music, keeping its position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl != nil {
		p.out.Lock()
		p.ctrl.Paused = true
		p.out.Unlock()
	}
	p.playing.Store(false)
}

// Load switches to the file at path and starts playing it. A file that
// cannot be opened leaves the current music untouched.
func (p *Player) Load(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	src, err := p.open(path)
	if err != nil {
		return err
	}
	prev := p.path
	p.stopCurrent()
	p.path = path
	if err := p.start(src); err != nil {
		p.path = prev
		return err
	}
	p.playing.Store(true)
	return nil
}

// Close stops playback and releases the current file.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopCurrent()
}

// source is an opened stream ready to be started.
type source struct {
	stream beep.Streamer
	file   beep.StreamSeekCloser
	format beep.Format
}

func (p *Player) open(path string) (source, error) {
	if path == "" {
		format := beep.Format{SampleRate: TuneSampleRate, NumChannels: 2, Precision: 2}
		return source{stream: Tune(format.SampleRate), format: format}, nil
	}
	file, format, err := Open(path)
	if err != nil {
		return source{}, err
	}
	return source{stream: beep.Loop(-1, file), file: file, format: format}, nil
}

func (p *Player) start(src source) error {
	p.streamer = src.file
	if err := p.initOutput(src.format.SampleRate); err != nil {
		p.closeStreamer()
		return err
	}

	tap := NewTap(&effects.Volume{Streamer: src.stream, Base: 2, Volume: p.volume}, TapSize)
	p.ctrl = &beep.Ctrl{Streamer: tap}
	p.tap.Store(tap)
	p.out.Play(p.ctrl)
	p.log.Info("music started", zap.String("path", p.path), zap.Int("rate", int(src.format.SampleRate)))
	return nil
}

func (p *Player) initOutput(sr beep.SampleRate) error {
	if p.initDone && p.format.SampleRate == sr {
		return nil
	}
	// re-init when the sample rate changes
	if err := p.out.Init(sr, sr.N(time.Second/20)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	p.initDone = true
	p.format.SampleRate = sr
	return nil
}

func (p *Player) stopCurrent() {
	if p.ctrl != nil {
		p.out.Lock()
		p.out.Clear()
		p.out.Unlock()
		p.ctrl = nil
		p.tap.Store(nil)
	}
	p.closeStreamer()
	p.playing.Store(false)
}

func (p *Player) closeStreamer() {
	if p.streamer == nil {
		return
	}
	if err := p.streamer.Close(); err != nil {
		p.log.Warn("close music", zap.Error(err))
	}
	p.streamer = nil
}
