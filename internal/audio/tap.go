package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/heart-visualization/internal/config"
)

// TapSize is how many recent samples a Tap keeps.
const TapSize = 4096

// Tap passes a stream through unchanged and remembers the most recent
// samples so the frame loop can show how loud the music is.
type Tap struct {
	Source beep.Streamer

	mu     sync.RWMutex
	buffer [][2]float64
	next   int
}

func NewTap(src beep.Streamer, size int) *Tap {
	return &Tap{Source: src, buffer: make([][2]float64, size)}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.next] = samples[i]
			t.next++
			if t.next >= len(t.buffer) {
				t.next = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot copies up to n of the latest samples into dst, oldest first.
func (t *Tap) Snapshot(dst [][2]float64, n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, len(t.buffer))
	dst = dst[:0]
	start := t.next - n
	if start < 0 {
		start += len(t.buffer)
	}
	for i := 0; i < n; i++ {
		dst = append(dst, t.buffer[(start+i)%len(t.buffer)])
	}
	return dst
}

// Meter turns recent samples into a few smoothed loudness bands.
type Meter struct {
	Levels    []float64
	Smoothing float64
	scratch   [][2]float64
}

func NewMeter(bands int) *Meter {
	return &Meter{Levels: make([]float64, bands), Smoothing: config.MeterSmoothing}
}

// Update folds the latest samples from t into Levels. A nil tap lets the
// levels fall back to zero.
func (m *Meter) Update(t *Tap) {
	if t == nil {
		for i := range m.Levels {
			m.Levels[i] *= m.Smoothing
		}
		return
	}
	m.scratch = t.Snapshot(m.scratch, TapSize/2)
	m.fold(m.scratch)
}

func (m *Meter) fold(samples [][2]float64) {
	bands := len(m.Levels)
	if bands == 0 || len(samples) == 0 {
		return
	}
	size := max(1, len(samples)/bands)
	for i := 0; i < bands; i++ {
		start := i * size
		if start >= len(samples) {
			break
		}
		end := min(start+size, len(samples))

		var sum float64
		for _, s := range samples[start:end] {
			mono := (s[0] + s[1]) / 2
			sum += mono * mono
		}
		// compressed so quiet passages still move the meter
		mag := math.Pow(math.Sqrt(sum/float64(end-start)), 0.3)
		m.Levels[i] = m.Smoothing*m.Levels[i] + (1-m.Smoothing)*mag
	}
}
