package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func counting() beep.Streamer {
	var v float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v++
			samples[i] = [2]float64{v, -v}
		}
		return len(samples), true
	})
}

func TestTapPassesThroughAndKeepsLatest(t *testing.T) {
	tap := NewTap(counting(), 4)

	buf := make([][2]float64, 6)
	n, ok := tap.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 6, n)
	assert.Equal(t, [2]float64{6, -6}, buf[5])

	got := tap.Snapshot(nil, 3)
	assert.Equal(t, [][2]float64{{4, -4}, {5, -5}, {6, -6}}, got)

	assert.Len(t, tap.Snapshot(nil, 10), 4)
}

func TestMeterRisesWithSoundAndDecaysWithout(t *testing.T) {
	m := NewMeter(8)
	tap := NewTap(Tune(TuneSampleRate), TapSize)
	_, _ = tap.Stream(make([][2]float64, TapSize))

	m.Update(tap)
	for _, l := range m.Levels {
		assert.Greater(t, l, 0.0)
	}

	before := append([]float64(nil), m.Levels...)
	m.Update(nil)
	for i, l := range m.Levels {
		assert.Less(t, l, before[i])
	}
}

func TestPlayerLevelsFollowPlayback(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(zaptest.NewLogger(t), out, "", 0)
	assert.Nil(t, p.Tap())

	require.NoError(t, p.Play())
	require.NotNil(t, p.Tap())

	_, _ = out.playing[0].Stream(make([][2]float64, 1024))
	latest := p.Tap().Snapshot(nil, 1)
	require.Len(t, latest, 1)
	assert.NotZero(t, latest[0][0])
}
