package session

import (
	"image"
	"math/rand"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/zap/zaptest"

	"github.com/iburimskiy/heart-visualization/internal/audio"
	"github.com/iburimskiy/heart-visualization/internal/heart"
	"github.com/iburimskiy/heart-visualization/internal/math3d"
	"github.com/iburimskiy/heart-visualization/internal/particles"
	"github.com/iburimskiy/heart-visualization/internal/scene"
	"github.com/iburimskiy/heart-visualization/internal/ui"
)

// fakeOutput stands in for the speaker. Init blocks on gate when it is set.
type fakeOutput struct {
	mu      sync.Mutex
	gate    chan struct{}
	initErr error
	inits   atomic.Int32
}

func (o *fakeOutput) Init(beep.SampleRate, int) error {
	o.inits.Inc()
	if o.gate != nil {
		<-o.gate
	}
	return o.initErr
}

func (o *fakeOutput) Play(beep.Streamer) {}
func (o *fakeOutput) Clear()             {}
func (o *fakeOutput) Lock()              { o.mu.Lock() }
func (o *fakeOutput) Unlock()            { o.mu.Unlock() }

type fakeDialogs struct {
	choose  string
	notices []string
}

func (d *fakeDialogs) Notice(msg string) { d.notices = append(d.notices, msg) }

func (d *fakeDialogs) ChooseMusic() (string, error) { return d.choose, nil }

type fixture struct {
	s       *Session
	player  *audio.Player
	out     *fakeOutput
	dialogs *fakeDialogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zaptest.NewLogger(t)
	out := &fakeOutput{}
	player := audio.NewPlayer(log, out, "", 0)
	t.Cleanup(player.Close)
	dialogs := &fakeDialogs{}

	field := particles.Generate(rand.New(rand.NewSource(1)), 10, particles.Extent)
	s := New(Options{
		Log:     log,
		Scene:   scene.Compose(heart.Build(), field, 800.0/600),
		Music:   player,
		Dialogs: dialogs,
		Width:   800,
		Height:  600,
		TPS:     60,
	})
	return &fixture{s: s, player: player, out: out, dialogs: dialogs}
}

func press(keys ...Key) Input { return Input{Keys: keys} }

// settle steps idle frames until the music request in flight is handled.
func settle(t *testing.T, s *Session) {
	t.Helper()
	require.Eventually(t, func() bool {
		s.Step(Input{})
		return !s.Pending()
	}, 2*time.Second, time.Millisecond)
}

func TestMusicKeyStartsPlayback(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.s.Step(press(KeyMusic)))
	assert.True(t, f.s.Pending())
	assert.Contains(t, f.s.Status(), "Starting music...")

	settle(t, f.s)
	assert.False(t, f.player.Paused())
	assert.Empty(t, f.s.UI.Notice)
	assert.Contains(t, f.s.Status(), "Playing the built-in tune")
	assert.Equal(t, ui.MusicLabel(false), f.s.UI.Label(ui.ToggleAudio))
}

func TestSecondMusicPressWhilePendingIsDropped(t *testing.T) {
	f := newFixture(t)
	f.out.gate = make(chan struct{})

	f.s.Step(press(KeyMusic))
	require.Eventually(t, func() bool { return f.out.inits.Load() == 1 }, time.Second, time.Millisecond)
	require.True(t, f.player.Paused())

	// still paused, so this asks to play again
	f.s.Step(press(KeyMusic))
	f.s.Step(press(KeyMusic))
	assert.True(t, f.s.Pending())

	close(f.out.gate)
	settle(t, f.s)
	assert.Equal(t, int32(1), f.out.inits.Load())
	assert.False(t, f.player.Paused())
}

func TestRejectedPlayShowsNoticeAndStaysPaused(t *testing.T) {
	f := newFixture(t)
	f.out.initErr = errors.New("no audio device")

	f.s.Step(press(KeyMusic))
	settle(t, f.s)

	assert.True(t, f.player.Paused())
	assert.Equal(t, ui.AutoplayNotice, f.s.UI.Notice)
	assert.Equal(t, []string{ui.AutoplayNotice}, f.dialogs.notices)
	assert.Contains(t, f.s.Status(), "Error: init speaker: no audio device")
	assert.Equal(t, ui.MusicLabel(true), f.s.UI.Label(ui.ToggleAudio))

	// the next press tries again and clears the notice
	f.out.initErr = nil
	f.s.Step(press(KeyMusic))
	settle(t, f.s)
	assert.False(t, f.player.Paused())
	assert.Empty(t, f.s.UI.Notice)
	assert.NotContains(t, f.s.Status(), "Error")
}

func TestMusicKeyPausesPlayback(t *testing.T) {
	f := newFixture(t)
	f.s.Step(press(KeyMusic))
	settle(t, f.s)
	require.False(t, f.player.Paused())

	f.s.Step(press(KeyMusic))
	assert.True(t, f.player.Paused())
	assert.False(t, f.s.Pending())
}

func TestStepDrainsBeforeInput(t *testing.T) {
	f := newFixture(t)
	f.s.Step(press(KeyMusic))
	require.Eventually(t, func() bool { return len(f.s.musicDone) == 1 }, time.Second, time.Millisecond)
	require.True(t, f.s.Pending())

	// the finished play is collected first, so M now pauses
	f.s.Step(press(KeyMusic))
	assert.False(t, f.s.Pending())
	assert.True(t, f.player.Paused())
}

func TestRejectedFileKeepsMusicToggle(t *testing.T) {
	f := newFixture(t)
	f.s.Step(press(KeyMusic))
	settle(t, f.s)

	f.dialogs.choose = filepath.Join(t.TempDir(), "missing.mp3")
	f.s.Step(press(KeyChoose))
	settle(t, f.s)

	require.Len(t, f.dialogs.notices, 1)
	assert.Contains(t, f.dialogs.notices[0], "open music")
	assert.Empty(t, f.s.UI.Notice, "a bad file is not an autoplay refusal")
	assert.False(t, f.player.Paused())

	f.s.Step(press(KeyMusic))
	assert.True(t, f.player.Paused())
	f.s.Step(press(KeyMusic))
	settle(t, f.s)
	assert.False(t, f.player.Paused())
	assert.Len(t, f.dialogs.notices, 1)
}

func TestCancelledChooserChangesNothing(t *testing.T) {
	f := newFixture(t)
	f.s.Step(press(KeyChoose))
	settle(t, f.s)
	assert.True(t, f.player.Paused())
	assert.Empty(t, f.dialogs.notices)
	assert.Zero(t, f.out.inits.Load())
}

func TestPulseKeyResetsScaleInSameStep(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 20; i++ {
		f.s.Step(Input{})
	}
	require.NotEqual(t, math3d.V3(1, 1, 1), f.s.Scene.Heart.Scale)
	frozen := f.s.Anim.Time

	f.s.Step(press(KeyPulse))
	assert.False(t, f.s.Anim.Pulsing)
	assert.Equal(t, math3d.V3(1, 1, 1), f.s.Scene.Heart.Scale)
	assert.Equal(t, frozen, f.s.Anim.Time)
}

func TestStepSpinsHeartAndField(t *testing.T) {
	f := newFixture(t)
	f.s.Step(Input{})
	assert.Equal(t, f.s.Anim.HeartSpin, f.s.Scene.Heart.Rotation.Y)
	assert.Equal(t, f.s.Anim.FieldSpin, f.s.Scene.Particles.Rotation.Y)
	assert.Greater(t, f.s.Scene.Heart.Rotation.Y, 0.0)
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.s.Step(press(KeyQuit)))
	assert.True(t, f.s.Step(press(KeyEscape)))

	f.s.Step(press(KeyLetter))
	require.True(t, f.s.UI.Overlay.Visible)
	assert.False(t, f.s.Step(press(KeyEscape)), "escape closes the letter first")
	assert.False(t, f.s.UI.Overlay.Visible)
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func click(s *Session, at image.Point) {
	s.Step(Input{Cursor: at, Left: Button{Down: true, Pressed: true}})
	s.Step(Input{Cursor: at, Left: Button{Released: true}})
}

func TestButtonClickTogglesPulse(t *testing.T) {
	f := newFixture(t)
	var pulse ui.Button
	for _, b := range f.s.UI.Buttons {
		if b.Intent == ui.TogglePulse {
			pulse = b
		}
	}

	click(f.s, center(pulse.Rect))
	assert.False(t, f.s.Anim.Pulsing)
	assert.Equal(t, math3d.V3(1, 1, 1), f.s.Scene.Heart.Scale)
}

func TestDragOrbitsCameraInSameStep(t *testing.T) {
	f := newFixture(t)
	cam := f.s.Scene.Camera
	start := cam.Position
	at := image.Pt(100, 100)

	f.s.Step(Input{Cursor: at, Left: Button{Down: true, Pressed: true}})
	assert.Equal(t, start, cam.Position, "the press itself does not move the camera")

	f.s.Step(Input{Cursor: at.Add(image.Pt(60, 0)), Move: image.Pt(60, 0), Left: Button{Down: true}})
	assert.NotEqual(t, start, cam.Position)
}

func TestCameraIgnoresInputUnderLetter(t *testing.T) {
	f := newFixture(t)
	cam := f.s.Scene.Camera
	start := cam.Position

	f.s.Step(press(KeyLetter))
	at := image.Pt(5, 5)
	f.s.Step(Input{Cursor: at, Left: Button{Down: true, Pressed: true}})
	f.s.Step(Input{Cursor: at.Add(image.Pt(60, 0)), Move: image.Pt(60, 0), Left: Button{Down: true}, Wheel: 3})
	assert.Equal(t, start, cam.Position)
	assert.True(t, f.s.UI.Overlay.Visible)

	// releasing outside the letter content dismisses it
	f.s.Step(Input{Cursor: at, Left: Button{Released: true}})
	assert.False(t, f.s.UI.Overlay.Visible)
}

func TestResetKeyRestoresCamera(t *testing.T) {
	f := newFixture(t)
	cam := f.s.Scene.Camera
	start := cam.Position

	f.s.Step(Input{Wheel: 5})
	require.NotEqual(t, start, cam.Position)
	f.s.Step(press(KeyReset))
	assert.Equal(t, start, cam.Position)
}

func TestResizeRelaysOut(t *testing.T) {
	f := newFixture(t)
	f.s.Resize(1200, 900)
	assert.Equal(t, 1200, f.s.Viewport.Width)
	assert.Equal(t, image.Rect(0, 0, 1200, 900), f.s.UI.Overlay.Bounds)
}
