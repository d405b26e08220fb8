package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/camera"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/Carmen-Shannon/oxy-reader/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingScene records its ticks into a shared log.
type recordingScene struct {
	scene.Scene
	name    string
	active  bool
	cameras []camera.Camera
	log     *[]string
	frames  []input.Frame
}

func (s *recordingScene) Active() bool { return s.active }

func (s *recordingScene) Cameras() []camera.Camera { return s.cameras }

func (s *recordingScene) Tick(dt float32, frame input.Frame) {
	*s.log = append(*s.log, s.name)
	s.frames = append(s.frames, frame)
}

func TestTickOrder(t *testing.T) {
	var order []string
	back := &recordingScene{name: "back", active: true, log: &order}
	front := &recordingScene{name: "front", active: true, log: &order}
	hidden := &recordingScene{name: "hidden", active: false, log: &order}

	e := NewEngine(WithScene(10, front), WithScene(-1, back), WithScene(5, hidden)).(*engine)
	e.SetTickCallback(func(dt float32, frame input.Frame) {
		order = append(order, "callback")
	})

	e.Input().KeyDown(common.KeyDown)
	e.tick(1.0 / 60.0)

	assert.Equal(t, []string{"back", "front", "callback"}, order)
	require.Len(t, front.frames, 1)
	assert.True(t, front.frames[0].JustPressed(common.KeyDown))
	assert.Empty(t, hidden.frames)
}

func TestDormancy(t *testing.T) {
	var order []string
	cam := camera.NewCamera(camera.WithController(camera.NewCameraController()))
	s := &recordingScene{name: "reader", active: true, cameras: []camera.Camera{cam}, log: &order}

	e := NewEngine(WithScene(0, s), WithDormantAfter(time.Second)).(*engine)
	start := e.Input().LastActivity()
	now := start
	e.now = func() time.Time { return now }

	e.tick(1.0 / 60.0)
	assert.False(t, e.Dormant())
	assert.True(t, cam.Controller().IsAwake())

	now = start.Add(2 * time.Second)
	e.tick(1.0 / 60.0)
	assert.True(t, e.Dormant())
	assert.False(t, cam.Controller().IsAwake())

	t.Run("held key keeps cameras awake", func(t *testing.T) {
		e.Input().KeyDown(common.KeyUp)
		e.tick(1.0 / 60.0)
		assert.True(t, cam.Controller().IsAwake())

		// Still held, no new events.
		e.tick(1.0 / 60.0)
		assert.True(t, cam.Controller().IsAwake())
		e.Input().KeyUp(common.KeyUp)
	})

	t.Run("focus loss sleeps regardless of input", func(t *testing.T) {
		e.SetFocused(false)
		e.Input().Scroll(0, 1, input.ScrollUnitLine)
		e.tick(1.0 / 60.0)
		assert.True(t, e.Dormant())
		assert.False(t, cam.Controller().IsAwake())

		e.SetFocused(true)
		e.Input().Scroll(0, 1, input.ScrollUnitLine)
		e.tick(1.0 / 60.0)
		assert.False(t, e.Dormant())
		assert.True(t, cam.Controller().IsAwake())
	})

	t.Run("zero idle duration only sleeps on focus loss", func(t *testing.T) {
		e := NewEngine(WithScene(0, s), WithDormantAfter(0)).(*engine)
		e.now = func() time.Time { return time.Now().Add(time.Hour) }
		e.tick(1.0 / 60.0)
		assert.False(t, e.Dormant())
	})
}

func TestSceneRegistry(t *testing.T) {
	e := NewEngine()
	var order []string
	s := &recordingScene{name: "a", log: &order}

	e.AddScene(3, s)
	assert.Equal(t, s, e.Scene(3))
	assert.Len(t, e.Scenes(), 1)

	e.RemoveScene(3)
	assert.Nil(t, e.Scene(3))
	assert.Empty(t, e.Scenes())
}

func TestHeadlessRunQuit(t *testing.T) {
	e := NewEngine(WithTickRate(240), WithRenderFrameLimit(240))
	ticks := make(chan struct{}, 1)
	e.SetTickCallback(func(dt float32, frame input.Frame) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("engine never ticked")
	}

	e.Quit()
	e.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}
