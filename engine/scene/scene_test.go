package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/camera"
	"github.com/Carmen-Shannon/oxy-reader/engine/game_object"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickDt = float32(1.0 / 60.0)

func page() game_object.GameObject {
	return game_object.NewGameObject(game_object.WithTextDescriptor(common.TextDescriptor{
		GlyphWidth: 1, GlyphHeight: 1, Rows: 1000, Columns: 80,
	}))
}

func readerCamera(targetID uint64) camera.Camera {
	ctrl := camera.NewCameraController(camera.WithMode(camera.ModeReader), camera.WithTarget(targetID))
	return camera.NewCamera(
		camera.WithProjection(camera.Projection{Kind: camera.ProjectionPerspective, Fov: math.Pi / 2, Aspect: 1, Near: 0.1, Far: 1000}),
		camera.WithTranslation(0, 0, 7),
		camera.WithController(ctrl),
	)
}

func emptyFrame() input.Frame {
	return input.NewFrame(mgl32.Vec2{}, nil, nil, nil)
}

func TestRegistry(t *testing.T) {
	s := NewScene(WithComputeWorkers(1))
	defer s.Release()

	first := s.Add(page())
	second := s.Add(page())
	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)
	assert.Equal(t, 2, s.Count())

	explicit := s.Add(game_object.NewGameObject(game_object.WithID(10)))
	assert.Equal(t, uint64(10), explicit)
	assert.Equal(t, uint64(11), s.Add(page()))

	require.NotNil(t, s.Get(first))
	s.Remove(first)
	assert.Nil(t, s.Get(first))
	assert.Equal(t, 3, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Cameras())
}

func TestBuilderOptions(t *testing.T) {
	obj := page()
	cam := readerCamera(1)
	s := NewScene(WithName("reader"), WithActive(true), WithObjects(obj), WithCameras(cam), WithComputeWorkers(0))
	defer s.Release()

	assert.Equal(t, "reader", s.Name())
	assert.True(t, s.Active())
	assert.Equal(t, uint64(1), obj.ID())
	assert.Len(t, s.Cameras(), 1)

	s.SetActive(false)
	s.SetName("other")
	assert.False(t, s.Active())
	assert.Equal(t, "other", s.Name())
}

func TestAddCameraRequiresController(t *testing.T) {
	s := NewScene()
	defer s.Release()
	assert.Panics(t, func() { s.AddCamera(camera.NewCamera()) })
}

func TestTick(t *testing.T) {
	t.Run("extent phase measures bound reader cameras", func(t *testing.T) {
		s := NewScene(WithComputeWorkers(2))
		defer s.Release()
		id := s.Add(page())
		cams := []camera.Camera{readerCamera(id), readerCamera(id), readerCamera(id)}
		for _, cam := range cams {
			s.AddCamera(cam)
		}

		s.Tick(tickDt, emptyFrame())

		for _, cam := range cams {
			assert.InDelta(t, 13.9, cam.Controller().VisibleRows(), 1e-3)
			assert.InDelta(t, 13.9, cam.Controller().VisibleColumns(), 1e-3)
			assert.Equal(t, uint32(40), cam.Controller().Column())
		}
	})

	t.Run("motion phase turns wheel input into row delta", func(t *testing.T) {
		s := NewScene(WithComputeWorkers(1))
		defer s.Release()
		id := s.Add(page())
		cam := readerCamera(id)
		s.AddCamera(cam)

		// Platform wheel sign is inverted.
		frame := input.NewFrame(mgl32.Vec2{}, []input.WheelEvent{{Y: -1.25, Unit: input.ScrollUnitLine}}, nil, nil)
		s.Tick(tickDt, frame)

		assert.Equal(t, int32(1), cam.Controller().TakeRowOffsetDelta())
		assert.InDelta(t, 0.25, cam.Controller().ScrollResidual(), 1e-6)
	})

	t.Run("reader camera without a registered target is skipped", func(t *testing.T) {
		s := NewScene(WithComputeWorkers(1))
		defer s.Release()
		cam := readerCamera(99)
		s.AddCamera(cam)
		before := cam.Transform()

		assert.NotPanics(t, func() { s.Tick(tickDt, emptyFrame()) })
		assert.Equal(t, before, cam.Transform())
		assert.Equal(t, camera.DefaultVisibleRows, cam.Controller().VisibleRows())
	})

	t.Run("disabled target is skipped", func(t *testing.T) {
		s := NewScene(WithComputeWorkers(1))
		defer s.Release()
		obj := page()
		id := s.Add(obj)
		obj.SetEnabled(false)
		cam := readerCamera(id)
		s.AddCamera(cam)
		before := cam.Transform()

		s.Tick(tickDt, emptyFrame())
		assert.Equal(t, before, cam.Transform())
	})

	t.Run("removed target stops the camera", func(t *testing.T) {
		s := NewScene(WithComputeWorkers(1))
		defer s.Release()
		id := s.Add(page())
		cam := readerCamera(id)
		s.AddCamera(cam)
		s.Tick(tickDt, emptyFrame())

		s.Remove(id)
		before := cam.Transform()
		s.Tick(tickDt, emptyFrame())
		assert.Equal(t, before, cam.Transform())
	})

	t.Run("fly camera runs without a target", func(t *testing.T) {
		s := NewScene(WithComputeWorkers(1))
		defer s.Release()
		cam := camera.NewCamera(camera.WithController(camera.NewCameraController()))
		s.AddCamera(cam)
		before := cam.Transform().Translation

		frame := input.NewFrame(mgl32.Vec2{}, nil, []uint32{common.KeyW}, []uint32{common.KeyW})
		s.Tick(tickDt, frame)

		assert.NotEqual(t, before, cam.Transform().Translation)
	})
}
