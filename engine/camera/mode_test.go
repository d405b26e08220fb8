package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeControl(t *testing.T) {
	cc := NewCameraController()
	assert.Equal(t, ModeFly, cc.Mode())
	assert.Equal(t, AllCapabilities(), cc.Capabilities())

	cc.SetMode(ModeReader)
	assert.Equal(t, ModeReader, cc.Mode())
	assert.Equal(t, "reader", cc.Mode().String())

	cc.SetModeWithRestrictions(ModeFollow, Capabilities{Zoom: true})
	assert.Equal(t, ModeFollow, cc.Mode())
	assert.Equal(t, Capabilities{Zoom: true}, cc.Capabilities())

	_, bound := cc.Target()
	assert.False(t, bound)
	cc.SetTarget(9)
	id, bound := cc.Target()
	assert.True(t, bound)
	assert.Equal(t, uint64(9), id)
}

func TestFlyMode(t *testing.T) {
	t.Run("forward key moves along -Z within the speed limit", func(t *testing.T) {
		cc := NewCameraController(WithFlyMotion(100, 0.5, 1), WithTranslationEasing(0.001, 0.001)).(*cameraControllerImpl)
		cam := NewCamera()
		frame := input.NewFrame(mgl32.Vec2{}, nil, []uint32{common.KeyW}, nil)

		cc.Update(frameDt, frame, cam, nil)

		pos := cam.Transform().Translation
		assert.Less(t, pos.Z(), float32(0))
		assert.InDelta(t, 0, pos.X(), 1e-6)
		assert.InDelta(t, 0.5, cc.velocity.Len(), 1e-5)
	})

	t.Run("friction decays velocity without input", func(t *testing.T) {
		cc := NewCameraController().(*cameraControllerImpl)
		cc.velocity = mgl32.Vec3{0.4, 0, 0}
		cc.Update(0.5, emptyFrame(), NewCamera(), nil)
		assert.InDelta(t, 0.2, cc.velocity.X(), 1e-6)
	})

	t.Run("mouse look clamps pitch", func(t *testing.T) {
		cc := NewCameraController().(*cameraControllerImpl)
		frame := input.NewFrame(mgl32.Vec2{10, 10000}, nil, nil, nil)
		cc.Update(frameDt, frame, NewCamera(), nil)
		assert.Equal(t, FlyPitchMax, cc.Pitch())
		assert.InDelta(t, -10*DefaultSensitivity*frameDt, cc.Yaw(), 1e-5)
	})

	t.Run("ctrl+enter toggles the projection", func(t *testing.T) {
		cc := NewCameraController().(*cameraControllerImpl)
		cc.yaw, cc.pitch = 20, 10
		cam := NewCamera(WithAspect(1.5))
		toggle := input.NewFrame(mgl32.Vec2{}, nil,
			[]uint32{common.KeyLeftControl, common.KeyEnter},
			[]uint32{common.KeyEnter})

		cc.Update(frameDt, toggle, cam, nil)
		assert.Equal(t, ProjectionOrthographic, cam.Projection().Kind)
		assert.Equal(t, float32(1.5), cam.Projection().Aspect)
		assert.Equal(t, float32(0), cc.Pitch())

		cc.Update(frameDt, toggle, cam, nil)
		assert.True(t, cam.Projection().IsPerspective())
	})

	t.Run("enter alone does nothing", func(t *testing.T) {
		cc := NewCameraController()
		cam := NewCamera()
		cc.Update(frameDt, input.NewFrame(mgl32.Vec2{}, nil, []uint32{common.KeyEnter}, []uint32{common.KeyEnter}), cam, nil)
		assert.True(t, cam.Projection().IsPerspective())
	})
}

func TestFollowMode(t *testing.T) {
	t.Run("requires a target", func(t *testing.T) {
		cc := NewCameraController(WithMode(ModeFollow))
		assert.Panics(t, func() { cc.Update(frameDt, emptyFrame(), NewCamera(), nil) })
	})

	t.Run("orbits at zoom distance", func(t *testing.T) {
		cc := NewCameraController(WithMode(ModeFollow))
		cam := NewCamera()
		target := &testTarget{transform: common.TransformFromXYZ(1, 2, 3)}

		cc.Update(frameDt, emptyFrame(), cam, target)
		assert.True(t, cam.Transform().Translation.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3 + DefaultZoom}, 1e-5))
	})

	t.Run("wheel zoom is multiplicative and clamped", func(t *testing.T) {
		cc := NewCameraController(WithMode(ModeFollow), WithZoomSensitivity(1, 0.1))
		cam := NewCamera()
		target := &testTarget{transform: common.IdentityTransform()}

		cc.Update(frameDt, input.NewFrame(mgl32.Vec2{}, []input.WheelEvent{{Y: 1}}, nil, nil), cam, target)
		assert.InDelta(t, DefaultZoom*0.9, cc.ZoomDistance(), 1e-5)

		cc.Update(frameDt, input.NewFrame(mgl32.Vec2{}, []input.WheelEvent{{Y: 9.99}}, nil, nil), cam, target)
		assert.Equal(t, FollowZoomMin, cc.ZoomDistance())

		cc.Update(frameDt, input.NewFrame(mgl32.Vec2{}, []input.WheelEvent{{Y: -100000, Unit: input.ScrollUnitPixel}}, nil, nil), cam, target)
		assert.Equal(t, ZoomMax, cc.ZoomDistance())
	})
}

func TestModeChangeClampsZoom(t *testing.T) {
	t.Run("follow to reader raises a close zoom to the reader range", func(t *testing.T) {
		cc := NewCameraController(WithMode(ModeFollow))
		target := newTestTarget(unitGlyphs(1000, 80))
		cam := NewCamera()

		cc.Update(frameDt, input.NewFrame(mgl32.Vec2{}, []input.WheelEvent{{Y: 9.99}}, nil, nil), cam, target)
		require.Equal(t, FollowZoomMin, cc.ZoomDistance())

		cc.SetMode(ModeReader)
		assert.Equal(t, ZoomMin, cc.ZoomDistance())
		assert.Equal(t, ZoomMin, cc.TargetZoom())

		cam = newTestCamera(ZoomMin)
		cc.UpdateExtent(cam, target)
		cc.Update(frameDt, emptyFrame(), cam, target)
		assert.GreaterOrEqual(t, cc.ZoomDistance(), ZoomMin)
		assert.GreaterOrEqual(t, cc.TargetZoom(), ZoomMin)
	})

	t.Run("restricted switch clamps as well", func(t *testing.T) {
		cc := NewCameraController(WithMode(ModeFollow))
		cc.Update(frameDt, input.NewFrame(mgl32.Vec2{}, []input.WheelEvent{{Y: 9.99}}, nil, nil), NewCamera(), newTestTarget(unitGlyphs(10, 10)))

		cc.SetModeWithRestrictions(ModeFly, AllCapabilities())
		assert.Equal(t, ZoomMin, cc.ZoomDistance())
		assert.Equal(t, ZoomMin, cc.TargetZoom())
	})

	t.Run("reader to follow keeps the zoom", func(t *testing.T) {
		cc := newReader(WithZoom(12))
		cc.SetMode(ModeFollow)
		assert.Equal(t, float32(12), cc.ZoomDistance())
	})
}

func TestReaderWheelWithModifierZooms(t *testing.T) {
	cc := newReader()
	cam := newTestCamera(DefaultZoom)
	target := newTestTarget(unitGlyphs(1000, 80))
	cc.SetRowOffsetRequested(100)

	cc.UpdateExtent(cam, target)
	cc.Update(frameDt, wheelFrame(2, common.KeyLeftControl), cam, target)

	assert.Equal(t, DefaultZoom+2, cc.TargetZoom())
	assert.Equal(t, float32(0), cc.ScrollResidual())
}
