package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const frameDt = float32(1.0 / 60.0)

type testTarget struct {
	transform common.Transform
	desc      common.TextDescriptor
	hasDesc   bool
}

func (t *testTarget) Transform() common.Transform { return t.transform }

func (t *testTarget) TextDescriptor() (common.TextDescriptor, bool) { return t.desc, t.hasDesc }

func newTestTarget(desc common.TextDescriptor) *testTarget {
	return &testTarget{transform: common.IdentityTransform(), desc: desc, hasDesc: true}
}

func unitGlyphs(rows, columns uint32) common.TextDescriptor {
	return common.TextDescriptor{GlyphWidth: 1, GlyphHeight: 1, Rows: rows, Columns: columns}
}

// rightAngleProjection has a 90 degree vertical field of view, so the visible half-height
// equals the distance to the content plane.
func rightAngleProjection() Projection {
	return Projection{Kind: ProjectionPerspective, Fov: math.Pi / 2, Aspect: 1, Near: 0.1, Far: 1000}
}

func newTestCamera(z float32) Camera {
	return NewCamera(WithProjection(rightAngleProjection()), WithTranslation(0, 0, z))
}

func newReader(options ...CameraControllerOption) *cameraControllerImpl {
	options = append([]CameraControllerOption{WithMode(ModeReader), WithTarget(1)}, options...)
	return NewCameraController(options...).(*cameraControllerImpl)
}

func wheelFrame(lines float32, pressed ...uint32) input.Frame {
	// Frames carry the platform sign; WheelDelta negates it.
	return input.NewFrame(mgl32.Vec2{}, []input.WheelEvent{{Y: -lines, Unit: input.ScrollUnitLine}}, pressed, nil)
}

func emptyFrame() input.Frame {
	return input.NewFrame(mgl32.Vec2{}, nil, nil, nil)
}
