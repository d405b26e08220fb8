package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	transform  common.Transform
	projection Projection

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the camera entity.
// The camera owns its world transform and projection. An attached CameraController
// drives the transform each frame; the camera keeps its matrices current on every write.
type Camera interface {
	// Transform returns the camera's world transform.
	//
	// Returns:
	//   - common.Transform: the current transform
	Transform() common.Transform

	// Projection returns the camera's projection parameters.
	//
	// Returns:
	//   - Projection: the current projection
	Projection() Projection

	// ViewMatrix returns the current view matrix (inverse of the transform).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the current combined projection * view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum returns the frustum of the camera at its current transform.
	//
	// Returns:
	//   - common.Frustum: the six normalized frustum planes
	Frustum() common.Frustum

	// Controller returns the attached CameraController.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// SetTransform replaces the camera's transform and recomputes matrices.
	//
	// Parameters:
	//   - t: the new world transform
	SetTransform(t common.Transform)

	// SetTranslation sets the camera's world position and recomputes matrices.
	//
	// Parameters:
	//   - v: the new world position
	SetTranslation(v mgl32.Vec3)

	// SetRotation sets the camera's world orientation and recomputes matrices.
	//
	// Parameters:
	//   - q: the new orientation
	SetRotation(q mgl32.Quat)

	// SetProjection replaces the projection and recomputes matrices.
	//
	// Parameters:
	//   - p: the new projection
	SetProjection(p Projection)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin with a default perspective projection.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		transform:  common.IdentityTransform(),
		projection: PerspectiveProjection(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Transform() common.Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustumFromMatrix(c.viewProjectionMatrix)
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetTransform(t common.Transform) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform = t
	c.updateMatrices()
}

func (c *cameraImpl) SetTranslation(v mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform.Translation = v
	c.updateMatrices()
}

func (c *cameraImpl) SetRotation(q mgl32.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform.Rotation = q
	c.updateMatrices()
}

func (c *cameraImpl) SetProjection(p Projection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection = p
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection.Aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
}

// updateMatrices recalculates the view, projection and view-projection matrices from the transform.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = c.transform.Matrix().Inv()
	c.projectionMatrix = c.projection.Matrix()
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
