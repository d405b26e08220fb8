package camera

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// updateFly runs one Fly frame: keyboard acceleration, the projection toggle and mouse look.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updateFly(dt float32, frame input.Frame, cam Camera) {
	if cc.caps.Translation {
		if frame.Pressed(cc.keys.PerspectiveModifier) && frame.JustPressed(cc.keys.PerspectiveToggle) {
			cc.toggleProjection(cam)
		}
		cc.flyMove(dt, frame, cam)
	}
	if cc.caps.Rotation {
		cc.mouseLook(dt, frame)
		cc.targetRotation = common.YawPitchRotation(cc.yaw, cc.pitch)
		current := cam.Transform().Rotation
		cam.SetRotation(common.SlerpQuat(current, cc.targetRotation, common.EaseFactor(dt, cc.rotationEasingSeconds)))
	}
}

// flyMove integrates keyboard acceleration into velocity and eases the camera along it.
// Velocity decays by friction while no movement key is held.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) flyMove(dt float32, frame input.Frame, cam Camera) {
	current := cam.Transform()
	h := frame.Axis(cc.keys.Right, cc.keys.Left)
	v := frame.Axis(cc.keys.Forward, cc.keys.Backward)
	f := frame.Axis(cc.keys.Up, cc.keys.Down)

	dir := common.StrafeVector(current.Rotation).Mul(h).
		Add(common.ForwardWalkVector(current.Rotation).Mul(v)).
		Add(common.AxisY.Mul(f))
	accel := common.NormalizeOrZero(dir).Mul(cc.accel)

	if accel == (mgl32.Vec3{}) {
		cc.velocity = cc.velocity.Mul(max(1-cc.friction*dt, 0))
	} else {
		cc.velocity = cc.velocity.Add(accel.Mul(dt))
	}
	if speed := cc.velocity.Len(); speed > cc.maxSpeed {
		cc.velocity = cc.velocity.Mul(cc.maxSpeed / speed)
	}

	cc.targetTranslation = current.Translation.Add(cc.velocity)
	cam.SetTranslation(common.LerpVec3(current.Translation, cc.targetTranslation, common.EaseFactor(dt, cc.translationEasingSeconds)))
}

// mouseLook turns pointer motion into yaw and pitch, with pitch kept short of vertical.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) mouseLook(dt float32, frame input.Frame) {
	delta := frame.PointerDelta
	cc.yaw -= delta.X() * cc.sensitivity * dt
	cc.pitch += delta.Y() * cc.sensitivity * dt
	cc.pitch = common.Clamp(cc.pitch, FlyPitchMin, FlyPitchMax)
}

// toggleProjection swaps between perspective and orthographic projection, keeping the aspect ratio.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) toggleProjection(cam Camera) {
	current := cam.Projection()
	var next Projection
	if current.IsPerspective() {
		next = OrthographicProjection()
		if cc.resetRotationOnOrtho {
			cc.yaw, cc.pitch = 0, 0
		}
	} else {
		next = PerspectiveProjection()
	}
	next.Aspect = current.Aspect
	cam.SetProjection(next)
}
