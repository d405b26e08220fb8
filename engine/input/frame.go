package input

import (
	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPixelsPerLine converts pixel-unit wheel deltas to lines in reader mode.
const DefaultPixelsPerLine float32 = 20.0

// ScrollUnit tags the unit a wheel delta was reported in.
type ScrollUnit int

const (
	// ScrollUnitLine deltas are already in lines.
	ScrollUnitLine ScrollUnit = iota
	// ScrollUnitPixel deltas are in pixels and are divided by a pixels-per-line factor.
	ScrollUnitPixel
)

// WheelEvent is a single wheel delta reported by the platform.
type WheelEvent struct {
	X, Y float32
	Unit ScrollUnit
}

// lines returns the vertical delta of the event in lines.
func (e WheelEvent) lines(pixelsPerLine float32) float32 {
	if e.Unit == ScrollUnitPixel {
		return e.Y / common.Coalesce(pixelsPerLine, DefaultPixelsPerLine)
	}
	return e.Y
}

// KeyScroll describes whether the frame is a key-repeat scroll frame.
type KeyScroll int

const (
	KeyScrollNone KeyScroll = iota
	KeyScrollUp
	KeyScrollDown
)

// Frame is an immutable snapshot of the input gathered since the previous frame.
type Frame struct {
	// PointerDelta is the summed pointer motion in screen units (+Y is down).
	PointerDelta mgl32.Vec2
	// Wheel holds every wheel event received during the frame, in order.
	Wheel []WheelEvent

	pressed     map[uint32]struct{}
	justPressed map[uint32]struct{}
}

// NewFrame builds a Frame directly. Useful for harnesses that do not go through a Collector.
//
// Parameters:
//   - pointer: the summed pointer motion
//   - wheel: the wheel events of the frame
//   - pressed: keys held at the end of the frame
//   - justPressed: keys that transitioned to pressed during the frame
//
// Returns:
//   - Frame: the assembled frame
func NewFrame(pointer mgl32.Vec2, wheel []WheelEvent, pressed, justPressed []uint32) Frame {
	f := Frame{
		PointerDelta: pointer,
		Wheel:        wheel,
		pressed:      make(map[uint32]struct{}, len(pressed)),
		justPressed:  make(map[uint32]struct{}, len(justPressed)),
	}
	for _, k := range pressed {
		f.pressed[k] = struct{}{}
	}
	for _, k := range justPressed {
		f.justPressed[k] = struct{}{}
	}
	return f
}

// Pressed reports whether key is held.
func (f Frame) Pressed(key uint32) bool {
	_, ok := f.pressed[key]
	return ok
}

// JustPressed reports whether key went down during this frame.
func (f Frame) JustPressed(key uint32) bool {
	_, ok := f.justPressed[key]
	return ok
}

// Axis returns +1 when only plus is held, -1 when only minus is held, and 0 otherwise.
func (f Frame) Axis(plus, minus uint32) float32 {
	var v float32
	if f.Pressed(plus) {
		v++
	}
	if f.Pressed(minus) {
		v--
	}
	return v
}

// KeyScroll reports a key-repeat scroll: an arrow key that is held but was not pressed this frame.
//
// Returns:
//   - KeyScroll: the repeat direction, or KeyScrollNone
func (f Frame) KeyScroll() KeyScroll {
	switch {
	case f.Pressed(common.KeyUp) && !f.JustPressed(common.KeyUp):
		return KeyScrollUp
	case f.Pressed(common.KeyDown) && !f.JustPressed(common.KeyDown):
		return KeyScrollDown
	default:
		return KeyScrollNone
	}
}

// WheelDelta sums the vertical wheel deltas of the frame in lines.
// The sum is negated so that rolling the wheel toward the user yields a positive (forward) value.
//
// Parameters:
//   - pixelsPerLine: conversion factor for pixel-unit events
//
// Returns:
//   - float32: the summed, negated delta in lines
//   - bool: false when no wheel event arrived this frame
func (f Frame) WheelDelta(pixelsPerLine float32) (float32, bool) {
	if len(f.Wheel) == 0 {
		return 0, false
	}
	var sum float32
	for _, e := range f.Wheel {
		sum -= e.lines(pixelsPerLine)
	}
	return sum, true
}

// WheelAmounts returns each wheel event's vertical delta in lines, unnegated.
//
// Parameters:
//   - pixelsPerLine: conversion factor for pixel-unit events
//
// Returns:
//   - []float32: per-event deltas in lines
func (f Frame) WheelAmounts(pixelsPerLine float32) []float32 {
	out := make([]float32, 0, len(f.Wheel))
	for _, e := range f.Wheel {
		out = append(out, e.lines(pixelsPerLine))
	}
	return out
}

// Held reports whether any key is held down this frame.
func (f Frame) Held() bool {
	return len(f.pressed) > 0
}

// Empty reports whether the frame carries no motion, wheel or newly pressed keys.
func (f Frame) Empty() bool {
	return f.PointerDelta == (mgl32.Vec2{}) && len(f.Wheel) == 0 && len(f.justPressed) == 0
}
