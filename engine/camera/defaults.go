package camera

// Zoom bounds
const (
	// ZoomMin is the closest zoom distance in Fly and Reader modes.
	ZoomMin float32 = 3.0
	// ZoomMax is the farthest zoom distance in every mode.
	ZoomMax float32 = 100.0
	// FollowZoomMin is the closest zoom distance in Follow mode.
	FollowZoomMin float32 = 1.0
)

// Fly mode pitch bounds, in degrees
const (
	FlyPitchMin float32 = -89.0
	FlyPitchMax float32 = 89.9
)

// Reader geometry
const (
	// ContentDepthOffset is added to the content depth when solving frustum borders,
	// so the measured plane sits just in front of the glyph quads.
	ContentDepthOffset float32 = 0.05

	// DormantDeltaSeconds replaces the frame delta for every easing computation while dormant.
	DormantDeltaSeconds float32 = 1.0 / 60.0

	// IdleReturnFactor is the per-frame lerp factor pulling the scroll residual back to a row.
	IdleReturnFactor float32 = 0.1
	// IdleSnapEpsilon is the distance under which the residual snaps to its return target.
	IdleSnapEpsilon float32 = 0.001

	// EasingRateBlend is the per-frame lerp factor of the translation easing rate toward its target.
	EasingRateBlend float32 = 0.1

	// ZoomSnapEpsilon is the distance under which zoom snaps to target zoom.
	ZoomSnapEpsilon float32 = 1e-4

	// minEasingSeconds floors easing time-constants used as divisors.
	minEasingSeconds float32 = 1e-3
)

// Default tunables
const (
	DefaultZoom float32 = 7.0

	DefaultSensitivity            float32 = 3.0
	DefaultSwipeSensitivity       float32 = 0.0
	DefaultMouseScrollSensitivity float32 = 5.0
	DefaultWheelScrollSensitivity float32 = 1.0
	DefaultZoomSensitivity        float32 = 1.0
	DefaultFollowZoomSensitivity  float32 = 0.1

	DefaultAccel    float32 = 1.5
	DefaultMaxSpeed float32 = 0.5
	DefaultFriction float32 = 1.0

	DefaultScrollEasingSeconds            float32 = 5.0
	DefaultSwipeEasingSeconds             float32 = 6.0
	DefaultTranslationEasingSeconds       float32 = 0.1
	DefaultTranslationEasingScrollSeconds float32 = 0.25
	DefaultRotationEasingSeconds          float32 = 1.0
	DefaultZoomEasingSeconds              float32 = 0.01
	DefaultLeanEasingSeconds              float32 = 1.0
	DefaultLeanResetEasingSeconds         float32 = 0.2

	// DefaultPitchMax is the lean angle in degrees while scrolling.
	DefaultPitchMax float32 = 3.0

	// DefaultScrollIdleSeconds is how long after the last wheel event the residual starts returning.
	DefaultScrollIdleSeconds float32 = 0.5

	// DefaultKeyScrollDelaySeconds is the hold time between key-repeat column steps.
	DefaultKeyScrollDelaySeconds float32 = 0.03

	// DefaultFollowPixelsPerLine converts pixel wheel deltas in Follow mode.
	DefaultFollowPixelsPerLine float32 = 53.0

	// DefaultVisibleRows seeds the visible row count before the first extent measurement.
	DefaultVisibleRows float32 = 40.0
)
