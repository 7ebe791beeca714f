package parameter

// Point cloud shape configuration
const (
	// PointCount is the spiral sample count. The distributor skips the pole
	// sample, so the cloud holds PointCount-1 points.
	PointCount = 89

	// InitialRotationY is the cloud's starting rotation around the vertical
	// axis, radians
	InitialRotationY = 0.6

	// AutoSpinRadPerMS is the idle rotation speed around the vertical axis
	// Slow enough that orbit input still reads as the dominant motion
	AutoSpinRadPerMS = 0.00012
)
