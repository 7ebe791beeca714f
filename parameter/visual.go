package parameter

// Rendering configuration
const (
	// TargetFPS drives the frame ticker in the host loop
	TargetFPS = 30

	// FocalLength for the perspective projection, world units
	FocalLength = 10.0

	// ViewScale converts projected units to terminal rows as a fraction of
	// view height. The X axis additionally doubles for the 1:2 cell aspect
	ViewScale = 0.13

	// CameraDistance is the starting orbit radius, world units
	CameraDistance = 3.2

	// CameraDistanceMin / CameraDistanceMax bound zoom input
	CameraDistanceMin = 1.6
	CameraDistanceMax = 9.0

	// OrbitStepRad is the yaw/pitch increment per key press
	OrbitStepRad = 0.08

	// ZoomStep is the distance increment per zoom key press
	ZoomStep = 0.25

	// NearClip discards points behind or grazing the camera plane
	NearClip = 0.25

	// PointRadius is the world-space radius of one point at scale 1,
	// roughly a fifth of the mean nearest-neighbor spacing
	PointRadius = 0.07
)

// Palette endpoints, hex RGB. Point colors blend between these along the
// spiral; line segments blend between their endpoint colors.
const (
	PaletteHeadHex = "#7de2ff"
	PaletteTailHex = "#b07dff"
	LineTintHex    = "#4a5a8a"
)
