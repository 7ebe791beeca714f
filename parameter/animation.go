package parameter

// Timeline choreography, all durations in milliseconds
const (
	// GroupGrowDelayMS delays the initial grow-in after startup
	GroupGrowDelayMS = 300.0

	// GroupGrowMS is the elastic grow-in duration for the whole cloud
	GroupGrowMS = 1800.0

	// SweepDelayMS holds the first pulse sweep until the grow-in has
	// visually landed
	SweepDelayMS = 1400.0

	// PulseStaggerMS offsets each point's pulse by its spiral index so the
	// sweep travels pole to pole instead of firing at once
	PulseStaggerMS = 45.0

	// PulseUpMS / PulseDownMS are the two halves of one point's pulse
	PulseUpMS   = 260.0
	PulseDownMS = 520.0

	// PulseScale is the peak per-point scale at the top of a pulse
	PulseScale = 2.4

	// SweepRestGapMS is the quiet interval between the end of one sweep and
	// the start of the next
	SweepRestGapMS = 900.0

	// RevealDelayMS / RevealMS control the fade-in of the connecting lines
	RevealDelayMS = 1600.0
	RevealMS      = 1200.0
)
