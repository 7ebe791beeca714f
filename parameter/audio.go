package parameter

import "time"

// Sweep cue tone shaping
const (
	// PulseToneHz is the sine frequency of the sweep-boundary blip
	PulseToneHz = 660.0

	// PulseToneDur is the full blip length
	PulseToneDur = 110 * time.Millisecond

	// PulseToneAttack / PulseToneRelease shape the blip envelope
	PulseToneAttack  = 8 * time.Millisecond
	PulseToneRelease = 70 * time.Millisecond

	// PulseToneGain scales the blip below full amplitude
	PulseToneGain = 0.35
)
